package report

import "time"

// ContentType identifies what kind of published content a report targets.
type ContentType string

const (
	ContentTypeReview    ContentType = "review"
	ContentTypeProfessor ContentType = "professor"
	ContentTypeComment   ContentType = "comment"
)

// Collection resolves the storage collection holding this content type.
// The second return is false for unknown types: a renamed collection must
// not block the user-facing report action.
func (c ContentType) Collection() (string, bool) {
	switch c {
	case ContentTypeReview:
		return "reviews", true
	case ContentTypeProfessor:
		return "professors", true
	case ContentTypeComment:
		return "comments", true
	default:
		return "", false
	}
}

func (c ContentType) Valid() bool {
	_, ok := c.Collection()
	return ok
}

// Status is the report lifecycle state. Reports are never deleted; they
// form the moderation audit trail.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Action is an admin resolution decision.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

// Status maps the resolution action onto the resulting report status.
func (a Action) Status() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// ContentReport is one user report against a piece of published content.
// Mutated only by admin resolution (status, reviewer fields, notes).
type ContentReport struct {
	ID             string      `json:"id"`
	ContentType    ContentType `json:"contentType"`
	ContentID      string      `json:"contentId"`
	Reason         string      `json:"reason"`
	AdditionalInfo string      `json:"additionalInfo,omitempty"`
	ReportedBy     string      `json:"reportedBy"`
	ReportedAt     time.Time   `json:"reportedAt"`
	Status         Status      `json:"status"`
	ReviewedBy     string      `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time  `json:"reviewedAt,omitempty"`
	ModeratorNotes string      `json:"moderatorNotes,omitempty"`
}

// ModerationStatus tracks where a content document stands in the
// report-and-review flow.
type ModerationStatus string

const (
	ModerationNone     ModerationStatus = "none"
	ModerationPending  ModerationStatus = "pending"
	ModerationResolved ModerationStatus = "resolved"
)

// HiddenReasonReported marks content auto-hidden by a report submission.
const HiddenReasonReported = "reported"
