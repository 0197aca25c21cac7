//go:generate go run go.uber.org/mock/mockgen -source=report_service.go -destination=../mocks/mock_report_service.go -package=mocks
package services

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"time"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"
	"califica-tu-profe/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SubmitReportRequest is the validated payload for a new content report.
// The caller is already authenticated; ReportedBy is the trusted identity.
type SubmitReportRequest struct {
	ContentType    string `validate:"required"`
	ContentID      string `validate:"required"`
	Reason         string `validate:"required"`
	AdditionalInfo string `validate:"max=2000"`
	ReportedBy     string `validate:"required"`
}

type IReportService interface {
	Submit(request SubmitReportRequest) (report.ContentReport, error)
	Resolve(reportID string, action report.Action, reviewerID, notes string) error
	ListPending() ([]report.ContentReport, error)
	Unhide(contentType report.ContentType, contentID string) error
}

// ReportService implements the report-and-auto-hide workflow. Report
// creation is the durable guarantee; the hide mutation is best effort and
// its failures are logged, never surfaced to the reporting user.
type ReportService struct {
	reports repositories.IReportRepository
	content repositories.IContentRepository
	log     *slog.Logger
}

func NewReportService(reports repositories.IReportRepository,
	content repositories.IContentRepository, log *slog.Logger) *ReportService {
	return &ReportService{reports: reports, content: content, log: log}
}

func (s *ReportService) Submit(request SubmitReportRequest) (report.ContentReport, error) {
	if err := validateSubmit(request); err != nil {
		return report.ContentReport{}, err
	}

	contentType := report.ContentType(request.ContentType)

	created, err := s.reports.Create(report.ContentReport{
		ContentType:    contentType,
		ContentID:      request.ContentID,
		Reason:         request.Reason,
		AdditionalInfo: request.AdditionalInfo,
		ReportedBy:     request.ReportedBy,
		ReportedAt:     time.Now().UTC(),
		Status:         report.StatusPending,
	})
	if err != nil {
		return report.ContentReport{}, fmt.Errorf("report creation failed: %w", err)
	}

	// The report is durable from here on. Auto-hide is attempted once;
	// missing content and renamed collections are silent no-ops.
	err = s.content.Hide(contentType, request.ContentID, report.HiddenReasonReported, time.Now().UTC())
	switch {
	case err == nil:
	case goerrors.Is(err, errors.ErrDocumentNotFound):
		s.log.Debug("Reported content no longer exists, skipping auto-hide",
			"content_type", request.ContentType, "content_id", request.ContentID)
	case goerrors.Is(err, errors.ErrInvalidContentType):
		s.log.Warn("No collection for content type, skipping auto-hide",
			"content_type", request.ContentType)
	default:
		s.log.Warn("Auto-hide failed, report kept",
			"report_id", created.ID, "error", err)
	}

	return created, nil
}

// Resolve applies an admin decision to a pending report. It does not
// restore hidden content: unhiding is a separate explicit action.
func (s *ReportService) Resolve(reportID string, action report.Action, reviewerID, notes string) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", errors.ErrInvalidAction, action)
	}
	return s.reports.Resolve(reportID, action, reviewerID, notes, time.Now().UTC())
}

func (s *ReportService) ListPending() ([]report.ContentReport, error) {
	return s.reports.ListByStatus(report.StatusPending)
}

func (s *ReportService) Unhide(contentType report.ContentType, contentID string) error {
	if !contentType.Valid() {
		return fmt.Errorf("%w: %q", errors.ErrInvalidContentType, contentType)
	}
	return s.content.Unhide(contentType, contentID)
}

func validateSubmit(request SubmitReportRequest) error {
	if err := validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if goerrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			switch fieldErrors[0].Field() {
			case "Reason":
				return errors.ErrEmptyReason
			case "ReportedBy":
				return errors.ErrMissingReporter
			}
		}
		return err
	}
	if !report.ContentType(request.ContentType).Valid() {
		return fmt.Errorf("%w: %q", errors.ErrInvalidContentType, request.ContentType)
	}
	return nil
}
