//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=../mocks/mock_content_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"
)

type IContentRepository interface {
	Hide(contentType report.ContentType, contentID, reason string, at time.Time) error
	Unhide(contentType report.ContentType, contentID string) error
	IsHidden(contentType report.ContentType, contentID string) (bool, error)
}

// ContentRepository flips the moderation flags on published content
// documents (reviews, professors, comments).
type ContentRepository struct {
	store IDocumentStore
}

func NewContentRepository(store IDocumentStore) *ContentRepository {
	return &ContentRepository{store: store}
}

// Hide marks the target document as hidden pending review. The overwrite is
// idempotent, so two reports racing on the same content are harmless.
// Returns errors.ErrDocumentNotFound when the content no longer exists and
// errors.ErrInvalidContentType for an unknown type; callers decide whether
// those are fatal.
func (c *ContentRepository) Hide(contentType report.ContentType, contentID, reason string, at time.Time) error {
	collection, err := resolveCollection(contentType)
	if err != nil {
		return err
	}
	return c.store.Update(collection, contentID, Document{
		"isHidden":         true,
		"hiddenReason":     reason,
		"hiddenAt":         at.Format(time.RFC3339Nano),
		"moderationStatus": string(report.ModerationPending),
	})
}

// Unhide restores previously hidden content. Separate explicit admin step:
// report resolution alone never calls this.
func (c *ContentRepository) Unhide(contentType report.ContentType, contentID string) error {
	collection, err := resolveCollection(contentType)
	if err != nil {
		return err
	}
	return c.store.Update(collection, contentID, Document{
		"isHidden":         false,
		"hiddenReason":     "",
		"moderationStatus": string(report.ModerationResolved),
	})
}

func (c *ContentRepository) IsHidden(contentType report.ContentType, contentID string) (bool, error) {
	collection, err := resolveCollection(contentType)
	if err != nil {
		return false, err
	}
	doc, err := c.store.GetByID(collection, contentID)
	if err != nil {
		return false, err
	}
	hidden, _ := doc["isHidden"].(bool)
	return hidden, nil
}

func resolveCollection(contentType report.ContentType) (string, error) {
	collection, ok := contentType.Collection()
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidContentType, contentType)
	}
	return collection, nil
}
