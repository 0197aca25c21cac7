package repositories

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

// AuditEntry is one blocked verdict kept for administrative review.
type AuditEntry struct {
	ID         string    `json:"id"`
	Excerpt    string    `json:"excerpt"`
	Reasons    []string  `json:"reasons"`
	Confidence float64   `json:"confidence"`
	At         time.Time `json:"at"`
}

type IAuditRepository interface {
	IndexVerdict(excerpt string, reasons []string, confidence float64) error
	Search(ctx context.Context, query string, limit int) ([]AuditEntry, error)
}

// AuditRepository keeps blocked-content excerpts in a Bluge full-text index
// so administrators can search what the engine rejected and why.
type AuditRepository struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewAuditRepository(writer *bluge.Writer, log *slog.Logger) *AuditRepository {
	return &AuditRepository{writer: writer, log: log}
}

func (a *AuditRepository) IndexVerdict(excerpt string, reasons []string, confidence float64) error {
	id := uuid.New().String()
	doc := bluge.NewDocument(id).
		AddField(bluge.NewTextField("excerpt", excerpt).StoreValue()).
		AddField(bluge.NewTextField("reasons", strings.Join(reasons, "; ")).StoreValue()).
		AddField(bluge.NewNumericField("confidence", confidence).StoreValue()).
		AddField(bluge.NewDateTimeField("at", time.Now().UTC()).StoreValue())

	return a.writer.Update(doc.ID(), doc)
}

// Search matches the query against excerpts and reasons, newest-ranked
// first by relevance.
func (a *AuditRepository) Search(ctx context.Context, query string, limit int) ([]AuditEntry, error) {
	reader, err := a.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	boolean := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("excerpt")).
		AddShould(bluge.NewMatchQuery(query).SetField("reasons"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, boolean))
	if err != nil {
		return nil, err
	}

	var entries []AuditEntry
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		var entry AuditEntry
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				entry.ID = string(value)
			case "excerpt":
				entry.Excerpt = string(value)
			case "reasons":
				entry.Reasons = splitReasons(string(value))
			case "confidence":
				if parsed, err := bluge.DecodeNumericFloat64(value); err == nil {
					entry.Confidence = parsed
				}
			case "at":
				if parsed, err := bluge.DecodeDateTime(value); err == nil {
					entry.At = parsed
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func splitReasons(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "; ")
}
