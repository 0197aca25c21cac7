//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"
)

const reportsCollection = "reports"

type IReportRepository interface {
	Create(contentReport report.ContentReport) (report.ContentReport, error)
	GetByID(id string) (report.ContentReport, error)
	Resolve(id string, action report.Action, reviewerID, notes string, at time.Time) error
	ListByStatus(status report.Status) ([]report.ContentReport, error)
}

// ReportRepository stores reports as documents in the reports collection.
// Reports are append-then-amend records: created once, amended only by
// resolution, never deleted.
type ReportRepository struct {
	store IDocumentStore
}

func NewReportRepository(store IDocumentStore) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) Create(contentReport report.ContentReport) (report.ContentReport, error) {
	doc, err := toDocument(contentReport)
	if err != nil {
		return report.ContentReport{}, err
	}
	id, err := r.store.Add(reportsCollection, doc)
	if err != nil {
		return report.ContentReport{}, err
	}
	contentReport.ID = id
	return contentReport, nil
}

func (r *ReportRepository) GetByID(id string) (report.ContentReport, error) {
	doc, err := r.store.GetByID(reportsCollection, id)
	if err != nil {
		return report.ContentReport{}, err
	}
	return fromDocument(doc)
}

func (r *ReportRepository) Resolve(id string, action report.Action, reviewerID, notes string, at time.Time) error {
	if _, err := r.store.GetByID(reportsCollection, id); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrReportNotFound, id)
	}
	return r.store.Update(reportsCollection, id, Document{
		"status":         string(action.Status()),
		"reviewedBy":     reviewerID,
		"reviewedAt":     at.Format(time.RFC3339Nano),
		"moderatorNotes": notes,
	})
}

func (r *ReportRepository) ListByStatus(status report.Status) ([]report.ContentReport, error) {
	docs, err := r.store.Query(reportsCollection, map[string]any{"status": string(status)})
	if err != nil {
		return nil, err
	}
	reports := make([]report.ContentReport, 0, len(docs))
	for _, doc := range docs {
		parsed, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, parsed)
	}
	return reports, nil
}

// toDocument/fromDocument round-trip through JSON so the document shape and
// the struct tags stay in lockstep.
func toDocument(contentReport report.ContentReport) (Document, error) {
	bytes, err := json.Marshal(contentReport)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDocument(doc Document) (report.ContentReport, error) {
	bytes, err := json.Marshal(doc)
	if err != nil {
		return report.ContentReport{}, err
	}
	var contentReport report.ContentReport
	if err := json.Unmarshal(bytes, &contentReport); err != nil {
		return report.ContentReport{}, err
	}
	return contentReport, nil
}
