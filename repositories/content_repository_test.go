package repositories

import (
	"testing"
	"time"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"

	db "github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_HideAndUnhide(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	store := NewDocumentStore(badgerDB, log)
	repo := NewContentRepository(store)

	id, err := store.Add("reviews", Document{
		"professorId": "prof-1",
		"comment":     "Muy buen profesor",
		"rating":      4.5,
	})
	req.NoError(err)

	err = repo.Hide(report.ContentTypeReview, id, report.HiddenReasonReported, time.Now().UTC())
	req.NoError(err)

	hidden, err := repo.IsHidden(report.ContentTypeReview, id)
	req.NoError(err)
	req.True(hidden)

	doc, err := store.GetByID("reviews", id)
	req.NoError(err)
	req.Equal(string(report.ModerationPending), doc["moderationStatus"])
	req.Equal(report.HiddenReasonReported, doc["hiddenReason"])
	// Untouched fields survive the partial update.
	req.Equal("prof-1", doc["professorId"])

	err = repo.Unhide(report.ContentTypeReview, id)
	req.NoError(err)

	hidden, err = repo.IsHidden(report.ContentTypeReview, id)
	req.NoError(err)
	req.False(hidden)

	doc, err = store.GetByID("reviews", id)
	req.NoError(err)
	req.Equal(string(report.ModerationResolved), doc["moderationStatus"])
}

func TestContentRepository_HideIsIdempotent(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	store := NewDocumentStore(badgerDB, log)
	repo := NewContentRepository(store)

	id, err := store.Add("comments", Document{"body": "hola"})
	req.NoError(err)

	at := time.Now().UTC()
	req.NoError(repo.Hide(report.ContentTypeComment, id, report.HiddenReasonReported, at))
	req.NoError(repo.Hide(report.ContentTypeComment, id, report.HiddenReasonReported, at))

	hidden, err := repo.IsHidden(report.ContentTypeComment, id)
	req.NoError(err)
	req.True(hidden)
}

func TestContentRepository_HideMissingContent(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewContentRepository(NewDocumentStore(badgerDB, log))

	err = repo.Hide(report.ContentTypeProfessor, "ghost", report.HiddenReasonReported, time.Now().UTC())
	req.ErrorIs(err, errors.ErrDocumentNotFound)
}

func TestContentRepository_UnknownContentType(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewContentRepository(NewDocumentStore(badgerDB, log))

	err = repo.Hide(report.ContentType("institution"), "x", report.HiddenReasonReported, time.Now().UTC())
	req.ErrorIs(err, errors.ErrInvalidContentType)
}
