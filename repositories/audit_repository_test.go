package repositories

import (
	"testing"

	db "github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_IndexAndSearch(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewAuditRepository(blugeWriter, log)

	err = repo.IndexVerdict("Este profesor es un ******",
		[]string{"Contenido inapropiado detectado"}, 0.66)
	req.NoError(err)
	err = repo.IndexVerdict("Compra mis apuntes en www.ejemplo.com",
		[]string{"Indicadores de spam o enlaces comerciales"}, 0.33)
	req.NoError(err)

	entries, err := repo.Search(ctx, "spam", 10)
	req.NoError(err)
	req.Len(entries, 1)
	req.Contains(entries[0].Reasons[0], "spam")
	req.InDelta(0.33, entries[0].Confidence, 1e-9)

	entries, err = repo.Search(ctx, "profesor", 10)
	req.NoError(err)
	req.Len(entries, 1)
	req.Contains(entries[0].Excerpt, "profesor")
}

func TestAuditRepository_SearchNoMatches(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewAuditRepository(blugeWriter, log)
	entries, err := repo.Search(ctx, "inexistente", 10)
	req.NoError(err)
	req.Empty(entries)
}
