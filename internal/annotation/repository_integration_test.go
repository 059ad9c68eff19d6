package annotation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/internal/database"
)

// startPostgres brings up a throwaway database with the real schema applied.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("graceview"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	_, err = db.ExecContext(ctx, `INSERT INTO users (id, email, password) VALUES (7, 'it@graceview.app', 'x')`)
	require.NoError(t, err)

	return db
}

func TestAnnotationRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := startPostgres(t)
	repo := NewAnnotationRepo(&mockDBService{db: db})
	ctx := context.Background()

	key := VerseKey{BookAbbrev: "gn", Chapter: 1, Verse: 3, Translation: bible.TranslationNVI}

	t.Run("highlight upsert and reload", func(t *testing.T) {
		require.NoError(t, repo.UpsertHighlight(ctx, 7, key, Highlight{BgColor: "#1890ff", TextColor: "#ffffff"}))
		// Overwrite with another color: one row, last color wins.
		require.NoError(t, repo.UpsertHighlight(ctx, 7, key, Highlight{BgColor: "#f5222d", TextColor: "#ffffff"}))

		highlights, err := repo.LoadHighlights(ctx, 7, key)
		require.NoError(t, err)
		require.Len(t, highlights, 1)
		assert.Equal(t, "#f5222d", highlights[3].BgColor)

		require.NoError(t, repo.DeleteHighlight(ctx, 7, key))
		highlights, err = repo.LoadHighlights(ctx, 7, key)
		require.NoError(t, err)
		assert.Empty(t, highlights)
	})

	t.Run("favorite toggle round trip", func(t *testing.T) {
		fav := Favorite{
			VerseKey: key.String(), BookAbbrev: "gn", BookName: "Gênesis",
			Chapter: 1, Verse: 3, VerseText: "E disse Deus: haja luz.", Translation: bible.TranslationNVI,
		}

		on, err := repo.ToggleFavorite(ctx, 7, fav)
		require.NoError(t, err)
		assert.True(t, on)

		exists, err := repo.IsFavorite(ctx, 7, key.String())
		require.NoError(t, err)
		assert.True(t, exists)

		on, err = repo.ToggleFavorite(ctx, 7, fav)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("comments newest first", func(t *testing.T) {
		base := time.Now()
		require.NoError(t, repo.InsertComment(ctx, 7, Comment{
			ID: key.String() + "-1", VerseKey: key.String(), Content: "older", CreatedAt: base,
		}))
		require.NoError(t, repo.InsertComment(ctx, 7, Comment{
			ID: key.String() + "-2", VerseKey: key.String(), Content: "newer", CreatedAt: base.Add(time.Second),
		}))

		comments, err := repo.GetComments(ctx, 7, key.String())
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "newer", comments[0].Content)

		require.NoError(t, repo.DeleteComment(ctx, 7, key.String(), key.String()+"-2"))
		comments, err = repo.GetComments(ctx, 7, key.String())
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "older", comments[0].Content)
	})
}
