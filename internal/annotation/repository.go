package annotation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/graceview/graceview-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrEmptyComment   = errors.New("comment text is empty")
	ErrInternalServer = errors.New("internal server error")
)

// AnnotationRepo persists highlights, favorites and comments with per-key
// writes. No operation reads a whole collection just to write it back, so two
// in-flight writes for different verses can never clobber each other.
type AnnotationRepo interface {
	LoadHighlights(ctx context.Context, userID int, key VerseKey) (map[int]Highlight, error)
	GetHighlight(ctx context.Context, userID int, key VerseKey) (*Highlight, error)
	UpsertHighlight(ctx context.Context, userID int, key VerseKey, hl Highlight) error
	DeleteHighlight(ctx context.Context, userID int, key VerseKey) error

	ToggleFavorite(ctx context.Context, userID int, fav Favorite) (bool, error)
	GetUserFavorites(ctx context.Context, userID int) ([]Favorite, error)
	IsFavorite(ctx context.Context, userID int, verseKey string) (bool, error)

	InsertComment(ctx context.Context, userID int, c Comment) error
	GetComments(ctx context.Context, userID int, verseKey string) ([]Comment, error)
	DeleteComment(ctx context.Context, userID int, verseKey, commentID string) error
}

type repository struct {
	db *sql.DB
}

func NewAnnotationRepo(dbService database.Service) AnnotationRepo {
	return &repository{db: dbService.DB()}
}

// LoadHighlights returns every highlighted verse of the chapter the key
// points into; the key's Verse component is ignored.
func (r *repository) LoadHighlights(ctx context.Context, userID int, key VerseKey) (map[int]Highlight, error) {
	query := `
		SELECT verse, bg_color, text_color
		FROM highlights
		WHERE user_id = $1 AND translation = $2 AND book_abbrev = $3 AND chapter = $4
	`
	rows, err := r.db.QueryContext(ctx, query, userID, key.Translation, key.BookAbbrev, key.Chapter)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	highlights := make(map[int]Highlight)
	for rows.Next() {
		var verse int
		var hl Highlight
		if err := rows.Scan(&verse, &hl.BgColor, &hl.TextColor); err != nil {
			return nil, ErrInternalServer
		}
		highlights[verse] = hl
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	return highlights, nil
}

func (r *repository) GetHighlight(ctx context.Context, userID int, key VerseKey) (*Highlight, error) {
	query := `
		SELECT bg_color, text_color
		FROM highlights
		WHERE user_id = $1 AND translation = $2 AND book_abbrev = $3 AND chapter = $4 AND verse = $5
	`
	var hl Highlight
	err := r.db.QueryRowContext(ctx, query, userID, key.Translation, key.BookAbbrev, key.Chapter, key.Verse).
		Scan(&hl.BgColor, &hl.TextColor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &hl, nil
}

func (r *repository) UpsertHighlight(ctx context.Context, userID int, key VerseKey, hl Highlight) error {
	query := `
		INSERT INTO highlights (user_id, translation, book_abbrev, chapter, verse, bg_color, text_color, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id, translation, book_abbrev, chapter, verse)
		DO UPDATE SET bg_color = EXCLUDED.bg_color, text_color = EXCLUDED.text_color, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, key.Translation, key.BookAbbrev, key.Chapter, key.Verse, hl.BgColor, hl.TextColor)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) DeleteHighlight(ctx context.Context, userID int, key VerseKey) error {
	query := `
		DELETE FROM highlights
		WHERE user_id = $1 AND translation = $2 AND book_abbrev = $3 AND chapter = $4 AND verse = $5
	`
	_, err := r.db.ExecContext(ctx, query, userID, key.Translation, key.BookAbbrev, key.Chapter, key.Verse)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) ToggleFavorite(ctx context.Context, userID int, fav Favorite) (bool, error) {
	exists, err := r.IsFavorite(ctx, userID, fav.VerseKey)
	if err != nil {
		return false, err
	}

	if exists {
		_, err = r.db.ExecContext(ctx, `
			DELETE FROM favorites WHERE user_id = $1 AND verse_key = $2
		`, userID, fav.VerseKey)
		if err != nil {
			return false, ErrInternalServer
		}
		return false, nil
	}

	// ON CONFLICT keeps a repeated insert a no-op instead of an error.
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, verse_key, book_abbrev, book_name, chapter, verse, verse_text, translation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, verse_key) DO NOTHING
	`, userID, fav.VerseKey, fav.BookAbbrev, fav.BookName, fav.Chapter, fav.Verse, fav.VerseText, fav.Translation)
	if err != nil {
		return false, ErrInternalServer
	}
	return true, nil
}

func (r *repository) GetUserFavorites(ctx context.Context, userID int) ([]Favorite, error) {
	query := `
		SELECT id, verse_key, book_abbrev, book_name, chapter, verse, verse_text, translation, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var fav Favorite
		if err := rows.Scan(
			&fav.ID, &fav.VerseKey, &fav.BookAbbrev, &fav.BookName,
			&fav.Chapter, &fav.Verse, &fav.VerseText, &fav.Translation, &fav.CreatedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	return favorites, nil
}

func (r *repository) IsFavorite(ctx context.Context, userID int, verseKey string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND verse_key = $2
		)
	`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, verseKey).Scan(&exists)
	if err != nil {
		return false, ErrInternalServer
	}
	return exists, nil
}

func (r *repository) InsertComment(ctx context.Context, userID int, c Comment) error {
	query := `
		INSERT INTO comments (id, user_id, verse_key, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, userID, c.VerseKey, c.Content, c.CreatedAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) GetComments(ctx context.Context, userID int, verseKey string) ([]Comment, error) {
	query := `
		SELECT id, verse_key, content, created_at
		FROM comments
		WHERE user_id = $1 AND verse_key = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, verseKey)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.VerseKey, &c.Content, &c.CreatedAt); err != nil {
			return nil, ErrInternalServer
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	return comments, nil
}

// DeleteComment is a no-op when the id is absent; callers already confirmed
// the destructive action with the user.
func (r *repository) DeleteComment(ctx context.Context, userID int, verseKey, commentID string) error {
	query := `
		DELETE FROM comments WHERE user_id = $1 AND verse_key = $2 AND id = $3
	`
	_, err := r.db.ExecContext(ctx, query, userID, verseKey, commentID)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}
