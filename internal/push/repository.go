package push

import (
	"context"
	"database/sql"
	"errors"

	"github.com/graceview/graceview-api/internal/database"
)

var ErrInternalServer = errors.New("internal server error")

type PushRepo interface {
	UpsertToken(ctx context.Context, token string, userID int, platform string) error
	DeleteToken(ctx context.Context, token string) error
	ListTokens(ctx context.Context) ([]string, error)
}

type repository struct {
	db *sql.DB
}

func NewPushRepo(dbService database.Service) PushRepo {
	return &repository{db: dbService.DB()}
}

// UpsertToken re-registers an existing token under the current user, so a
// device that changes hands follows its new owner.
func (r *repository) UpsertToken(ctx context.Context, token string, userID int, platform string) error {
	query := `
		INSERT INTO device_tokens (token, user_id, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = $2, platform = $3
	`
	if _, err := r.db.ExecContext(ctx, query, token, userID, platform); err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) DeleteToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM device_tokens WHERE token = $1`, token); err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) ListTokens(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT token FROM device_tokens ORDER BY created_at ASC`)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, ErrInternalServer
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
