package quiz

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/graceview/graceview-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type QuizRepo interface {
	GetRandomQuestions(ctx context.Context, n int) ([]Question, error)
	GetQuestionsByIDs(ctx context.Context, ids []int) ([]Question, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	CreateQuestion(ctx context.Context, q Question) (*Question, error)
	UpdateQuestion(ctx context.Context, q Question) error
	DeleteQuestion(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewQuizRepo(dbService database.Service) QuizRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) GetRandomQuestions(ctx context.Context, n int) ([]Question, error) {
	query := `
		SELECT id, prompt, options, correct_index, reference
		FROM quiz_questions
		ORDER BY RANDOM()
		LIMIT $1
	`
	return r.scanQuestions(r.db.QueryContext(ctx, query, n))
}

func (r *repository) GetQuestionsByIDs(ctx context.Context, ids []int) ([]Question, error) {
	query := `
		SELECT id, prompt, options, correct_index, reference
		FROM quiz_questions
		WHERE id = ANY($1)
	`
	return r.scanQuestions(r.db.QueryContext(ctx, query, pq.Array(ids)))
}

func (r *repository) ListQuestions(ctx context.Context) ([]Question, error) {
	query := `SELECT id, prompt, options, correct_index, reference FROM quiz_questions ORDER BY id ASC`
	return r.scanQuestions(r.db.QueryContext(ctx, query))
}

func (r *repository) scanQuestions(rows *sql.Rows, err error) ([]Question, error) {
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Prompt, pq.Array(&q.Options), &q.CorrectIndex, &q.Reference); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *repository) CreateQuestion(ctx context.Context, q Question) (*Question, error) {
	query := `
		INSERT INTO quiz_questions (prompt, options, correct_index, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, q.Prompt, pq.Array(q.Options), q.CorrectIndex, q.Reference).
		Scan(&q.ID)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &q, nil
}

func (r *repository) UpdateQuestion(ctx context.Context, q Question) error {
	query := `
		UPDATE quiz_questions
		SET prompt = $1, options = $2, correct_index = $3, reference = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query, q.Prompt, pq.Array(q.Options), q.CorrectIndex, q.Reference, q.ID)
	if err != nil {
		return ErrInternalServer
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ErrInternalServer
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteQuestion(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quiz_questions WHERE id = $1`, id)
	if err != nil {
		return ErrInternalServer
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ErrInternalServer
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
