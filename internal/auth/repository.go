package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/graceview/graceview-api/internal/database"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInternalServer     = errors.New("internal server error")
)

// Repository defines the methods the auth module provides for DB operations.
type Repository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID int) (*User, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error

	SavePasswordReset(ctx context.Context, email, otp string, expiresAt time.Time) error
	GetPasswordReset(ctx context.Context, email string) (string, time.Time, error)
	DeletePasswordReset(ctx context.Context, email string) error
	UpdateUserPassword(ctx context.Context, email, hashed string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) CreateUser(ctx context.Context, user User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.QueryRowContext(ctx, checkQuery, user.Email).Scan(&exists); err != nil {
		return nil, ErrInternalServer
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	query := `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id, email, role, created_at, updated_at
	`
	var u User
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Password).
		Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &u, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, user_name, email, password, role, preferred_translation,
		       notifications_enabled, push_pace, is_profile_completed, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *repository) GetUserByID(ctx context.Context, userID int) (*User, error) {
	query := `
		SELECT id, user_name, email, password, role, preferred_translation,
		       notifications_enabled, push_pace, is_profile_completed, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *repository) scanUser(row *sql.Row) (*User, error) {
	var u User
	var userName sql.NullString
	err := row.Scan(
		&u.ID, &userName, &u.Email, &u.Password, &u.Role, &u.PreferredTranslation,
		&u.NotificationsEnabled, &u.PushPace, &u.IsProfileCompleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternalServer
	}
	u.UserName = userName.String
	return &u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error {
	query := `
		UPDATE users
		SET user_name = $2,
		    preferred_translation = $3,
		    notifications_enabled = $4,
		    push_pace = $5,
		    is_profile_completed = TRUE,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, userID, req.UserName, req.PreferredTranslation, req.NotificationsEnabled, req.PushPace)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) SavePasswordReset(ctx context.Context, email, otp string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_resets (email, otp, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET otp = EXCLUDED.otp, expires_at = EXCLUDED.expires_at
	`
	_, err := r.db.ExecContext(ctx, query, email, otp, expiresAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) GetPasswordReset(ctx context.Context, email string) (string, time.Time, error) {
	var otp string
	var expiresAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT otp, expires_at FROM password_resets WHERE email = $1`, email).
		Scan(&otp, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, ErrUserNotFound
		}
		return "", time.Time{}, ErrInternalServer
	}
	return otp, expiresAt, nil
}

func (r *repository) DeletePasswordReset(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE email = $1`, email)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) UpdateUserPassword(ctx context.Context, email, hashed string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password = $2, updated_at = NOW() WHERE email = $1`, email, hashed)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}
