package content

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/graceview/graceview-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("record already exists")
	ErrInternalServer = errors.New("internal server error")
)

type ContentRepo interface {
	GetDevotionalByDate(ctx context.Context, date time.Time) (*Devotional, error)
	ListDevotionals(ctx context.Context, limit int) ([]Devotional, error)
	CreateDevotional(ctx context.Context, d Devotional) (*Devotional, error)
	UpdateDevotional(ctx context.Context, d Devotional) error
	DeleteDevotional(ctx context.Context, id int) error

	ListAnnouncements(ctx context.Context, now time.Time) ([]Announcement, error)
	CreateAnnouncement(ctx context.Context, a Announcement) (*Announcement, error)
	UpdateAnnouncement(ctx context.Context, a Announcement) error
	DeleteAnnouncement(ctx context.Context, id int) error

	ListCarouselImages(ctx context.Context) ([]CarouselImage, error)
	CreateCarouselImage(ctx context.Context, img CarouselImage) (*CarouselImage, error)
	UpdateCarouselImage(ctx context.Context, img CarouselImage) error
	DeleteCarouselImage(ctx context.Context, id int) error

	ListServiceTimes(ctx context.Context) ([]ServiceTime, error)
	CreateServiceTime(ctx context.Context, st ServiceTime) (*ServiceTime, error)
	UpdateServiceTime(ctx context.Context, st ServiceTime) error
	DeleteServiceTime(ctx context.Context, id int) error

	ListHymns(ctx context.Context) ([]Hymn, error)
	GetHymnByNumber(ctx context.Context, number int) (*Hymn, error)
	SearchHymns(ctx context.Context, query string) ([]Hymn, error)
	CreateHymn(ctx context.Context, h Hymn) (*Hymn, error)
	UpdateHymn(ctx context.Context, h Hymn) error
	DeleteHymn(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewContentRepo(dbService database.Service) ContentRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) GetDevotionalByDate(ctx context.Context, date time.Time) (*Devotional, error) {
	query := `
		SELECT id, title, passage_ref, body, devotional_date, created_at
		FROM devotionals
		WHERE devotional_date = $1
	`
	var d Devotional
	err := r.db.QueryRowContext(ctx, query, date.Format("2006-01-02")).
		Scan(&d.ID, &d.Title, &d.PassageRef, &d.Body, &d.Date, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternalServer
	}
	return &d, nil
}

func (r *repository) ListDevotionals(ctx context.Context, limit int) ([]Devotional, error) {
	query := `
		SELECT id, title, passage_ref, body, devotional_date, created_at
		FROM devotionals
		ORDER BY devotional_date DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []Devotional
	for rows.Next() {
		var d Devotional
		if err := rows.Scan(&d.ID, &d.Title, &d.PassageRef, &d.Body, &d.Date, &d.CreatedAt); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repository) CreateDevotional(ctx context.Context, d Devotional) (*Devotional, error) {
	query := `
		INSERT INTO devotionals (title, passage_ref, body, devotional_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, d.Title, d.PassageRef, d.Body, d.Date.Format("2006-01-02")).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &d, nil
}

func (r *repository) UpdateDevotional(ctx context.Context, d Devotional) error {
	query := `
		UPDATE devotionals
		SET title = $1, passage_ref = $2, body = $3, devotional_date = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query, d.Title, d.PassageRef, d.Body, d.Date.Format("2006-01-02"), d.ID)
	return rowsAffectedErr(res, err)
}

func (r *repository) DeleteDevotional(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM devotionals WHERE id = $1`, id)
	return rowsAffectedErr(res, err)
}

// ListAnnouncements skips entries whose expires_at has passed.
func (r *repository) ListAnnouncements(ctx context.Context, now time.Time) ([]Announcement, error) {
	query := `
		SELECT id, title, body, created_at, expires_at
		FROM announcements
		WHERE expires_at IS NULL OR expires_at > $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt, &a.ExpiresAt); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repository) CreateAnnouncement(ctx context.Context, a Announcement) (*Announcement, error) {
	query := `
		INSERT INTO announcements (title, body, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, a.Title, a.Body, a.ExpiresAt).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &a, nil
}

func (r *repository) UpdateAnnouncement(ctx context.Context, a Announcement) error {
	query := `UPDATE announcements SET title = $1, body = $2, expires_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, a.Title, a.Body, a.ExpiresAt, a.ID)
	return rowsAffectedErr(res, err)
}

func (r *repository) DeleteAnnouncement(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return rowsAffectedErr(res, err)
}

func (r *repository) ListCarouselImages(ctx context.Context) ([]CarouselImage, error) {
	query := `SELECT id, url, caption, position FROM carousel_images ORDER BY position ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []CarouselImage
	for rows.Next() {
		var img CarouselImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Caption, &img.Position); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *repository) CreateCarouselImage(ctx context.Context, img CarouselImage) (*CarouselImage, error) {
	query := `INSERT INTO carousel_images (url, caption, position) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, img.URL, img.Caption, img.Position).Scan(&img.ID); err != nil {
		return nil, ErrInternalServer
	}
	return &img, nil
}

func (r *repository) UpdateCarouselImage(ctx context.Context, img CarouselImage) error {
	query := `UPDATE carousel_images SET url = $1, caption = $2, position = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, img.URL, img.Caption, img.Position, img.ID)
	return rowsAffectedErr(res, err)
}

func (r *repository) DeleteCarouselImage(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carousel_images WHERE id = $1`, id)
	return rowsAffectedErr(res, err)
}

func (r *repository) ListServiceTimes(ctx context.Context) ([]ServiceTime, error) {
	query := `SELECT id, weekday, name, start_time, location FROM service_times ORDER BY weekday ASC, start_time ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []ServiceTime
	for rows.Next() {
		var st ServiceTime
		if err := rows.Scan(&st.ID, &st.Weekday, &st.Name, &st.StartTime, &st.Location); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *repository) CreateServiceTime(ctx context.Context, st ServiceTime) (*ServiceTime, error) {
	query := `INSERT INTO service_times (weekday, name, start_time, location) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, st.Weekday, st.Name, st.StartTime, st.Location).Scan(&st.ID); err != nil {
		return nil, ErrInternalServer
	}
	return &st, nil
}

func (r *repository) UpdateServiceTime(ctx context.Context, st ServiceTime) error {
	query := `UPDATE service_times SET weekday = $1, name = $2, start_time = $3, location = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, st.Weekday, st.Name, st.StartTime, st.Location, st.ID)
	return rowsAffectedErr(res, err)
}

func (r *repository) DeleteServiceTime(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_times WHERE id = $1`, id)
	return rowsAffectedErr(res, err)
}

func (r *repository) ListHymns(ctx context.Context) ([]Hymn, error) {
	query := `SELECT id, number, title, author, lyrics FROM hymns ORDER BY number ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []Hymn
	for rows.Next() {
		var h Hymn
		if err := rows.Scan(&h.ID, &h.Number, &h.Title, &h.Author, &h.Lyrics); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repository) GetHymnByNumber(ctx context.Context, number int) (*Hymn, error) {
	query := `SELECT id, number, title, author, lyrics FROM hymns WHERE number = $1`
	var h Hymn
	err := r.db.QueryRowContext(ctx, query, number).Scan(&h.ID, &h.Number, &h.Title, &h.Author, &h.Lyrics)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInternalServer
	}
	return &h, nil
}

func (r *repository) SearchHymns(ctx context.Context, query string) ([]Hymn, error) {
	stmt := `
		SELECT id, number, title, author, lyrics
		FROM hymns
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY number ASC
	`
	rows, err := r.db.QueryContext(ctx, stmt, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var out []Hymn
	for rows.Next() {
		var h Hymn
		if err := rows.Scan(&h.ID, &h.Number, &h.Title, &h.Author, &h.Lyrics); err != nil {
			return nil, ErrInternalServer
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repository) CreateHymn(ctx context.Context, h Hymn) (*Hymn, error) {
	query := `INSERT INTO hymns (number, title, author, lyrics) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, h.Number, h.Title, h.Author, h.Lyrics).Scan(&h.ID); err != nil {
		return nil, ErrInternalServer
	}
	return &h, nil
}

func (r *repository) UpdateHymn(ctx context.Context, h Hymn) error {
	query := `UPDATE hymns SET number = $1, title = $2, author = $3, lyrics = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, h.Number, h.Title, h.Author, h.Lyrics, h.ID)
	return rowsAffectedErr(res, err)
}

func (r *repository) DeleteHymn(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hymns WHERE id = $1`, id)
	return rowsAffectedErr(res, err)
}

func rowsAffectedErr(res sql.Result, err error) error {
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
