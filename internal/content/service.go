package content

import (
	"context"
	"strings"
	"time"
)

type ContentService struct {
	repo ContentRepo
	now  func() time.Time
}

func NewContentService(repo ContentRepo) ContentService {
	return ContentService{repo: repo, now: time.Now}
}

// TodaysDevotional looks up the entry for the current calendar day. A day
// without an entry is a normal condition, reported as ErrNotFound.
func (s *ContentService) TodaysDevotional(ctx context.Context) (*Devotional, error) {
	return s.repo.GetDevotionalByDate(ctx, s.now())
}

func (s *ContentService) ListDevotionals(ctx context.Context, limit int) ([]Devotional, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.repo.ListDevotionals(ctx, limit)
}

func (s *ContentService) CreateDevotional(ctx context.Context, req DevotionalRequest) (*Devotional, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateDevotional(ctx, Devotional{
		Title:      strings.TrimSpace(req.Title),
		PassageRef: strings.TrimSpace(req.PassageRef),
		Body:       req.Body,
		Date:       date,
	})
}

func (s *ContentService) UpdateDevotional(ctx context.Context, id int, req DevotionalRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return err
	}
	return s.repo.UpdateDevotional(ctx, Devotional{
		ID:         id,
		Title:      strings.TrimSpace(req.Title),
		PassageRef: strings.TrimSpace(req.PassageRef),
		Body:       req.Body,
		Date:       date,
	})
}

func (s *ContentService) DeleteDevotional(ctx context.Context, id int) error {
	return s.repo.DeleteDevotional(ctx, id)
}

func (s *ContentService) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	return s.repo.ListAnnouncements(ctx, s.now())
}

func (s *ContentService) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) (*Announcement, error) {
	return s.repo.CreateAnnouncement(ctx, Announcement{
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		ExpiresAt: req.ExpiresAt,
	})
}

func (s *ContentService) UpdateAnnouncement(ctx context.Context, id int, req AnnouncementRequest) error {
	return s.repo.UpdateAnnouncement(ctx, Announcement{
		ID:        id,
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		ExpiresAt: req.ExpiresAt,
	})
}

func (s *ContentService) DeleteAnnouncement(ctx context.Context, id int) error {
	return s.repo.DeleteAnnouncement(ctx, id)
}

func (s *ContentService) ListCarouselImages(ctx context.Context) ([]CarouselImage, error) {
	return s.repo.ListCarouselImages(ctx)
}

func (s *ContentService) CreateCarouselImage(ctx context.Context, req CarouselImageRequest) (*CarouselImage, error) {
	return s.repo.CreateCarouselImage(ctx, CarouselImage{
		URL:      strings.TrimSpace(req.URL),
		Caption:  req.Caption,
		Position: req.Position,
	})
}

func (s *ContentService) UpdateCarouselImage(ctx context.Context, id int, req CarouselImageRequest) error {
	return s.repo.UpdateCarouselImage(ctx, CarouselImage{
		ID:       id,
		URL:      strings.TrimSpace(req.URL),
		Caption:  req.Caption,
		Position: req.Position,
	})
}

func (s *ContentService) DeleteCarouselImage(ctx context.Context, id int) error {
	return s.repo.DeleteCarouselImage(ctx, id)
}

func (s *ContentService) ListServiceTimes(ctx context.Context) ([]ServiceTime, error) {
	return s.repo.ListServiceTimes(ctx)
}

func (s *ContentService) CreateServiceTime(ctx context.Context, req ServiceTimeRequest) (*ServiceTime, error) {
	return s.repo.CreateServiceTime(ctx, ServiceTime{
		Weekday:   req.Weekday,
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		Location:  req.Location,
	})
}

func (s *ContentService) UpdateServiceTime(ctx context.Context, id int, req ServiceTimeRequest) error {
	return s.repo.UpdateServiceTime(ctx, ServiceTime{
		ID:        id,
		Weekday:   req.Weekday,
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		Location:  req.Location,
	})
}

func (s *ContentService) DeleteServiceTime(ctx context.Context, id int) error {
	return s.repo.DeleteServiceTime(ctx, id)
}

func (s *ContentService) ListHymns(ctx context.Context) ([]Hymn, error) {
	return s.repo.ListHymns(ctx)
}

func (s *ContentService) GetHymnByNumber(ctx context.Context, number int) (*Hymn, error) {
	return s.repo.GetHymnByNumber(ctx, number)
}

// SearchHymns matches on title, case-insensitively. A blank query returns
// the whole hymnal in number order.
func (s *ContentService) SearchHymns(ctx context.Context, query string) ([]Hymn, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.ListHymns(ctx)
	}
	return s.repo.SearchHymns(ctx, query)
}

func (s *ContentService) CreateHymn(ctx context.Context, req HymnRequest) (*Hymn, error) {
	return s.repo.CreateHymn(ctx, Hymn{
		Number: req.Number,
		Title:  strings.TrimSpace(req.Title),
		Author: req.Author,
		Lyrics: req.Lyrics,
	})
}

func (s *ContentService) UpdateHymn(ctx context.Context, id int, req HymnRequest) error {
	return s.repo.UpdateHymn(ctx, Hymn{
		ID:     id,
		Number: req.Number,
		Title:  strings.TrimSpace(req.Title),
		Author: req.Author,
		Lyrics: req.Lyrics,
	})
}

func (s *ContentService) DeleteHymn(ctx context.Context, id int) error {
	return s.repo.DeleteHymn(ctx, id)
}
