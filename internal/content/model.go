package content

import "time"

// Devotional is one day's reading. devotional_date is unique, so "today's
// devotional" is a single-row lookup.
type Devotional struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	PassageRef string    `json:"passage_ref"`
	Body       string    `json:"body"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

type Announcement struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CarouselImage entries render in ascending Position order.
type CarouselImage struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

// ServiceTime is one slot of the weekly schedule. Weekday follows
// time.Weekday numbering (Sunday = 0).
type ServiceTime struct {
	ID        int    `json:"id"`
	Weekday   int    `json:"weekday"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	Location  string `json:"location"`
}

type Hymn struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Lyrics string `json:"lyrics"`
}

type DevotionalRequest struct {
	Title      string `json:"title"`
	PassageRef string `json:"passage_ref"`
	Body       string `json:"body"`
	Date       string `json:"date"` // YYYY-MM-DD
}

type AnnouncementRequest struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CarouselImageRequest struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type ServiceTimeRequest struct {
	Weekday   int    `json:"weekday"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	Location  string `json:"location"`
}

type HymnRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Lyrics string `json:"lyrics"`
}
