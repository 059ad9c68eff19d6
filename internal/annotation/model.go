package annotation

import (
	"fmt"
	"time"

	"github.com/graceview/graceview-api/internal/bible"
)

// VerseKey addresses a single verse within one translation. Two keys are
// equal iff all four components are equal.
type VerseKey struct {
	BookAbbrev  string            `json:"book_abbrev"`
	Chapter     int               `json:"chapter"`
	Verse       int               `json:"verse"`
	Translation bible.Translation `json:"translation"`
}

// String is the stored form of the key, also the prefix of comment ids.
func (k VerseKey) String() string {
	return fmt.Sprintf("%s-%d-%d-%s", k.BookAbbrev, k.Chapter, k.Verse, k.Translation)
}

func (k VerseKey) Validate() error {
	if k.BookAbbrev == "" || k.Chapter < 1 || k.Verse < 1 {
		return fmt.Errorf("invalid verse key: %s", k.String())
	}
	if !k.Translation.IsValid() {
		return fmt.Errorf("unknown translation: %s", k.Translation)
	}
	return nil
}

// Highlight is the color pair applied to one verse.
type Highlight struct {
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
}

// Favorite snapshots the verse text at the time it was favorited, so the
// favorites screen renders without re-resolving datasets.
type Favorite struct {
	ID          int               `json:"id"`
	VerseKey    string            `json:"verse_key"`
	BookAbbrev  string            `json:"book_abbrev"`
	BookName    string            `json:"book_name"`
	Chapter     int               `json:"chapter"`
	Verse       int               `json:"verse"`
	VerseText   string            `json:"verse_text"`
	Translation bible.Translation `json:"translation"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Comment is a free-text note on one verse. Ids are the verse key plus the
// creation timestamp in milliseconds, unique per user in practice.
type Comment struct {
	ID        string    `json:"id"`
	VerseKey  string    `json:"verse_key"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ToggleHighlightRequest struct {
	Key     VerseKey `json:"key"`
	BgColor string   `json:"bg_color"`
}

type ToggleFavoriteRequest struct {
	Key VerseKey `json:"key"`
}

type AddCommentRequest struct {
	Key     VerseKey `json:"key"`
	Content string   `json:"content"`
}
