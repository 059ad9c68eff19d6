package annotation

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/graceview/graceview-api/internal/bible"
)

type AnnotationService struct {
	repo    AnnotationRepo
	library *bible.Library
}

func NewAnnotationService(repo AnnotationRepo, library *bible.Library) AnnotationService {
	return AnnotationService{repo: repo, library: library}
}

// ChapterHighlights never fails visibly: a read error is logged and rendered
// as "no highlights", the same way the app treats a corrupt local record.
func (s *AnnotationService) ChapterHighlights(ctx context.Context, userID int, key VerseKey) map[int]Highlight {
	highlights, err := s.repo.LoadHighlights(ctx, userID, key)
	if err != nil {
		log.Printf("failed to load highlights for %s ch %d: %v", key.BookAbbrev, key.Chapter, err)
		return map[int]Highlight{}
	}
	if highlights == nil {
		highlights = map[int]Highlight{}
	}
	return highlights
}

// ToggleHighlight applies a color to a verse, or removes the highlight when
// the verse already carries that exact color. Re-selecting the active color
// is the only eraser the UI offers.
//
// Returns the highlight now on the verse, nil when it was removed.
func (s *AnnotationService) ToggleHighlight(ctx context.Context, userID int, key VerseKey, bgColor string) (*Highlight, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetHighlight(ctx, userID, key)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	if current != nil && strings.EqualFold(current.BgColor, bgColor) {
		if err := s.repo.DeleteHighlight(ctx, userID, key); err != nil {
			return nil, err
		}
		return nil, nil
	}

	hl := Highlight{BgColor: bgColor, TextColor: textColorFor(bgColor)}
	if err := s.repo.UpsertHighlight(ctx, userID, key, hl); err != nil {
		return nil, err
	}
	return &hl, nil
}

// ToggleFavorite snapshots the verse text from the dataset and flips the
// favorite state. Returns the new state.
func (s *AnnotationService) ToggleFavorite(ctx context.Context, userID int, key VerseKey) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}

	fav := Favorite{
		VerseKey:    key.String(),
		BookAbbrev:  key.BookAbbrev,
		BookName:    s.library.BookName(key.Translation, key.BookAbbrev),
		Chapter:     key.Chapter,
		Verse:       key.Verse,
		VerseText:   s.library.VerseText(key.Translation, key.BookAbbrev, key.Chapter, key.Verse),
		Translation: key.Translation,
	}

	isFav, err := s.repo.ToggleFavorite(ctx, userID, fav)
	if err != nil {
		log.Println("Error toggling favorite:", err)
		return false, err
	}
	return isFav, nil
}

// IsFavorite reports the current favorite state without flipping it.
func (s *AnnotationService) IsFavorite(ctx context.Context, userID int, key VerseKey) (bool, error) {
	return s.repo.IsFavorite(ctx, userID, key.String())
}

func (s *AnnotationService) GetUserFavorites(ctx context.Context, userID int) ([]Favorite, error) {
	favorites, err := s.repo.GetUserFavorites(ctx, userID)
	if err != nil {
		log.Println("Error fetching user favorites:", err)
		return nil, err
	}
	return favorites, nil
}

// AddComment inserts at the logical head: listing is newest-first, so the new
// comment is the first one back.
func (s *AnnotationService) AddComment(ctx context.Context, userID int, key VerseKey, text string) (*Comment, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("rejected empty comment for %s", key.String())
		return nil, ErrEmptyComment
	}

	now := time.Now()
	c := Comment{
		ID:        key.String() + "-" + strconv.FormatInt(now.UnixMilli(), 10),
		VerseKey:  key.String(),
		Content:   text,
		CreatedAt: now,
	}

	if err := s.repo.InsertComment(ctx, userID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AnnotationService) GetComments(ctx context.Context, userID int, key VerseKey) ([]Comment, error) {
	comments, err := s.repo.GetComments(ctx, userID, key.String())
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *AnnotationService) DeleteComment(ctx context.Context, userID int, key VerseKey, commentID string) error {
	return s.repo.DeleteComment(ctx, userID, key.String(), commentID)
}

// textColorFor picks black or white text for a highlight background by its
// relative luminance, so any palette color stays readable.
func textColorFor(bgColor string) string {
	hex := strings.TrimPrefix(strings.TrimSpace(bgColor), "#")
	if len(hex) != 6 {
		return "#ffffff"
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "#ffffff"
	}
	r := (rgb >> 16) & 0xff
	g := (rgb >> 8) & 0xff
	b := rgb & 0xff

	// ITU-R BT.601 luma.
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 150 {
		return "#000000"
	}
	return "#ffffff"
}
