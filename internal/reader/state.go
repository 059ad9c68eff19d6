package reader

import (
	"errors"

	"github.com/graceview/graceview-api/internal/bible"
)

var ErrInvalidTransition = errors.New("invalid reader transition")

// ModalKind enumerates the reader's overlay dialogs.
type ModalKind string

const (
	ModalNone              ModalKind = "none"
	ModalVerseMenu         ModalKind = "verse_menu"
	ModalCommentEditor     ModalKind = "comment_editor"
	ModalCommentViewer     ModalKind = "comment_viewer"
	ModalTranslationPicker ModalKind = "translation_picker"
	ModalSearch            ModalKind = "search"
	ModalIntroduction      ModalKind = "introduction"
)

// Modal is a tagged union: Verse is meaningful only for the verse-scoped
// kinds. Holding the open dialog in a single value makes "at most one modal
// active" structural instead of a convention across boolean flags.
type Modal struct {
	Kind  ModalKind `json:"kind"`
	Verse int       `json:"verse,omitempty"`
}

func (m Modal) verseScoped() bool {
	switch m.Kind {
	case ModalVerseMenu, ModalCommentEditor, ModalCommentViewer:
		return true
	}
	return false
}

// Font size bounds, in display points. Decrease below the floor and increase
// above the ceiling are no-ops.
const (
	MinFontSize     = 12
	MaxFontSize     = 32
	DefaultFontSize = 16
	fontStep        = 2
)

// State is the view state of one open reader screen. It lives for the
// lifetime of a session and is never persisted.
type State struct {
	Translation bible.Translation `json:"translation"`
	BookAbbrev  string            `json:"book_abbrev"`
	Chapter     int               `json:"chapter"`
	FontSize    int               `json:"font_size"`
	Modal       Modal             `json:"modal"`
}

func NewState(tr bible.Translation, bookAbbrev string, chapter int) *State {
	return &State{
		Translation: tr,
		BookAbbrev:  bookAbbrev,
		Chapter:     chapter,
		FontSize:    DefaultFontSize,
		Modal:       Modal{Kind: ModalNone},
	}
}

// OpenChapter navigates within the same translation. Any open modal closes;
// the active verse is meaningless in the new chapter.
func (s *State) OpenChapter(bookAbbrev string, chapter int) {
	s.BookAbbrev = bookAbbrev
	s.Chapter = chapter
	s.Modal = Modal{Kind: ModalNone}
}

// SwitchTranslation models the full remount the app performs when the
// translation changes: same book and chapter, everything else back to its
// initial value.
func (s *State) SwitchTranslation(tr bible.Translation) *State {
	return NewState(tr, s.BookAbbrev, s.Chapter)
}

// TapVerse opens the verse menu. Taps land on the backdrop while a modal is
// up, so they only take effect from the idle state.
func (s *State) TapVerse(verse int) error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalVerseMenu, Verse: verse}
	return nil
}

// OpenCommentEditor is reachable from the verse menu and, via the explicit
// "add comment" action, from the comment viewer.
func (s *State) OpenCommentEditor() error {
	if s.Modal.Kind != ModalVerseMenu && s.Modal.Kind != ModalCommentViewer {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalCommentEditor, Verse: s.Modal.Verse}
	return nil
}

func (s *State) OpenCommentViewer() error {
	if s.Modal.Kind != ModalVerseMenu {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalCommentViewer, Verse: s.Modal.Verse}
	return nil
}

func (s *State) OpenTranslationPicker() error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalTranslationPicker}
	return nil
}

func (s *State) OpenSearch() error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalSearch}
	return nil
}

func (s *State) OpenIntroduction() error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	s.Modal = Modal{Kind: ModalIntroduction}
	return nil
}

// Close returns to idle unconditionally. Backdrop tap, back action and the
// explicit close button all land here; nothing may block closing.
func (s *State) Close() {
	s.Modal = Modal{Kind: ModalNone}
}

// ActiveVerse is the verse the open modal is scoped to, 0 when none is.
func (s *State) ActiveVerse() int {
	if s.Modal.verseScoped() {
		return s.Modal.Verse
	}
	return 0
}

// IncreaseFont and DecreaseFont are gated to the idle state so the size
// change never fights an open modal visually.
func (s *State) IncreaseFont() error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	if s.FontSize+fontStep <= MaxFontSize {
		s.FontSize += fontStep
	}
	return nil
}

func (s *State) DecreaseFont() error {
	if s.Modal.Kind != ModalNone {
		return ErrInvalidTransition
	}
	if s.FontSize-fontStep >= MinFontSize {
		s.FontSize -= fontStep
	}
	return nil
}
