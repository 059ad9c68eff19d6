package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/graceview/graceview-api/internal/annotation"
	"github.com/graceview/graceview-api/internal/bible"
)

// Session drives one reader screen: it owns the view state and turns client
// events into state transitions plus the messages the screen needs to render.
// The transport (websocket) stays out of this type so tests can drive it
// directly.
type Session struct {
	userID      int
	state       *State
	library     *bible.Library
	annotations annotation.AnnotationService
}

func NewSession(userID int, tr bible.Translation, bookAbbrev string, chapter int,
	library *bible.Library, annotations annotation.AnnotationService) *Session {
	return &Session{
		userID:      userID,
		state:       NewState(tr, bookAbbrev, chapter),
		library:     library,
		annotations: annotations,
	}
}

// State exposes a copy of the current view state.
func (s *Session) State() State {
	return *s.state
}

func (s *Session) verseKey(verse int) annotation.VerseKey {
	return annotation.VerseKey{
		BookAbbrev:  s.state.BookAbbrev,
		Chapter:     s.state.Chapter,
		Verse:       verse,
		Translation: s.state.Translation,
	}
}

// Handle processes one client event and returns the messages to send back.
// Unknown or out-of-order events produce an error message, never a closed
// connection.
func (s *Session) Handle(ctx context.Context, env Envelope) []outbound {
	switch env.Type {
	case EventOpenChapter:
		var p openChapterPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid open_chapter payload")
		}
		s.state.OpenChapter(p.BookAbbrev, p.Chapter)
		return s.chapterSnapshot(ctx)

	case EventTapVerse:
		var p tapVersePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid tap_verse payload")
		}
		if err := s.state.TapVerse(p.Verse); err != nil {
			return errOut("a dialog is already open")
		}
		return s.verseMenu(ctx, p.Verse)

	case EventSetHighlight:
		var p setHighlightPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.BgColor == "" {
			return errOut("invalid set_highlight payload")
		}
		if s.state.Modal.Kind != ModalVerseMenu {
			return errOut("no verse selected")
		}
		verse := s.state.ActiveVerse()
		hl, err := s.annotations.ToggleHighlight(ctx, s.userID, s.verseKey(verse), p.BgColor)
		if err != nil {
			// Highlight saves are fire-and-forget: log, close, move on.
			log.Printf("reader: highlight save failed: %v", err)
		}
		s.state.Close()
		return []outbound{
			{Type: MsgHighlight, Data: map[string]interface{}{"verse": verse, "highlight": hl}},
			s.stateMsg(),
		}

	case EventToggleFavorite:
		if s.state.Modal.Kind != ModalVerseMenu {
			return errOut("no verse selected")
		}
		verse := s.state.ActiveVerse()
		isFav, err := s.annotations.ToggleFavorite(ctx, s.userID, s.verseKey(verse))
		if err != nil {
			return errOut("failed to save favorite")
		}
		s.state.Close()
		return []outbound{
			{Type: MsgFavorite, Data: map[string]interface{}{"verse": verse, "is_favorite": isFav}},
			s.stateMsg(),
		}

	case EventOpenComments:
		if err := s.state.OpenCommentViewer(); err != nil {
			return errOut("no verse selected")
		}
		return s.commentList(ctx, s.state.ActiveVerse())

	case EventOpenCommentEdit:
		if err := s.state.OpenCommentEditor(); err != nil {
			return errOut("no verse selected")
		}
		return []outbound{s.stateMsg()}

	case EventAddComment:
		var p addCommentPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid add_comment payload")
		}
		if s.state.Modal.Kind != ModalCommentEditor {
			return errOut("comment editor is not open")
		}
		verse := s.state.ActiveVerse()
		comment, err := s.annotations.AddComment(ctx, s.userID, s.verseKey(verse), p.Content)
		if err != nil {
			// Editor stays open so the draft is not lost.
			return errOut("failed to save comment")
		}
		s.state.Close()
		return []outbound{
			{Type: MsgComment, Data: comment},
			s.stateMsg(),
		}

	case EventDeleteComment:
		var p deleteCommentPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid delete_comment payload")
		}
		if s.state.Modal.Kind != ModalCommentViewer {
			return errOut("comment viewer is not open")
		}
		verse := s.state.ActiveVerse()
		if err := s.annotations.DeleteComment(ctx, s.userID, s.verseKey(verse), p.ID); err != nil {
			return errOut("failed to delete comment")
		}
		return s.commentList(ctx, verse)

	case EventOpenSearch:
		if err := s.state.OpenSearch(); err != nil {
			return errOut("a dialog is already open")
		}
		return []outbound{s.stateMsg()}

	case EventSearch:
		var p searchPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid search payload")
		}
		if s.state.Modal.Kind != ModalSearch {
			return errOut("search is not open")
		}
		results := s.library.Search(s.state.Translation, p.Query)
		return []outbound{{Type: MsgSearchResults, Data: results}}

	case EventOpenTranslations:
		if err := s.state.OpenTranslationPicker(); err != nil {
			return errOut("a dialog is already open")
		}
		return []outbound{
			{Type: MsgTranslations, Data: bible.Translations},
			s.stateMsg(),
		}

	case EventSetTranslation:
		var p setTranslationPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return errOut("invalid set_translation payload")
		}
		if s.state.Modal.Kind != ModalTranslationPicker {
			return errOut("translation picker is not open")
		}
		tr := bible.Translation(p.Translation)
		if !tr.IsValid() {
			return errOut("unknown translation")
		}
		// Full remount: same book and chapter against the new dataset,
		// everything else reset. A miss resolves to an empty chapter.
		s.state = s.state.SwitchTranslation(tr)
		return s.chapterSnapshot(ctx)

	case EventOpenIntroduction:
		if err := s.state.OpenIntroduction(); err != nil {
			return errOut("a dialog is already open")
		}
		return []outbound{
			{Type: MsgIntroduction, Data: map[string]string{
				"book_name": s.library.BookName(s.state.Translation, s.state.BookAbbrev),
				"intro":     s.library.Intro(s.state.Translation, s.state.BookAbbrev),
			}},
			s.stateMsg(),
		}

	case EventCloseModal:
		s.state.Close()
		return []outbound{s.stateMsg()}

	case EventFontIncrease:
		if err := s.state.IncreaseFont(); err != nil {
			return errOut("close the dialog first")
		}
		return []outbound{s.stateMsg()}

	case EventFontDecrease:
		if err := s.state.DecreaseFont(); err != nil {
			return errOut("close the dialog first")
		}
		return []outbound{s.stateMsg()}

	case EventShare:
		if s.state.Modal.Kind != ModalVerseMenu {
			return errOut("no verse selected")
		}
		verse := s.state.ActiveVerse()
		text := s.library.VerseText(s.state.Translation, s.state.BookAbbrev, s.state.Chapter, verse)
		name := s.library.BookName(s.state.Translation, s.state.BookAbbrev)
		s.state.Close()
		return []outbound{
			{Type: MsgShare, Data: map[string]string{
				"text": fmt.Sprintf("\"%s\" — %s %d:%d (%s)", text, name, s.state.Chapter, verse, s.state.Translation),
			}},
			s.stateMsg(),
		}

	default:
		return errOut(fmt.Sprintf("unknown event: %s", env.Type))
	}
}

// chapterSnapshot is the full render payload: resolved chapter, the user's
// highlights for it, and the view state.
func (s *Session) chapterSnapshot(ctx context.Context) []outbound {
	ch := s.library.Chapter(s.state.Translation, s.state.BookAbbrev, s.state.Chapter)
	highlights := s.annotations.ChapterHighlights(ctx, s.userID, s.verseKey(1))
	return []outbound{
		{Type: MsgChapter, Data: map[string]interface{}{
			"chapter":    ch,
			"highlights": highlights,
		}},
		s.stateMsg(),
	}
}

func (s *Session) verseMenu(ctx context.Context, verse int) []outbound {
	highlights := s.annotations.ChapterHighlights(ctx, s.userID, s.verseKey(1))
	var current *annotation.Highlight
	if hl, ok := highlights[verse]; ok {
		current = &hl
	}
	isFav, err := s.annotations.IsFavorite(ctx, s.userID, s.verseKey(verse))
	if err != nil {
		log.Printf("reader: favorite lookup failed: %v", err)
	}
	return []outbound{
		{Type: MsgVerseMenu, Data: map[string]interface{}{
			"verse":       verse,
			"highlight":   current,
			"is_favorite": isFav,
		}},
		s.stateMsg(),
	}
}

func (s *Session) commentList(ctx context.Context, verse int) []outbound {
	comments, err := s.annotations.GetComments(ctx, s.userID, s.verseKey(verse))
	if err != nil {
		return errOut("failed to load comments")
	}
	if comments == nil {
		comments = []annotation.Comment{}
	}
	return []outbound{
		{Type: MsgComments, Data: map[string]interface{}{
			"verse":    verse,
			"comments": comments,
		}},
		s.stateMsg(),
	}
}

func (s *Session) stateMsg() outbound {
	return outbound{Type: MsgState, Data: s.State()}
}

func errOut(msg string) []outbound {
	return []outbound{{Type: MsgError, Data: errorPayload{Message: msg}}}
}
