package reader

import "encoding/json"

// Client event types. One websocket connection carries one reader screen.
const (
	EventOpenChapter      = "open_chapter"
	EventTapVerse         = "tap_verse"
	EventSetHighlight     = "set_highlight"
	EventToggleFavorite   = "toggle_favorite"
	EventOpenComments     = "open_comments"
	EventOpenCommentEdit  = "open_comment_editor"
	EventAddComment       = "add_comment"
	EventDeleteComment    = "delete_comment"
	EventOpenSearch       = "open_search"
	EventSearch           = "search"
	EventOpenTranslations = "open_translations"
	EventSetTranslation   = "set_translation"
	EventOpenIntroduction = "open_introduction"
	EventCloseModal       = "close_modal"
	EventFontIncrease     = "font_increase"
	EventFontDecrease     = "font_decrease"
	EventShare            = "share"
)

// Server message types.
const (
	MsgState         = "state"
	MsgChapter       = "chapter"
	MsgVerseMenu     = "verse_menu"
	MsgHighlight     = "highlight"
	MsgFavorite      = "favorite"
	MsgComments      = "comments"
	MsgComment       = "comment"
	MsgSearchResults = "search_results"
	MsgIntroduction  = "introduction"
	MsgTranslations  = "translations"
	MsgShare         = "share"
	MsgError         = "error"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type openChapterPayload struct {
	BookAbbrev string `json:"book_abbrev"`
	Chapter    int    `json:"chapter"`
}

type tapVersePayload struct {
	Verse int `json:"verse"`
}

type setHighlightPayload struct {
	BgColor string `json:"bg_color"`
}

type addCommentPayload struct {
	Content string `json:"content"`
}

type deleteCommentPayload struct {
	ID string `json:"id"`
}

type searchPayload struct {
	Query string `json:"query"`
}

type setTranslationPayload struct {
	Translation string `json:"translation"`
}

type errorPayload struct {
	Message string `json:"message"`
}
