package reader

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceview/graceview-api/internal/annotation"
	"github.com/graceview/graceview-api/internal/bible"
)

func testSession() (*Session, *annotation.MockAnnotationRepo) {
	lib := bible.NewLibrary(map[bible.Translation][]bible.Book{
		bible.TranslationNVI: {
			{
				Abbrev: "gn",
				Name:   "Gênesis",
				Intro:  "O livro dos começos.",
				Chapters: [][]string{
					{"No princípio Deus criou os céus e a terra.", "A terra era sem forma e vazia.", "E disse Deus: haja luz."},
					{"Assim foram concluídos os céus e a terra."},
				},
			},
		},
		bible.TranslationKJV: {
			{
				Abbrev: "gn",
				Name:   "Genesis",
				Chapters: [][]string{
					{"In the beginning God created the heaven and the earth."},
				},
			},
		},
	})
	repo := annotation.NewMockAnnotationRepo()
	svc := annotation.NewAnnotationService(repo, lib)
	return NewSession(42, bible.TranslationNVI, "gn", 1, lib, svc), repo
}

func event(t *testing.T, typ string, payload interface{}) Envelope {
	t.Helper()
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		raw = b
	}
	return Envelope{Type: typ, Data: raw}
}

func msgTypes(msgs []outbound) []string {
	types := make([]string, len(msgs))
	for i, m := range msgs {
		types[i] = m.Type
	}
	return types
}

func TestSessionHighlightFlow(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	msgs := s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	assert.Equal(t, []string{MsgVerseMenu, MsgState}, msgTypes(msgs))
	assert.Equal(t, ModalVerseMenu, s.State().Modal.Kind)

	msgs = s.Handle(ctx, event(t, EventSetHighlight, setHighlightPayload{BgColor: "#1890ff"}))
	assert.Equal(t, []string{MsgHighlight, MsgState}, msgTypes(msgs))
	assert.Equal(t, ModalNone, s.State().Modal.Kind, "selecting a color returns to idle")

	// The highlight shows up in the next chapter snapshot.
	msgs = s.Handle(ctx, event(t, EventOpenChapter, openChapterPayload{BookAbbrev: "gn", Chapter: 1}))
	require.Equal(t, []string{MsgChapter, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]interface{})
	highlights := data["highlights"].(map[int]annotation.Highlight)
	require.Contains(t, highlights, 3)
	assert.Equal(t, "#1890ff", highlights[3].BgColor)
}

func TestSessionHighlightToggleOff(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	s.Handle(ctx, event(t, EventSetHighlight, setHighlightPayload{BgColor: "#1890ff"}))
	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	msgs := s.Handle(ctx, event(t, EventSetHighlight, setHighlightPayload{BgColor: "#1890ff"}))

	require.Equal(t, []string{MsgHighlight, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]interface{})
	assert.Nil(t, data["highlight"], "re-selecting the active color erases")
}

func TestSessionFavoriteFlow(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 2}))
	msgs := s.Handle(ctx, event(t, EventToggleFavorite, nil))
	require.Equal(t, []string{MsgFavorite, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]interface{})
	assert.Equal(t, true, data["is_favorite"])

	// The verse menu now reports the favorite state.
	msgs = s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 2}))
	menu := msgs[0].Data.(map[string]interface{})
	assert.Equal(t, true, menu["is_favorite"])
}

func TestSessionCommentFlow(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	msgs := s.Handle(ctx, event(t, EventOpenComments, nil))
	require.Equal(t, []string{MsgComments, MsgState}, msgTypes(msgs))
	assert.Equal(t, ModalCommentViewer, s.State().Modal.Kind)

	// Viewer -> editor -> save -> idle.
	s.Handle(ctx, event(t, EventOpenCommentEdit, nil))
	assert.Equal(t, ModalCommentEditor, s.State().Modal.Kind)

	msgs = s.Handle(ctx, event(t, EventAddComment, addCommentPayload{Content: "Blessed"}))
	require.Equal(t, []string{MsgComment, MsgState}, msgTypes(msgs))
	assert.Equal(t, ModalNone, s.State().Modal.Kind)

	// Reopen the viewer: "Blessed" is the most recent entry.
	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	msgs = s.Handle(ctx, event(t, EventOpenComments, nil))
	data := msgs[0].Data.(map[string]interface{})
	comments := data["comments"].([]annotation.Comment)
	require.NotEmpty(t, comments)
	assert.Equal(t, "Blessed", comments[0].Content)
}

func TestSessionEmptyCommentKeepsEditorOpen(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	s.Handle(ctx, event(t, EventOpenCommentEdit, nil))
	msgs := s.Handle(ctx, event(t, EventAddComment, addCommentPayload{Content: "   "}))

	assert.Equal(t, []string{MsgError}, msgTypes(msgs))
	assert.Equal(t, ModalCommentEditor, s.State().Modal.Kind, "draft must not be lost")
}

func TestSessionSearchRequiresModal(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	msgs := s.Handle(ctx, event(t, EventSearch, searchPayload{Query: "Deus"}))
	assert.Equal(t, []string{MsgError}, msgTypes(msgs))

	s.Handle(ctx, event(t, EventOpenSearch, nil))
	msgs = s.Handle(ctx, event(t, EventSearch, searchPayload{Query: "Deus"}))
	require.Equal(t, []string{MsgSearchResults}, msgTypes(msgs))
	results := msgs[0].Data.([]bible.SearchResult)
	assert.Len(t, results, 2)
}

func TestSessionTranslationSwitchRebuilds(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventOpenTranslations, nil))
	msgs := s.Handle(ctx, event(t, EventSetTranslation, setTranslationPayload{Translation: "kjv"}))

	require.Equal(t, []string{MsgChapter, MsgState}, msgTypes(msgs))
	st := s.State()
	assert.Equal(t, bible.TranslationKJV, st.Translation)
	assert.Equal(t, "gn", st.BookAbbrev)
	assert.Equal(t, 1, st.Chapter)
	assert.Equal(t, ModalNone, st.Modal.Kind)
}

func TestSessionTranslationSwitchMissIsGraceful(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	// Chapter 2 exists in NVI but not in KJV's dataset.
	s.Handle(ctx, event(t, EventOpenChapter, openChapterPayload{BookAbbrev: "gn", Chapter: 2}))
	s.Handle(ctx, event(t, EventOpenTranslations, nil))
	msgs := s.Handle(ctx, event(t, EventSetTranslation, setTranslationPayload{Translation: "kjv"}))

	require.Equal(t, []string{MsgChapter, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]interface{})
	ch := data["chapter"].(bible.Chapter)
	assert.Empty(t, ch.Verses, "missing chapter renders empty, never errors")
}

func TestSessionUnknownTranslationRejected(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventOpenTranslations, nil))
	msgs := s.Handle(ctx, event(t, EventSetTranslation, setTranslationPayload{Translation: "esv"}))
	assert.Equal(t, []string{MsgError}, msgTypes(msgs))
}

func TestSessionShare(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 1}))
	msgs := s.Handle(ctx, event(t, EventShare, nil))
	require.Equal(t, []string{MsgShare, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]string)
	assert.Contains(t, data["text"], "Gênesis 1:1")
	assert.Contains(t, data["text"], "No princípio")
	assert.Equal(t, ModalNone, s.State().Modal.Kind, "share exits the menu")
}

func TestSessionIntroduction(t *testing.T) {
	s, _ := testSession()
	ctx := context.Background()

	msgs := s.Handle(ctx, event(t, EventOpenIntroduction, nil))
	require.Equal(t, []string{MsgIntroduction, MsgState}, msgTypes(msgs))
	data := msgs[0].Data.(map[string]string)
	assert.Equal(t, "O livro dos começos.", data["intro"])
}

func TestSessionUnknownEvent(t *testing.T) {
	s, _ := testSession()

	msgs := s.Handle(context.Background(), Envelope{Type: "jump"})
	assert.Equal(t, []string{MsgError}, msgTypes(msgs))
}

func TestSessionHighlightSaveFailureStillCloses(t *testing.T) {
	s, repo := testSession()
	ctx := context.Background()

	s.Handle(ctx, event(t, EventTapVerse, tapVersePayload{Verse: 3}))
	repo.ErrorOnNextCall = annotation.ErrInternalServer
	msgs := s.Handle(ctx, event(t, EventSetHighlight, setHighlightPayload{BgColor: "#1890ff"}))

	// Fire-and-forget: the menu closes and the screen moves on.
	assert.Equal(t, []string{MsgHighlight, MsgState}, msgTypes(msgs))
	assert.Equal(t, ModalNone, s.State().Modal.Kind)
}
