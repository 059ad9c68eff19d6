package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceview/graceview-api/internal/bible"
)

func newIdleState() *State {
	return NewState(bible.TranslationNVI, "gn", 1)
}

func TestTapVerseOpensMenu(t *testing.T) {
	s := newIdleState()

	require.NoError(t, s.TapVerse(3))
	assert.Equal(t, ModalVerseMenu, s.Modal.Kind)
	assert.Equal(t, 3, s.ActiveVerse())
}

func TestTapVerseBlockedWhileModalOpen(t *testing.T) {
	s := newIdleState()
	require.NoError(t, s.OpenSearch())

	assert.ErrorIs(t, s.TapVerse(3), ErrInvalidTransition)
	assert.Equal(t, ModalSearch, s.Modal.Kind, "open modal must survive the rejected tap")
}

func TestExactlyOneModalActive(t *testing.T) {
	s := newIdleState()

	require.NoError(t, s.TapVerse(3))
	assert.ErrorIs(t, s.OpenSearch(), ErrInvalidTransition)
	assert.ErrorIs(t, s.OpenTranslationPicker(), ErrInvalidTransition)
	assert.ErrorIs(t, s.OpenIntroduction(), ErrInvalidTransition)
}

func TestCloseIsUnconditional(t *testing.T) {
	s := newIdleState()

	require.NoError(t, s.TapVerse(3))
	require.NoError(t, s.OpenCommentEditor())
	s.Close()
	assert.Equal(t, ModalNone, s.Modal.Kind)
	assert.Equal(t, 0, s.ActiveVerse())

	// Closing while idle is fine too.
	s.Close()
	assert.Equal(t, ModalNone, s.Modal.Kind)
}

func TestCommentViewerToEditorKeepsVerse(t *testing.T) {
	s := newIdleState()

	require.NoError(t, s.TapVerse(5))
	require.NoError(t, s.OpenCommentViewer())
	require.NoError(t, s.OpenCommentEditor())
	assert.Equal(t, ModalCommentEditor, s.Modal.Kind)
	assert.Equal(t, 5, s.ActiveVerse())
}

func TestCommentEditorNeedsVerseContext(t *testing.T) {
	s := newIdleState()

	assert.ErrorIs(t, s.OpenCommentEditor(), ErrInvalidTransition)
	assert.ErrorIs(t, s.OpenCommentViewer(), ErrInvalidTransition)
}

func TestFontSizeClamps(t *testing.T) {
	s := newIdleState()

	for i := 0; i < 20; i++ {
		require.NoError(t, s.DecreaseFont())
	}
	assert.Equal(t, MinFontSize, s.FontSize, "decrease below the floor is a no-op")

	for i := 0; i < 20; i++ {
		require.NoError(t, s.IncreaseFont())
	}
	assert.Equal(t, MaxFontSize, s.FontSize, "increase above the ceiling is a no-op")
}

func TestFontSizeGatedByModal(t *testing.T) {
	s := newIdleState()
	require.NoError(t, s.OpenSearch())

	assert.ErrorIs(t, s.IncreaseFont(), ErrInvalidTransition)
	assert.ErrorIs(t, s.DecreaseFont(), ErrInvalidTransition)
	assert.Equal(t, DefaultFontSize, s.FontSize)
}

func TestSwitchTranslationResetsState(t *testing.T) {
	s := newIdleState()
	require.NoError(t, s.IncreaseFont())
	require.NoError(t, s.TapVerse(3))

	fresh := s.SwitchTranslation(bible.TranslationKJV)
	assert.Equal(t, bible.TranslationKJV, fresh.Translation)
	assert.Equal(t, "gn", fresh.BookAbbrev)
	assert.Equal(t, 1, fresh.Chapter)
	assert.Equal(t, ModalNone, fresh.Modal.Kind)
	assert.Equal(t, DefaultFontSize, fresh.FontSize, "remount starts from the default size")
}

func TestOpenChapterClosesModal(t *testing.T) {
	s := newIdleState()
	require.NoError(t, s.TapVerse(3))

	s.OpenChapter("ex", 2)
	assert.Equal(t, "ex", s.BookAbbrev)
	assert.Equal(t, 2, s.Chapter)
	assert.Equal(t, ModalNone, s.Modal.Kind)
}
