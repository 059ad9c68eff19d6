package annotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceview/graceview-api/internal/bible"
)

const testUserID = 7

func testService() (AnnotationService, *MockAnnotationRepo) {
	lib := bible.NewLibrary(map[bible.Translation][]bible.Book{
		bible.TranslationNVI: {
			{
				Abbrev: "jo",
				Name:   "João",
				Chapters: [][]string{
					{"No princípio era o Verbo.", "Ele estava com Deus no princípio.", "Todas as coisas foram feitas por ele.", "Nele estava a vida.", "A luz brilha nas trevas."},
				},
			},
		},
	})
	repo := NewMockAnnotationRepo()
	return NewAnnotationService(repo, lib), repo
}

func verse(n int) VerseKey {
	return VerseKey{BookAbbrev: "jo", Chapter: 1, Verse: n, Translation: bible.TranslationNVI}
}

func TestToggleHighlightPairRemoves(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	hl, err := svc.ToggleHighlight(ctx, testUserID, verse(3), "#1890ff")
	require.NoError(t, err)
	require.NotNil(t, hl)
	assert.Equal(t, "#1890ff", hl.BgColor)

	hl, err = svc.ToggleHighlight(ctx, testUserID, verse(3), "#1890ff")
	require.NoError(t, err)
	assert.Nil(t, hl, "same color twice must erase the highlight")

	assert.Empty(t, svc.ChapterHighlights(ctx, testUserID, verse(1)))
}

func TestToggleHighlightLastColorWins(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	_, err := svc.ToggleHighlight(ctx, testUserID, verse(3), "#1890ff")
	require.NoError(t, err)
	_, err = svc.ToggleHighlight(ctx, testUserID, verse(3), "#f5222d")
	require.NoError(t, err)

	highlights := svc.ChapterHighlights(ctx, testUserID, verse(1))
	require.Len(t, highlights, 1, "colors must replace, not accumulate")
	assert.Equal(t, "#f5222d", highlights[3].BgColor)
}

func TestHighlightPersistsAcrossReload(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	_, err := svc.ToggleHighlight(ctx, testUserID, verse(3), "#1890ff")
	require.NoError(t, err)

	// A fresh service over the same store simulates reopening the chapter.
	lib := bible.NewLibrary(nil)
	reloaded := NewAnnotationService(repo, lib)
	highlights := reloaded.ChapterHighlights(ctx, testUserID, verse(1))
	require.Contains(t, highlights, 3)
	assert.Equal(t, "#1890ff", highlights[3].BgColor)
	assert.Equal(t, "#ffffff", highlights[3].TextColor)
}

func TestChapterHighlightsSwallowsReadErrors(t *testing.T) {
	svc, repo := testService()

	repo.ErrorOnNextCall = ErrInternalServer
	highlights := svc.ChapterHighlights(context.Background(), testUserID, verse(1))
	assert.NotNil(t, highlights)
	assert.Empty(t, highlights, "a read failure renders as no highlights")
}

func TestToggleFavoriteIdempotentInsert(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, testUserID, verse(2))
	require.NoError(t, err)
	assert.True(t, on)

	// Toggling again removes; toggling twice more still yields one record.
	_, err = svc.ToggleFavorite(ctx, testUserID, verse(2))
	require.NoError(t, err)
	on, err = svc.ToggleFavorite(ctx, testUserID, verse(2))
	require.NoError(t, err)
	assert.True(t, on)

	favorites, err := svc.GetUserFavorites(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Ele estava com Deus no princípio.", favorites[0].VerseText)
	assert.Equal(t, "João", favorites[0].BookName)
	assert.Equal(t, "jo-1-2-nvi", favorites[0].VerseKey)
}

func TestToggleFavoriteOffIsNewStateFalse(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, testUserID, verse(2))
	require.NoError(t, err)

	on, err := svc.ToggleFavorite(ctx, testUserID, verse(2))
	require.NoError(t, err)
	assert.False(t, on)

	favorites, err := svc.GetUserFavorites(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoriteSurfacesWriteFailure(t *testing.T) {
	svc, repo := testService()

	repo.ErrorOnNextCall = ErrInternalServer
	_, err := svc.ToggleFavorite(context.Background(), testUserID, verse(2))
	assert.Error(t, err)
}

func TestAddCommentNewestFirst(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	first, err := svc.AddComment(ctx, testUserID, verse(5), "Blessed")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.AddComment(ctx, testUserID, verse(5), "Amen")
	require.NoError(t, err)

	comments, err := svc.GetComments(ctx, testUserID, verse(5))
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
	assert.Equal(t, "Amen", comments[0].Content)
}

func TestAddCommentRejectsBlank(t *testing.T) {
	svc, _ := testService()

	_, err := svc.AddComment(context.Background(), testUserID, verse(5), "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestCommentIDDerivedFromKey(t *testing.T) {
	svc, _ := testService()

	c, err := svc.AddComment(context.Background(), testUserID, verse(5), "Blessed")
	require.NoError(t, err)
	assert.Regexp(t, `^jo-1-5-nvi-\d+$`, c.ID)
}

func TestDeleteCommentAbsentIsNoOp(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	_, err := svc.AddComment(ctx, testUserID, verse(5), "Blessed")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, testUserID, verse(5), "jo-1-5-nvi-0"))

	comments, err := svc.GetComments(ctx, testUserID, verse(5))
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestDeleteCommentRemovesByID(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	c, err := svc.AddComment(ctx, testUserID, verse(5), "Blessed")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, testUserID, verse(5), c.ID))

	comments, err := svc.GetComments(ctx, testUserID, verse(5))
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestTextColorDerivation(t *testing.T) {
	cases := []struct {
		bg   string
		want string
	}{
		{"#1890ff", "#ffffff"},
		{"#f5222d", "#ffffff"},
		{"#fadb14", "#000000"},
		{"#ffffff", "#000000"},
		{"not-a-color", "#ffffff"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, textColorFor(tc.bg), "bg %s", tc.bg)
	}
}

func TestVerseKeyValidation(t *testing.T) {
	assert.NoError(t, verse(1).Validate())
	assert.Error(t, VerseKey{BookAbbrev: "", Chapter: 1, Verse: 1, Translation: bible.TranslationNVI}.Validate())
	assert.Error(t, VerseKey{BookAbbrev: "jo", Chapter: 0, Verse: 1, Translation: bible.TranslationNVI}.Validate())
	assert.Error(t, VerseKey{BookAbbrev: "jo", Chapter: 1, Verse: 1, Translation: "esv"}.Validate())
}
