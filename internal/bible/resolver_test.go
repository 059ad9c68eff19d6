package bible

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLibrary builds a two-translation fixture with deliberately different
// shapes: the NVI dataset has a book the KJV one lacks, and chapter counts
// differ for the shared book.
func testLibrary() *Library {
	nvi := []Book{
		{
			Abbrev: "gn",
			Name:   "Gênesis",
			Intro:  "O livro dos começos.",
			Chapters: [][]string{
				{"No princípio Deus criou os céus e a terra.", "A terra era sem forma e vazia."},
				{"Assim foram concluídos os céus e a terra.", "No sétimo dia Deus descansou."},
				{"A serpente era o mais astuto dos animais."},
			},
		},
		{
			Abbrev: "sl",
			Name:   "Salmos",
			Chapters: [][]string{
				{"Bem-aventurado o homem que não anda no conselho dos ímpios."},
			},
		},
	}
	kjv := []Book{
		{
			Abbrev: "gn",
			Name:   "Genesis",
			Chapters: [][]string{
				{"In the beginning God created the heaven and the earth.", "And the earth was without form, and void."},
				{"Thus the heavens and the earth were finished."},
			},
		},
	}
	return NewLibrary(map[Translation][]Book{
		TranslationNVI: nvi,
		TranslationKJV: kjv,
	})
}

func TestChapterResolvesVerses(t *testing.T) {
	lib := testLibrary()

	ch := lib.Chapter(TranslationNVI, "gn", 1)
	require.Len(t, ch.Verses, 2)
	assert.Equal(t, "Gênesis", ch.BookName)
	assert.Equal(t, "No princípio Deus criou os céus e a terra.", ch.Verses[0])
}

func TestChapterNavigationAtBookEdges(t *testing.T) {
	lib := testLibrary()

	first := lib.Chapter(TranslationNVI, "gn", 1)
	assert.False(t, first.HasPrev, "chapter 1 must not offer previous")
	assert.True(t, first.HasNext)

	last := lib.Chapter(TranslationNVI, "gn", 3)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext, "last chapter must not offer next")
}

func TestChapterBoundsArePerTranslation(t *testing.T) {
	lib := testLibrary()

	// Genesis has 3 chapters in NVI but only 2 in KJV: the same chapter
	// number resolves with different nav availability per dataset.
	assert.True(t, lib.Chapter(TranslationNVI, "gn", 2).HasNext)
	assert.False(t, lib.Chapter(TranslationKJV, "gn", 2).HasNext)

	// Chapter 3 exists in NVI only.
	assert.NotEmpty(t, lib.Chapter(TranslationNVI, "gn", 3).Verses)
	assert.Empty(t, lib.Chapter(TranslationKJV, "gn", 3).Verses)
}

func TestChapterMissResolvesEmpty(t *testing.T) {
	lib := testLibrary()

	cases := []struct {
		name    string
		tr      Translation
		book    string
		chapter int
	}{
		{"unknown book", TranslationKJV, "sl", 1},
		{"chapter out of range", TranslationNVI, "gn", 99},
		{"chapter zero", TranslationNVI, "gn", 0},
		{"unloaded translation", TranslationACF, "gn", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := lib.Chapter(tc.tr, tc.book, tc.chapter)
			assert.NotNil(t, ch.Verses)
			assert.Empty(t, ch.Verses)
			assert.False(t, ch.HasPrev)
			assert.False(t, ch.HasNext)
		})
	}
}

func TestVerseText(t *testing.T) {
	lib := testLibrary()

	assert.Equal(t, "No sétimo dia Deus descansou.", lib.VerseText(TranslationNVI, "gn", 2, 2))
	assert.Equal(t, "", lib.VerseText(TranslationNVI, "gn", 2, 9))
	assert.Equal(t, "", lib.VerseText(TranslationNVI, "xx", 1, 1))
}

func TestBooksListing(t *testing.T) {
	lib := testLibrary()

	books := lib.Books(TranslationNVI)
	require.Len(t, books, 2)
	assert.Equal(t, "gn", books[0].Abbrev)
	assert.Equal(t, 3, books[0].ChapterCount)
	assert.Equal(t, "sl", books[1].Abbrev)
}

func TestIntro(t *testing.T) {
	lib := testLibrary()

	assert.Equal(t, "O livro dos começos.", lib.Intro(TranslationNVI, "gn"))
	assert.Equal(t, "", lib.Intro(TranslationKJV, "gn"))
}

func TestChapterCount(t *testing.T) {
	lib := testLibrary()

	assert.Equal(t, 3, lib.ChapterCount(TranslationNVI, "gn"))
	assert.Equal(t, 2, lib.ChapterCount(TranslationKJV, "gn"))
	assert.Equal(t, 0, lib.ChapterCount(TranslationKJV, "sl"))
}

func ExampleLibrary_Chapter() {
	lib := testLibrary()
	ch := lib.Chapter(TranslationKJV, "gn", 1)
	fmt.Println(ch.BookName, ch.Number, len(ch.Verses))
	// Output: Genesis 1 2
}
