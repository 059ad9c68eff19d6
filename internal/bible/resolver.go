package bible

// Chapter resolves (translation, book, chapter) to its verse text and the
// prev/next availability within the same book and translation. Chapter counts
// differ between translations, so the bounds come from the dataset being
// resolved, never from another translation's layout.
//
// A miss (unknown translation, unknown book, chapter out of range) resolves
// to an empty chapter with both navigation flags false. Switching translation
// re-resolves the same (book, chapter) against the new dataset, and this
// graceful fallback is what keeps that switch from ever failing hard.
func (l *Library) Chapter(tr Translation, bookAbbrev string, number int) Chapter {
	ch := Chapter{
		Translation: tr,
		BookAbbrev:  bookAbbrev,
		Number:      number,
		Verses:      []string{},
	}

	b, ok := l.book(tr, bookAbbrev)
	if !ok {
		return ch
	}
	ch.BookName = b.Name

	if number < 1 || number > len(b.Chapters) {
		return ch
	}

	ch.Verses = b.Chapters[number-1]
	ch.HasPrev = number > 1
	ch.HasNext = number < len(b.Chapters)
	return ch
}

// ChapterCount returns how many chapters the book has in this translation,
// or 0 when the book is absent from the dataset.
func (l *Library) ChapterCount(tr Translation, bookAbbrev string) int {
	b, ok := l.book(tr, bookAbbrev)
	if !ok {
		return 0
	}
	return len(b.Chapters)
}

// Intro returns the book introduction text, empty when the dataset carries
// none for the book.
func (l *Library) Intro(tr Translation, bookAbbrev string) string {
	b, ok := l.book(tr, bookAbbrev)
	if !ok {
		return ""
	}
	return b.Intro
}

// VerseText returns one verse, empty string on any miss. The favorite and
// share flows use it to snapshot the text they store.
func (l *Library) VerseText(tr Translation, bookAbbrev string, chapter, verse int) string {
	ch := l.Chapter(tr, bookAbbrev, chapter)
	if verse < 1 || verse > len(ch.Verses) {
		return ""
	}
	return ch.Verses[verse-1]
}

// BookName returns the display name the dataset uses for the book.
func (l *Library) BookName(tr Translation, bookAbbrev string) string {
	b, ok := l.book(tr, bookAbbrev)
	if !ok {
		return ""
	}
	return b.Name
}
