package bible

// Translation identifies one of the fixed Bible text datasets shipped with
// the app. Referred to as "version" in the mobile client.
type Translation string

const (
	TranslationNVI Translation = "nvi"
	TranslationACF Translation = "acf"
	TranslationAA  Translation = "aa"
	TranslationKJV Translation = "kjv"
)

// Translations lists every dataset the library will try to load, in the order
// the translation picker shows them.
var Translations = []Translation{TranslationNVI, TranslationACF, TranslationAA, TranslationKJV}

func (t Translation) IsValid() bool {
	for _, known := range Translations {
		if t == known {
			return true
		}
	}
	return false
}

// Book is one book of a translation dataset. The abbreviation is the stable
// join key across translations; display names are derived from it, never
// matched, since the four datasets were authored independently.
type Book struct {
	Abbrev   string     `json:"abbrev"`
	Name     string     `json:"name"`
	Intro    string     `json:"intro,omitempty"`
	Chapters [][]string `json:"chapters"`
}

// BookSummary is what the book picker needs: no verse text.
type BookSummary struct {
	Abbrev       string `json:"abbrev"`
	Name         string `json:"name"`
	ChapterCount int    `json:"chapter_count"`
}

// Chapter is a resolved chapter of one translation, plus the navigation
// availability for the adjacent chapters in the same book and translation.
type Chapter struct {
	Translation Translation `json:"translation"`
	BookAbbrev  string      `json:"book_abbrev"`
	BookName    string      `json:"book_name"`
	Number      int         `json:"number"`
	Verses      []string    `json:"verses"`
	HasPrev     bool        `json:"has_prev"`
	HasNext     bool        `json:"has_next"`
}

// SearchResult is a single verse match from a full-text scan.
type SearchResult struct {
	BookName    string      `json:"book_name"`
	BookAbbrev  string      `json:"book_abbrev"`
	Chapter     int         `json:"chapter"`
	Verse       int         `json:"verse"`
	Text        string      `json:"text"`
	Translation Translation `json:"translation"`
}
