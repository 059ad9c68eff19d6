package bible

import "strings"

// MaxSearchResults caps a full-text scan. The scan stops outright at the cap
// rather than collecting everything and truncating.
const MaxSearchResults = 100

// Search runs a case-insensitive substring scan over every verse of one
// translation, in canonical dataset order (books, then chapters, then
// verses). Results are not ranked. A blank query yields no results.
func (l *Library) Search(tr Translation, query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}
	}
	needle := strings.ToLower(query)

	results := make([]SearchResult, 0)
	for _, b := range l.books[tr] {
		for ci, verses := range b.Chapters {
			for vi, text := range verses {
				if !strings.Contains(strings.ToLower(text), needle) {
					continue
				}
				results = append(results, SearchResult{
					BookName:    b.Name,
					BookAbbrev:  b.Abbrev,
					Chapter:     ci + 1,
					Verse:       vi + 1,
					Text:        text,
					Translation: tr,
				})
				if len(results) >= MaxSearchResults {
					return results
				}
			}
		}
	}
	return results
}
