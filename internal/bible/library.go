package bible

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Library holds every loaded translation dataset in memory. Datasets are
// immutable after load, so the library is safe for concurrent readers.
type Library struct {
	books map[Translation][]Book
	index map[Translation]map[string]int // abbrev -> position in books
}

// NewLibrary builds a library from already-parsed datasets. Used directly by
// tests; production code goes through LoadDir.
func NewLibrary(datasets map[Translation][]Book) *Library {
	lib := &Library{
		books: make(map[Translation][]Book, len(datasets)),
		index: make(map[Translation]map[string]int, len(datasets)),
	}
	for tr, books := range datasets {
		lib.books[tr] = books
		idx := make(map[string]int, len(books))
		for i, b := range books {
			idx[b.Abbrev] = i
		}
		lib.index[tr] = idx
	}
	return lib
}

// LoadDir reads <translation>.json for every known translation from dir.
// A missing or unreadable dataset is logged and skipped; the app still works
// with whatever loaded, and the resolver treats the absent translation as an
// empty dataset.
func LoadDir(dir string) (*Library, error) {
	datasets := make(map[Translation][]Book, len(Translations))

	for _, tr := range Translations {
		path := filepath.Join(dir, fmt.Sprintf("%s.json", tr))
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("bible: skipping translation %s: %v", tr, err)
			continue
		}

		var books []Book
		if err := json.Unmarshal(raw, &books); err != nil {
			log.Printf("bible: skipping translation %s: bad dataset: %v", tr, err)
			continue
		}
		datasets[tr] = books
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("no translation datasets found in %s", dir)
	}

	lib := NewLibrary(datasets)
	log.Printf("Loaded %d translation datasets from %s", len(datasets), dir)
	return lib, nil
}

// Books returns the book picker listing for a translation, in dataset order.
func (l *Library) Books(tr Translation) []BookSummary {
	books := l.books[tr]
	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, BookSummary{
			Abbrev:       b.Abbrev,
			Name:         b.Name,
			ChapterCount: len(b.Chapters),
		})
	}
	return out
}

// book looks a book up by abbreviation. ok is false when the translation has
// no book under that abbreviation.
func (l *Library) book(tr Translation, abbrev string) (Book, bool) {
	idx, ok := l.index[tr]
	if !ok {
		return Book{}, false
	}
	i, ok := idx[abbrev]
	if !ok {
		return Book{}, false
	}
	return l.books[tr][i], true
}
