package annotation

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

// MockAnnotationRepo is an in-memory AnnotationRepo for tests.
type MockAnnotationRepo struct {
	mu sync.RWMutex

	highlights map[string]map[int]Highlight // userID + chapter key -> verse -> highlight
	favorites  map[string][]Favorite // userID -> favorites, insertion order
	comments   map[string][]Comment  // userID + verse key -> comments, newest first
	nextFavID  int

	// ErrorOnNextCall is returned (and cleared) by the next repository call,
	// for exercising error paths.
	ErrorOnNextCall error
}

func NewMockAnnotationRepo() *MockAnnotationRepo {
	return &MockAnnotationRepo{
		highlights: make(map[string]map[int]Highlight),
		favorites:  make(map[string][]Favorite),
		comments:   make(map[string][]Comment),
		nextFavID:  1,
	}
}

func (m *MockAnnotationRepo) checkError() error {
	if m.ErrorOnNextCall != nil {
		err := m.ErrorOnNextCall
		m.ErrorOnNextCall = nil
		return err
	}
	return nil
}

func userKey(userID int, key string) string {
	return strconv.Itoa(userID) + "|" + key
}

func chapterKey(userID int, key VerseKey) string {
	return strconv.Itoa(userID) + "|" + string(key.Translation) + "|" + key.BookAbbrev + "|" + strconv.Itoa(key.Chapter)
}

func (m *MockAnnotationRepo) LoadHighlights(_ context.Context, userID int, key VerseKey) (map[int]Highlight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}

	out := make(map[int]Highlight)
	for verse, hl := range m.highlights[chapterKey(userID, key)] {
		out[verse] = hl
	}
	return out, nil
}

func (m *MockAnnotationRepo) GetHighlight(_ context.Context, userID int, key VerseKey) (*Highlight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}

	hl, ok := m.highlights[chapterKey(userID, key)][key.Verse]
	if !ok {
		return nil, ErrNotFound
	}
	return &hl, nil
}

func (m *MockAnnotationRepo) UpsertHighlight(_ context.Context, userID int, key VerseKey, hl Highlight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}

	ck := chapterKey(userID, key)
	if m.highlights[ck] == nil {
		m.highlights[ck] = make(map[int]Highlight)
	}
	m.highlights[ck][key.Verse] = hl
	return nil
}

func (m *MockAnnotationRepo) DeleteHighlight(_ context.Context, userID int, key VerseKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}
	delete(m.highlights[chapterKey(userID, key)], key.Verse)
	return nil
}

func (m *MockAnnotationRepo) ToggleFavorite(_ context.Context, userID int, fav Favorite) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return false, err
	}

	uk := userKey(userID, "")
	list := m.favorites[uk]
	for i, existing := range list {
		if existing.VerseKey == fav.VerseKey {
			m.favorites[uk] = append(list[:i], list[i+1:]...)
			return false, nil
		}
	}
	fav.ID = m.nextFavID
	m.nextFavID++
	m.favorites[uk] = append(list, fav)
	return true, nil
}

func (m *MockAnnotationRepo) GetUserFavorites(_ context.Context, userID int) ([]Favorite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}

	list := m.favorites[userKey(userID, "")]
	out := make([]Favorite, len(list))
	copy(out, list)
	return out, nil
}

func (m *MockAnnotationRepo) IsFavorite(_ context.Context, userID int, verseKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return false, err
	}

	for _, fav := range m.favorites[userKey(userID, "")] {
		if fav.VerseKey == verseKey {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAnnotationRepo) InsertComment(_ context.Context, userID int, c Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}

	uk := userKey(userID, c.VerseKey)
	// Prepend, then stable-sort newest first: matches the created_at DESC
	// ordering even when two comments land in the same millisecond.
	m.comments[uk] = append([]Comment{c}, m.comments[uk]...)
	sort.SliceStable(m.comments[uk], func(i, j int) bool {
		return m.comments[uk][i].CreatedAt.After(m.comments[uk][j].CreatedAt)
	})
	return nil
}

func (m *MockAnnotationRepo) GetComments(_ context.Context, userID int, verseKey string) ([]Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}

	list := m.comments[userKey(userID, verseKey)]
	out := make([]Comment, len(list))
	copy(out, list)
	return out, nil
}

func (m *MockAnnotationRepo) DeleteComment(_ context.Context, userID int, verseKey, commentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}

	uk := userKey(userID, verseKey)
	for i, c := range m.comments[uk] {
		if c.ID == commentID {
			m.comments[uk] = append(m.comments[uk][:i], m.comments[uk][i+1:]...)
			return nil
		}
	}
	return nil
}
