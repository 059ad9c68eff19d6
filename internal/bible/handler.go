package bible

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graceview/graceview-api/pkg/response"
)

type BibleHandler struct {
	library *Library
}

func NewHandler(library *Library) BibleHandler {
	return BibleHandler{library: library}
}

func (h *BibleHandler) GetTranslationsHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, Translations, "Ok")
}

func (h *BibleHandler) GetBooksHandler(w http.ResponseWriter, r *http.Request) {
	tr := Translation(chi.URLParam(r, "translation"))
	if !tr.IsValid() {
		response.Error(w, http.StatusBadRequest, "Unknown translation", string(tr))
		return
	}
	response.Success(w, h.library.Books(tr), "Ok")
}

func (h *BibleHandler) GetChapterHandler(w http.ResponseWriter, r *http.Request) {
	tr := Translation(chi.URLParam(r, "translation"))
	if !tr.IsValid() {
		response.Error(w, http.StatusBadRequest, "Unknown translation", string(tr))
		return
	}

	abbrev := chi.URLParam(r, "book")
	number, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chapter number", err.Error())
		return
	}

	// A miss resolves to an empty chapter on purpose, so this never 404s.
	response.Success(w, h.library.Chapter(tr, abbrev, number), "Ok")
}

func (h *BibleHandler) GetIntroHandler(w http.ResponseWriter, r *http.Request) {
	tr := Translation(chi.URLParam(r, "translation"))
	if !tr.IsValid() {
		response.Error(w, http.StatusBadRequest, "Unknown translation", string(tr))
		return
	}

	abbrev := chi.URLParam(r, "book")
	response.Success(w, map[string]string{
		"book_abbrev": abbrev,
		"book_name":   h.library.BookName(tr, abbrev),
		"intro":       h.library.Intro(tr, abbrev),
	}, "Ok")
}

func (h *BibleHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	tr := Translation(chi.URLParam(r, "translation"))
	if !tr.IsValid() {
		response.Error(w, http.StatusBadRequest, "Unknown translation", string(tr))
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"q": "query is required",
		})
		return
	}

	response.Success(w, h.library.Search(tr, query), "Ok")
}
