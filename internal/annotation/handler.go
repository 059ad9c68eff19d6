package annotation

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graceview/graceview-api/internal/auth"
	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/pkg/response"
)

type AnnotationHandler struct {
	service AnnotationService
}

func NewAnnotationHandler(service AnnotationService) AnnotationHandler {
	return AnnotationHandler{service: service}
}

// GetChapterHighlightsHandler returns the highlight map for one chapter,
// keyed by verse number. Read failures render as an empty map.
func (h *AnnotationHandler) GetChapterHighlightsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chapter number", err.Error())
		return
	}

	key := VerseKey{
		BookAbbrev:  chi.URLParam(r, "book"),
		Chapter:     chapter,
		Verse:       1,
		Translation: bible.Translation(chi.URLParam(r, "translation")),
	}

	response.Success(w, h.service.ChapterHighlights(r.Context(), userID, key), "Ok")
}

// ToggleHighlightHandler is the fire-and-forget save path: a storage failure
// is logged but the app still gets an acknowledgement.
func (h *AnnotationHandler) ToggleHighlightHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req ToggleHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.BgColor == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"bg_color": "bg_color is required",
		})
		return
	}

	hl, err := h.service.ToggleHighlight(r.Context(), userID, req.Key, req.BgColor)
	if err != nil {
		log.Printf("highlight save failed for %s: %v", req.Key.String(), err)
		response.Accepted(w, "Ok")
		return
	}

	response.Success(w, map[string]interface{}{
		"highlight": hl, // nil when the toggle removed it
	}, "Ok")
}

func (h *AnnotationHandler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	isFav, err := h.service.ToggleFavorite(r.Context(), userID, req.Key)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to save favorite", err.Error())
		return
	}

	response.Success(w, map[string]bool{
		"is_favorite": isFav,
	}, "Ok")
}

func (h *AnnotationHandler) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	favorites, err := h.service.GetUserFavorites(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get favorites", err.Error())
		return
	}
	if favorites == nil {
		favorites = []Favorite{}
	}

	response.Success(w, favorites, "Ok")
}

func (h *AnnotationHandler) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, req.Key, req.Content)
	if err != nil {
		if err == ErrEmptyComment {
			response.Error(w, http.StatusBadRequest, "Comment text is empty", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to save comment", err.Error())
		return
	}

	response.Created(w, comment, "Comment saved")
}

func (h *AnnotationHandler) GetCommentsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	key, err := parseVerseKeyParams(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse key", err.Error())
		return
	}

	comments, err := h.service.GetComments(r.Context(), userID, key)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get comments", err.Error())
		return
	}
	if comments == nil {
		comments = []Comment{}
	}

	response.Success(w, comments, "Ok")
}

func (h *AnnotationHandler) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	key, err := parseVerseKeyParams(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse key", err.Error())
		return
	}

	if err := h.service.DeleteComment(r.Context(), userID, key, chi.URLParam(r, "commentID")); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to delete comment", err.Error())
		return
	}

	response.Success(w, "Ok", "Comment deleted")
}

func parseVerseKeyParams(r *http.Request) (VerseKey, error) {
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		return VerseKey{}, err
	}
	verse, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil {
		return VerseKey{}, err
	}
	key := VerseKey{
		BookAbbrev:  chi.URLParam(r, "book"),
		Chapter:     chapter,
		Verse:       verse,
		Translation: bible.Translation(chi.URLParam(r, "translation")),
	}
	return key, key.Validate()
}
