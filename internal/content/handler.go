package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graceview/graceview-api/pkg/response"
)

type ContentHandler struct {
	service ContentService
}

func NewContentHandler(service ContentService) ContentHandler {
	return ContentHandler{service: service}
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func writeRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(w, http.StatusNotFound, "Not found", err.Error())
		return
	}
	response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
}

// --- Devotionals ---

func (h *ContentHandler) GetTodaysDevotionalHandler(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.TodaysDevotional(r.Context())
	if errors.Is(err, ErrNotFound) {
		// No entry for today is not an error condition for the app.
		response.Success(w, nil, "No devotional for today")
		return
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, d, "Ok")
}

func (h *ContentHandler) ListDevotionalsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.service.ListDevotionals(r.Context(), limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, list, "Ok")
}

func (h *ContentHandler) CreateDevotionalHandler(w http.ResponseWriter, r *http.Request) {
	var req DevotionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Title == "" || req.Body == "" || req.Date == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "title, body and date are required")
		return
	}
	d, err := h.service.CreateDevotional(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInternalServer) {
			writeRepoError(w, err)
			return
		}
		response.Error(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	response.Created(w, d, "Devotional created")
}

func (h *ContentHandler) UpdateDevotionalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req DevotionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateDevotional(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Devotional updated")
}

func (h *ContentHandler) DeleteDevotionalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteDevotional(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Devotional deleted")
}

// --- Announcements ---

func (h *ContentHandler) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAnnouncements(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, list, "Ok")
}

func (h *ContentHandler) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Title == "" || req.Body == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "title and body are required")
		return
	}
	a, err := h.service.CreateAnnouncement(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Created(w, a, "Announcement created")
}

func (h *ContentHandler) UpdateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateAnnouncement(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Announcement updated")
}

func (h *ContentHandler) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteAnnouncement(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Announcement deleted")
}

// --- Carousel ---

func (h *ContentHandler) ListCarouselImagesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCarouselImages(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, list, "Ok")
}

func (h *ContentHandler) CreateCarouselImageHandler(w http.ResponseWriter, r *http.Request) {
	var req CarouselImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.URL == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "url is required")
		return
	}
	img, err := h.service.CreateCarouselImage(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Created(w, img, "Image created")
}

func (h *ContentHandler) UpdateCarouselImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req CarouselImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateCarouselImage(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Image updated")
}

func (h *ContentHandler) DeleteCarouselImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteCarouselImage(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Image deleted")
}

// --- Service schedule ---

func (h *ContentHandler) ListServiceTimesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListServiceTimes(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, list, "Ok")
}

func (h *ContentHandler) CreateServiceTimeHandler(w http.ResponseWriter, r *http.Request) {
	var req ServiceTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Name == "" || req.StartTime == "" || req.Weekday < 0 || req.Weekday > 6 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "name, start_time and weekday (0-6) are required")
		return
	}
	st, err := h.service.CreateServiceTime(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Created(w, st, "Service time created")
}

func (h *ContentHandler) UpdateServiceTimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req ServiceTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateServiceTime(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Service time updated")
}

func (h *ContentHandler) DeleteServiceTimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteServiceTime(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Service time deleted")
}

// --- Hymnal ---

func (h *ContentHandler) ListHymnsHandler(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		list, err := h.service.SearchHymns(r.Context(), q)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		response.Success(w, list, "Ok")
		return
	}
	list, err := h.service.ListHymns(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, list, "Ok")
}

func (h *ContentHandler) GetHymnHandler(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hymn number", err.Error())
		return
	}
	hymn, err := h.service.GetHymnByNumber(r.Context(), number)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, hymn, "Ok")
}

func (h *ContentHandler) CreateHymnHandler(w http.ResponseWriter, r *http.Request) {
	var req HymnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.Number <= 0 || req.Title == "" || req.Lyrics == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "number, title and lyrics are required")
		return
	}
	hymn, err := h.service.CreateHymn(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	response.Created(w, hymn, "Hymn created")
}

func (h *ContentHandler) UpdateHymnHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req HymnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateHymn(r.Context(), id, req); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Hymn updated")
}

func (h *ContentHandler) DeleteHymnHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteHymn(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	response.Success(w, nil, "Hymn deleted")
}
