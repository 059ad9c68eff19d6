package push

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/graceview/graceview-api/internal/auth"
	"github.com/graceview/graceview-api/pkg/response"
)

type PushHandler struct {
	repo PushRepo
}

func NewPushHandler(repo PushRepo) PushHandler {
	return PushHandler{repo: repo}
}

func (h *PushHandler) RegisterTokenHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "token is required")
		return
	}

	if err := h.repo.UpsertToken(r.Context(), req.Token, userID, req.Platform); err != nil {
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, nil, "Token registered")
}

func (h *PushHandler) UnregisterTokenHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.GetUserIDFromContext(r); !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "token is required")
		return
	}

	// Deleting a token that was never registered is a no-op.
	if err := h.repo.DeleteToken(r.Context(), req.Token); err != nil {
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, nil, "Token removed")
}
