package assistant

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/graceview/graceview-api/pkg/response"
)

type AssistantHandler struct {
	service AssistantService
}

func NewAssistantHandler(service AssistantService) AssistantHandler {
	return AssistantHandler{service: service}
}

func (h *AssistantHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyConversation) {
			response.Error(w, http.StatusBadRequest, "Missing required fields", "messages is required")
			return
		}
		// The detail goes to the log; the app just sees an upstream failure.
		log.Printf("assistant chat failed: %v", err)
		response.Error(w, http.StatusBadGateway, "Assistant is unavailable", "upstream request failed")
		return
	}

	response.Success(w, resp, "Ok")
}
