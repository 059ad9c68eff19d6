package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graceview/graceview-api/pkg/response"
)

type QuizHandler struct {
	service QuizService
}

func NewQuizHandler(service QuizService) QuizHandler {
	return QuizHandler{service: service}
}

func (h *QuizHandler) GetQuizHandler(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	questions, err := h.service.GetQuiz(r.Context(), n)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, questions, "Ok")
}

func (h *QuizHandler) SubmitQuizHandler(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if len(req.Answers) == 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", "answers is required")
		return
	}
	result, err := h.service.Submit(r.Context(), req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, result, "Ok")
}

func (h *QuizHandler) ListQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, questions, "Ok")
}

func (h *QuizHandler) CreateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	q, err := h.service.CreateQuestion(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			response.Error(w, http.StatusBadRequest, "Invalid question", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Created(w, q, "Question created")
}

func (h *QuizHandler) UpdateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if err := h.service.UpdateQuestion(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuestion):
			response.Error(w, http.StatusBadRequest, "Invalid question", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(w, http.StatusNotFound, "Not found", err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		}
		return
	}
	response.Success(w, nil, "Question updated")
}

func (h *QuizHandler) DeleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}
	response.Success(w, nil, "Question deleted")
}
