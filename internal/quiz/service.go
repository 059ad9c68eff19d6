package quiz

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var ErrInvalidQuestion = errors.New("question must have exactly 4 options and a valid correct_index")

const (
	defaultQuizSize = 10
	maxQuizSize     = 50
	optionCount     = 4
)

type QuizService struct {
	repo QuizRepo
}

func NewQuizService(repo QuizRepo) QuizService {
	return QuizService{repo: repo}
}

// GetQuiz returns n random questions with the answers stripped.
func (s *QuizService) GetQuiz(ctx context.Context, n int) ([]PublicQuestion, error) {
	if n <= 0 || n > maxQuizSize {
		n = defaultQuizSize
	}
	questions, err := s.repo.GetRandomQuestions(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]PublicQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Public())
	}
	return out, nil
}

// Submit grades server-side. Answers referencing unknown question ids are
// dropped; the score counts only questions that exist.
func (s *QuizService) Submit(ctx context.Context, req SubmitRequest) (*QuizResult, error) {
	ids := make([]int, 0, len(req.Answers))
	for id := range req.Answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	questions, err := s.repo.GetQuestionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	result := &QuizResult{Results: make([]QuestionResult, 0, len(ids))}
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			continue
		}
		chosen := req.Answers[id]
		correct := chosen == q.CorrectIndex
		if correct {
			result.Score++
		}
		result.Total++
		result.Results = append(result.Results, QuestionResult{
			QuestionID:   id,
			Chosen:       chosen,
			CorrectIndex: q.CorrectIndex,
			Correct:      correct,
		})
	}
	return result, nil
}

func (s *QuizService) ListQuestions(ctx context.Context) ([]Question, error) {
	return s.repo.ListQuestions(ctx)
}

func (s *QuizService) CreateQuestion(ctx context.Context, req QuestionRequest) (*Question, error) {
	q := Question{
		Prompt:       strings.TrimSpace(req.Prompt),
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Reference:    req.Reference,
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	return s.repo.CreateQuestion(ctx, q)
}

func (s *QuizService) UpdateQuestion(ctx context.Context, id int, req QuestionRequest) error {
	q := Question{
		ID:           id,
		Prompt:       strings.TrimSpace(req.Prompt),
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Reference:    req.Reference,
	}
	if err := validateQuestion(q); err != nil {
		return err
	}
	return s.repo.UpdateQuestion(ctx, q)
}

func (s *QuizService) DeleteQuestion(ctx context.Context, id int) error {
	return s.repo.DeleteQuestion(ctx, id)
}

func validateQuestion(q Question) error {
	if q.Prompt == "" || len(q.Options) != optionCount {
		return ErrInvalidQuestion
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= optionCount {
		return ErrInvalidQuestion
	}
	return nil
}
