package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	questions []Question
}

func (s *stubRepo) GetRandomQuestions(_ context.Context, n int) ([]Question, error) {
	if n > len(s.questions) {
		n = len(s.questions)
	}
	return s.questions[:n], nil
}

func (s *stubRepo) GetQuestionsByIDs(_ context.Context, ids []int) ([]Question, error) {
	var out []Question
	for _, q := range s.questions {
		for _, id := range ids {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func (s *stubRepo) ListQuestions(_ context.Context) ([]Question, error) { return s.questions, nil }

func (s *stubRepo) CreateQuestion(_ context.Context, q Question) (*Question, error) {
	q.ID = len(s.questions) + 1
	s.questions = append(s.questions, q)
	return &q, nil
}

func (s *stubRepo) UpdateQuestion(_ context.Context, q Question) error {
	for i := range s.questions {
		if s.questions[i].ID == q.ID {
			s.questions[i] = q
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubRepo) DeleteQuestion(_ context.Context, id int) error {
	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func testService() QuizService {
	return NewQuizService(&stubRepo{questions: []Question{
		{ID: 1, Prompt: "Who built the ark?", Options: []string{"Moses", "Noah", "Abraham", "David"}, CorrectIndex: 1, Reference: "Gn 6"},
		{ID: 2, Prompt: "How many days was Jonah in the fish?", Options: []string{"One", "Two", "Three", "Seven"}, CorrectIndex: 2, Reference: "Jn 1:17"},
		{ID: 3, Prompt: "Who denied Jesus three times?", Options: []string{"Judas", "Thomas", "John", "Peter"}, CorrectIndex: 3, Reference: "Lc 22"},
	}})
}

func TestGetQuizStripsAnswers(t *testing.T) {
	svc := testService()

	questions, err := svc.GetQuiz(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Who built the ark?", questions[0].Prompt)
	assert.Len(t, questions[0].Options, 4)
}

func TestSubmitGrades(t *testing.T) {
	svc := testService()

	result, err := svc.Submit(context.Background(), SubmitRequest{Answers: map[int]int{
		1: 1, // right
		2: 0, // wrong
		3: 3, // right
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Correct)
	assert.False(t, result.Results[1].Correct)
	assert.Equal(t, 2, result.Results[1].CorrectIndex)
}

func TestSubmitIgnoresUnknownQuestions(t *testing.T) {
	svc := testService()

	result, err := svc.Submit(context.Background(), SubmitRequest{Answers: map[int]int{
		1:  1,
		99: 0,
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, result.Total, "unknown ids do not count toward the total")
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, QuestionRequest{
		Prompt:       "Too few options",
		Options:      []string{"A", "B"},
		CorrectIndex: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = svc.CreateQuestion(ctx, QuestionRequest{
		Prompt:       "Index out of range",
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: 4,
	})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	q, err := svc.CreateQuestion(ctx, QuestionRequest{
		Prompt:       "Where was Jesus born?",
		Options:      []string{"Nazareth", "Bethlehem", "Jerusalem", "Capernaum"},
		CorrectIndex: 1,
		Reference:    "Mt 2:1",
	})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)
}
