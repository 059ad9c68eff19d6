package quiz

// Question is stored with the correct answer; PublicQuestion is what players
// see.
type Question struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Reference    string   `json:"reference"`
}

type PublicQuestion struct {
	ID        int      `json:"id"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Reference string   `json:"reference"`
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:        q.ID,
		Prompt:    q.Prompt,
		Options:   q.Options,
		Reference: q.Reference,
	}
}

type QuestionRequest struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Reference    string   `json:"reference"`
}

// SubmitRequest maps question id to the chosen option index.
type SubmitRequest struct {
	Answers map[int]int `json:"answers"`
}

type QuestionResult struct {
	QuestionID   int  `json:"question_id"`
	Chosen       int  `json:"chosen"`
	CorrectIndex int  `json:"correct_index"`
	Correct      bool `json:"correct"`
}

type QuizResult struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}
