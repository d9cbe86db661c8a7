package aptitude

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("aptitude test not found")
	ErrInvalidTest = errors.New("invalid aptitude test")
)

const (
	MinAnswers  = 2
	MaxAnswers  = 5
	NotAnswered = "Not Answered"
)

type Answer struct {
	Answer    string `json:"answer" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	Question string   `json:"question" validate:"required"`
	Answers  []Answer `json:"answers" validate:"min=2,max=5,dive"`
}

type Test struct {
	ID           uuid.UUID  `json:"id"`
	Questions    []Question `json:"questions"`
	ShouldDelete bool       `json:"should_delete"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SelectedAnswer records what an applicant picked for one question.
type SelectedAnswer struct {
	Question       string `json:"question"`
	SelectedAnswer string `json:"selected_answer"`
}

// Validate checks that every question has between MinAnswers and MaxAnswers
// choices with exactly one marked correct.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidTest)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d is empty", ErrInvalidTest, i+1)
		}
		if len(q.Answers) < MinAnswers || len(q.Answers) > MaxAnswers {
			return fmt.Errorf("%w: question %d needs %d-%d answers", ErrInvalidTest, i+1, MinAnswers, MaxAnswers)
		}
		correct := 0
		for _, a := range q.Answers {
			if strings.TrimSpace(a.Answer) == "" {
				return fmt.Errorf("%w: question %d has an empty answer", ErrInvalidTest, i+1)
			}
			if a.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("%w: question %d must have exactly one correct answer", ErrInvalidTest, i+1)
		}
	}
	return nil
}

func (q Question) CorrectAnswer() string {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a.Answer
		}
	}
	return ""
}

// Redacted returns a copy safe to hand to applicants.
func (t Test) Redacted() Test {
	out := t
	out.Questions = make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		answers := make([]Answer, len(q.Answers))
		for j, a := range q.Answers {
			answers[j] = Answer{Answer: a.Answer}
		}
		out.Questions[i] = Question{Question: q.Question, Answers: answers}
	}
	return out
}

// Grade scores picks against the answer key. picks is aligned with the question
// order; a missing or blank pick is recorded as NotAnswered. The score is the
// percentage of correct picks rounded to the nearest integer.
func Grade(t Test, picks []string) (float64, []SelectedAnswer) {
	selected := make([]SelectedAnswer, 0, len(t.Questions))
	if len(t.Questions) == 0 {
		return 0, selected
	}

	correct := 0
	for i, q := range t.Questions {
		pick := ""
		if i < len(picks) {
			pick = strings.TrimSpace(picks[i])
		}
		if pick == "" {
			selected = append(selected, SelectedAnswer{Question: q.Question, SelectedAnswer: NotAnswered})
			continue
		}
		if pick == q.CorrectAnswer() {
			correct++
		}
		selected = append(selected, SelectedAnswer{Question: q.Question, SelectedAnswer: pick})
	}

	score := math.Round(float64(correct) / float64(len(t.Questions)) * 100)
	return score, selected
}
