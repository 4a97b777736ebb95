package game

import (
	"fmt"

	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/score"
)

// TriviaRound plays an ordered list of questions one at a time. A selection
// locks the current question; advancing is a separate explicit step.
type TriviaRound struct {
	questions []models.TriviaQuestion
	index     int
	locked    bool
	answers   []models.Answer
	score     int
}

func NewTriviaRound(questions []models.TriviaQuestion) (*TriviaRound, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("trivia round needs at least one question")
	}
	return &TriviaRound{questions: questions}, nil
}

// Question returns the current question.
func (r *TriviaRound) Question() models.TriviaQuestion {
	return r.questions[r.index]
}

// Index returns the zero-based position of the current question.
func (r *TriviaRound) Index() int { return r.index }

// Total returns the number of questions in the round.
func (r *TriviaRound) Total() int { return len(r.questions) }

// Locked reports whether the current question has already been answered.
func (r *TriviaRound) Locked() bool { return r.locked }

// Select records the pick for the current question and locks it. A correct
// pick is worth a fixed 10 points, anything else 0.
func (r *TriviaRound) Select(option int) (bool, int, error) {
	if r.locked {
		return false, 0, fmt.Errorf("question %d already answered", r.index+1)
	}
	q := r.questions[r.index]
	if option < 0 || option >= len(q.Options) {
		return false, 0, fmt.Errorf("option %d out of range", option)
	}

	correct := option == q.CorrectAnswer
	points := 0
	if correct {
		points = score.TriviaPoints
	}

	selected := option
	r.answers = append(r.answers, models.Answer{
		QuestionIndex:  r.index,
		SelectedAnswer: &selected,
		IsCorrect:      correct,
		Points:         points,
	})
	r.score += points
	r.locked = true
	return correct, points, nil
}

// Advance moves to the next question after a selection. It returns false
// when the answered question was the last one.
func (r *TriviaRound) Advance() (bool, error) {
	if !r.locked {
		return false, fmt.Errorf("current question not answered yet")
	}
	if r.index == len(r.questions)-1 {
		return false, nil
	}
	r.index++
	r.locked = false
	return true, nil
}

// Done reports whether every question has been answered.
func (r *TriviaRound) Done() bool {
	return r.locked && r.index == len(r.questions)-1
}

// Score returns the cumulative provisional score.
func (r *TriviaRound) Score() int { return r.score }

// Answers returns the per-question answers in play order.
func (r *TriviaRound) Answers() []models.Answer {
	out := make([]models.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}
