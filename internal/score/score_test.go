package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yachai/yachai-cli/internal/score"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{name: "zero score is level 1", score: 0, expected: 1},
		{name: "just below first threshold", score: 99, expected: 1},
		{name: "first threshold", score: 100, expected: 2},
		{name: "mid range", score: 250, expected: 3},
		{name: "high score", score: 1000, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, score.LevelForScore(tt.score))
		})
	}
}

func TestLevelForScore_MonotonicUnderIncrements(t *testing.T) {
	// A non-negative increment never decreases the level, and recomputation
	// is idempotent.
	prev := 0
	prevLevel := score.LevelForScore(prev)
	for _, delta := range []int{0, 10, 10, 80, 0, 100, 35, 500} {
		next := prev + delta
		nextLevel := score.LevelForScore(next)
		assert.GreaterOrEqual(t, nextLevel, prevLevel, "level dropped after adding %d to %d", delta, prev)
		assert.Equal(t, nextLevel, score.LevelForScore(next), "recomputation changed the level")
		prev, prevLevel = next, nextLevel
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, score.Percentage(0, 0), "zero max score yields 0")
	assert.Equal(t, 100, score.Percentage(30, 30))
	assert.Equal(t, 67, score.Percentage(20, 30))
	assert.Equal(t, 0, score.Percentage(0, 50))
}

func TestMessage_Bands(t *testing.T) {
	tests := []struct {
		percentage int
		expected   string
	}{
		{100, "¡Excelente! 🌟"},
		{90, "¡Excelente! 🌟"},
		{89, "¡Muy bien! 👏"},
		{70, "¡Muy bien! 👏"},
		{69, "¡Buen intento! 💪"},
		{50, "¡Buen intento! 💪"},
		{49, "¡Sigue practicando! 📚"},
		{0, "¡Sigue practicando! 📚"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, score.Message(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestPartialCredit(t *testing.T) {
	correct := []string{"apple", "bread", "milk"}

	tests := []struct {
		name     string
		selected []string
		points   int
		expected int
	}{
		{name: "exact correct set earns full points", selected: []string{"apple", "bread", "milk"}, points: 30, expected: 30},
		{name: "empty selection earns zero", selected: nil, points: 30, expected: 0},
		{name: "partial selection is proportional", selected: []string{"apple"}, points: 30, expected: 10},
		{name: "two of three rounds", selected: []string{"apple", "milk"}, points: 25, expected: 17},
		{name: "wrong picks carry no penalty", selected: []string{"apple", "bread", "milk", "candy", "soda"}, points: 30, expected: 30},
		{name: "only wrong picks earn zero", selected: []string{"candy", "soda"}, points: 30, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, score.PartialCredit(tt.selected, correct, tt.points))
		})
	}
}

func TestPartialCredit_EmptyCorrectSet(t *testing.T) {
	assert.Equal(t, 0, score.PartialCredit([]string{"anything"}, nil, 50))
}
