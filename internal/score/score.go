package score

import "math"

// LevelForScore derives the level shown next to a user's cumulative score.
// The backend computes the same value authoritatively; the client recomputes
// it locally after each score delta.
func LevelForScore(totalScore int) int {
	level := totalScore/100 + 1
	if level < 1 {
		level = 1
	}
	return level
}

// Percentage returns the rounded share of points earned, 0 when nothing was
// at stake.
func Percentage(score, maxScore int) int {
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// Message returns the encouragement band for a percentage.
func Message(percentage int) string {
	switch {
	case percentage >= 90:
		return "¡Excelente! 🌟"
	case percentage >= 70:
		return "¡Muy bien! 👏"
	case percentage >= 50:
		return "¡Buen intento! 💪"
	default:
		return "¡Sigue practicando! 📚"
	}
}

// PartialCredit computes market-mission points: proportional credit for the
// fraction of correct items found. Incorrectly selected items carry no
// penalty beyond their exclusion from the fraction.
func PartialCredit(selected, correct []string, missionPoints int) int {
	if len(correct) == 0 {
		return 0
	}
	correctSet := make(map[string]bool, len(correct))
	for _, id := range correct {
		correctSet[id] = true
	}
	hits := 0
	for _, id := range selected {
		if correctSet[id] {
			hits++
		}
	}
	return int(math.Round(float64(hits) / float64(len(correct)) * float64(missionPoints)))
}

// TriviaPoints is the fixed award for a correct trivia pick.
const TriviaPoints = 10
