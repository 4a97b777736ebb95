package game

import (
	"fmt"

	"github.com/yachai/yachai-cli/internal/models"
)

// AdventureRun plays a branching-text story scene by scene. Every choice
// appends its feedback to an ordered transcript owned by the run; the
// transcript is rebuilt as a new value on each transition, never mutated in
// place.
type AdventureRun struct {
	story      models.AdventureStory
	sceneIndex int
	transcript []string
	answers    []models.Answer
	score      int
	finished   bool
}

func NewAdventureRun(story *models.AdventureStory) (*AdventureRun, error) {
	if story == nil || len(story.Scenes) == 0 {
		return nil, fmt.Errorf("adventure run needs at least one scene")
	}
	return &AdventureRun{
		story:      *story,
		transcript: []string{story.Introduction},
	}, nil
}

// Story returns the story being played.
func (r *AdventureRun) Story() models.AdventureStory { return r.story }

// Scene returns the current scene.
func (r *AdventureRun) Scene() models.AdventureScene {
	return r.story.Scenes[r.sceneIndex]
}

// SceneIndex returns the zero-based position of the current scene.
func (r *AdventureRun) SceneIndex() int { return r.sceneIndex }

// Choose takes a choice in the current scene: its feedback (or, absent
// feedback, its label text) joins the transcript, its points (default 0)
// join the score, and play advances to the next scene. The last choice also
// appends the conclusion and finishes the run.
func (r *AdventureRun) Choose(choiceIndex int) error {
	if r.finished {
		return fmt.Errorf("story already finished")
	}
	scene := r.story.Scenes[r.sceneIndex]
	if choiceIndex < 0 || choiceIndex >= len(scene.Choices) {
		return fmt.Errorf("choice %d out of range", choiceIndex)
	}
	choice := scene.Choices[choiceIndex]

	feedback := choice.Feedback
	if feedback == "" {
		feedback = choice.Text
	}

	r.answers = append(r.answers, models.Answer{
		SceneNumber: scene.SceneNumber,
		ChoiceIndex: choiceIndex,
		IsCorrect:   choice.IsCorrect,
		Points:      choice.Points,
	})
	r.score += choice.Points

	if r.sceneIndex == len(r.story.Scenes)-1 {
		r.transcript = appendLines(r.transcript, feedback, r.story.Conclusion)
		r.finished = true
		return nil
	}

	r.sceneIndex++
	r.transcript = appendLines(r.transcript, feedback, r.story.Scenes[r.sceneIndex].Description)
	return nil
}

// appendLines rebuilds the transcript as a fresh slice.
func appendLines(transcript []string, lines ...string) []string {
	out := make([]string, 0, len(transcript)+len(lines))
	out = append(out, transcript...)
	out = append(out, lines...)
	return out
}

// Transcript returns the ordered narrative so far.
func (r *AdventureRun) Transcript() []string {
	out := make([]string, len(r.transcript))
	copy(out, r.transcript)
	return out
}

// Done reports whether the last choice has been taken. Showing results
// still requires an explicit action from the player.
func (r *AdventureRun) Done() bool { return r.finished }

// Score returns the cumulative provisional score.
func (r *AdventureRun) Score() int { return r.score }

// Answers returns the per-scene answers in play order.
func (r *AdventureRun) Answers() []models.Answer {
	out := make([]models.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}
