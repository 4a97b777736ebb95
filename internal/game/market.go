package game

import (
	"fmt"

	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/score"
)

// MarketRun plays ordered shopping missions. The player toggles items in and
// out of a selection set until submitting; submission awards proportional
// credit for the correct items found and makes the mission read-only.
type MarketRun struct {
	missions  []models.MarketMission
	index     int
	selected  []string
	submitted bool
	answers   []models.Answer
	score     int
}

func NewMarketRun(missions []models.MarketMission) (*MarketRun, error) {
	if len(missions) == 0 {
		return nil, fmt.Errorf("market run needs at least one mission")
	}
	return &MarketRun{missions: missions}, nil
}

// Mission returns the current mission.
func (r *MarketRun) Mission() models.MarketMission {
	return r.missions[r.index]
}

// Index returns the zero-based position of the current mission.
func (r *MarketRun) Index() int { return r.index }

// Total returns the number of missions in the run.
func (r *MarketRun) Total() int { return len(r.missions) }

// Submitted reports whether the current mission is locked.
func (r *MarketRun) Submitted() bool { return r.submitted }

// Toggle adds the item to the selection, or removes it when already picked.
func (r *MarketRun) Toggle(itemID string) error {
	if r.submitted {
		return fmt.Errorf("mission already submitted")
	}
	if !r.missionHasItem(itemID) {
		return fmt.Errorf("unknown item %q", itemID)
	}
	for i, id := range r.selected {
		if id == itemID {
			r.selected = append(r.selected[:i], r.selected[i+1:]...)
			return nil
		}
	}
	r.selected = append(r.selected, itemID)
	return nil
}

func (r *MarketRun) missionHasItem(itemID string) bool {
	for _, item := range r.missions[r.index].Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// IsSelected reports whether the item is in the current selection.
func (r *MarketRun) IsSelected(itemID string) bool {
	for _, id := range r.selected {
		if id == itemID {
			return true
		}
	}
	return false
}

// Selected returns the current selection in toggle order.
func (r *MarketRun) Selected() []string {
	out := make([]string, len(r.selected))
	copy(out, r.selected)
	return out
}

// IsCorrectItem reports whether an item belongs to the mission's correct
// subset, for the post-submission per-item display.
func (r *MarketRun) IsCorrectItem(itemID string) bool {
	for _, id := range r.missions[r.index].CorrectItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Submit locks the current mission and awards round(|S∩C|/|C| × points).
func (r *MarketRun) Submit() (models.Answer, error) {
	if r.submitted {
		return models.Answer{}, fmt.Errorf("mission already submitted")
	}
	mission := r.missions[r.index]
	points := score.PartialCredit(r.selected, mission.CorrectItems, mission.Points)

	answer := models.Answer{
		MissionID:     mission.MissionID,
		SelectedItems: r.Selected(),
		IsCorrect:     points == mission.Points,
		Points:        points,
	}
	r.answers = append(r.answers, answer)
	r.score += points
	r.submitted = true
	return answer, nil
}

// Advance moves to the next mission after a submission. It returns false
// when the submitted mission was the last one.
func (r *MarketRun) Advance() (bool, error) {
	if !r.submitted {
		return false, fmt.Errorf("current mission not submitted yet")
	}
	if r.index == len(r.missions)-1 {
		return false, nil
	}
	r.index++
	r.selected = nil
	r.submitted = false
	return true, nil
}

// Done reports whether every mission has been submitted.
func (r *MarketRun) Done() bool {
	return r.submitted && r.index == len(r.missions)-1
}

// Score returns the cumulative provisional score.
func (r *MarketRun) Score() int { return r.score }

// Answers returns the per-mission answers in play order.
func (r *MarketRun) Answers() []models.Answer {
	out := make([]models.Answer, len(r.answers))
	copy(out, r.answers)
	return out
}
