package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yachai/yachai-cli/internal/models"
)

func adventureStory() *models.AdventureStory {
	return &models.AdventureStory{
		Title:        "El Bosque de los Secretos",
		Introduction: "Entras al bosque al amanecer.",
		Scenes: []models.AdventureScene{
			{
				SceneNumber: 1,
				Description: "Un río bloquea tu camino.",
				Choices: []models.AdventureChoice{
					{Text: "Cruzar por el puente", IsCorrect: true, Points: 15, Feedback: "¡Buena decisión!"},
					{Text: "Nadar", Feedback: "El agua está muy fría."},
				},
			},
			{
				SceneNumber: 2,
				Description: "Encuentras una cueva oscura.",
				Choices: []models.AdventureChoice{
					{Text: "Encender una antorcha", IsCorrect: true, Points: 10},
					{Text: "Entrar a oscuras"},
				},
			},
		},
		Conclusion:  "Saliste del bosque con un tesoro.",
		TotalScenes: 2,
	}
}

func TestNewAdventureRun_Empty(t *testing.T) {
	_, err := NewAdventureRun(nil)
	assert.Error(t, err)
	_, err = NewAdventureRun(&models.AdventureStory{})
	assert.Error(t, err)
}

func TestAdventureRun_TranscriptStartsWithIntroduction(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)
	assert.Equal(t, []string{"Entras al bosque al amanecer."}, run.Transcript())
}

func TestAdventureRun_ChooseAppendsFeedbackAndNextScene(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	require.NoError(t, run.Choose(0))
	assert.Equal(t, 15, run.Score())
	assert.Equal(t, 1, run.SceneIndex())
	assert.Equal(t, []string{
		"Entras al bosque al amanecer.",
		"¡Buena decisión!",
		"Encuentras una cueva oscura.",
	}, run.Transcript())
}

func TestAdventureRun_ChoiceTextFallsBackWhenFeedbackMissing(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	require.NoError(t, run.Choose(0))
	require.NoError(t, run.Choose(1)) // second scene, choice without feedback

	transcript := run.Transcript()
	assert.Contains(t, transcript, "Entrar a oscuras")
}

func TestAdventureRun_MissingPointsDefaultToZero(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	require.NoError(t, run.Choose(1)) // no points on this choice
	assert.Zero(t, run.Score())
}

func TestAdventureRun_LastChoiceAppendsConclusion(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	require.NoError(t, run.Choose(0))
	assert.False(t, run.Done())
	require.NoError(t, run.Choose(0))
	assert.True(t, run.Done())

	transcript := run.Transcript()
	assert.Equal(t, "Entras al bosque al amanecer.", transcript[0])
	assert.Equal(t, "Saliste del bosque con un tesoro.", transcript[len(transcript)-1])
	assert.Equal(t, 25, run.Score())

	assert.Error(t, run.Choose(0), "no choices after the story ends")
}

func TestAdventureRun_TranscriptSnapshotsAreIndependent(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	before := run.Transcript()
	require.NoError(t, run.Choose(0))
	after := run.Transcript()

	assert.Len(t, before, 1, "earlier snapshot untouched by the transition")
	assert.Len(t, after, 3)
}

func TestAdventureRun_ChooseOutOfRange(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	assert.Error(t, run.Choose(2))
	assert.Error(t, run.Choose(-1))
	assert.Zero(t, run.SceneIndex())
}

func TestAdventureRun_AnswersRecordSceneAndChoice(t *testing.T) {
	run, err := NewAdventureRun(adventureStory())
	require.NoError(t, err)

	require.NoError(t, run.Choose(1))
	require.NoError(t, run.Choose(0))

	answers := run.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, 1, answers[0].SceneNumber)
	assert.Equal(t, 1, answers[0].ChoiceIndex)
	assert.False(t, answers[0].IsCorrect)
	assert.Equal(t, 2, answers[1].SceneNumber)
	assert.Equal(t, 0, answers[1].ChoiceIndex)
	assert.True(t, answers[1].IsCorrect)
	assert.Equal(t, 10, answers[1].Points)
}
