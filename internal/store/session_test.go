package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yachai/yachai-cli/internal/models"
)

func TestSessionStore_BeginAndEnd(t *testing.T) {
	s := NewSessionStore()
	assert.False(t, s.IsPlaying())
	assert.Nil(t, s.Session())

	s.Begin(&models.GameSession{ID: "s-1", GameType: models.GameTrivia})
	assert.True(t, s.IsPlaying())
	require.NotNil(t, s.Session())
	assert.Equal(t, "s-1", s.Session().ID)

	s.End()
	assert.False(t, s.IsPlaying())
	assert.Nil(t, s.Session())
}

func TestSessionStore_BeginDiscardsPreviousAnswers(t *testing.T) {
	s := NewSessionStore()
	s.Begin(&models.GameSession{ID: "s-1"})
	s.AddAnswer(models.Answer{QuestionIndex: 0, Points: 10})

	s.Begin(&models.GameSession{ID: "s-2"})
	assert.Empty(t, s.Answers())
}

func TestSessionStore_AnswersAreCopied(t *testing.T) {
	s := NewSessionStore()
	s.Begin(&models.GameSession{ID: "s-1"})
	s.AddAnswer(models.Answer{QuestionIndex: 0, Points: 10})

	snapshot := s.Answers()
	snapshot[0].Points = 999

	assert.Equal(t, 10, s.Answers()[0].Points, "mutating the snapshot does not touch the store")
}

func TestSessionStore_EndKeepsSelection(t *testing.T) {
	s := NewSessionStore()
	s.Begin(&models.GameSession{ID: "s-1", Topic: "Cultura Inca", GameType: models.GameMarket})

	s.End()
	assert.Equal(t, "Cultura Inca", s.Topic())
	assert.Equal(t, models.GameMarket, s.GameType())

	s.Reset()
	assert.Empty(t, s.Topic())
	assert.Empty(t, string(s.GameType()))
}

func TestSessionStore_ResetClearsEverything(t *testing.T) {
	s := NewSessionStore()
	s.Begin(&models.GameSession{ID: "s-1"})
	s.AddAnswer(models.Answer{Points: 5})

	s.Reset()
	assert.False(t, s.IsPlaying())
	assert.Nil(t, s.Session())
	assert.Empty(t, s.Answers())
}
