package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yachai/yachai-cli/internal/models"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		age      string
		wantMsg  string
	}{
		{
			name:     "valid form",
			username: "maria",
			password: "secreta",
			age:      "10",
			wantMsg:  "",
		},
		{
			name:     "empty username",
			username: "",
			password: "secreta",
			age:      "10",
			wantMsg:  "El nombre es requerido",
		},
		{
			name:     "whitespace username",
			username: "   ",
			password: "secreta",
			age:      "10",
			wantMsg:  "El nombre es requerido",
		},
		{
			name:     "username too short",
			username: "ma",
			password: "secreta",
			age:      "10",
			wantMsg:  "El nombre debe tener entre 3 y 20 caracteres",
		},
		{
			name:     "username too long",
			username: "abcdefghijklmnopqrstu",
			password: "secreta",
			age:      "10",
			wantMsg:  "El nombre debe tener entre 3 y 20 caracteres",
		},
		{
			name:     "password too short",
			username: "maria",
			password: "abc",
			age:      "10",
			wantMsg:  "La contraseña debe tener al menos 6 caracteres",
		},
		{
			name:     "age below range",
			username: "maria",
			password: "secreta",
			age:      "4",
			wantMsg:  "La edad debe estar entre 5 y 18 años",
		},
		{
			name:     "age above range",
			username: "maria",
			password: "secreta",
			age:      "19",
			wantMsg:  "La edad debe estar entre 5 y 18 años",
		},
		{
			name:     "age not a number",
			username: "maria",
			password: "secreta",
			age:      "diez",
			wantMsg:  "La edad debe estar entre 5 y 18 años",
		},
		{
			name:     "age at lower bound",
			username: "maria",
			password: "secreta",
			age:      "5",
			wantMsg:  "",
		},
		{
			name:     "age at upper bound",
			username: "maria",
			password: "secreta",
			age:      "18",
			wantMsg:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, validateRegistration(tt.username, tt.password, tt.age))
		})
	}
}

func TestTopIntelligences(t *testing.T) {
	scores := map[string]int{
		"linguistic":           40,
		"logical_mathematical": 25,
		"spatial":              40,
		"naturalistic":         0,
		"interpersonal":        10,
	}

	top := topIntelligences(scores, 3)
	// Ties break by id, zero scores never appear.
	assert.Equal(t, []string{"linguistic", "spatial", "logical_mathematical"}, top)

	assert.Empty(t, topIntelligences(map[string]int{}, 3))
	assert.Len(t, topIntelligences(scores, 2), 2)
}

func TestRankOf(t *testing.T) {
	board := []models.LeaderboardEntry{
		{ID: "u-1", Username: "maria"},
		{ID: "u-2", Username: "jose"},
		{ID: "u-3", Username: "ana"},
	}

	assert.Equal(t, 1, rankOf("u-1", board))
	assert.Equal(t, 3, rankOf("u-3", board))
	assert.Zero(t, rankOf("u-9", board), "a user outside the board has no rank")
}
