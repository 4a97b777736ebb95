package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	Age        int       `json:"age,omitempty"`
	TotalScore int       `json:"total_score"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

type LeaderboardEntry struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	TotalScore int    `json:"total_score"`
	Level      int    `json:"level"`
}

type Statistics struct {
	UserID                   string `json:"user_id"`
	GamesPlayed              int    `json:"games_played"`
	TopicsCompleted          int    `json:"topics_completed"`
	TriviaScore              int    `json:"trivia_score"`
	AdventureScore           int    `json:"adventure_score"`
	MarketScore              int    `json:"market_score"`
	LinguisticScore          int    `json:"linguistic_score"`
	LogicalMathematicalScore int    `json:"logical_mathematical_score"`
	SpatialScore             int    `json:"spatial_score"`
	NaturalisticScore        int    `json:"naturalistic_score"`
	InterpersonalScore       int    `json:"interpersonal_score"`
}

type Achievement struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AchievementType string    `json:"achievement_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EarnedAt        time.Time `json:"earned_at"`
}
