package api

import (
	"context"

	"github.com/yachai/yachai-cli/internal/models"
)

// ClientInterface defines the backend operations the pages depend on.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	Statistics(ctx context.Context, userID string) (*models.Statistics, error)
	Achievements(ctx context.Context, userID string) ([]models.Achievement, error)
	Sessions(ctx context.Context, userID string, limit int) ([]models.GameSession, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	StartGame(ctx context.Context, req StartGameRequest) (*models.GameSession, error)
	GetGame(ctx context.Context, sessionID string) (*models.GameSession, error)
	SubmitGame(ctx context.Context, sessionID string, answers []models.Answer) (*models.GameResult, error)
	GenerateContent(ctx context.Context, req GenerateContentRequest) (*models.GameContent, error)
	GenerateFeedback(ctx context.Context, req GenerateFeedbackRequest) (string, error)
	AnalyzeIntelligence(ctx context.Context, userID string) (*models.IntelligenceProfile, error)
	ChatMessages(ctx context.Context, limit int) ([]models.ChatMessage, error)
	SendChatMessage(ctx context.Context, userID, username, avatar, message string) (*models.ChatMessage, error)
	DeleteChatMessage(ctx context.Context, messageID, userID string) error
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
