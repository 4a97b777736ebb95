package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yachai/yachai-cli/internal/api"
	"github.com/yachai/yachai-cli/internal/models"
)

// MockAPIClient is a mock implementation of api.ClientInterface
type MockAPIClient struct {
	mock.Mock
}

var _ api.ClientInterface = (*MockAPIClient)(nil)

func (m *MockAPIClient) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPIClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPIClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPIClient) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPIClient) Statistics(ctx context.Context, userID string) (*models.Statistics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

func (m *MockAPIClient) Achievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAPIClient) Sessions(ctx context.Context, userID string, limit int) ([]models.GameSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameSession), args.Error(1)
}

func (m *MockAPIClient) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

func (m *MockAPIClient) StartGame(ctx context.Context, req api.StartGameRequest) (*models.GameSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSession), args.Error(1)
}

func (m *MockAPIClient) GetGame(ctx context.Context, sessionID string) (*models.GameSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSession), args.Error(1)
}

func (m *MockAPIClient) SubmitGame(ctx context.Context, sessionID string, answers []models.Answer) (*models.GameResult, error) {
	args := m.Called(ctx, sessionID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameResult), args.Error(1)
}

func (m *MockAPIClient) GenerateContent(ctx context.Context, req api.GenerateContentRequest) (*models.GameContent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameContent), args.Error(1)
}

func (m *MockAPIClient) GenerateFeedback(ctx context.Context, req api.GenerateFeedbackRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAPIClient) AnalyzeIntelligence(ctx context.Context, userID string) (*models.IntelligenceProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IntelligenceProfile), args.Error(1)
}

func (m *MockAPIClient) ChatMessages(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockAPIClient) SendChatMessage(ctx context.Context, userID, username, avatar, message string) (*models.ChatMessage, error) {
	args := m.Called(ctx, userID, username, avatar, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockAPIClient) DeleteChatMessage(ctx context.Context, messageID, userID string) error {
	args := m.Called(ctx, messageID, userID)
	return args.Error(0)
}
