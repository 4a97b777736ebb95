package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/yachai/yachai-cli/internal/errors"
	"github.com/yachai/yachai-cli/internal/logger"
	"github.com/yachai/yachai-cli/internal/models"
)

// Client is the thin wrapper over the YachAI backend. One method per
// capability; no batching, caching, or retries. A failed call returns an
// error and the caller decides what to display.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("api"),
	}
}

// do issues one request and decodes the response body into out (when out is
// non-nil). Non-2xx responses surface the backend's own "error" field when
// present, else the fallback message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, fallback string) error {
	log := logger.FromContext(ctx).WithPrefix("api")

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to encode request body: %v", err)
			return errors.NewInternalError(err)
		}
		reqBody = bytes.NewReader(buf)
	}

	reqURL := c.baseURL + path
	log.Debug("%s %s", method, reqURL)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return errors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return errors.NewNetworkError(fallback, err)
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn("%s %s failed: status=%d, body=%s", method, path, resp.StatusCode, string(raw))

		msg := gjson.GetBytes(raw, "error").String()
		if msg == "" {
			msg = fallback
		}
		return errors.NewAPIError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// ---------- Users ----------

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Age      int    `json:"age"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var out struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users/register", req, &out, "Error al registrar usuario")
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.NewInternalError(fmt.Errorf("register response carried no user"))
	}
	c.log.Info("registered user %s", out.User.Username)
	return out.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		User *models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users/login", body, &out, "Error al iniciar sesión")
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.NewInternalError(fmt.Errorf("login response carried no user"))
	}
	return out.User, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &user, "Error al obtener usuario")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/users/username/"+url.PathEscape(username), nil, &user, "Error al obtener usuario")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Statistics(ctx context.Context, userID string) (*models.Statistics, error) {
	var stats models.Statistics
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/statistics", nil, &stats, "Error al obtener estadísticas")
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Achievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/achievements", nil, &achievements, "Error al obtener logros")
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) Sessions(ctx context.Context, userID string, limit int) ([]models.GameSession, error) {
	path := fmt.Sprintf("/api/users/%s/sessions?limit=%d", url.PathEscape(userID), limit)
	var sessions []models.GameSession
	err := c.do(ctx, http.MethodGet, path, nil, &sessions, "Error al obtener sesiones")
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	path := fmt.Sprintf("/api/users/leaderboard?limit=%d", limit)
	var board []models.LeaderboardEntry
	err := c.do(ctx, http.MethodGet, path, nil, &board, "Error al obtener el ranking")
	if err != nil {
		return nil, err
	}
	return board, nil
}

// ---------- Games ----------

type StartGameRequest struct {
	UserID     string          `json:"user_id"`
	Topic      string          `json:"topic"`
	GameType   models.GameType `json:"game_type"`
	Difficulty string          `json:"difficulty"`
	AgeRange   string          `json:"age_range"`
}

func (c *Client) StartGame(ctx context.Context, req StartGameRequest) (*models.GameSession, error) {
	var out struct {
		Message string              `json:"message"`
		Session *models.GameSession `json:"session"`
	}
	err := c.do(ctx, http.MethodPost, "/api/games/start", req, &out, "Error al iniciar el juego")
	if err != nil {
		return nil, err
	}
	if out.Session == nil {
		return nil, errors.NewInternalError(fmt.Errorf("start response carried no session"))
	}
	c.log.Info("started %s session %s on %q", out.Session.GameType, out.Session.ID, out.Session.Topic)
	return out.Session, nil
}

func (c *Client) GetGame(ctx context.Context, sessionID string) (*models.GameSession, error) {
	var session models.GameSession
	err := c.do(ctx, http.MethodGet, "/api/games/"+url.PathEscape(sessionID), nil, &session, "Error al obtener la sesión")
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) SubmitGame(ctx context.Context, sessionID string, answers []models.Answer) (*models.GameResult, error) {
	body := map[string]any{"answers": answers}
	var out struct {
		Result *models.GameResult `json:"result"`
	}
	err := c.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(sessionID)+"/submit", body, &out, "Error al enviar resultados")
	if err != nil {
		return nil, err
	}
	if out.Result == nil {
		return nil, errors.NewInternalError(fmt.Errorf("submit response carried no result"))
	}
	c.log.Info("session %s scored %d/%d", sessionID, out.Result.Score, out.Result.MaxScore)
	return out.Result, nil
}

// ---------- AI ----------

type GenerateContentRequest struct {
	Topic      string          `json:"topic"`
	GameType   models.GameType `json:"game_type"`
	Difficulty string          `json:"difficulty"`
	AgeRange   string          `json:"age_range"`
}

func (c *Client) GenerateContent(ctx context.Context, req GenerateContentRequest) (*models.GameContent, error) {
	var out struct {
		Message string              `json:"message"`
		Content *models.GameContent `json:"content"`
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/generate-content", req, &out, "Error al generar contenido")
	if err != nil {
		return nil, err
	}
	if out.Content == nil {
		return nil, errors.NewInternalError(fmt.Errorf("generate-content response carried no content"))
	}
	return out.Content, nil
}

type GenerateFeedbackRequest struct {
	Topic    string          `json:"topic"`
	Score    int             `json:"score"`
	MaxScore int             `json:"max_score"`
	GameType models.GameType `json:"game_type"`
	Answers  []models.Answer `json:"answers"`
}

func (c *Client) GenerateFeedback(ctx context.Context, req GenerateFeedbackRequest) (string, error) {
	var out struct {
		Feedback string `json:"feedback"`
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/generate-feedback", req, &out, "Error al generar feedback")
	if err != nil {
		return "", err
	}
	return out.Feedback, nil
}

func (c *Client) AnalyzeIntelligence(ctx context.Context, userID string) (*models.IntelligenceProfile, error) {
	body := map[string]string{"user_id": userID}
	var out struct {
		Message string                      `json:"message"`
		Profile *models.IntelligenceProfile `json:"profile"`
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/analyze-intelligence", body, &out, "Error al analizar inteligencias")
	if err != nil {
		return nil, err
	}
	// A nil profile is a valid answer: not enough play history yet.
	return out.Profile, nil
}

// ---------- Chat ----------

func (c *Client) ChatMessages(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	path := fmt.Sprintf("/api/chat/messages?limit=%d", limit)
	var messages []models.ChatMessage
	err := c.do(ctx, http.MethodGet, path, nil, &messages, "Error al cargar mensajes")
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendChatMessage(ctx context.Context, userID, username, avatar, message string) (*models.ChatMessage, error) {
	body := map[string]string{
		"user_id":  userID,
		"username": username,
		"avatar":   avatar,
		"message":  message,
	}
	var msg models.ChatMessage
	err := c.do(ctx, http.MethodPost, "/api/chat/send", body, &msg, "Error al enviar el mensaje")
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteChatMessage removes a message. The body carries the requesting user
// id; the backend authorizes the deletion.
func (c *Client) DeleteChatMessage(ctx context.Context, messageID, userID string) error {
	body := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodDelete, "/api/chat/delete/"+url.PathEscape(messageID), body, nil, "Error al eliminar el mensaje")
}
