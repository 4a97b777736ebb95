package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/yachai/yachai-cli/internal/api"
	"github.com/yachai/yachai-cli/internal/errors"
	"github.com/yachai/yachai-cli/internal/logger"
	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/store"
)

// State is a step of the game-session flow.
type State string

const (
	StateSelect  State = "select"
	StateLoading State = "loading"
	StatePlaying State = "playing"
	StateResult  State = "result"
)

// Orchestrator drives one game session from topic/mode selection through
// submission: select → loading → playing → result, with a surfaced error
// message reachable from select, loading, and playing. Failures are never
// retried automatically; every one returns the flow to an interactive state.
type Orchestrator struct {
	client   api.ClientInterface
	users    store.UserStore
	sessions *store.SessionStore

	difficulty string
	ageRange   string

	state   State
	result  *models.GameResult
	lastErr string
}

func NewOrchestrator(client api.ClientInterface, users store.UserStore, sessions *store.SessionStore, difficulty, ageRange string) *Orchestrator {
	return &Orchestrator{
		client:     client,
		users:      users,
		sessions:   sessions,
		difficulty: difficulty,
		ageRange:   ageRange,
		state:      StateSelect,
	}
}

// State returns the current step of the flow.
func (o *Orchestrator) State() State { return o.state }

// LastError returns the surfaced message of the most recent failure, empty
// when the flow is clean.
func (o *Orchestrator) LastError() string { return o.lastErr }

// Session returns the active session during play, or nil.
func (o *Orchestrator) Session() *models.GameSession { return o.sessions.Session() }

// Result returns the backend result after a successful submission.
func (o *Orchestrator) Result() *models.GameResult { return o.result }

// Start validates the selection locally and requests a session. An empty
// topic or unknown mode is rejected before any network call. On failure the
// flow returns to select with a surfaced message.
func (o *Orchestrator) Start(ctx context.Context, userID, topic string, gameType models.GameType) error {
	log := logger.FromContext(ctx).WithPrefix("orchestrator")

	topic = strings.TrimSpace(topic)
	if topic == "" {
		o.lastErr = "El tema es requerido"
		return errors.NewValidationError(o.lastErr)
	}
	if !gameType.Valid() {
		o.lastErr = "Tipo de juego inválido"
		return errors.NewValidationError(o.lastErr)
	}

	o.state = StateLoading
	o.lastErr = ""

	session, err := o.client.StartGame(ctx, api.StartGameRequest{
		UserID:     userID,
		Topic:      topic,
		GameType:   gameType,
		Difficulty: o.difficulty,
		AgeRange:   o.ageRange,
	})
	if err != nil {
		log.Error("start game failed: %v", err)
		o.state = StateSelect
		o.lastErr = errors.UserMessage(err, "Error al iniciar el juego")
		return err
	}

	if err := session.Content.Validate(); err != nil {
		log.Error("session %s content rejected: %v", session.ID, err)
		o.state = StateSelect
		o.lastErr = "Error al iniciar el juego"
		return errors.NewInternalError(err)
	}

	o.sessions.Begin(session)
	o.state = StatePlaying
	log.Info("playing %s on %q (session %s)", gameType, topic, session.ID)
	return nil
}

// Player is the part of a game-mode engine the flow itself needs; the
// concrete types carry the mode-specific surface.
type Player interface {
	Done() bool
	Score() int
	Answers() []models.Answer
}

// NewPlayer builds the player for the active session's game type. The switch
// over the content tag is the single dispatch point of the flow.
func (o *Orchestrator) NewPlayer() (Player, error) {
	session := o.sessions.Session()
	if session == nil {
		return nil, errors.NewInternalError(errNoSession)
	}
	switch session.Content.GameType {
	case models.GameTrivia:
		return NewTriviaRound(session.Content.TriviaQuestions)
	case models.GameAdventure:
		return NewAdventureRun(session.Content.AdventureStory)
	case models.GameMarket:
		return NewMarketRun(session.Content.MarketMissions)
	default:
		return nil, errors.NewInternalError(errNoSession)
	}
}

// Complete submits the accumulated answers. On success the local user score
// is bumped by the provisional score and the flow moves to result; on
// failure it stays adjacent to playing with a surfaced message.
func (o *Orchestrator) Complete(ctx context.Context, answers []models.Answer, localScore int) (*models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("orchestrator")

	session := o.sessions.Session()
	if session == nil {
		return nil, errors.NewInternalError(errNoSession)
	}

	result, err := o.client.SubmitGame(ctx, session.ID, answers)
	if err != nil {
		log.Error("submit failed for session %s: %v", session.ID, err)
		o.lastErr = errors.UserMessage(err, "Error al enviar resultados")
		return nil, err
	}

	if _, err := o.users.ApplyScoreDelta(ctx, localScore); err != nil {
		// The backend already recorded the score; a local persistence failure
		// only delays the update until the next fetch.
		log.Warn("failed to apply local score delta: %v", err)
	}

	o.result = result
	o.sessions.End()
	o.state = StateResult
	o.lastErr = ""
	return result, nil
}

// PlayAgain resets the flow for a fresh selection.
func (o *Orchestrator) PlayAgain() {
	o.sessions.Reset()
	o.result = nil
	o.lastErr = ""
	o.state = StateSelect
}

// Abandon discards the session state when navigating away.
func (o *Orchestrator) Abandon() {
	o.sessions.Reset()
	o.result = nil
	o.lastErr = ""
	o.state = StateSelect
}

var errNoSession = fmt.Errorf("no active game session")
