// Package ui renders the client's screens on the terminal: registration,
// login, dashboard, game session, profile, and the chat room. Every screen
// is a fetch-and-render view with local form state; all real logic lives
// behind the API client.
package ui

import (
	"context"
	"errors"
	"io"

	"github.com/yachai/yachai-cli/internal/api"
	"github.com/yachai/yachai-cli/internal/config"
	"github.com/yachai/yachai-cli/internal/game"
	"github.com/yachai/yachai-cli/internal/logger"
	"github.com/yachai/yachai-cli/internal/store"
)

// Route names a navigable screen.
type Route string

const (
	RouteHome        Route = "home"
	RouteLogin       Route = "login"
	RouteDashboard   Route = "dashboard"
	RouteGameSession Route = "game-session"
	RouteProfile     Route = "profile"
	RouteChat        Route = "chat"
	RouteQuit        Route = "quit"
)

// App wires the screens to the API client and the two state stores.
type App struct {
	client   api.ClientInterface
	users    store.UserStore
	sessions *store.SessionStore
	cfg      *config.Config
	p        *prompter
	log      *logger.Logger
}

func NewApp(client api.ClientInterface, users store.UserStore, sessions *store.SessionStore, cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		client:   client,
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		p:        newPrompter(in, out),
		log:      logger.Default().WithPrefix("ui"),
	}
}

// Run drives the screen loop until the user quits or closes stdin. A
// persisted user skips straight to the dashboard; anything unknown falls
// back to the registration screen.
func (a *App) Run(ctx context.Context) error {
	route := RouteHome
	if user, err := a.users.Current(ctx); err == nil && user != nil {
		a.p.printf("¡Hola de nuevo, %s!\n", user.Username)
		route = RouteDashboard
	}

	for {
		var (
			next Route
			err  error
		)
		switch route {
		case RouteLogin:
			next, err = a.loginPage(ctx)
		case RouteDashboard:
			next, err = a.dashboardPage(ctx)
		case RouteGameSession:
			next, err = a.gameSessionPage(ctx)
		case RouteProfile:
			next, err = a.profilePage(ctx)
		case RouteChat:
			next, err = a.chatPage(ctx)
		case RouteQuit:
			a.p.println("¡Hasta pronto! 👋")
			return nil
		default:
			// Unknown routes redirect to registration.
			next, err = a.homePage(ctx)
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		// Screens that need a logged-in user bounce back to registration.
		if next != RouteHome && next != RouteLogin && next != RouteQuit {
			user, err := a.users.Current(ctx)
			if err != nil {
				return err
			}
			if user == nil {
				next = RouteHome
			}
		}
		route = next
	}
}

// orchestrator builds a fresh game-session flow; one per visit to the game
// screen.
func (a *App) orchestrator() *game.Orchestrator {
	return game.NewOrchestrator(a.client, a.users, a.sessions, a.cfg.Difficulty, a.cfg.AgeRange)
}
