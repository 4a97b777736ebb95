package ui

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/score"
)

// dashboardPage fetches statistics, the leaderboard, and the recent sessions
// concurrently and renders whatever resolved; a failed call is logged and
// its section stays empty. The intelligence profile is requested afterwards,
// only when there is play history.
func (a *App) dashboardPage(ctx context.Context) (Route, error) {
	user, err := a.users.Current(ctx)
	if err != nil || user == nil {
		return RouteHome, err
	}

	a.p.println()
	a.p.println("⏳ Cargando...")

	var (
		stats       *models.Statistics
		leaderboard []models.LeaderboardEntry
		sessions    []models.GameSession
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := a.client.Statistics(gctx, user.ID)
		if err != nil {
			a.log.Error("dashboard statistics failed: %v", err)
			return nil
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		b, err := a.client.Leaderboard(gctx, a.cfg.LeaderboardLimit)
		if err != nil {
			a.log.Error("dashboard leaderboard failed: %v", err)
			return nil
		}
		leaderboard = b
		return nil
	})
	g.Go(func() error {
		s, err := a.client.Sessions(gctx, user.ID, a.cfg.SessionLimit)
		if err != nil {
			a.log.Error("dashboard sessions failed: %v", err)
			return nil
		}
		sessions = s
		return nil
	})
	_ = g.Wait()

	var intelligence *models.IntelligenceProfile
	if stats != nil && stats.GamesPlayed > 0 {
		profile, err := a.client.AnalyzeIntelligence(ctx, user.ID)
		if err != nil {
			a.log.Error("intelligence analysis failed: %v", err)
		} else {
			intelligence = profile
		}
	}

	avatar := catalog.AvatarByID(user.Avatar)
	a.p.println()
	a.p.printf("%s ¡Hola, %s!\n", avatar.Emoji, user.Username)
	a.p.printf("Nivel %d • %d puntos\n", user.Level, user.TotalScore)
	a.p.println()

	if stats != nil {
		a.p.printf("🎮 Juegos Completados: %d\n", stats.GamesPlayed)
		a.p.printf("📚 Temas Aprendidos:   %d\n", stats.TopicsCompleted)
	}
	if rank := rankOf(user.ID, leaderboard); rank > 0 {
		a.p.printf("🏆 Ranking Global:     #%d\n", rank)
	}

	if intelligence != nil && len(intelligence.Scores) > 0 {
		a.p.println()
		a.p.println("🧠 Tu Perfil de Inteligencias")
		if intelligence.StrongestName != "" {
			a.p.printf("Tu punto fuerte: %s\n", intelligence.StrongestName)
		}
		if intelligence.ProfileDescription != "" {
			a.p.println(intelligence.ProfileDescription)
		}
		renderIntelligenceBars(a.p, intelligence.Scores)
	}

	if len(sessions) > 0 {
		a.p.println()
		a.p.println("🕑 Sesiones Recientes")
		for _, s := range sessions {
			label := catalog.GameTypeLabel(s.GameType)
			a.p.printf("  %s %s — %q, %d puntos\n", label.Emoji, label.Name, s.Topic, s.Score)
		}
	}

	if len(leaderboard) > 0 {
		a.p.println()
		a.p.println("🏆 Ranking")
		for i, entry := range leaderboard {
			marker := "  "
			if entry.ID == user.ID {
				marker = "→ "
			}
			a.p.printf("%s%2d. %s %-20s %6d pts (nivel %d)\n",
				marker, i+1, catalog.AvatarByID(entry.Avatar).Emoji, entry.Username, entry.TotalScore, entry.Level)
		}
	}

	a.p.println()
	idx, err := a.p.pick("¿Qué quieres hacer?", []string{
		"🎮 Nuevo Juego",
		"👤 Mi Perfil",
		"💬 Chat General",
		"🚪 Cerrar sesión",
		"Salir",
	})
	if err != nil {
		return RouteQuit, err
	}
	switch idx {
	case 0:
		return RouteGameSession, nil
	case 1:
		return RouteProfile, nil
	case 2:
		return RouteChat, nil
	case 3:
		if err := a.users.Clear(ctx); err != nil {
			return RouteQuit, err
		}
		return RouteHome, nil
	default:
		return RouteQuit, nil
	}
}

func rankOf(userID string, board []models.LeaderboardEntry) int {
	for i, entry := range board {
		if entry.ID == userID {
			return i + 1
		}
	}
	return 0
}

// renderIntelligenceBars draws one proportional bar per non-zero category,
// scaled against the strongest one.
func renderIntelligenceBars(p *prompter, scores map[string]int) {
	max := 0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}
	for _, intel := range catalog.Intelligences {
		v := scores[intel.ID]
		if v == 0 {
			continue
		}
		width := score.Percentage(v, max) / 5 // bar of at most 20 cells
		bar := ""
		for i := 0; i < width; i++ {
			bar += "█"
		}
		p.printf("  %s %-18s %s %d pts\n", intel.Emoji, intel.Name, bar, v)
	}
}
