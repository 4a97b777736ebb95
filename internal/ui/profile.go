package ui

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/models"
)

// profilePage fetches statistics, the intelligence profile, and the
// achievements concurrently and renders what resolved.
func (a *App) profilePage(ctx context.Context) (Route, error) {
	user, err := a.users.Current(ctx)
	if err != nil || user == nil {
		return RouteHome, err
	}

	a.p.println()
	a.p.println("⏳ Cargando perfil...")

	var (
		stats        *models.Statistics
		intelligence *models.IntelligenceProfile
		achievements []models.Achievement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := a.client.Statistics(gctx, user.ID)
		if err != nil {
			a.log.Error("profile statistics failed: %v", err)
			return nil
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		p, err := a.client.AnalyzeIntelligence(gctx, user.ID)
		if err != nil {
			a.log.Error("profile intelligence failed: %v", err)
			return nil
		}
		intelligence = p
		return nil
	})
	g.Go(func() error {
		achs, err := a.client.Achievements(gctx, user.ID)
		if err != nil {
			a.log.Error("profile achievements failed: %v", err)
			return nil
		}
		achievements = achs
		return nil
	})
	_ = g.Wait()

	avatar := catalog.AvatarByID(user.Avatar)
	a.p.println()
	a.p.printf("%s %s — Nivel %d, %d puntos\n", avatar.Emoji, user.Username, user.Level, user.TotalScore)

	if stats != nil {
		a.p.println()
		a.p.println("📊 Estadísticas")
		a.p.printf("  Juegos jugados:  %d\n", stats.GamesPlayed)
		a.p.printf("  Temas completados: %d\n", stats.TopicsCompleted)
		a.p.printf("  🧩 Trivia: %d pts   🏕️ Aventura: %d pts   🛒 Mercadito: %d pts\n",
			stats.TriviaScore, stats.AdventureScore, stats.MarketScore)
	}

	if intelligence != nil && len(intelligence.Scores) > 0 {
		a.p.println()
		a.p.println("🧠 Inteligencias")
		renderIntelligenceBars(a.p, intelligence.Scores)
	}

	if len(achievements) > 0 {
		a.p.println()
		a.p.println("🏅 Logros")
		for _, ach := range achievements {
			a.p.printf("  • %s — %s\n", ach.Title, ach.Description)
		}
	}

	a.p.println()
	idx, err := a.p.pick("¿Qué quieres hacer?", []string{
		"📊 Volver al panel",
		"🎮 Nuevo Juego",
		"Salir",
	})
	if err != nil {
		return RouteQuit, err
	}
	switch idx {
	case 0:
		return RouteDashboard, nil
	case 1:
		return RouteGameSession, nil
	default:
		return RouteQuit, nil
	}
}
