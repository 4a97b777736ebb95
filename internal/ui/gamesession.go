package ui

import (
	"context"
	"sort"
	"strings"

	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/game"
	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/score"
)

// gameSessionPage drives one full session: topic and mode selection, the
// loading wait, interactive play, submission, and the result screen. Each
// visit gets a fresh orchestrator.
func (a *App) gameSessionPage(ctx context.Context) (Route, error) {
	user, err := a.users.Current(ctx)
	if err != nil || user == nil {
		return RouteHome, err
	}

	orch := a.orchestrator()
	defer orch.Abandon()

	for {
		topic, gameType, back, err := a.selectTopicAndMode()
		if err != nil {
			return RouteQuit, err
		}
		if back {
			return RouteDashboard, nil
		}

		label := catalog.GameTypeLabel(gameType)
		a.p.println()
		a.p.printf("🤖 La IA está creando tu juego de %s sobre %q...\n", label.Name, topic)

		if err := orch.Start(ctx, user.ID, topic, gameType); err != nil {
			a.p.printf("⚠️  %s\n", orch.LastError())
			continue
		}

		player, err := orch.NewPlayer()
		if err != nil {
			a.log.Error("player build failed: %v", err)
			a.p.println("⚠️  Error al iniciar el juego")
			orch.Abandon()
			continue
		}

		var abandoned bool
		switch pl := player.(type) {
		case *game.TriviaRound:
			abandoned, err = a.playTrivia(pl)
		case *game.AdventureRun:
			abandoned, err = a.playAdventure(pl)
		case *game.MarketRun:
			abandoned, err = a.playMarket(pl)
		}
		if err != nil {
			return RouteQuit, err
		}
		if abandoned {
			orch.Abandon()
			continue
		}

		result, route, err := a.submitWithRetry(ctx, orch, player)
		if err != nil {
			return RouteQuit, err
		}
		if result == nil {
			// Submission abandoned; the session is discarded.
			orch.Abandon()
			if route != "" {
				return route, nil
			}
			continue
		}

		again, route, err := a.renderResult(result)
		if err != nil {
			return RouteQuit, err
		}
		if !again {
			return route, nil
		}
		orch.PlayAgain()
	}
}

// selectTopicAndMode runs the selection screen. back is true when the user
// chose to return to the dashboard instead of playing.
func (a *App) selectTopicAndMode() (topic string, gameType models.GameType, back bool, err error) {
	a.p.println()
	a.p.println("🎯 ¿Qué quieres aprender hoy?")

	options := make([]string, 0, len(catalog.SuggestedTopics)+2)
	for _, t := range catalog.SuggestedTopics {
		options = append(options, t.Emoji+" "+t.Title+" ("+t.Category+")")
	}
	options = append(options, "✏️  Escribir mi propio tema", "↩️  Volver al panel")

	idx, err := a.p.pick("Elige un tema:", options)
	if err != nil {
		return "", "", false, err
	}
	switch {
	case idx == len(options)-1:
		return "", "", true, nil
	case idx == len(options)-2:
		for topic == "" {
			topic, err = a.p.line("Escribe el tema que quieras aprender:")
			if err != nil {
				return "", "", false, err
			}
			if strings.TrimSpace(topic) == "" {
				a.p.println("⚠️  El tema es requerido")
				topic = ""
			}
		}
	default:
		topic = catalog.SuggestedTopics[idx].Title
	}

	a.p.println()
	modeIdx, err := a.p.pick("¿Cómo quieres jugar?", []string{
		"🧩 Trivia — responde preguntas",
		"🏕️ Aventura — vive una historia",
		"🛒 Mercadito — compra lo correcto",
	})
	if err != nil {
		return "", "", false, err
	}
	modes := []models.GameType{models.GameTrivia, models.GameAdventure, models.GameMarket}
	return topic, modes[modeIdx], false, nil
}

// playTrivia runs the question loop. abandoned is true when the user quits
// mid-round; a finished round always goes on to submission.
func (a *App) playTrivia(round *game.TriviaRound) (abandoned bool, err error) {
	for {
		q := round.Question()
		a.p.println()
		a.p.printf("Pregunta %d de %d\n", round.Index()+1, round.Total())
		a.p.println(q.Question)

		options := make([]string, len(q.Options)+1)
		copy(options, q.Options)
		options[len(q.Options)] = "🚪 Abandonar el juego"

		idx, err := a.p.pick("Tu respuesta:", options)
		if err != nil {
			return false, err
		}
		if idx == len(q.Options) {
			return true, nil
		}

		correct, points, selErr := round.Select(idx)
		if selErr != nil {
			a.log.Error("trivia select failed: %v", selErr)
			continue
		}
		if correct {
			a.p.printf("✅ ¡Correcto! +%d puntos\n", points)
		} else {
			a.p.printf("❌ Incorrecto. La respuesta era: %s\n", q.Options[q.CorrectAnswer])
		}
		if q.Explanation != "" {
			a.p.printf("💡 %s\n", q.Explanation)
		}

		more, advErr := round.Advance()
		if advErr != nil {
			a.log.Error("trivia advance failed: %v", advErr)
		}
		if !more {
			a.p.println()
			a.p.println("🏁 ¡Terminaste la trivia!")
			return false, nil
		}
	}
}

// playAdventure runs the story loop. Finishing the last scene still waits
// for an explicit "Ver Resultados" before submission.
func (a *App) playAdventure(run *game.AdventureRun) (abandoned bool, err error) {
	story := run.Story()
	total := story.TotalScenes
	if total == 0 {
		total = len(story.Scenes)
	}

	a.p.println()
	a.p.printf("🏕️ %s\n", story.Title)
	a.p.println(story.Introduction)

	for !run.Done() {
		scene := run.Scene()
		a.p.println()
		a.p.printf("Escena %d de %d\n", run.SceneIndex()+1, total)
		a.p.println(scene.Description)

		options := make([]string, len(scene.Choices)+1)
		for i, c := range scene.Choices {
			options[i] = c.Text
		}
		options[len(scene.Choices)] = "🚪 Abandonar el juego"

		idx, err := a.p.pick("¿Qué haces?", options)
		if err != nil {
			return false, err
		}
		if idx == len(scene.Choices) {
			return true, nil
		}

		choice := scene.Choices[idx]
		if chooseErr := run.Choose(idx); chooseErr != nil {
			a.log.Error("adventure choose failed: %v", chooseErr)
			continue
		}
		if choice.Feedback != "" {
			a.p.printf("💬 %s\n", choice.Feedback)
		}
		if choice.Points > 0 {
			a.p.printf("✨ +%d puntos\n", choice.Points)
		}
		if scene.LearningPoint != "" {
			a.p.printf("💡 %s\n", scene.LearningPoint)
		}
	}

	a.p.println()
	a.p.println(story.Conclusion)
	a.p.println()
	if _, err := a.p.pick("La historia terminó.", []string{"🏆 Ver Resultados"}); err != nil {
		return false, err
	}
	return false, nil
}

// playMarket runs the mission loop: toggle items, peek at the hint, submit,
// then review each item before moving on.
func (a *App) playMarket(run *game.MarketRun) (abandoned bool, err error) {
	for {
		mission := run.Mission()
		a.p.println()
		a.p.printf("Misión %d de %d: %s\n", run.Index()+1, run.Total(), mission.Title)
		a.p.println(mission.Description)

		for !run.Submitted() {
			a.p.println()
			for i, item := range mission.Items {
				mark := "  "
				if run.IsSelected(item.ID) {
					mark = "🛒"
				}
				a.p.printf("  %d) %s %s %s — S/ %.2f\n", i+1, mark, item.Image, item.Name, item.Price)
			}

			options := make([]string, len(mission.Items))
			for i, item := range mission.Items {
				options[i] = "Elegir/quitar " + item.Name
			}
			options = append(options, "💡 Ver pista", "✅ Entregar compra", "🚪 Abandonar el juego")

			idx, err := a.p.pick("¿Qué haces?", options)
			if err != nil {
				return false, err
			}
			switch idx {
			case len(options) - 1:
				return true, nil
			case len(options) - 2:
				if len(run.Selected()) == 0 {
					a.p.println("⚠️  Elige al menos un producto primero")
					continue
				}
				answer, subErr := run.Submit()
				if subErr != nil {
					a.log.Error("market submit failed: %v", subErr)
					continue
				}
				a.p.println()
				for _, item := range mission.Items {
					switch {
					case run.IsCorrectItem(item.ID) && run.IsSelected(item.ID):
						a.p.printf("  ✅ %s %s\n", item.Image, item.Name)
					case run.IsCorrectItem(item.ID):
						a.p.printf("  ⚠️  %s %s (te faltó)\n", item.Image, item.Name)
					case run.IsSelected(item.ID):
						a.p.printf("  ❌ %s %s (no era necesario)\n", item.Image, item.Name)
					}
				}
				a.p.printf("✨ +%d de %d puntos\n", answer.Points, mission.Points)
			case len(options) - 3:
				if mission.Hint != "" {
					a.p.printf("💡 %s\n", mission.Hint)
				} else {
					a.p.println("💡 No hay pista para esta misión")
				}
			default:
				if togErr := run.Toggle(mission.Items[idx].ID); togErr != nil {
					a.log.Error("market toggle failed: %v", togErr)
				}
			}
		}

		more, advErr := run.Advance()
		if advErr != nil {
			a.log.Error("market advance failed: %v", advErr)
		}
		if !more {
			a.p.println()
			a.p.println("🏁 ¡Completaste todas las misiones!")
			return false, nil
		}
	}
}

// submitWithRetry sends the answers, offering a manual retry on failure.
// A nil result with an empty route means the user gave up on the session.
func (a *App) submitWithRetry(ctx context.Context, orch *game.Orchestrator, player game.Player) (*models.GameResult, Route, error) {
	for {
		result, err := orch.Complete(ctx, player.Answers(), player.Score())
		if err == nil {
			return result, "", nil
		}
		a.p.printf("⚠️  %s\n", orch.LastError())
		idx, pickErr := a.p.pick("No se pudieron enviar tus resultados.", []string{
			"🔄 Intentar de nuevo",
			"📊 Volver al panel",
		})
		if pickErr != nil {
			return nil, "", pickErr
		}
		if idx == 1 {
			return nil, RouteDashboard, nil
		}
	}
}

// renderResult shows the backend's verdict. again is true when the user
// wants another round.
func (a *App) renderResult(result *models.GameResult) (again bool, route Route, err error) {
	pct := int(result.Percentage + 0.5)
	if pct == 0 && result.MaxScore > 0 {
		pct = score.Percentage(result.Score, result.MaxScore)
	}

	a.p.println()
	a.p.println("🏆 Resultados")
	a.p.printf("%s\n", score.Message(pct))
	a.p.printf("Obtuviste %d de %d puntos (%d%%)\n", result.Score, result.MaxScore, pct)
	if result.CoinsEarned > 0 {
		a.p.printf("🪙 +%d monedas\n", result.CoinsEarned)
	}
	if result.Feedback != "" {
		a.p.println()
		a.p.println(result.Feedback)
	}

	if top := topIntelligences(result.IntelligenceAnalysis, 3); len(top) > 0 {
		a.p.println()
		a.p.println("🧠 Inteligencias que ejercitaste:")
		for _, id := range top {
			intel := catalog.IntelligenceByID(id)
			a.p.printf("  %s %s: %d pts\n", intel.Emoji, intel.Name, result.IntelligenceAnalysis[id])
		}
	}

	if len(result.Recommendations) > 0 {
		a.p.println()
		a.p.println("📌 Para seguir aprendiendo:")
		for _, rec := range result.Recommendations {
			a.p.printf("  • %s\n", rec)
		}
	}

	a.p.println()
	idx, err := a.p.pick("¿Qué quieres hacer?", []string{
		"🔄 Jugar de Nuevo",
		"📊 Ver Mi Progreso",
	})
	if err != nil {
		return false, RouteQuit, err
	}
	if idx == 0 {
		return true, "", nil
	}
	return false, RouteDashboard, nil
}

// topIntelligences returns the ids of the n highest-scoring categories,
// ties broken by id for a stable display.
func topIntelligences(scores map[string]int, n int) []string {
	ids := make([]string, 0, len(scores))
	for id, v := range scores {
		if v > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
