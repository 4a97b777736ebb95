package ui

import (
	"context"

	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/errors"
)

// loginPage looks a user up by name. The 3-character minimum is enforced
// locally before any request.
func (a *App) loginPage(ctx context.Context) (Route, error) {
	a.p.println()
	a.p.println("🎮 Bienvenido de Vuelta")
	a.p.println()

	for {
		username, err := a.p.line("Nombre de usuario (o vacío para volver):")
		if err != nil {
			return RouteQuit, err
		}
		if username == "" {
			return RouteHome, nil
		}
		if len([]rune(username)) < 3 {
			a.p.println("⚠️  El nombre debe tener al menos 3 caracteres")
			continue
		}

		user, err := a.client.GetUserByUsername(ctx, username)
		if err != nil {
			a.log.Error("login failed: %v", err)
			if errors.IsNotFound(err) {
				a.p.println("⚠️  Usuario no encontrado. ¿Quieres crear una cuenta nueva?")
				return RouteHome, nil
			}
			a.p.printf("⚠️  %s\n", errors.UserMessage(err, "Error al iniciar sesión"))
			continue
		}

		if err := a.users.Save(ctx, *user); err != nil {
			return RouteQuit, err
		}
		a.p.printf("\n¡Hola, %s! %s\n", user.Username, catalog.AvatarByID(user.Avatar).Emoji)
		return RouteDashboard, nil
	}
}
