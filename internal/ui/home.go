package ui

import (
	"context"
	"strings"

	"github.com/yachai/yachai-cli/internal/api"
	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/errors"
)

// homePage is the registration screen. All validation happens before any
// request is sent.
func (a *App) homePage(ctx context.Context) (Route, error) {
	a.p.println()
	a.p.println("✨ Bienvenido a YachAI ✨")
	a.p.println("¡Aprende jugando con inteligencia artificial! 🚀")
	a.p.println()

	idx, err := a.p.pick("Elige una opción:", []string{
		"Crear una cuenta nueva",
		"Ya tengo cuenta (iniciar sesión)",
		"Salir",
	})
	if err != nil {
		return RouteQuit, err
	}
	switch idx {
	case 1:
		return RouteLogin, nil
	case 2:
		return RouteQuit, nil
	}

	for {
		username, err := a.p.line("¿Cómo te llamas?")
		if err != nil {
			return RouteQuit, err
		}
		password, err := a.p.line("Crea una contraseña (mínimo 6 caracteres):")
		if err != nil {
			return RouteQuit, err
		}
		ageRaw, err := a.p.line("¿Cuántos años tienes? (5-18):")
		if err != nil {
			return RouteQuit, err
		}

		if msg := validateRegistration(username, password, ageRaw); msg != "" {
			a.p.printf("⚠️  %s\n\n", msg)
			continue
		}
		age := mustAtoi(ageRaw)

		avatarNames := make([]string, len(catalog.Avatars))
		for i, av := range catalog.Avatars {
			avatarNames[i] = av.Emoji + " " + av.Name
		}
		avatarIdx, err := a.p.pick("Elige tu avatar:", avatarNames)
		if err != nil {
			return RouteQuit, err
		}

		user, err := a.client.Register(ctx, api.RegisterRequest{
			Username: strings.TrimSpace(username),
			Password: strings.TrimSpace(password),
			Avatar:   catalog.Avatars[avatarIdx].ID,
			Age:      age,
		})
		if err != nil {
			a.log.Error("registration failed: %v", err)
			a.p.printf("⚠️  %s\n\n", errors.UserMessage(err, "Error al registrar usuario"))
			continue
		}

		if err := a.users.Save(ctx, *user); err != nil {
			return RouteQuit, err
		}
		a.p.printf("\n¡Cuenta creada, %s! %s\n", user.Username, catalog.AvatarByID(user.Avatar).Emoji)
		return RouteGameSession, nil
	}
}

// validateRegistration returns a user-facing message, empty when the form is
// valid.
func validateRegistration(username, password, ageRaw string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return "El nombre es requerido"
	}
	if len([]rune(username)) < 3 || len([]rune(username)) > 20 {
		return "El nombre debe tener entre 3 y 20 caracteres"
	}
	if len(strings.TrimSpace(password)) < 6 {
		return "La contraseña debe tener al menos 6 caracteres"
	}
	age := mustAtoi(ageRaw)
	if age < 5 || age > 18 {
		return "La edad debe estar entre 5 y 18 años"
	}
	return ""
}

func mustAtoi(s string) int {
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	if s == "" {
		return -1
	}
	return n
}
