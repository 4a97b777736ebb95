package ui

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yachai/yachai-cli/internal/catalog"
	"github.com/yachai/yachai-cli/internal/errors"
	"github.com/yachai/yachai-cli/internal/models"
)

// chatPage is the polling chat room. A background poller replaces the local
// snapshot wholesale every interval; a stale in-flight fetch can transiently
// resurrect a just-deleted message until the next poll, an accepted
// staleness window. Messages over the length cap are rejected locally with
// no network call.
func (a *App) chatPage(ctx context.Context) (Route, error) {
	user, err := a.users.Current(ctx)
	if err != nil || user == nil {
		return RouteHome, err
	}

	a.p.println()
	a.p.println("💬 Chat General — conversa con otros jugadores")
	a.p.println("Escribe un mensaje, /ver para refrescar, /borrar N para eliminar, /volver para salir.")

	var (
		mu       sync.Mutex
		snapshot []models.ChatMessage
	)
	replace := func(msgs []models.ChatMessage) {
		mu.Lock()
		snapshot = msgs
		mu.Unlock()
	}
	current := func() []models.ChatMessage {
		mu.Lock()
		defer mu.Unlock()
		return snapshot
	}

	load := func(ctx context.Context) {
		msgs, err := a.client.ChatMessages(ctx, a.cfg.ChatLimit)
		if err != nil {
			a.log.Error("chat fetch failed: %v", err)
			return
		}
		replace(msgs)
	}
	load(ctx)

	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go func() {
		ticker := time.NewTicker(a.cfg.ChatPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				load(pollCtx)
			}
		}
	}()

	a.renderChat(current(), user.ID)

	for {
		input, err := a.p.line(">")
		if err != nil {
			return RouteQuit, err
		}

		switch {
		case input == "":
			continue

		case input == "/volver":
			return RouteDashboard, nil

		case input == "/ver":
			a.renderChat(current(), user.ID)

		case strings.HasPrefix(input, "/borrar "):
			raw := strings.TrimSpace(strings.TrimPrefix(input, "/borrar "))
			n, convErr := strconv.Atoi(raw)
			msgs := current()
			if convErr != nil || n < 1 || n > len(msgs) {
				a.p.println("⚠️  Número de mensaje inválido")
				continue
			}
			msg := msgs[n-1]
			if msg.UserID != user.ID {
				a.p.println("⚠️  Solo puedes eliminar tus propios mensajes")
				continue
			}
			if err := a.client.DeleteChatMessage(ctx, msg.ID, user.ID); err != nil {
				a.log.Error("chat delete failed: %v", err)
				a.p.printf("⚠️  %s\n", errors.UserMessage(err, "Error al eliminar el mensaje"))
				continue
			}
			load(ctx)
			a.renderChat(current(), user.ID)

		default:
			if len([]rune(input)) > models.MaxChatMessageLen {
				// Rejected locally; nothing goes to the network.
				a.p.printf("⚠️  El mensaje supera los %d caracteres\n", models.MaxChatMessageLen)
				continue
			}
			if _, err := a.client.SendChatMessage(ctx, user.ID, user.Username, user.Avatar, input); err != nil {
				a.log.Error("chat send failed: %v", err)
				a.p.printf("⚠️  %s\n", errors.UserMessage(err, "Error al enviar el mensaje"))
				continue
			}
			load(ctx)
			a.renderChat(current(), user.ID)
		}
	}
}

func (a *App) renderChat(msgs []models.ChatMessage, ownID string) {
	a.p.println()
	if len(msgs) == 0 {
		a.p.println("(sin mensajes todavía)")
		return
	}
	for i, msg := range msgs {
		avatar := catalog.AvatarByID(msg.Avatar)
		marker := " "
		if msg.UserID == ownID {
			marker = "*"
		}
		a.p.printf("%s%3d. [%s] %s %s: %s\n",
			marker, i+1, msg.CreatedAt.Format("15:04"), avatar.Emoji, msg.Username, msg.Message)
	}
}
