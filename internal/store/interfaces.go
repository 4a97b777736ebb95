package store

import (
	"context"

	"github.com/yachai/yachai-cli/internal/models"
)

// UserStore holds the logged-in user record and persists it across restarts
// under a single storage key. Views receive the store by reference; there is
// no ambient global access.
type UserStore interface {
	// Current returns the persisted user, or nil when nobody is logged in.
	Current(ctx context.Context) (*models.User, error)
	// Save replaces the persisted user on login or registration.
	Save(ctx context.Context, user models.User) error
	// ApplyScoreDelta adds points to the cumulative score and recomputes the
	// level locally; the backend recomputes both authoritatively. Returns the
	// updated record.
	ApplyScoreDelta(ctx context.Context, points int) (*models.User, error)
	// Clear removes the persisted user on logout.
	Clear(ctx context.Context) error
}
