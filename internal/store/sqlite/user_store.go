package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/yachai/yachai-cli/internal/logger"
	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/score"
	"github.com/yachai/yachai-cli/internal/store"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// userStorageKey is the single key the user record lives under, the same
// contract a browser client would have with localStorage.
const userStorageKey = "user-storage"

type userStore struct {
	db *sql.DB
}

// NewUserStore creates a persisted UserStore backed by the local SQLite file.
func NewUserStore(db *sql.DB) store.UserStore {
	return &userStore{db: db}
}

func (s *userStore) Current(ctx context.Context) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_store")

	query, args, err := sqlBuilder.
		Select("payload").
		From("client_storage").
		Where(squirrel.Eq{"storage_key": userStorageKey}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var payload string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no persisted user")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to read persisted user: %v", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		log.Error("persisted user is corrupt, discarding: %v", err)
		return nil, s.Clear(ctx)
	}
	return &user, nil
}

func (s *userStore) Save(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx).WithPrefix("user_store")

	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	query, args, err := sqlBuilder.
		Insert("client_storage").
		Columns("storage_key", "payload").
		Values(userStorageKey, string(payload)).
		Suffix("ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to persist user: %v", err)
		return err
	}
	log.Debug("persisted user %s", user.Username)
	return nil
}

func (s *userStore) ApplyScoreDelta(ctx context.Context, points int) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_store")

	user, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.TotalScore += points
	user.Level = score.LevelForScore(user.TotalScore)

	if err := s.Save(ctx, *user); err != nil {
		return nil, err
	}
	log.Debug("score +%d, total=%d, level=%d", points, user.TotalScore, user.Level)
	return user, nil
}

func (s *userStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("user_store")

	query, args, err := sqlBuilder.
		Delete("client_storage").
		Where(squirrel.Eq{"storage_key": userStorageKey}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to clear persisted user: %v", err)
		return err
	}
	return nil
}
