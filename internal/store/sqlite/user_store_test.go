package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/testutil"
)

func testUser() models.User {
	return models.User{
		ID:         "u-1",
		Username:   "maria",
		Avatar:     "cat",
		Age:        10,
		TotalScore: 120,
		Level:      2,
	}
}

func TestUserStore_CurrentWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)

	user, err := s.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user, "logged-out state is a nil user, not an error")
}

func TestUserStore_SaveAndCurrent(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser()))

	user, err := s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, 120, user.TotalScore)
	assert.Equal(t, 2, user.Level)
}

func TestUserStore_SaveOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser()))

	updated := testUser()
	updated.TotalScore = 250
	updated.Level = 3
	require.NoError(t, s.Save(ctx, updated))

	user, err := s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 250, user.TotalScore)
	assert.Equal(t, 3, user.Level)
}

func TestUserStore_ApplyScoreDelta(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser()))

	// 120 + 90 = 210 → level 3.
	user, err := s.ApplyScoreDelta(ctx, 90)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 210, user.TotalScore)
	assert.Equal(t, 3, user.Level)

	persisted, err := s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 210, persisted.TotalScore)
}

func TestUserStore_ApplyScoreDeltaWithoutUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)

	user, err := s.ApplyScoreDelta(context.Background(), 50)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserStore_Clear(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser()))
	require.NoError(t, s.Clear(ctx))

	user, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserStore_CorruptPayloadDiscarded(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	s := NewUserStore(db)
	ctx := context.Background()

	_, err := db.Exec(
		`INSERT INTO client_storage (storage_key, payload) VALUES (?, ?)`,
		"user-storage", "{not json",
	)
	require.NoError(t, err)

	user, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// The corrupt row is gone.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM client_storage`).Scan(&count))
	assert.Zero(t, count)
}
