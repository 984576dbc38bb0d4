package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

func newManager(t *testing.T, ttl time.Duration) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	return session.NewManager(store, ttl), store
}

func TestManager_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr, store := newManager(t, time.Hour)

	sess, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.1"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	got, err := mgr.GetByToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.UserID, got.UserID)
}

func TestManager_GetByToken_NotFound(t *testing.T) {
	t.Parallel()

	mgr, _ := newManager(t, time.Hour)

	_, err := mgr.GetByToken(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager_GetByToken_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr, store := newManager(t, time.Hour)

	sess, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.1"})
	require.NoError(t, err)

	// Force expiry server-side.
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, &sess))

	_, err = mgr.GetByToken(ctx, sess.Token)
	assert.ErrorIs(t, err, session.ErrExpired)
	assert.Equal(t, 0, store.Len(), "expired session must be cleared")
}

func TestManager_Regenerate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr, store := newManager(t, time.Hour)

	sess, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.1"})
	require.NoError(t, err)
	oldToken := sess.Token

	require.NoError(t, mgr.Regenerate(ctx, &sess))

	assert.NotEqual(t, oldToken, sess.Token)
	assert.Equal(t, 1, store.Len(), "old entry removed, new one stored")

	_, err = mgr.GetByToken(ctx, oldToken)
	assert.ErrorIs(t, err, session.ErrNotFound, "old token must be dead")

	got, err := mgr.GetByToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID, "logical session survives")
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr, _ := newManager(t, time.Hour)

	sess, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.1"})
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, sess.Token))

	_, err = mgr.GetByToken(ctx, sess.Token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManager_CleanupExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mgr, store := newManager(t, time.Hour)

	live, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.1"})
	require.NoError(t, err)

	dead, err := mgr.Create(ctx, testUser(), session.NewSessionParams{IP: "192.0.2.2"})
	require.NoError(t, err)
	dead.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, &dead))

	deleted, err := mgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = mgr.GetByToken(ctx, live.Token)
	assert.NoError(t, err)
}
