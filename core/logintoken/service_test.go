package logintoken_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/logintoken"
)

func newService(t *testing.T) (*logintoken.Service, *logintoken.MemoryStore) {
	t.Helper()
	store := logintoken.NewMemoryStore()
	return logintoken.NewService(store), store
}

func TestIssue_NewSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)
	userID := uuid.New()

	tok, err := svc.Issue(ctx, userID, "", "192.0.2.1")
	require.NoError(t, err)

	assert.Equal(t, userID, tok.UserID)
	assert.Len(t, tok.Series, 32, "16 random bytes hex encoded")
	assert.Len(t, tok.Value, 64, "sha-256 hex digest")
	assert.Equal(t, "192.0.2.1", tok.IPIssued)
	assert.Equal(t, "192.0.2.1", tok.IPLast)
	assert.False(t, tok.CreatedAt.IsZero())
	assert.Equal(t, 1, store.Len())
}

func TestIssue_ExistingSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	tok, err := svc.Issue(ctx, uuid.New(), "fixed-series", "192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, "fixed-series", tok.Series)
}

func TestIssue_TokensNeverRepeat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)
	userID := uuid.New()

	seen := make(map[string]bool)
	for range 50 {
		tok, err := svc.Issue(ctx, userID, "series", "192.0.2.1")
		require.NoError(t, err)
		require.False(t, seen[tok.Value], "token value reused")
		seen[tok.Value] = true
	}
}

func TestConsume_SingleUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	tok, err := svc.Issue(ctx, uuid.New(), "", "192.0.2.1")
	require.NoError(t, err)

	payload := logintoken.CookiePayload{Token: tok.Value, Series: tok.Series}

	consumed, err := svc.Consume(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, tok.UserID, consumed.UserID)
	assert.Equal(t, 0, store.Len(), "consumed row must be deleted")

	// Replaying the identical stale payload fails closed.
	_, err = svc.Consume(ctx, payload)
	assert.ErrorIs(t, err, logintoken.ErrNotFound)
}

func TestConsume_MalformedPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	tests := []logintoken.CookiePayload{
		{},
		{Token: "only-token"},
		{Series: "only-series"},
	}
	for _, payload := range tests {
		_, err := svc.Consume(ctx, payload)
		assert.ErrorIs(t, err, logintoken.ErrMalformedCookie, "payload=%+v", payload)
	}
}

func TestRotate_SeriesContinuity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)
	userID := uuid.New()

	orig, err := svc.Issue(ctx, userID, "", "192.0.2.1")
	require.NoError(t, err)

	fresh, err := svc.Rotate(ctx,
		logintoken.CookiePayload{Token: orig.Value, Series: orig.Series}, "198.51.100.7")
	require.NoError(t, err)

	assert.Equal(t, orig.Series, fresh.Series, "series survives rotation")
	assert.NotEqual(t, orig.Value, fresh.Value, "secret must rotate")
	assert.Equal(t, userID, fresh.UserID)
	assert.Equal(t, "198.51.100.7", fresh.IPLast)
	assert.Equal(t, 1, store.Len(), "old row replaced, not accumulated")
}

func TestRotate_StalePayloadFailsClosed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	orig, err := svc.Issue(ctx, uuid.New(), "", "192.0.2.1")
	require.NoError(t, err)
	payload := logintoken.CookiePayload{Token: orig.Value, Series: orig.Series}

	_, err = svc.Rotate(ctx, payload, "192.0.2.1")
	require.NoError(t, err)

	// The superseded cookie coming back is the theft signal.
	_, err = svc.Rotate(ctx, payload, "192.0.2.1")
	assert.ErrorIs(t, err, logintoken.ErrNotFound)
	assert.Equal(t, 1, store.Len(), "replay must not disturb the live grant")
}

func TestRotate_ConcurrentAtMostOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	orig, err := svc.Issue(ctx, uuid.New(), "", "192.0.2.1")
	require.NoError(t, err)
	payload := logintoken.CookiePayload{Token: orig.Value, Series: orig.Series}

	const racers = 16
	var wg sync.WaitGroup
	results := make([]error, racers)

	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = svc.Rotate(ctx, payload, "192.0.2.1")
		}()
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, logintoken.ErrNotFound)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one racer may consume the token")
	assert.Equal(t, racers-1, losses)
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newService(t)

	tok, err := svc.Issue(ctx, uuid.New(), "", "192.0.2.1")
	require.NoError(t, err)

	payload := logintoken.CookiePayload{Token: tok.Value, Series: tok.Series}
	require.NoError(t, svc.Revoke(ctx, payload))
	assert.Equal(t, 0, store.Len())

	// Idempotent: revoking again and revoking garbage are both fine.
	require.NoError(t, svc.Revoke(ctx, payload))
	require.NoError(t, svc.Revoke(ctx, logintoken.CookiePayload{}))
}

func TestWithClock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := logintoken.NewService(logintoken.NewMemoryStore(),
		logintoken.WithClock(func() time.Time { return fixed }))

	tok, err := svc.Issue(ctx, uuid.New(), "", "192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, fixed, tok.CreatedAt)
}
