package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/user"
)

func testUser() *user.User {
	return &user.User{
		ID:      uuid.New(),
		Email:   "team@example.com",
		Class:   user.ClassUser,
		Enabled: true,
	}
}

func TestNew_Success(t *testing.T) {
	t.Parallel()

	u := testUser()
	params := session.NewSessionParams{
		Fingerprint: "v1:0123456789abcdef0123456789abcdef",
		IP:          "192.0.2.1",
	}

	sess, err := session.New(u, params, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, u.Class, sess.Class)
	assert.True(t, sess.Enabled)
	assert.Equal(t, params.Fingerprint, sess.Fingerprint)
	assert.Equal(t, params.IP, sess.IP)
	assert.False(t, sess.IsExpired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Second)
}

func TestNew_MissingIP(t *testing.T) {
	t.Parallel()

	_, err := session.New(testUser(), session.NewSessionParams{Fingerprint: "fp"}, time.Hour)
	assert.ErrorIs(t, err, session.ErrMissingIP)
}

func TestNew_SnapshotsDisabledFlag(t *testing.T) {
	t.Parallel()

	u := testUser()
	u.Enabled = false

	sess, err := session.New(u, session.NewSessionParams{IP: "192.0.2.1"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, sess.Enabled)
}

func TestRegenerate_RotatesTokenKeepsID(t *testing.T) {
	t.Parallel()

	sess, err := session.New(testUser(), session.NewSessionParams{IP: "192.0.2.1"}, time.Hour)
	require.NoError(t, err)

	id, token := sess.ID, sess.Token

	require.NoError(t, sess.Regenerate())

	assert.Equal(t, id, sess.ID, "ID must survive regeneration")
	assert.NotEqual(t, token, sess.Token, "token must rotate")
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	sess, err := session.New(testUser(), session.NewSessionParams{IP: "192.0.2.1"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, sess.IsExpired())

	sess.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, sess.IsExpired())
}

func TestIsStaff(t *testing.T) {
	t.Parallel()

	u := testUser()
	sess, err := session.New(u, session.NewSessionParams{IP: "192.0.2.1"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, sess.IsStaff())

	u.Class = user.ClassModerator
	staff, err := session.New(u, session.NewSessionParams{IP: "192.0.2.1"}, time.Hour)
	require.NoError(t, err)
	assert.True(t, staff.IsStaff())
}
