package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/user"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	params := func() auth.RegisterParams {
		return auth.RegisterParams{
			Email:    "new@example.com",
			Password: "s3cret-pass",
			TeamName: "Night Owls",
			Kind:     "onsite",
		}
	}

	t.Run("creates pending account by default", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, testConfig())

		res, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		require.NoError(t, err)
		require.NotNil(t, res.User)
		assert.True(t, res.PendingActivation)
		assert.False(t, res.User.Enabled)
		assert.Equal(t, user.ClassUser, res.User.Class)
		assert.True(t, password.Verify("s3cret-pass", res.User.PasswordHash))

		stored, err := env.users.GetByEmail(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, stored.ID)
	})

	t.Run("default-enabled config skips activation", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.SignupDefaultEnabled = true
		env := newTestEnv(t, cfg)

		res, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		require.NoError(t, err)
		assert.False(t, res.PendingActivation)
		assert.True(t, res.User.Enabled)
	})

	t.Run("closed signup", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.SignupAllowed = false
		env := newTestEnv(t, cfg)

		_, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		assert.ErrorIs(t, err, auth.ErrRegistrationClosed)
	})

	t.Run("field validation", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, testConfig())

		cases := []struct {
			name   string
			mutate func(*auth.RegisterParams)
			field  string
		}{
			{"missing email", func(p *auth.RegisterParams) { p.Email = "" }, "email"},
			{"bad email", func(p *auth.RegisterParams) { p.Email = "not-an-address" }, "email"},
			{"missing password", func(p *auth.RegisterParams) { p.Password = "" }, "password"},
			{"missing team name", func(p *auth.RegisterParams) { p.TeamName = "" }, "team_name"},
			{"team name too short", func(p *auth.RegisterParams) { p.TeamName = "ab" }, "team_name"},
			{"team name too long", func(p *auth.RegisterParams) { p.TeamName = strings.Repeat("x", 51) }, "team_name"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := params()
				tc.mutate(&p)
				_, err := env.svc.Register(context.Background(), newRequest(clientAddr), p)
				var vErr *auth.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.field, vErr.Field)
			})
		}
	})

	t.Run("duplicate email or team name", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, testConfig())
		_, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		require.NoError(t, err)

		dupEmail := params()
		dupEmail.TeamName = "Other Team"
		_, err = env.svc.Register(context.Background(), newRequest(clientAddr), dupEmail)
		assert.ErrorIs(t, err, auth.ErrDuplicateAccount)

		dupTeam := params()
		dupTeam.Email = "other@example.com"
		_, err = env.svc.Register(context.Background(), newRequest(clientAddr), dupTeam)
		assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
	})

	t.Run("whitelist predicate rejects", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, testConfig(), auth.WithEmailWhitelist(func(addr string) bool {
			return strings.HasSuffix(addr, "@allowed.org")
		}))

		_, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		var vErr *auth.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)

		p := params()
		p.Email = "ok@allowed.org"
		_, err = env.svc.Register(context.Background(), newRequest(clientAddr), p)
		assert.NoError(t, err)
	})

	t.Run("sends signup email without plaintext password", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, testConfig())

		_, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		require.NoError(t, err)

		require.Len(t, env.sender.sent, 1)
		msg := env.sender.sent[0]
		assert.Equal(t, "new@example.com", msg.SendTo)
		assert.Equal(t, "signup", msg.Tag)
		assert.Contains(t, msg.BodyHTML, "Night Owls")
		assert.Contains(t, msg.BodyHTML, "(encrypted)")
		assert.NotContains(t, msg.BodyHTML, "s3cret-pass")
	})

	t.Run("includes password when configured", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.EmailPasswordOnSignup = true
		env := newTestEnv(t, cfg)

		_, err := env.svc.Register(context.Background(), newRequest(clientAddr), params())
		require.NoError(t, err)
		require.Len(t, env.sender.sent, 1)
		assert.Contains(t, env.sender.sent[0].BodyHTML, "s3cret-pass")
	})
}
