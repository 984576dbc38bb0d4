package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/email"
	"github.com/dmitrymomot/authkit/core/iplog"
	"github.com/dmitrymomot/authkit/core/logintoken"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/user"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	clientAddr = "203.0.113.7:51423"
	otherAddr  = "198.51.100.9:33210"
)

type testEnv struct {
	svc      *auth.Service
	users    *user.MemoryStore
	sessions *session.MemoryStore
	tokens   *logintoken.MemoryStore
	ips      *iplog.MemoryStore
	cookies  *cookie.Manager
	sender   *captureSender
}

type captureSender struct {
	sent []email.SendEmailParams
}

func (c *captureSender) SendEmail(_ context.Context, params email.SendEmailParams) error {
	c.sent = append(c.sent, params)
	return nil
}

func testConfig() auth.Config {
	return auth.Config{
		SessionCookieName:    "__session",
		RememberTTL:          30 * 24 * time.Hour,
		FingerprintCheck:     true,
		SignupAllowed:        true,
		SignupDefaultEnabled: false,
		TeamNameMinLength:    3,
		TeamNameMaxLength:    50,
		SiteName:             "Test Site",
		SiteURL:              "https://test.example.com",
		LogoutRedirectURL:    "/",
	}
}

func newTestEnv(t *testing.T, cfg auth.Config, opts ...auth.Option) *testEnv {
	t.Helper()

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	env := &testEnv{
		users:    user.NewMemoryStore(),
		sessions: session.NewMemoryStore(),
		tokens:   logintoken.NewMemoryStore(),
		ips:      iplog.NewMemoryStore(),
		cookies:  cookies,
		sender:   &captureSender{},
	}

	allOpts := append([]auth.Option{
		auth.WithIPLog(env.ips),
		auth.WithEmailSender(env.sender),
	}, opts...)

	env.svc = auth.NewService(cfg,
		session.NewManager(env.sessions, time.Hour),
		logintoken.NewService(env.tokens),
		env.users,
		cookies,
		allOpts...,
	)
	return env
}

func (e *testEnv) createUser(t *testing.T, emailAddr, pass string, class user.Class, enabled bool) *user.User {
	t.Helper()
	hash, err := password.Hash(pass)
	require.NoError(t, err)
	u := &user.User{
		Email:        emailAddr,
		TeamName:     "team-" + strings.SplitN(emailAddr, "@", 2)[0],
		PasswordHash: hash,
		Class:        class,
		Enabled:      enabled,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func newRequest(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

// carryCookies applies Set-Cookie headers from a response to a request the
// way a browser would: the last value for a name wins, deletions drop it.
func carryCookies(rec *httptest.ResponseRecorder, req *http.Request) {
	jar := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(jar, c.Name)
			continue
		}
		jar[c.Name] = c
	}
	for _, c := range jar {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
}

func (e *testEnv) login(t *testing.T, emailAddr, pass string, remember bool) (*httptest.ResponseRecorder, session.Session) {
	t.Helper()
	rec := httptest.NewRecorder()
	sess, err := e.svc.Login(context.Background(), rec, newRequest(clientAddr), auth.LoginParams{
		Email:      emailAddr,
		Password:   pass,
		RememberMe: remember,
	})
	require.NoError(t, err)
	return rec, sess
}
