package auth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/core/email"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/password"
	"github.com/dmitrymomot/authkit/core/user"
)

// RegisterParams carries the signup form fields.
type RegisterParams struct {
	Email    string
	Password string
	TeamName string
	Kind     string
}

// RegisterResult reports the created account. PendingActivation is true
// when the account starts disabled and needs manual enablement before it
// can log in.
type RegisterResult struct {
	User              *user.User
	PendingActivation bool
}

// Register validates the signup form, creates the account and sends the
// confirmation email. It never logs the new user in; login stays a
// separate explicit step regardless of whether the account starts
// enabled.
func (s *Service) Register(ctx context.Context, r *http.Request, params RegisterParams) (RegisterResult, error) {
	if !s.cfg.SignupAllowed {
		return RegisterResult{}, ErrRegistrationClosed
	}

	params.Email = strings.TrimSpace(params.Email)
	params.TeamName = strings.TrimSpace(params.TeamName)

	if err := s.validateRegistration(params); err != nil {
		return RegisterResult{}, err
	}

	// Pre-check gives a friendly error; the unique indexes still back it
	// up under races.
	exists, err := s.users.ExistsByEmailOrTeamName(ctx, params.Email, params.TeamName)
	if err != nil {
		return RegisterResult{}, err
	}
	if exists {
		return RegisterResult{}, ErrDuplicateAccount
	}

	hash, err := password.Hash(params.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	u := &user.User{
		Email:        params.Email,
		TeamName:     params.TeamName,
		PasswordHash: hash,
		Class:        user.ClassUser,
		Enabled:      s.cfg.SignupDefaultEnabled,
		Kind:         params.Kind,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return RegisterResult{}, ErrDuplicateAccount
		}
		return RegisterResult{}, err
	}

	s.recordIP(ctx, u.ID, s.clientIP(r))
	s.sendSignupEmail(ctx, u, params.Password)

	s.log.InfoContext(ctx, "account registered",
		logger.Component("auth"),
		logger.Event("register"),
		logger.UserID(u.ID),
		logger.Email(u.Email),
	)
	return RegisterResult{User: u, PendingActivation: !u.Enabled}, nil
}

func (s *Service) validateRegistration(params RegisterParams) error {
	if params.Email == "" {
		return newValidationError("email", "email is required")
	}
	if !email.IsValidAddress(params.Email) {
		return newValidationError("email", "invalid email address")
	}
	if s.whitelist != nil && !s.whitelist(params.Email) {
		return newValidationError("email", "email address is not eligible for registration")
	}
	if params.Password == "" {
		return newValidationError("password", "password is required")
	}
	if params.TeamName == "" {
		return newValidationError("team_name", "team name is required")
	}
	if n := len(params.TeamName); n < s.cfg.TeamNameMinLength || n > s.cfg.TeamNameMaxLength {
		return newValidationError("team_name", "team name must be between %d and %d characters",
			s.cfg.TeamNameMinLength, s.cfg.TeamNameMaxLength)
	}
	return nil
}

// sendSignupEmail sends the account-details confirmation. Failure is
// logged, not returned; the account is already created.
func (s *Service) sendSignupEmail(ctx context.Context, u *user.User, plaintextPassword string) {
	if s.sender == nil {
		return
	}

	shownPassword := "(encrypted)"
	if s.cfg.EmailPasswordOnSignup {
		shownPassword = html.EscapeString(plaintextPassword)
	}
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your account at %s has been created.</p>
<p>Team name: %s<br>
Email: %s<br>
Password: %s</p>
<p><a href="%s">%s</a></p>`,
		html.EscapeString(u.TeamName),
		html.EscapeString(s.cfg.SiteName),
		html.EscapeString(u.TeamName),
		html.EscapeString(u.Email),
		shownPassword,
		html.EscapeString(s.cfg.SiteURL),
		html.EscapeString(s.cfg.SiteURL),
	)

	err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:     u.Email,
		SendToName: u.TeamName,
		Subject:    "Signup successful - account details",
		BodyHTML:   body,
		Tag:        "signup",
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send signup email",
			logger.Component("auth"), logger.UserID(u.ID), logger.Email(u.Email), logger.Error(err))
	}
}
