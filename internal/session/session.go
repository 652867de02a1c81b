package session

import (
	"context"
	"fmt"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/store"
	"github.com/yadvendra249/olio-cab-connect/internal/mockapi"
	"github.com/yadvendra249/olio-cab-connect/internal/notify"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/models"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

// Session owns the per-process state: the auth store, the booking store and
// the notification watcher wired to its change hook. Booking state lives for
// the lifetime of the session; identity survives restarts via the token
// cache.
type Session struct {
	Auth     *auth.Store
	Bookings *store.Store
	Watcher  *notify.Watcher

	api    *mockapi.Client
	cfg    *models.Config
	logger *util.Logger
}

func New(cfg *models.Config, api *mockapi.Client, toaster notify.Toaster, logger *util.Logger) *Session {
	s := &Session{
		Auth:     auth.NewStore(),
		Bookings: store.New(logger),
		Watcher:  notify.NewWatcher(toaster, logger),
		api:      api,
		cfg:      cfg,
		logger:   logger,
	}

	// The watcher runs after every observable store change; it owns the
	// previous snapshot itself.
	s.Bookings.OnChange(func(curr []domain.Booking) {
		s.Watcher.Observe(curr)
	})

	return s
}

// Restore signs the user back in from the cached token. A missing, invalid
// or expired token leaves the session unauthenticated.
func (s *Session) Restore() bool {
	instance := "Session.Restore"

	token, err := auth.LoadToken(s.cfg.Auth.TokenFile)
	if err != nil || token == "" {
		return false
	}

	user, err := auth.ParseToken(token, s.cfg.Auth.JWTSecret)
	if err != nil {
		s.logger.Warn(instance, fmt.Sprintf("discarding cached token: %v", err))
		_ = auth.ClearToken(s.cfg.Auth.TokenFile)
		return false
	}

	s.Auth.SetSession(user, token)
	s.logger.OK(instance, fmt.Sprintf("session restored [user_id=%s, role=%s]", user.ID, user.Role))
	return true
}

func (s *Session) LoginPassword(ctx context.Context, email, password string) (*auth.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.establish(resp)
	return resp.User, nil
}

// LoginOTP runs the two-step mobile flow: request the code, then verify it.
func (s *Session) LoginOTP(ctx context.Context, mobile, otp string) (*auth.User, error) {
	resp, err := s.api.VerifyOTP(ctx, mobile, otp)
	if err != nil {
		return nil, err
	}
	s.establish(resp)
	return resp.User, nil
}

func (s *Session) RequestOTP(ctx context.Context, mobile string) error {
	_, err := s.api.SendOTP(ctx, mobile)
	return err
}

func (s *Session) Signup(ctx context.Context, req mockapi.SignupRequest) (*auth.User, error) {
	resp, err := s.api.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	s.establish(resp)
	return resp.User, nil
}

// ResetPassword runs the email OTP reset flow end to end.
func (s *Session) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if err := s.api.VerifyPasswordResetOTP(ctx, email, otp); err != nil {
		return err
	}
	return s.api.ResetPassword(ctx, email, newPassword)
}

func (s *Session) RequestPasswordResetOTP(ctx context.Context, email string) error {
	_, err := s.api.SendPasswordResetOTP(ctx, email)
	return err
}

// Logout clears the identity and the cached token. Booking state stays; it
// belongs to the session, not the user.
func (s *Session) Logout() {
	s.Auth.Logout()
	if err := auth.ClearToken(s.cfg.Auth.TokenFile); err != nil {
		s.logger.Error("Session.Logout", err)
	}
}

// MyBookings is the profile view: the session's bookings, optionally
// narrowed by status.
func (s *Session) MyBookings(status domain.Status) []domain.Booking {
	return s.Bookings.List(domain.Filter{Status: status})
}

func (s *Session) establish(resp *mockapi.AuthResponse) {
	s.Auth.SetSession(resp.User, resp.Token)
	if err := auth.SaveToken(s.cfg.Auth.TokenFile, resp.Token); err != nil {
		s.logger.Error("Session.Login", err)
	}
}
