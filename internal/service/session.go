package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/internal/action"
	"storefront/internal/domain"
	"storefront/internal/store"
)

// SessionAPI is the slice of the commerce API the session flows need.
type SessionAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Register(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
	ResetPassword(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
	ForgotPassword(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
	RetrieveAccount(ctx context.Context, creds domain.Credentials) (*domain.Customer, error)
	UpdateAccount(ctx context.Context, creds domain.Credentials) (*domain.Customer, error)
}

// SessionService handles login, registration, the password flows and
// session expiry.
type SessionService struct {
	store  store.Dispatcher
	api    SessionAPI
	logger *slog.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(st store.Dispatcher, api SessionAPI, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{store: st, api: api, logger: logger}
}

// Login authenticates and dispatches the decoded session. The server
// delivers the session payload base64-encoded; decoding it is this
// layer's job. An authenticated result navigates to the account page.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials, navigate Navigator) error {
	encoded, err := s.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("login: decode payload: %w", err)
	}
	var customer domain.Customer
	if err := json.Unmarshal(decoded, &customer); err != nil {
		return fmt.Errorf("login: parse payload: %w", err)
	}

	s.store.Dispatch(action.ReceiveAccount(customer))

	if customer.Authenticated && navigate != nil {
		navigate(s.store.State().Settings.AccountPath)
	}
	return nil
}

// Register submits a registration and dispatches the response verbatim.
func (s *SessionService) Register(ctx context.Context, creds domain.Credentials) error {
	data, err := s.api.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.store.Dispatch(action.ReceiveRegister(data))
	return nil
}

// ResetPassword submits a password reset and dispatches the response.
func (s *SessionService) ResetPassword(ctx context.Context, creds domain.Credentials) error {
	data, err := s.api.ResetPassword(ctx, creds)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	s.store.Dispatch(action.ReceiveResetPassword(data))
	return nil
}

// ForgotPassword requests a reset email and dispatches the response.
func (s *SessionService) ForgotPassword(ctx context.Context, creds domain.Credentials) error {
	data, err := s.api.ForgotPassword(ctx, creds)
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	s.store.Dispatch(action.ReceiveForgotPassword(data))
	return nil
}

// FetchAccount loads the customer record for the given credentials.
func (s *SessionService) FetchAccount(ctx context.Context, creds domain.Credentials) error {
	customer, err := s.api.RetrieveAccount(ctx, creds)
	if err != nil {
		return fmt.Errorf("fetch account: %w", err)
	}
	s.store.Dispatch(action.ReceiveAccount(*customer))
	return nil
}

// UpdateAccount changes customer properties and dispatches the result.
func (s *SessionService) UpdateAccount(ctx context.Context, creds domain.Credentials) error {
	customer, err := s.api.UpdateAccount(ctx, creds)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	s.store.Dispatch(action.ReceiveAccount(*customer))
	return nil
}

// ExpireSession resets to an unauthenticated customer. Pure local action,
// no server round trip.
func (s *SessionService) ExpireSession() {
	s.store.Dispatch(action.ReceiveAccount(domain.LoggedOut()))
}

// InitializeCartLayer records that the embedding cart widget finished its
// setup.
func (s *SessionService) InitializeCartLayer(initialized bool) {
	s.store.Dispatch(action.InitializeCartLayer(initialized))
}
