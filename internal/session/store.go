package session

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/dto"
	"github.com/glowdesk/medspa-console/internal/models"
	"github.com/glowdesk/medspa-console/internal/validators"
)

// Store owns the authenticated session. It is constructed once at startup
// and handed to every component; there is no ambient global. A 401 anywhere
// in the API client empties it through the unauthorized hook.
type Store struct {
	api       *api.Client
	credsPath string
	log       *zap.Logger

	mu      sync.Mutex
	current models.Session
}

func New(client *api.Client, credsPath string, log *zap.Logger) *Store {
	s := &Store{
		api:       client,
		credsPath: credsPath,
		log:       log,
	}
	client.OnUnauthorized(s.invalidate)
	return s
}

// Initialize restores a persisted token and resolves it to a profile. It
// never returns an error: any failure (missing file, expired token, network
// down, non-2xx) leaves the store unauthenticated and clears the stored
// credential.
func (s *Store) Initialize(ctx context.Context) {
	creds, ok := loadCredentials(s.credsPath)
	if !ok {
		return
	}
	if creds.expired() {
		s.log.Debug("stored token expired, clearing")
		clearCredentials(s.credsPath)
		return
	}

	s.api.SetToken(creds.AccessToken, creds.TokenType)

	if err := s.fetchUser(ctx, creds.AccessToken); err != nil {
		s.log.Debug("stored token rejected", zap.Error(err))
		s.invalidate()
	}
}

// Login exchanges credentials for a bearer token. A rejected credential
// comes back as *api.AuthError with the server's message; a network failure
// is a *api.RequestError. There is no demo fallback here: demo accounts
// exist only in the demo backend.
func (s *Store) Login(ctx context.Context, email, password string) error {
	var resp dto.TokenResponse
	if err := s.api.Post(ctx, "/login", dto.LoginRequest{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}, &resp); err != nil {
		return err
	}
	return s.acceptToken(ctx, resp)
}

// Signup creates an account via POST /register and adopts the returned
// token, same path as Login from there on.
func (s *Store) Signup(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validators.IsEmailValid(email) {
		return &api.ValidationError{Fields: map[string]string{"email": "enter a valid email address"}}
	}
	if strings.TrimSpace(name) == "" {
		return &api.ValidationError{Fields: map[string]string{"name": "name is required"}}
	}

	var resp dto.TokenResponse
	if err := s.api.Post(ctx, "/register", dto.RegisterRequest{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: password,
	}, &resp); err != nil {
		return err
	}
	return s.acceptToken(ctx, resp)
}

// Logout clears everything synchronously. No network call.
func (s *Store) Logout() {
	s.invalidate()
}

func (s *Store) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

// --------- internals ---------

func (s *Store) acceptToken(ctx context.Context, resp dto.TokenResponse) error {
	if resp.AccessToken == "" {
		return &api.RequestError{Message: "server returned no access token"}
	}

	creds := newCredentials(resp)
	if err := saveCredentials(s.credsPath, creds); err != nil {
		s.log.Warn("could not persist credentials", zap.Error(err))
	}
	s.api.SetToken(creds.AccessToken, creds.TokenType)

	if resp.User.ID != "" {
		s.setSession(resp.User, creds.AccessToken)
		return nil
	}
	return s.fetchUser(ctx, creds.AccessToken)
}

func (s *Store) fetchUser(ctx context.Context, token string) error {
	var resp dto.UserResponse
	if err := s.api.Get(ctx, "/user", nil, &resp); err != nil {
		return err
	}
	s.setSession(resp.User, token)
	return nil
}

func (s *Store) setSession(u models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Token:  token,
	}
}

// invalidate drops the in-memory session, the client token and the stored
// credential. Registered as the API client's 401 hook.
func (s *Store) invalidate() {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()

	s.api.ClearToken()
	clearCredentials(s.credsPath)
}
