package session

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/config"
	"github.com/glowdesk/medspa-console/internal/demoapi"
	"github.com/glowdesk/medspa-console/internal/models"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret", RequestsPerMin: 10000}
	engine := demoapi.NewEngine(demoapi.SeededStore(), cfg, zap.NewNop())
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func newTestStore(t *testing.T, baseURL string) (*Store, *api.Client, string) {
	t.Helper()
	credsPath := filepath.Join(t.TempDir(), "credentials.json")
	client := api.New(baseURL, zap.NewNop())
	return New(client, credsPath, zap.NewNop()), client, credsPath
}

func TestLoginPopulatesSessionAndPersistsToken(t *testing.T) {
	srv := newTestBackend(t)
	store, _, credsPath := newTestStore(t, srv.URL)

	if err := store.Login(context.Background(), demoapi.DemoProviderEmail, demoapi.DemoPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s := store.Current()
	if !s.Authenticated() {
		t.Fatal("expected an authenticated session")
	}
	if s.Role != models.RoleProvider {
		t.Errorf("role = %q, want provider", s.Role)
	}
	if _, err := os.Stat(credsPath); err != nil {
		t.Errorf("credentials file not written: %v", err)
	}
}

func TestLoginRejectionIsAuthErrorWithServerMessage(t *testing.T) {
	srv := newTestBackend(t)
	store, _, _ := newTestStore(t, srv.URL)

	err := store.Login(context.Background(), demoapi.DemoProviderEmail, "wrong-password")
	if !api.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if err.Error() != "email or password is incorrect" {
		t.Errorf("server message should surface, got %q", err.Error())
	}
	if store.Authenticated() {
		t.Error("failed login must leave the session empty")
	}
}

func TestLoginNetworkFailureHasNoDemoFallback(t *testing.T) {
	// Point at a closed port; the client must report a network error, never
	// fabricate a session.
	store, _, _ := newTestStore(t, "http://127.0.0.1:1")

	err := store.Login(context.Background(), "any@example.com", "whatever")
	if err == nil {
		t.Fatal("expected a network error")
	}
	if api.IsAuth(err) {
		t.Error("a network failure is not a credential rejection")
	}
	if store.Authenticated() {
		t.Error("no session may exist after a failed login")
	}
}

func TestInitializeRestoresStoredSession(t *testing.T) {
	srv := newTestBackend(t)
	store, _, credsPath := newTestStore(t, srv.URL)

	if err := store.Login(context.Background(), demoapi.DemoAdminEmail, demoapi.DemoPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh store (new process) with the same credentials file.
	client2 := api.New(srv.URL, zap.NewNop())
	store2 := New(client2, credsPath, zap.NewNop())
	store2.Initialize(context.Background())

	if !store2.Authenticated() {
		t.Fatal("Initialize must restore the persisted session")
	}
	if store2.Current().Email != demoapi.DemoAdminEmail {
		t.Errorf("restored wrong user: %q", store2.Current().Email)
	}
}

func TestInitializeWithRejectedTokenIsSilentlyUnauthenticated(t *testing.T) {
	srv := newTestBackend(t)
	store, _, credsPath := newTestStore(t, srv.URL)

	if err := saveCredentials(credsPath, credentials{
		AccessToken: "garbage-token",
		TokenType:   "Bearer",
	}); err != nil {
		t.Fatalf("saveCredentials: %v", err)
	}

	store.Initialize(context.Background())

	if store.Authenticated() {
		t.Fatal("rejected token must leave the store unauthenticated")
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Error("rejected credentials must be cleared from disk")
	}
}

func TestLogoutClearsEverythingWithoutNetwork(t *testing.T) {
	srv := newTestBackend(t)
	store, client, credsPath := newTestStore(t, srv.URL)

	if err := store.Login(context.Background(), demoapi.DemoClientEmail, demoapi.DemoPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	srv.Close() // logout must not care

	store.Logout()

	if store.Authenticated() {
		t.Error("session must be empty after logout")
	}
	if client.HasToken() {
		t.Error("token must be cleared after logout")
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Error("credentials file must be removed on logout")
	}
}

func TestAnyUnauthorizedResponseEmptiesSession(t *testing.T) {
	srv := newTestBackend(t)
	store, client, _ := newTestStore(t, srv.URL)

	if err := store.Login(context.Background(), demoapi.DemoProviderEmail, demoapi.DemoPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Simulate token expiry on the server side by swapping in a bad token,
	// then making any authenticated call.
	client.SetToken("expired-token", "Bearer")
	err := client.Get(context.Background(), "/treatments", nil, nil)
	if !api.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}

	if store.Authenticated() {
		t.Error("a 401 from any endpoint must empty the session")
	}
}

func TestSignupCreatesClientAccount(t *testing.T) {
	srv := newTestBackend(t)
	store, _, _ := newTestStore(t, srv.URL)

	if err := store.Signup(context.Background(), "nina@example.com", "long-enough-pass", "Nina Alvarez"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	s := store.Current()
	if s.Role != models.RoleClient {
		t.Errorf("signup role = %q, want client", s.Role)
	}
	if s.Name != "Nina Alvarez" {
		t.Errorf("name = %q", s.Name)
	}
}

func TestSignupValidatesLocally(t *testing.T) {
	store, _, _ := newTestStore(t, "http://127.0.0.1:1")

	err := store.Signup(context.Background(), "not-an-email", "password123", "Someone")
	if _, ok := api.IsValidation(err); !ok {
		t.Fatalf("expected local ValidationError, got %v", err)
	}
}
