package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/glowdesk/medspa-console/internal/dto"
)

// credentials is the on-disk token record, the console's equivalent of the
// browser's persistent storage. Fixed keys, cleared on logout or 401.
type credentials struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// newCredentials derives the stored record from a token response. When the
// server omits expires_in, the expiry is read from the token's own exp claim
// (unverified; the server still enforces it).
func newCredentials(resp dto.TokenResponse) credentials {
	creds := credentials{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}
	if creds.TokenType == "" {
		creds.TokenType = "Bearer"
	}
	if resp.ExpiresIn > 0 {
		creds.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
		return creds
	}
	if exp := tokenExpiry(resp.AccessToken); !exp.IsZero() {
		creds.ExpiresAt = exp
	}
	return creds
}

func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func (c credentials) expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

func loadCredentials(path string) (credentials, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return credentials{}, false
	}
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil || creds.AccessToken == "" {
		return credentials{}, false
	}
	return creds, true
}

func saveCredentials(path string, creds credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func clearCredentials(path string) {
	_ = os.Remove(path)
}
