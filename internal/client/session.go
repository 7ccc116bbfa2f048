package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go-attendance/internal/auth/token"
	"go-attendance/internal/user"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the signed-in identity the client sends with every request.
// It is owned by the caller; the client only fills it on login and clears it
// when the server rejects the token.
type Session struct {
	Token      string  `json:"token"`
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
}

func (s *Session) Clear() {
	*s = Session{}
}

func (s *Session) IsAdmin() bool {
	return s.Role == user.RoleAdmin
}

// Valid decodes the token without verifying its signature and reports whether
// it is unexpired and carries a known role. The server remains the authority.
func (s *Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	var claims token.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(now) {
		return false
	}
	return user.IsValidRole(claims.Role)
}

func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "attendctl", "session.json"), nil
}

// LoadSession reads a saved session. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	return &s, nil
}

func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
