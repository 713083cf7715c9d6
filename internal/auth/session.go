// Package auth manages the client session for the ImobiGest API.
//
// The browser front end keeps the bearer token in a cookie named "token";
// the CLI keeps the same token in a session file instead. Session implements
// api.TokenSource, so it is created once at startup and injected into the
// shared client rather than re-read ad hoc by every component.
//
// Tokens are JWTs issued by the API. The signature can only be verified
// server-side, but the exp claim is checked locally so an expired session
// fails fast before any request is made.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"imobigest/internal/logger"
)

// Session stores and retrieves the bearer token.
type Session struct {
	path string
	log  zerolog.Logger
}

// TokenInfo holds the claims the CLI cares about.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// NewSession creates a Session backed by the given file path.
func NewSession(path string) *Session {
	return &Session{
		path: path,
		log:  logger.WithComponent("auth-session"),
	}
}

// Token returns the stored bearer token. It returns ErrNoSession when no
// session file exists and ErrSessionExpired when the token's exp claim has
// passed, so callers never send a request that is guaranteed to fail.
func (s *Session) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("reading session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}

	if info, err := decodeToken(token); err == nil && !info.ExpiresAt.IsZero() {
		if time.Now().After(info.ExpiresAt) {
			s.log.Debug().
				Time("expired_at", info.ExpiresAt).
				Msg("Stored token has expired")
			return "", ErrSessionExpired
		}
	}

	return token, nil
}

// Save persists the token, creating the session directory when needed.
func (s *Session) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	s.log.Debug().Str("path", s.path).Msg("Session saved")
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Session) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Info decodes the stored token's claims without verifying the signature.
func (s *Session) Info() (*TokenInfo, error) {
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(token)
}

func decodeToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
