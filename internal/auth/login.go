package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"imobigest/internal/logger"
)

// Credentials are the login form fields the API expects.
type Credentials struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login exchanges credentials for a bearer token at POST /auth/login.
// It does not use the shared api.Client because no token exists yet.
func Login(ctx context.Context, baseURL string, creds Credentials, timeout time.Duration) (string, error) {
	log := logger.WithComponent("auth-login")

	body, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("encoding credentials: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + "/auth/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("login failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if payload.Token == "" {
		return "", fmt.Errorf("login response did not include a token")
	}

	log.Info().Str("email", creds.Email).Msg("Login succeeded")
	return payload.Token, nil
}
