package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campo-app-go/internal/config"
	"campo-app-go/internal/domain/identity"
)

var ErrNotConfigured = errors.New("auth provider not configured")

// GoTrueClient talks to the Supabase auth REST API with the anon key.
type GoTrueClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID   string `json:"id"`
	Sub  string `json:"sub"`
	User struct {
		ID  string `json:"id"`
		Sub string `json:"sub"`
	} `json:"user"`
}

// errorResponse covers both the OAuth style and the msg style error bodies.
type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func NewGoTrueClient(cfg config.SupabaseConfig) *GoTrueClient {
	timeout := cfg.AuthTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &GoTrueClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.AnonKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *GoTrueClient) SignIn(ctx context.Context, email, password string) (string, error) {
	return c.authenticate(ctx, "/auth/v1/token?grant_type=password", email, password, identity.ErrInvalidCredentials)
}

// SignUp registers the account. The profile row is created by a database
// trigger on the auth side.
func (c *GoTrueClient) SignUp(ctx context.Context, email, password string) (string, error) {
	return c.authenticate(ctx, "/auth/v1/signup", email, password, identity.ErrRegistrationFailed)
}

func (c *GoTrueClient) authenticate(ctx context.Context, path, email, password string, rejected error) (string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("auth response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("auth provider status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if message := providerMessage(payload); message != "" {
			return "", fmt.Errorf("%w: %s", rejected, message)
		}
		return "", rejected
	}

	var user userResponse
	if err := json.Unmarshal(payload, &user); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}

	userID := firstNonEmpty(user.User.ID, user.User.Sub, user.ID, user.Sub)
	if userID == "" {
		return "", identity.ErrRegistrationFailed
	}
	return userID, nil
}

func providerMessage(payload []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return ""
	}
	return firstNonEmpty(parsed.ErrorDescription, parsed.Msg, parsed.Message, parsed.Error)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
