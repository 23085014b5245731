package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mediconnect/internal/models"

	"github.com/google/uuid"
)

// Credentials carries the result of a successful credential exchange.
type Credentials struct {
	Token string
	User  models.PublicUser
}

// SignupProfile carries the optional profile fields sent at signup.
type SignupProfile struct {
	FullName string
	Role     models.UserRole
}

// Exchanger turns credentials into a token and user snapshot. The API
// variant talks to the MediConnect backend; the demo variant fabricates
// a local session.
type Exchanger interface {
	SignUp(ctx context.Context, email, password string, profile SignupProfile) (*Credentials, error)
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
}

// APIExchanger exchanges credentials against the MediConnect HTTP API.
type APIExchanger struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIExchanger returns an exchanger for the API at baseURL, e.g.
// "http://localhost:8420".
func NewAPIExchanger(baseURL string) *APIExchanger {
	return &APIExchanger{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
	Error string            `json:"error"`
}

func (a *APIExchanger) SignUp(ctx context.Context, email, password string, profile SignupProfile) (*Credentials, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
		"fullName": profile.FullName,
	}
	if profile.Role != "" {
		payload["userType"] = string(profile.Role)
	}
	return a.post(ctx, "/api/auth/signup", payload)
}

func (a *APIExchanger) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	return a.post(ctx, "/api/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (a *APIExchanger) post(ctx context.Context, path string, payload map[string]string) (*Credentials, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var parsed authResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("malformed auth response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		message := parsed.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("auth rejected (status %d): %s", resp.StatusCode, message)
	}
	if parsed.Token == "" {
		return nil, fmt.Errorf("auth response missing token")
	}

	return &Credentials{Token: parsed.Token, User: parsed.User}, nil
}

// DemoExchanger fabricates sessions locally, without a backend. It
// imitates network latency with a fixed delay.
type DemoExchanger struct {
	Delay time.Duration
}

// NewDemoExchanger returns a demo exchanger with the default delay.
func NewDemoExchanger() *DemoExchanger {
	return &DemoExchanger{Delay: 300 * time.Millisecond}
}

func (d *DemoExchanger) SignUp(ctx context.Context, email, password string, profile SignupProfile) (*Credentials, error) {
	return d.fabricate(ctx, email, profile)
}

func (d *DemoExchanger) SignIn(ctx context.Context, email, _ string) (*Credentials, error) {
	return d.fabricate(ctx, email, SignupProfile{})
}

func (d *DemoExchanger) fabricate(ctx context.Context, email string, profile SignupProfile) (*Credentials, error) {
	select {
	case <-time.After(d.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	role := profile.Role
	if role == "" {
		role = models.UserRolePatient
	}
	fullName := profile.FullName
	if fullName == "" {
		fullName = "Demo User"
	}

	return &Credentials{
		Token: "demo-" + uuid.New().String(),
		User: models.PublicUser{
			ID:       1,
			Email:    email,
			FullName: fullName,
			Role:     role,
		},
	}, nil
}
