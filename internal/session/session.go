package session

import (
	"context"
	"encoding/json"
	"sync"

	"mediconnect/internal/models"
)

// State is the session lifecycle state.
type State string

const (
	// StateLoading means persisted state has not been read yet.
	StateLoading State = "loading"
	// StateAuthenticated means a token and user snapshot are held.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no valid session exists.
	StateAnonymous State = "anonymous"
)

// Client is the session state machine. It starts in StateLoading and
// resolves to authenticated or anonymous after Load. There is no
// automatic refresh and no client-side expiry check; an expired token is
// held until a server call rejects it.
type Client struct {
	mu        sync.RWMutex
	store     Store
	exchanger Exchanger
	state     State
	token     string
	user      *models.PublicUser
}

// NewClient creates a session client in StateLoading. Call Load to
// resolve persisted state.
func NewClient(store Store, exchanger Exchanger) *Client {
	return &Client{
		store:     store,
		exchanger: exchanger,
		state:     StateLoading,
	}
}

// Load reads the persisted token and user snapshot. Any parse failure
// discards the persisted state and resolves the session anonymous.
func (c *Client) Load() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, tokenOK, err := c.store.Get(keyAuthToken)
	if err != nil || !tokenOK || token == "" {
		c.discardLocked()
		return c.state
	}

	raw, userOK, err := c.store.Get(keyUserData)
	if err != nil || !userOK {
		c.discardLocked()
		return c.state
	}

	var user models.PublicUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		c.discardLocked()
		return c.state
	}

	c.token = token
	c.user = &user
	c.state = StateAuthenticated
	return c.state
}

// SignUp registers a new account and transitions to authenticated.
func (c *Client) SignUp(ctx context.Context, email, password string, profile SignupProfile) (*models.PublicUser, error) {
	creds, err := c.exchanger.SignUp(ctx, email, password, profile)
	if err != nil {
		return nil, err
	}
	return c.adopt(creds)
}

// SignIn exchanges credentials and transitions to authenticated.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.PublicUser, error) {
	creds, err := c.exchanger.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.adopt(creds)
}

// SignOut clears persisted state and transitions to anonymous.
func (c *Client) SignOut() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(keyAuthToken); err != nil {
		return err
	}
	if err := c.store.Delete(keyUserData); err != nil {
		return err
	}
	c.resetLocked()
	return nil
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Token returns the held token, empty when not authenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// CurrentUser returns a copy of the user snapshot, or nil when
// anonymous.
func (c *Client) CurrentUser() *models.PublicUser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Client) adopt(creds *Credentials) (*models.PublicUser, error) {
	raw, err := json.Marshal(creds.User)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Set(keyAuthToken, creds.Token); err != nil {
		return nil, err
	}
	if err := c.store.Set(keyUserData, string(raw)); err != nil {
		return nil, err
	}

	c.token = creds.Token
	user := creds.User
	c.user = &user
	c.state = StateAuthenticated

	snapshot := *c.user
	return &snapshot, nil
}

func (c *Client) resetLocked() {
	c.token = ""
	c.user = nil
	c.state = StateAnonymous
}

// discardLocked drops unusable persisted state so a later load does not
// trip over it again.
func (c *Client) discardLocked() {
	_ = c.store.Delete(keyAuthToken)
	_ = c.store.Delete(keyUserData)
	c.resetLocked()
}
