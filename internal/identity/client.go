package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ucrconnect/dashboard-api/internal/logger"
)

// Error variables mapping the provider's known failure codes.
var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUserNotFound       = errors.New("email not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrEmailExists        = errors.New("email already exists")
)

// Account is the provider's view of an authenticated user.
type Account struct {
	AuthID      string // provider-assigned user id
	Email       string
	DisplayName string
	IDToken     string // bearer token for subsequent calls
}

// Client talks to the token-based identity provider over its REST API.
// The provider itself is an external collaborator; only the sign-in and
// sign-up operations the dashboard consumes are wrapped here.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a provider client. An empty baseURL selects the hosted
// identitytoolkit endpoint.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://identitytoolkit.googleapis.com"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges an email/password credential for the provider's user
// identity and bearer token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return c.post(ctx, "/v1/accounts:signInWithPassword", email, password)
}

// SignUp creates a new provider account for the credential.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Account, error) {
	return c.post(ctx, "/v1/accounts:signUp", email, password)
}

func (c *Client) post(ctx context.Context, path, email, password string) (*Account, error) {
	body, err := json.Marshal(credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s?key=%s", c.baseURL, path, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("identity provider request failed", "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
		}
		return nil, mapProviderError(errResp.Error.Message)
	}

	var acc accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return nil, err
	}

	return &Account{
		AuthID:      acc.LocalID,
		Email:       acc.Email,
		DisplayName: acc.DisplayName,
		IDToken:     acc.IDToken,
	}, nil
}

// mapProviderError translates the provider's error codes into the typed
// errors the services pattern-match on. Unknown codes pass through as
// opaque errors.
func mapProviderError(code string) error {
	switch code {
	case "INVALID_LOGIN_CREDENTIALS", "INVALID_CREDENTIAL":
		return ErrInvalidCredentials
	case "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return ErrUserNotFound
	case "INVALID_PASSWORD":
		return ErrWrongPassword
	case "EMAIL_EXISTS":
		return ErrEmailExists
	}
	return fmt.Errorf("identity provider error: %s", code)
}
