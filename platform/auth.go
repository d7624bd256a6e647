package platform

import (
	"context"
	"encoding/json"

	"learnhub-web/models"
)

// LoginResult is what the platform answers on credential login. A missing
// token on an otherwise successful answer is a distinct failure the caller
// must surface, so Token is left as-is here.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, "POST", "/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, "POST", "/auth/register", "", input, nil)
}

// GoogleLoginResult is the federated-login answer. First-time users come
// back with IsNewUser and the pending profile instead of a session.
type GoogleLoginResult struct {
	IsNewUser  bool                  `json:"isNewUser"`
	GoogleUser *models.GoogleProfile `json:"googleUser"`
	Token      string                `json:"token"`
	Role       string                `json:"role"`
}

func (c *Client) GoogleLogin(ctx context.Context, credential string) (*GoogleLoginResult, error) {
	body := map[string]string{"credential": credential}
	var result GoogleLoginResult
	if err := c.do(ctx, "POST", "/auth/google", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CompleteGoogleSignup(ctx context.Context, profile models.GoogleProfile, role string) (*LoginResult, error) {
	body := map[string]interface{}{
		"googleUser": profile,
		"role":       role,
	}
	var result LoginResult
	if err := c.do(ctx, "POST", "/auth/google/complete", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CurrentUser fetches the account for the given token. The platform answers
// either the bare user object or {"user": {...}} depending on the call site;
// both are normalized to one models.User here.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "GET", "/auth/user", token, nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil &&
		len(envelope.User) > 0 && string(envelope.User) != "null" {
		raw = envelope.User
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &APIError{Status: 502, Message: "Unexpected user payload from the platform"}
	}
	return &user, nil
}
