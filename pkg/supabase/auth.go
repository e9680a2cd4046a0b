package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// User is the identity attached to an authenticated session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CurrentUser resolves the identity behind an access token. Returns
// ErrNoSession when the token is empty, expired or rejected; identity is
// only used to stamp ownership, so callers typically treat ErrNoSession as
// "anonymous" rather than a failure.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("supabase: build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: get user: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrNoSession
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("supabase: decode user: %w", err)
	}
	if user.ID == "" {
		return nil, ErrNoSession
	}
	return &user, nil
}
