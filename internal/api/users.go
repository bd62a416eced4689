package api

import (
	"context"
	"net/http"

	"github.com/hotelbook/booking-web/internal/model"
)

// UpdateProfileRequest carries profile edits. Password is a pointer so
// that a blank form field omits the key from the payload entirely;
// sending an empty string would overwrite the stored password.
type UpdateProfileRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Password *string `json:"password,omitempty"`
}

// GetProfile fetches the caller's own profile.
func (c *Client) GetProfile(ctx context.Context, token string) (model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, nil, &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile saves profile edits. Callers set Password only when the
// user typed a new one.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/users/me", token, nil, req, nil)
}

// DeleteAccount removes the caller's account. The session must be
// cleared afterwards regardless of prior state.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/users/me", token, nil, nil, nil)
}
