package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// UserInfo is the identity returned by the provider's userinfo endpoint
type UserInfo struct {
	Sub               string `json:"sub"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
	Name              string `json:"name"`
	IsSuperuser       bool   `json:"is_superuser"`
}

// AdminUserInfo is a user record read from the provider's admin API
type AdminUserInfo struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// AuthentikClient talks to an Authentik instance. Userinfo requests carry
// the end user's own bearer token; admin API requests authenticate with
// the configured service token.
type AuthentikClient struct {
	baseURL     string
	userClient  *http.Client
	adminClient *http.Client
}

// NewAuthentikClient creates a client for the given Authentik base URL.
// The service token is used only for admin API calls, never for
// verifying user tokens.
func NewAuthentikClient(baseURL, serviceToken string) *AuthentikClient {
	adminClient := &http.Client{Timeout: 10 * time.Second}
	if serviceToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: serviceToken})
		adminClient = oauth2.NewClient(context.Background(), src)
		adminClient.Timeout = 10 * time.Second
	}
	return &AuthentikClient{
		baseURL:     baseURL,
		userClient:  &http.Client{Timeout: 10 * time.Second},
		adminClient: adminClient,
	}
}

// VerifyToken resolves a user-supplied bearer token to its identity via
// the userinfo endpoint. An invalid or expired token yields an error.
func (c *AuthentikClient) VerifyToken(ctx context.Context, token string) (*UserInfo, error) {
	url := fmt.Sprintf("%s/application/o/userinfo/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.userClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("identity provider rejected token: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo response: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("userinfo response missing subject")
	}

	return &info, nil
}

// GetUserInfo reads a user record from the admin API by provider ID
func (c *AuthentikClient) GetUserInfo(ctx context.Context, authentikID string) (*AdminUserInfo, error) {
	url := fmt.Sprintf("%s/api/v3/core/users/%s/", c.baseURL, authentikID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build user lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.adminClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("user %s not found in identity provider", authentikID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	var info AdminUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user lookup response: %w", err)
	}

	return &info, nil
}
