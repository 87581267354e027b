package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

// Provider runs the authorization-code flow against the auth provider and
// resolves the resulting token to a Principal.
type Provider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewProvider(cfg config.OAuthConfig) *Provider {
	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

// AuthURL returns the provider URL to redirect the user to. state must be
// verified on callback.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// userInfo is the provider's authenticated-user response.
type userInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	UserMetadata  struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user_metadata"`
}

// Exchange trades the authorization code for a token and fetches the
// principal it belongs to. The token exchange happens server to server; the
// access token never reaches the browser.
func (p *Provider) Exchange(ctx context.Context, code string) (*domain.Principal, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging oauth code: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info endpoint returned status %d", resp.StatusCode)
	}

	var u userInfo
	if err = json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decoding user info: %w", err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: user info without id", ErrInvalidToken)
	}

	return &domain.Principal{
		ID:             u.ID,
		Email:          u.Email,
		EmailConfirmed: u.EmailVerified,
		Name:           u.UserMetadata.Name,
		Handle:         u.UserMetadata.Username,
	}, nil
}
