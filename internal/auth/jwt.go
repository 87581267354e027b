// Package auth talks to the external auth provider. The provider owns
// account lifecycle, passwords and email confirmation; this package only
// verifies what the provider asserts and shapes it into a Principal.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iamanderson-dev/thoughts-app/internal/config"
	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier validates provider-issued access tokens.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(cfg config.JwtConfig) (*Verifier, error) {
	if len(cfg.Secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 characters")
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}, nil
}

// claims mirrors the provider's access token payload. The principal id is
// the standard "sub" claim; name and username hints ride along in the
// user_metadata object.
type claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	UserMetadata  struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user_metadata"`
}

// Verify parses and validates the token and returns the asserted principal.
func (v *Verifier) Verify(tokenStr string) (*domain.Principal, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Principal{
		ID:             c.Subject,
		Email:          c.Email,
		EmailConfirmed: c.EmailVerified,
		Name:           c.UserMetadata.Name,
		Handle:         c.UserMetadata.Username,
	}, nil
}
