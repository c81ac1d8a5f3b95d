// Package auth is the dashboard's session collaborator: it holds the
// access token, the claims decoded from it and the profile record fetched
// for the token's email.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be decoded.
var ErrMalformedToken = errors.New("malformed token")

// Claims are the user claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"user_email"`
	Name   string `json:"user_name,omitempty"`
	Role   string `json:"user_role,omitempty"`
	Avatar string `json:"user_avatar,omitempty"`
}

// DisplayName returns the name to greet the user with.
func (c *Claims) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Name != "" {
		return c.Name
	}
	if c.Email != "" {
		if at := strings.IndexByte(c.Email, '@'); at > 0 {
			return c.Email[:at]
		}
		return c.Email
	}
	return c.Subject
}

// Decoder extracts claims from access tokens.
//
// Without a secret it only decodes, the way a browser client reads its
// own token; signature checks happen on the API that issued it. With a
// secret it also verifies an HMAC signature and the registered claims.
type Decoder struct {
	secret []byte
}

// NewDecoder returns a decoder; an empty secret disables verification.
func NewDecoder(secret string) *Decoder {
	d := &Decoder{}
	if secret != "" {
		d.secret = []byte(secret)
	}
	return d
}

// Verifies reports whether the decoder checks signatures.
func (d *Decoder) Verifies() bool { return len(d.secret) > 0 }

// Decode parses token into claims.
func (d *Decoder) Decode(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedToken)
	}

	claims := &Claims{}
	if !d.Verifies() {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		return claims, nil
	}

	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return d.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}
