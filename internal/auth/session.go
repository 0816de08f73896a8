// Package auth resolves the logged-in user from the signed session cookie.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"podverse-web/internal/domain"
)

var ErrNoSigningKey = errors.New("jwt signing key belum dikonfigurasi")

type claims struct {
	Name                 string   `json:"name,omitempty"`
	SubscribedPodcastIDs []string `json:"subscribedPodcastIds,omitempty"`
	jwt.RegisteredClaims
}

// Sessions signs and verifies HS256 session tokens.
type Sessions struct {
	Key    []byte
	Issuer string
}

// Sign issues a token for u. A zero ttl produces a token without expiry.
func (s Sessions) Sign(u domain.UserInfo, ttl time.Duration) (string, error) {
	if len(s.Key) == 0 {
		return "", ErrNoSigningKey
	}
	c := claims{
		Name:                 u.Name,
		SubscribedPodcastIDs: u.SubscribedPodcastIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			Issuer:   s.Issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.Key)
}

// UserInfo verifies token and returns its user. An empty token means an
// anonymous visitor and yields (nil, nil).
func (s Sessions) UserInfo(token string) (*domain.UserInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	if len(s.Key) == 0 {
		return nil, ErrNoSigningKey
	}

	var c claims
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.Key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("session token: %w", err)
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("session token: missing subject")
	}
	return &domain.UserInfo{
		ID:                   c.Subject,
		Name:                 c.Name,
		SubscribedPodcastIDs: c.SubscribedPodcastIDs,
	}, nil
}
