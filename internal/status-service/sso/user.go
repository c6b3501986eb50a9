package sso

import (
	"context"
	"time"
)

// User is the identity returned by the issuer's verify endpoint or carried in a locally verified token.
type User struct {
	Subject           string `json:"sub"`
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	Email             string `json:"email,omitempty"`
	Role              string `json:"role,omitempty"`

	// ExpiresAt is the token's exp in unix seconds, zero when the issuer did not say.
	ExpiresAt int64 `json:"exp,omitempty"`
}

func (u User) Expired(now time.Time) bool {
	return u.ExpiresAt != 0 && !now.Before(time.Unix(u.ExpiresAt, 0))
}

func (u User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.PreferredUsername != "":
		return u.PreferredUsername
	case u.Email != "":
		return u.Email
	default:
		return u.Subject
	}
}

type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}
