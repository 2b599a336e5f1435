package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken marks tokens that fail signature, shape or expiry checks.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the identity a verified token carries.
type Claims struct {
	UserID int64
	Role   string
}

// Strategy creates and verifies auth tokens.
type Strategy interface {
	IssueToken(userID int64, role string) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
