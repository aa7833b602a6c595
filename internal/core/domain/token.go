package domain

import "errors"

// Token failures are distinguished for diagnostics only; all three map to an
// unauthenticated response at the API boundary.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenBadSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// Claims is the identity carried inside a session token.
type Claims struct {
	UserID string
	Email  string
	Name   string
}
