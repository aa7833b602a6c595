package domain

import (
	"errors"
	"time"
)

// ErrProjectNotFound covers both true absence and ownership mismatch: a
// caller probing another user's project id must not learn that it exists.
var ErrProjectNotFound = errors.New("project not found")
var ErrProjectNameRequired = errors.New("project name is required")

// Project is a user-owned record. Only Name and Description are mutable.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
