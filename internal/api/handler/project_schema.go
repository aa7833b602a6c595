package handler

import "time"

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// updateProjectRequest is a partial update: absent fields keep their
// previous values, which is why both are pointers.
type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type projectEnvelope struct {
	Message string          `json:"message"`
	Project projectResponse `json:"project"`
}
