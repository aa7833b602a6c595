package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, ownerID, name, description string) (*domain.Project, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Project, error)
	updateFn func(ctx context.Context, ownerID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error)
	deleteFn func(ctx context.Context, ownerID, projectID string) error
}

func (s *stubProjectService) Create(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
	return s.createFn(ctx, ownerID, name, description)
}

func (s *stubProjectService) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubProjectService) Update(ctx context.Context, ownerID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, ownerID, projectID, input)
}

func (s *stubProjectService) Delete(ctx context.Context, ownerID, projectID string) error {
	return s.deleteFn(ctx, ownerID, projectID)
}

func TestProjectHandler_List(t *testing.T) {
	stub := &stubProjectService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Project, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			return []*domain.Project{{ID: "p1", OwnerID: "u1", Name: "P1", CreatedAt: time.Now()}}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/projects", "")
	c.Set("user_id", "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []projectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "P1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubProjectService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Project, error) {
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/projects", "")
	c.Set("user_id", "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Clients expect [] rather than null for an empty collection.
	body := rec.Body.String()
	if body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestProjectHandler_Create_Success(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
			return &domain.Project{ID: "p1", OwnerID: ownerID, Name: name, Description: description, CreatedAt: time.Now()}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/projects", `{"name":"P1","description":"d"}`)
	c.Set("user_id", "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp projectEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Project.ID != "p1" || resp.Project.Name != "P1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestProjectHandler_Create_MissingName(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/projects", `{"description":"d"}`)
	c.Set("user_id", "u1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Update_PartialFields(t *testing.T) {
	stub := &stubProjectService{
		updateFn: func(ctx context.Context, ownerID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
			if projectID != "p1" {
				t.Fatalf("unexpected id %q", projectID)
			}
			if input.Name == nil || *input.Name != "renamed" {
				t.Fatalf("expected name update, got %+v", input)
			}
			if input.Description != nil {
				t.Fatalf("description must stay unset, got %q", *input.Description)
			}
			return &domain.Project{ID: projectID, OwnerID: ownerID, Name: *input.Name}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/projects/p1", `{"name":"renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user_id", "u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	stub := &stubProjectService{
		updateFn: func(ctx context.Context, ownerID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/projects/bad", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("bad")
	c.Set("user_id", "u1")

	if err := h.Update(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound to propagate, got %v", err)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubProjectService{
		deleteFn: func(ctx context.Context, ownerID, projectID string) error {
			deleted = projectID
			return nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/projects/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user_id", "u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("expected delete of p1, got %q", deleted)
	}
}

func TestProjectHandler_Unauthenticated(t *testing.T) {
	h := NewProjectHandler(&stubProjectService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/projects", "")
	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
