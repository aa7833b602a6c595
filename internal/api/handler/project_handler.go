package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelnova/projecthub/internal/api/metrics"
	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project CRUD operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// List handles GET /api/projects.
//
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), userID, req.Name, req.Description)
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, projectEnvelope{
		Message: "Project added",
		Project: toProjectResponse(project),
	})
}

// Update handles PUT /api/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{
		Message: "Project updated",
		Project: toProjectResponse(project),
	})
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.ProjectsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted"})
}
