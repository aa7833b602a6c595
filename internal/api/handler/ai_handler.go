package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelnova/projecthub/internal/api/metrics"
	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

// AIHandler proxies generation requests to the AI upstream.
type AIHandler struct {
	service ports.AIService
}

func NewAIHandler(service ports.AIService) *AIHandler {
	return &AIHandler{service: service}
}

// Run handles POST /api/ai/:action.
//
// @Summary      Run an AI action
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        action  path      string     true  "Action: generate, generate-layout, generate-project-desc, explain-code"
// @Param        body    body      aiRequest  true  "Action-specific fields"
// @Success      200     {object}  aiResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      502     {object}  errorResponse
// @Router       /api/ai/{action} [post]
func (h *AIHandler) Run(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req aiRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	action := c.Param("action")
	start := time.Now()
	result, err := h.service.Run(c.Request().Context(), ports.GenerateInput{
		Action:      action,
		Prompt:      req.Prompt,
		Description: req.Description,
		Code:        req.Code,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			metrics.AIRequestsTotal.WithLabelValues(action, "error").Inc()
		}
		return err
	}

	metrics.AIRequestsTotal.WithLabelValues(action, "success").Inc()
	metrics.AIRequestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, aiResponse{Result: result})
}
