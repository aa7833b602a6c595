package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

type stubAIService struct {
	runFn func(ctx context.Context, input ports.GenerateInput) (string, error)
}

func (s *stubAIService) Run(ctx context.Context, input ports.GenerateInput) (string, error) {
	return s.runFn(ctx, input)
}

func TestAIHandler_Run_Success(t *testing.T) {
	stub := &stubAIService{
		runFn: func(ctx context.Context, input ports.GenerateInput) (string, error) {
			if input.Action != "generate-layout" || input.Description != "a todo app" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "layout plan", nil
		},
	}
	h := NewAIHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/ai/generate-layout", `{"description":"a todo app"}`)
	c.SetParamNames("action")
	c.SetParamValues("generate-layout")
	c.Set("user_id", "u1")

	if err := h.Run(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp aiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Result != "layout plan" {
		t.Fatalf("unexpected result %q", resp.Result)
	}
}

func TestAIHandler_Run_UpstreamError(t *testing.T) {
	stub := &stubAIService{
		runFn: func(ctx context.Context, input ports.GenerateInput) (string, error) {
			return "", domain.ErrUpstream
		},
	}
	h := NewAIHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/ai/generate", `{"prompt":"x"}`)
	c.SetParamNames("action")
	c.SetParamValues("generate")
	c.Set("user_id", "u1")

	if err := h.Run(c); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream to propagate, got %v", err)
	}
}

func TestAIHandler_Run_UnknownAction(t *testing.T) {
	stub := &stubAIService{
		runFn: func(ctx context.Context, input ports.GenerateInput) (string, error) {
			return "", domain.ErrUnknownAction
		},
	}
	h := NewAIHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/ai/make-coffee", `{}`)
	c.SetParamNames("action")
	c.SetParamValues("make-coffee")
	c.Set("user_id", "u1")

	if err := h.Run(c); !errors.Is(err, domain.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction to propagate, got %v", err)
	}
}
