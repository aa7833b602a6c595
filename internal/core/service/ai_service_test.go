package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

type stubGenerator struct {
	calls   int
	prompts []string
	result  string
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.result, nil
}

type stubCache struct {
	entries map[string]string
}

func (c *stubCache) Lookup(_ context.Context, prompt string) (string, bool, error) {
	result, ok := c.entries[prompt]
	return result, ok, nil
}

func (c *stubCache) Store(_ context.Context, prompt, result string) error {
	c.entries[prompt] = result
	return nil
}

func TestAIService_ActionPrompts(t *testing.T) {
	cases := []struct {
		action string
		input  ports.GenerateInput
		want   string
	}{
		{
			action: "generate-layout",
			input:  ports.GenerateInput{Action: "generate-layout", Description: "a todo app"},
			want:   "Create a full UI layout plan",
		},
		{
			action: "generate-project-desc",
			input:  ports.GenerateInput{Action: "generate-project-desc", Description: "a todo app"},
			want:   "Write a detailed product description",
		},
		{
			action: "explain-code",
			input:  ports.GenerateInput{Action: "explain-code", Code: "fmt.Println(1)"},
			want:   "Explain this code step-by-step",
		},
		{
			action: "generate",
			input:  ports.GenerateInput{Action: "generate", Prompt: "write a haiku"},
			want:   "write a haiku",
		},
	}

	for _, tc := range cases {
		gen := &stubGenerator{result: "ok"}
		svc := NewAIService(gen, nil, zerolog.Nop())

		if _, err := svc.Run(context.Background(), tc.input); err != nil {
			t.Fatalf("%s: run failed: %v", tc.action, err)
		}
		if gen.calls != 1 {
			t.Fatalf("%s: expected one upstream call, got %d", tc.action, gen.calls)
		}
		if !strings.Contains(gen.prompts[0], tc.want) {
			t.Fatalf("%s: prompt %q does not contain %q", tc.action, gen.prompts[0], tc.want)
		}
	}
}

func TestAIService_UnknownAction(t *testing.T) {
	gen := &stubGenerator{result: "ok"}
	svc := NewAIService(gen, nil, zerolog.Nop())

	_, err := svc.Run(context.Background(), ports.GenerateInput{Action: "make-coffee", Prompt: "x"})
	if !errors.Is(err, domain.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("upstream must not be called for unknown actions")
	}
}

func TestAIService_MissingFields(t *testing.T) {
	gen := &stubGenerator{result: "ok"}
	svc := NewAIService(gen, nil, zerolog.Nop())

	for _, in := range []ports.GenerateInput{
		{Action: "generate-layout"},
		{Action: "generate-project-desc"},
		{Action: "explain-code"},
		{Action: "generate"},
	} {
		if _, err := svc.Run(context.Background(), in); !errors.Is(err, domain.ErrMissingField) {
			t.Fatalf("%s: expected ErrMissingField, got %v", in.Action, err)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("upstream must not be called for invalid requests")
	}
}

func TestAIService_UpstreamError(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrUpstream}
	svc := NewAIService(gen, nil, zerolog.Nop())

	_, err := svc.Run(context.Background(), ports.GenerateInput{Action: "generate", Prompt: "x"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestAIService_CacheHitSkipsUpstream(t *testing.T) {
	gen := &stubGenerator{result: "fresh"}
	cache := &stubCache{entries: map[string]string{}}
	svc := NewAIService(gen, cache, zerolog.Nop())

	in := ports.GenerateInput{Action: "generate", Prompt: "same prompt"}

	first, err := svc.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := svc.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached result, got %q then %q", first, second)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one upstream call with cache enabled, got %d", gen.calls)
	}
}
