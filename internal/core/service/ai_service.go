package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

// PromptCache abstracts the optional result cache (Redis) consulted before
// calling the upstream.
type PromptCache interface {
	Lookup(ctx context.Context, prompt string) (result string, ok bool, err error)
	Store(ctx context.Context, prompt, result string) error
}

// AIService translates named actions into prompts and proxies them to the
// text-generation upstream. The upstream is called at most once per request;
// there is no retry policy.
type aiService struct {
	generator ports.Generator
	cache     PromptCache // nil when no cache is configured
	log       zerolog.Logger
}

func NewAIService(generator ports.Generator, cache PromptCache, log zerolog.Logger) ports.AIService {
	return &aiService{generator: generator, cache: cache, log: log}
}

func (s *aiService) Run(ctx context.Context, in ports.GenerateInput) (string, error) {
	prompt, err := buildPrompt(in)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if result, ok, cacheErr := s.cache.Lookup(ctx, prompt); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("action", in.Action).Msg("prompt cache lookup failed, calling upstream")
		} else if ok {
			s.log.Debug().Str("action", in.Action).Msg("prompt cache hit")
			return result, nil
		}
	}

	result, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("action", in.Action).Msg("upstream generation failed")
		return "", err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Store(ctx, prompt, result); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("action", in.Action).Msg("failed to store prompt cache entry")
		}
	}

	return result, nil
}

// buildPrompt validates the action-specific fields and produces the prompt
// sent upstream.
func buildPrompt(in ports.GenerateInput) (string, error) {
	switch in.Action {
	case "generate-layout":
		if in.Description == "" {
			return "", fmt.Errorf("%w: description", domain.ErrMissingField)
		}
		return "Create a full UI layout plan for this project: " + in.Description, nil
	case "generate-project-desc":
		if in.Description == "" {
			return "", fmt.Errorf("%w: description", domain.ErrMissingField)
		}
		return "Write a detailed product description for this project: " + in.Description, nil
	case "explain-code":
		if in.Code == "" {
			return "", fmt.Errorf("%w: code", domain.ErrMissingField)
		}
		return "Explain this code step-by-step:\n" + in.Code, nil
	case "generate":
		if in.Prompt == "" {
			return "", fmt.Errorf("%w: prompt", domain.ErrMissingField)
		}
		return in.Prompt, nil
	default:
		return "", domain.ErrUnknownAction
	}
}
