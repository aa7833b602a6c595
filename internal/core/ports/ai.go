package ports

import "context"

// Generator is the pluggable text-generation upstream. Implementations wrap
// transport failures in domain.ErrUpstream.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateInput carries the action-specific fields of an AI request.
type GenerateInput struct {
	Action      string
	Prompt      string
	Description string
	Code        string
}

// AIService maps a named action to a prompt and proxies it to the upstream.
type AIService interface {
	Run(ctx context.Context, input GenerateInput) (string, error)
}
