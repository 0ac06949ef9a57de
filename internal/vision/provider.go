package vision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bistrodata/invoice-tracker/internal/common"
)

// New builds the configured provider. A missing credential is an error;
// callers treat it as "vision unavailable" and run the pipeline without the
// final escalation rung rather than failing startup.
func New(ctx context.Context, cfg common.VisionConfig, logger *slog.Logger) (Extractor, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, GeminiConfig{
			APIKey:  cfg.GeminiKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Timeout,
		}, logger)
	case "openai", "":
		return NewOpenAI(OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown vision provider %q", cfg.Provider)
	}
}
