package ai

import (
	"github.com/jhoicas/seasafety-api/internal/application/ports"
	"github.com/jhoicas/seasafety-api/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER.
func NewFromConfig(cfg config.AIConfig, opts ...Option) ports.LLMService {
	if cfg.Provider == config.AIProviderAnthropic {
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, opts...)
	}
	return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, opts...)
}
