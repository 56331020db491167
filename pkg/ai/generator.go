package ai

import (
	"context"
	"fmt"
)

// Generator defines the interface for text generation
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Client is a Generator holding resources that must be released.
type Client interface {
	Generator
	Close() error
}

// Provider names a supported text generation backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderMoonshot  Provider = "moonshot"
	ProviderAnthropic Provider = "anthropic"
)

// Config selects and configures a provider. An empty Model uses the
// provider's default.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
}

// NewClient builds the client for cfg.Provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", cfg.Provider)
	}
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, withModel(cfg.Model)), nil
	case ProviderMoonshot:
		return NewMoonshotClient(cfg.APIKey, withModel(cfg.Model)), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.APIKey, withModel(cfg.Model)), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}

// Option adjusts an HTTP-based client.
type Option func(*httpOptions)

type httpOptions struct {
	model   string
	baseURL string
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(o *httpOptions) {
		o.model = model
	}
}

// WithBaseURL points the client at another endpoint, such as a proxy.
func WithBaseURL(url string) Option {
	return func(o *httpOptions) {
		o.baseURL = url
	}
}

func withModel(model string) Option {
	if model == "" {
		return func(*httpOptions) {}
	}
	return WithModel(model)
}

func applyOptions(model, baseURL string, opts []Option) httpOptions {
	o := httpOptions{model: model, baseURL: baseURL}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
