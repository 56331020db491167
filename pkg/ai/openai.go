package ai

import (
	"context"
	"fmt"
	"net/http"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com/v1"
	openAIDefaultModel   = "gpt-4o-mini"

	moonshotDefaultBaseURL = "https://api.moonshot.ai/v1"
	moonshotDefaultModel   = "kimi-k2.5"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	httpClient *http.Client
	api        string
	apiKey     string
	model      string
	baseURL    string
}

// Ensure OpenAIClient implements Client.
var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for the OpenAI API.
func NewOpenAIClient(apiKey string, opts ...Option) *OpenAIClient {
	return newChatClient("openai", apiKey, applyOptions(openAIDefaultModel, openAIDefaultBaseURL, opts))
}

// NewMoonshotClient creates a client for the Moonshot (Kimi) API, which
// speaks the OpenAI protocol.
func NewMoonshotClient(apiKey string, opts ...Option) *OpenAIClient {
	return newChatClient("moonshot", apiKey, applyOptions(moonshotDefaultModel, moonshotDefaultBaseURL, opts))
}

func newChatClient(api, apiKey string, o httpOptions) *OpenAIClient {
	return &OpenAIClient{
		httpClient: &http.Client{},
		api:        api,
		apiKey:     apiKey,
		model:      o.model,
		baseURL:    o.baseURL,
	}
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
	Error   *openAIError   `json:"error,omitempty"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// GenerateText sends a prompt as a single user message.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: c.model,
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
	}

	var result openAIResponse
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	if err := postJSON(ctx, c.httpClient, c.api, c.baseURL+"/chat/completions", headers, reqBody, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("%s API error: %s", c.api, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return result.Choices[0].Message.Content, nil
}

// Close is a no-op for HTTP-based clients.
func (c *OpenAIClient) Close() error {
	return nil
}
