package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChatCompletionsClients(t *testing.T) {
	tests := []struct {
		name      string
		newClient func(url string) *OpenAIClient
		wantModel string
	}{
		{"openai", func(url string) *OpenAIClient { return NewOpenAIClient("test-key", WithBaseURL(url)) }, openAIDefaultModel},
		{"moonshot", func(url string) *OpenAIClient { return NewMoonshotClient("test-key", WithBaseURL(url)) }, moonshotDefaultModel},
		{"custom model", func(url string) *OpenAIClient {
			return NewOpenAIClient("test-key", WithBaseURL(url), WithModel("gpt-4.1"))
		}, "gpt-4.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer test-key" {
					t.Errorf("expected Bearer test-key, got %s", r.Header.Get("Authorization"))
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("expected application/json, got %s", r.Header.Get("Content-Type"))
				}

				var req openAIRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if req.Model != tt.wantModel {
					t.Errorf("expected model %s, got %s", tt.wantModel, req.Model)
				}
				if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
					t.Errorf("unexpected messages: %+v", req.Messages)
				}

				json.NewEncoder(w).Encode(openAIResponse{
					Choices: []openAIChoice{{Message: openAIMessage{Role: "assistant", Content: "world"}}},
				})
			}))
			defer server.Close()

			result, err := tt.newClient(server.URL).GenerateText(context.Background(), "hello")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != "world" {
				t.Errorf("expected 'world', got %q", result)
			}
		})
	}
}

func TestChatCompletionsFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"invalid api key"}}`, "status 401"},
		{"error in body", http.StatusOK, `{"error":{"message":"quota exceeded"}}`, "quota exceeded"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"malformed", http.StatusOK, `not json`, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewMoonshotClient("key", WithBaseURL(server.URL)).GenerateText(context.Background(), "hello")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAnthropicGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("expected /messages, got %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected test-key, got %s", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Errorf("expected %s, got %s", anthropicVersion, r.Header.Get("anthropic-version"))
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != anthropicDefaultModel || req.MaxTokens != anthropicMaxTokens {
			t.Errorf("unexpected request %+v", req)
		}

		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicTextBlock{{Type: "text", Text: "wor"}, {Type: "text", Text: "ld"}},
		})
	}))
	defer server.Close()

	result, err := NewAnthropicClient("test-key", WithBaseURL(server.URL)).GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "world" {
		t.Errorf("expected 'world', got %q", result)
	}
}

func TestAnthropicEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	if _, err := NewAnthropicClient("k", WithBaseURL(server.URL)).GenerateText(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	if _, err := NewClient(ctx, Config{Provider: ProviderOpenAI}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewClient(ctx, Config{Provider: "llama", APIKey: "k"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	c, err := NewClient(ctx, Config{Provider: ProviderMoonshot, APIKey: "k", Model: "kimi-latest"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()
	oc, ok := c.(*OpenAIClient)
	if !ok || oc.model != "kimi-latest" || oc.baseURL != moonshotDefaultBaseURL {
		t.Errorf("unexpected client %+v", c)
	}
}
