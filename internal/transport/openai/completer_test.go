package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

// openaiChatResponse mirrors the OpenAI-compatible chat completion response.
type openaiChatResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func chatResponse(content string) openaiChatResponse {
	resp := openaiChatResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Model:  "test-model",
	}
	resp.Choices = append(resp.Choices, struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	}{FinishReason: "stop"})
	resp.Choices[0].Message.Role = "assistant"
	resp.Choices[0].Message.Content = content
	resp.Usage.PromptTokens = 30
	resp.Usage.CompletionTokens = 12
	resp.Usage.TotalTokens = 42
	return resp
}

func TestCompleter_Complete(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("How was your weekend?"))
	}))
	defer server.Close()

	c := NewCompleter(&Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		ChatModel: "test-model",
		Provider:  "test",
		Logger:    zap.NewNop(),
	})

	result, err := c.Complete(context.Background(), domain.CompletionRequest{
		System: "You are an interviewer.",
		Messages: []domain.ChatMessage{
			{Role: "user", Content: "hi"},
		},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if result.Content != "How was your weekend?" {
		t.Errorf("unexpected content: %q", result.Content)
	}
	if result.TotalTokens != 42 {
		t.Errorf("TotalTokens = %d, expected 42", result.TotalTokens)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected 2 messages sent, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("expected first message role=system, got %q", gotReq.Messages[0].Role)
	}
	if gotReq.Messages[1].Content != "hi" {
		t.Errorf("expected user message forwarded, got %q", gotReq.Messages[1].Content)
	}
}

func TestCompleter_APIErrorWrapsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "upstream exploded", "type": "server_error"},
		})
	}))
	defer server.Close()

	c := NewCompleter(&Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		ChatModel: "test-model",
		Provider:  "test",
		Logger:    zap.NewNop(),
	})

	_, err := c.Complete(context.Background(), domain.CompletionRequest{
		Messages: []domain.ChatMessage{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !errors.Is(err, domain.ErrProviderError) {
		t.Errorf("expected error to wrap ErrProviderError, got %v", err)
	}
}
