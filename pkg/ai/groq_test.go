package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

func TestGroqGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer groq-key" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "custom-model" || len(payload.Messages) != 1 || payload.Messages[0].Content != "prompt" {
			t.Fatalf("unexpected payload %+v", payload)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"content": "analysis"}}},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "groq-key", BaseURL: ts.URL})
	out, err := client.Generate(context.Background(), "custom-model", "prompt")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "analysis" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGroqGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.Generate(context.Background(), "", "prompt"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestGroqGenerate_EmptyContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"  "}}]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.Generate(context.Background(), "", "prompt"); err == nil {
		t.Fatalf("expected error for blank content")
	}
}

func TestGroqGenerate_MissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{BaseURL: ts.URL})
	if _, err := client.Generate(context.Background(), "", "prompt"); err == nil {
		t.Fatalf("expected error without an API key")
	}
	if called {
		t.Fatalf("request must not be sent without an API key")
	}
}

func TestNewTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(&config.AIConfig{Provider: "gemini"})
	if err != nil || gen.Name() != "gemini" {
		t.Fatalf("expected gemini generator, got %v, %v", gen, err)
	}
	if ModelFor(&config.AIConfig{}, gen) != DefaultGeminiModel {
		t.Fatalf("expected default gemini model")
	}
	if ModelFor(&config.AIConfig{Model: "gemini-2.5-pro"}, gen) != "gemini-2.5-pro" {
		t.Fatalf("expected configured model to win")
	}

	gen, err = NewTextGenerator(&config.AIConfig{Provider: "groq"})
	if err != nil || gen.Name() != "groq" {
		t.Fatalf("expected groq generator, got %v, %v", gen, err)
	}

	if _, err := NewTextGenerator(&config.AIConfig{Provider: "unknown"}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
