package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

func TestGeminiGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}
		var payload GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Contents) != 1 || payload.Contents[0].Parts[0].Text != "the prompt" {
			t.Fatalf("prompt must be the sole content, got %+v", payload.Contents)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## Strengths\n"},{"text":"solid"}]},"finishReason":"STOP"}]}`))
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})
	out, err := client.Generate(context.Background(), DefaultGeminiModel, "the prompt")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "## Strengths\nsolid" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGeminiGenerate_Errors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"http error":      {http.StatusTooManyRequests, `{"error":{"message":"quota"}}`, "status 429"},
		"malformed":       {http.StatusOK, `not json`, "malformed"},
		"no candidates":   {http.StatusOK, `{"candidates":[]}`, "empty response"},
		"blocked":         {http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, "SAFETY"},
		"candidate empty": {http.StatusOK, `{"candidates":[{"content":{"parts":[]},"finishReason":"MAX_TOKENS"}]}`, "MAX_TOKENS"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			client := NewGeminiClient(&config.GeminiConfig{APIKey: "k", BaseURL: ts.URL})
			_, err := client.Generate(context.Background(), "", "prompt")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestGeminiGenerate_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	client := NewGeminiClient(&config.GeminiConfig{BaseURL: "http://127.0.0.1:1"})
	if _, err := client.Generate(context.Background(), "", "prompt"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
