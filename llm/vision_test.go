package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("strict JSON", func(t *testing.T) {
		data, err := extractJSONObject(`{"vendor":"Acme","amount":42.5}`)
		if err != nil {
			t.Fatalf("extractJSONObject error = %v", err)
		}
		if data["vendor"] != "Acme" || data["amount"] != 42.5 {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("JSON wrapped in prose", func(t *testing.T) {
		response := "Here is the extracted data:\n```json\n{\"vendor\": \"Acme\",\n\"amount\": 10}\n```\nLet me know if you need more."
		data, err := extractJSONObject(response)
		if err != nil {
			t.Fatalf("extractJSONObject error = %v", err)
		}
		if data["vendor"] != "Acme" {
			t.Errorf("vendor = %v, want Acme", data["vendor"])
		}
	})

	t.Run("no JSON at all", func(t *testing.T) {
		if _, err := extractJSONObject("I cannot read this image, sorry."); err == nil {
			t.Fatal("extractJSONObject error = nil, want parse failure")
		}
	})

	t.Run("braces but invalid JSON", func(t *testing.T) {
		if _, err := extractJSONObject("{vendor: Acme,}"); err == nil {
			t.Fatal("extractJSONObject error = nil, want parse failure")
		}
	})
}

func completionResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestAnalyzeBillImage(t *testing.T) {
	t.Run("compliant model", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("Authorization = %q", got)
			}
			w.Write([]byte(completionResponse(`{"vendor":"Fresh Mart","amount":54.2,"category":"groceries"}`)))
		}))
		defer srv.Close()

		client := New("test-key", "gpt-4o")
		client.url = srv.URL

		data, err := client.AnalyzeBillImage(context.Background(), "aGVsbG8=")
		if err != nil {
			t.Fatalf("AnalyzeBillImage error = %v", err)
		}
		if data["vendor"] != "Fresh Mart" || data["category"] != "groceries" {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("non-JSON reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionResponse("no structured data here")))
		}))
		defer srv.Close()

		client := New("test-key", "gpt-4o")
		client.url = srv.URL

		if _, err := client.AnalyzeBillImage(context.Background(), "aGVsbG8="); err == nil {
			t.Fatal("AnalyzeBillImage error = nil, want parse failure")
		}
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := New("test-key", "gpt-4o")
		client.url = srv.URL

		if _, err := client.AnalyzeBillImage(context.Background(), "aGVsbG8="); err == nil {
			t.Fatal("AnalyzeBillImage error = nil, want status failure")
		}
	})
}
