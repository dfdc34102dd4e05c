package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaComplete(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		fmt.Fprint(w, `{"message":{"role":"assistant","content":"{\"analysis\":\"ok\"}"}}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "qwen2.5:3b")
	out, err := p.Complete(context.Background(), "analyze this video")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if !strings.Contains(out, `"analysis"`) {
		t.Errorf("unexpected completion: %q", out)
	}

	if gotReq.Model != "qwen2.5:3b" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("streaming must be disabled")
	}
	if gotReq.Format != "json" {
		t.Errorf("format = %q, want json", gotReq.Format)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestOllamaCompleteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":{"role":"assistant","content":""},"error":"model not found"}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing:latest")
	if _, err := p.Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error from ollama error field")
	}

	down := NewOllamaProvider("http://127.0.0.1:1", "any")
	if _, err := down.Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func TestOllamaListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"models":[{"name":"qwen2.5:3b"},{"name":"llama3.2:1b"}]}`)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "")
	models, err := p.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels error: %v", err)
	}
	if len(models) != 2 || models[0] != "qwen2.5:3b" {
		t.Errorf("models = %v", models)
	}
}
