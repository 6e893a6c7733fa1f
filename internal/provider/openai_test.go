package provider

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SolarisSy/iast/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("TEST_PROVIDER_KEY", "sk-test")
	c, err := NewClient(config.ProviderConfig{
		BaseURL:         srv.URL,
		APIKeyEnv:       "TEST_PROVIDER_KEY",
		EmbeddingModel:  "test-embed",
		CompletionModel: "test-chat",
		Timeout:         5 * time.Second,
		MaxRetries:      2,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c, srv
}

func TestNewClient_missingKey(t *testing.T) {
	t.Setenv("TEST_PROVIDER_KEY", "")
	if _, err := NewClient(config.ProviderConfig{APIKeyEnv: "TEST_PROVIDER_KEY"}); err == nil {
		t.Error("expected error when API key env is empty")
	}
}

func TestEmbedBatch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth header: %s", got)
		}
		var req struct {
			Input []string `json:"input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		resp := map[string]any{"data": []map[string]any{
			{"index": 1, "embedding": []float32{0, 2, 0}},
			{"index": 0, "embedding": []float32{3, 0, 0}},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	})
	vecs, err := c.EmbedBatch(context.Background(), []string{"um", "dois"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vecs) != 2 {
		t.Fatalf("got %d vectors", len(vecs))
	}
	// Out-of-order response indices must be reassembled into input order.
	if vecs[0][0] != 1 || vecs[1][1] != 1 {
		t.Errorf("vectors not normalized or misordered: %v", vecs)
	}
	var norm float64
	for _, v := range vecs[0] {
		norm += float64(v * v)
	}
	if math.Abs(norm-1) > 1e-6 {
		t.Errorf("vector not unit length: %f", norm)
	}
}

func TestEmbedBatch_countMismatch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	})
	if _, err := c.EmbedBatch(context.Background(), []string{"um"}); err == nil {
		t.Error("expected error when vector count mismatches input count")
	}
}

func TestComplete(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.MaxTokens != 20 {
			t.Errorf("max_tokens: %d", req.MaxTokens)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "saudacao"}}},
		})
	})
	out, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "olá"}},
		CompletionOptions{Temperature: 0, MaxTokens: 20})
	if err != nil {
		t.Fatal(err)
	}
	if out != "saudacao" {
		t.Errorf("got %q", out)
	}
}

func TestPost_retriesOn500(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	})
	out, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, CompletionOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "ok" || attempts != 3 {
		t.Errorf("got %q after %d attempts", out, attempts)
	}
}

func TestPost_noRetryOn400(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	})
	if _, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, CompletionOptions{}); err == nil {
		t.Error("expected error")
	}
	if attempts != 1 {
		t.Errorf("4xx must not be retried, got %d attempts", attempts)
	}
}

func TestMockEmbedder_deterministic(t *testing.T) {
	e := NewMockEmbedder(16)
	a, _ := e.Embed(context.Background(), "prazo para defesa")
	b, _ := e.Embed(context.Background(), "prazo para defesa")
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same text must embed identically")
		}
	}
	c, _ := e.Embed(context.Background(), "outro texto")
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts should embed differently")
	}
}
