package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
	"github.com/jhoicas/seasafety-api/internal/infrastructure/ai"
	"github.com/jhoicas/seasafety-api/pkg/config"
)

var stock = []entity.InventoryItem{
	{ID: "1", Name: "Coletes Salva-vidas Pro", Category: "Segurança", Quantity: 45, Unit: "un", MinLevel: 20},
	{ID: "4", Name: "Kit Primeiros Socorros Marítimo", Category: "Médico", Quantity: 3, Unit: "un", MinLevel: 5},
}

// ════════════════════════════════════════════════════════════════════════════
// Anthropic
// ════════════════════════════════════════════════════════════════════════════

func TestAnthropic_SummarizeStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body.Model)
		require.Len(t, body.Messages, 1)
		assert.Contains(t, body.Messages[0].Content, "Kit Primeiros Socorros Marítimo (Médico): saldo 3 un, mínimo 5 [CRÍTICO]")
		assert.Contains(t, body.Messages[0].Content, "Coletes Salva-vidas Pro (Segurança): saldo 45 un, mínimo 20 [OK]")

		_, _ = io.WriteString(w, `{"content":[{"type":"text","text":" Repor kits de primeiros socorros. "}]}`)
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("sk-test", "claude-test", ai.WithBaseURL(srv.URL))
	text, err := svc.SummarizeStock(context.Background(), stock)

	require.NoError(t, err)
	assert.Equal(t, "Repor kits de primeiros socorros.", text)
}

func TestAnthropic_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer srv.Close()

	_, err := ai.NewAnthropicService("sk-test", "m", ai.WithBaseURL(srv.URL)).SummarizeStock(context.Background(), stock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}

func TestAnthropic_SinAPIKey(t *testing.T) {
	_, err := ai.NewAnthropicService("", "m").SummarizeStock(context.Background(), stock)
	assert.ErrorIs(t, err, ai.ErrNoAPIKey)
}

// ════════════════════════════════════════════════════════════════════════════
// Gemini
// ════════════════════════════════════════════════════════════════════════════

func TestGemini_SummarizeStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))
		raw, _ := io.ReadAll(r.Body)
		assert.True(t, strings.Contains(string(raw), "system_instruction"))

		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Estoque de coletes adequado."},{"text":"Kits abaixo do mínimo."}]}}]}`)
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("g-key", "gemini-test", ai.WithBaseURL(srv.URL+"/"))
	text, err := svc.SummarizeStock(context.Background(), stock)

	require.NoError(t, err)
	assert.Equal(t, "Estoque de coletes adequado.\nKits abaixo do mínimo.", text)
}

func TestGemini_RespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	_, err := ai.NewGeminiService("g-key", "m", ai.WithBaseURL(srv.URL)).SummarizeStock(context.Background(), stock)
	assert.Error(t, err)
}

func TestGemini_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
	}))
	defer srv.Close()

	_, err := ai.NewGeminiService("bad", "m", ai.WithBaseURL(srv.URL)).SummarizeStock(context.Background(), stock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.NotContains(t, err.Error(), "bad", "la key no debe aparecer en el error")
}

func TestNewFromConfig(t *testing.T) {
	_, isAnthropic := ai.NewFromConfig(config.AIConfig{Provider: config.AIProviderAnthropic}).(*ai.AnthropicService)
	assert.True(t, isAnthropic)
	_, isGemini := ai.NewFromConfig(config.AIConfig{Provider: config.AIProviderGemini}).(*ai.GeminiService)
	assert.True(t, isGemini)
}
