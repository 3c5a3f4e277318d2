package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// ErrNoAPIKey el proveedor no tiene clave configurada.
var ErrNoAPIKey = errors.New("AI: API key no configurada")

const stockSystemPrompt = `Você é um especialista em logística de equipamentos de segurança marítima.
Receberá a lista atual do estoque (material, categoria, saldo, mínimo).
Responda em português do Brasil, em no máximo 4 frases curtas e sem markdown:
- destaque os itens em ou abaixo do mínimo e a urgência de reposição;
- aponte riscos operacionais para as embarcações;
- sugira uma ação prioritária.`

// maxResponseBytes límite de lectura del cuerpo de respuesta.
const maxResponseBytes = 64 * 1024

// buildStockPrompt una línea por item; los críticos quedan marcados.
func buildStockPrompt(items []entity.InventoryItem) string {
	var b strings.Builder
	b.WriteString("Estoque atual:\n")
	for _, it := range items {
		status := "OK"
		if it.IsCritical() {
			status = "CRÍTICO"
		}
		fmt.Fprintf(&b, "- %s (%s): saldo %d %s, mínimo %d [%s]\n",
			it.Name, it.Category, it.Quantity, it.Unit, it.MinLevel, status)
	}
	if len(items) == 0 {
		b.WriteString("- (sem itens cadastrados)\n")
	}
	return b.String()
}

// Option personaliza los adaptadores HTTP.
type Option func(*httpOptions)

type httpOptions struct {
	baseURL string
	client  *http.Client
}

// WithBaseURL reemplaza el host de la API (tests o proxies).
func WithBaseURL(u string) Option {
	return func(o *httpOptions) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) { o.client = c }
}

func applyOptions(defaultURL string, timeout time.Duration, opts []Option) httpOptions {
	o := httpOptions{
		baseURL: defaultURL,
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
