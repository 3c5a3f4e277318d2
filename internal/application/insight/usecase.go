// Package insight solicita al LLM el análisis narrativo del stock y guarda el último
// resultado. Una sola solicitud a la vez; cualquier fallo se degrada al texto de respaldo.
package insight

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/seasafety-api/internal/application/ports"
	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
	"github.com/jhoicas/seasafety-api/pkg/logger"
	"github.com/jhoicas/seasafety-api/pkg/metrics"
)

// DefaultFallback texto mostrado cuando el servicio no responde.
const DefaultFallback = "Não foi possível gerar a análise de estoque no momento."

// State último análisis conocido.
type State struct {
	Insight   string
	Loading   bool
	Degraded  bool
	UpdatedAt time.Time // cero si nunca se pidió
}

// Config parámetros del requester.
type Config struct {
	Timeout         time.Duration
	FallbackMessage string
}

// UseCase requester con un único slot de resultado (gana la última escritura).
type UseCase struct {
	llm      ports.LLMService
	timeout  time.Duration
	fallback string
	clock    func() time.Time
	log      *logger.Logger
	metrics  *metrics.Metrics

	mu    sync.Mutex
	state State
}

// NewUseCase construye el requester. log y m pueden ser nil.
func NewUseCase(llm ports.LLMService, cfg Config, log *logger.Logger, m *metrics.Metrics) *UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if strings.TrimSpace(cfg.FallbackMessage) == "" {
		cfg.FallbackMessage = DefaultFallback
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		llm:      llm,
		timeout:  cfg.Timeout,
		fallback: cfg.FallbackMessage,
		clock:    time.Now,
		log:      log,
		metrics:  m,
	}
}

// Request pide un análisis nuevo sobre items. Con otra solicitud en curso devuelve
// domain.ErrInsightInProgress. El error del LLM nunca se propaga: se guarda el
// texto de respaldo. La llamada no se cancela si el cliente HTTP se desconecta.
func (uc *UseCase) Request(ctx context.Context, items []entity.InventoryItem) (State, error) {
	uc.mu.Lock()
	if uc.state.Loading {
		uc.mu.Unlock()
		uc.metrics.Insight(metrics.ResultBusy)
		return State{}, domain.ErrInsightInProgress
	}
	uc.state.Loading = true
	uc.mu.Unlock()
	// Libera la marca aunque el adaptador entre en pánico.
	defer func() {
		uc.mu.Lock()
		uc.state.Loading = false
		uc.mu.Unlock()
	}()

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.timeout)
	defer cancel()

	text, err := uc.llm.SummarizeStock(callCtx, items)
	text = strings.TrimSpace(text)
	degraded := err != nil || text == ""
	if degraded {
		uc.log.Warn().Err(err).Int("items", len(items)).Msg("análisis de IA no disponible, usando texto de respaldo")
		text = uc.fallback
		uc.metrics.Insight(metrics.ResultDegraded)
	} else {
		uc.metrics.Insight(metrics.ResultOK)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = State{Insight: text, Degraded: degraded, UpdatedAt: uc.clock()}
	return uc.state, nil
}

// State devuelve el último análisis y si hay uno en curso.
func (uc *UseCase) State() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}
