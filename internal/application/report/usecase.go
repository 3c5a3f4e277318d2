// Package report exporta el inventario y el log de movimientos como PDF.
// Solo lectura: nunca modifica el store.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// DefaultInventoryTitle título del reporte de inventario cuando no se indica otro.
const DefaultInventoryTitle = "Inventário SEASAFETY"

// Generator puerto de salida hacia el motor PDF.
type Generator interface {
	InventoryPDF(ctx context.Context, title string, items []entity.InventoryItem, generatedAt time.Time) ([]byte, error)
	MovementPDF(ctx context.Context, movements []entity.Movement, generatedAt time.Time) ([]byte, error)
}

// Source foto consistente del inventario (inventory.UseCase).
type Source interface {
	Snapshot() ([]entity.InventoryItem, []entity.Movement)
}

// Document PDF generado con su nombre de descarga.
type Document struct {
	Filename string
	Content  []byte
}

// UseCase arma los reportes desde la foto actual.
type UseCase struct {
	src   Source
	gen   Generator
	clock func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(src Source, gen Generator) *UseCase {
	return &UseCase{src: src, gen: gen, clock: time.Now}
}

// InventoryReport PDF con todos los items y su estado de reposición.
func (uc *UseCase) InventoryReport(ctx context.Context, title string) (Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultInventoryTitle
	}
	items, _ := uc.src.Snapshot()
	now := uc.clock()

	content, err := uc.gen.InventoryPDF(ctx, title, items, now)
	if err != nil {
		return Document{}, fmt.Errorf("reporte de inventario: %w", err)
	}
	return Document{Filename: "inventario-seasafety-" + now.Format("2006-01-02") + ".pdf", Content: content}, nil
}

// MovementReport PDF con el log completo, más reciente primero.
func (uc *UseCase) MovementReport(ctx context.Context) (Document, error) {
	_, movements := uc.src.Snapshot()
	now := uc.clock()

	content, err := uc.gen.MovementPDF(ctx, movements, now)
	if err != nil {
		return Document{}, fmt.Errorf("reporte de movimientos: %w", err)
	}
	return Document{Filename: "movimentacoes-seasafety-" + now.Format("2006-01-02") + ".pdf", Content: content}, nil
}
