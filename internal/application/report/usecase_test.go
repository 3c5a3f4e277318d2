package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

type fakeSource struct {
	items     []entity.InventoryItem
	movements []entity.Movement
}

func (f fakeSource) Snapshot() ([]entity.InventoryItem, []entity.Movement) {
	return f.items, f.movements
}

type fakeGenerator struct {
	title     string
	items     []entity.InventoryItem
	movements []entity.Movement
	err       error
}

func (g *fakeGenerator) InventoryPDF(_ context.Context, title string, items []entity.InventoryItem, _ time.Time) ([]byte, error) {
	g.title, g.items = title, items
	return []byte("%PDF-inv"), g.err
}

func (g *fakeGenerator) MovementPDF(_ context.Context, movements []entity.Movement, _ time.Time) ([]byte, error) {
	g.movements = movements
	return []byte("%PDF-mov"), g.err
}

func newTestUseCase(gen *fakeGenerator) *UseCase {
	src := fakeSource{
		items:     []entity.InventoryItem{{ID: "1", Name: "Coletes"}},
		movements: []entity.Movement{{ID: "m1", ItemID: "1"}},
	}
	uc := NewUseCase(src, gen)
	uc.clock = func() time.Time { return time.Date(2024, time.April, 9, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestInventoryReport_TituloPorDefecto(t *testing.T) {
	gen := &fakeGenerator{}
	doc, err := newTestUseCase(gen).InventoryReport(context.Background(), "  ")

	require.NoError(t, err)
	assert.Equal(t, DefaultInventoryTitle, gen.title)
	assert.Len(t, gen.items, 1)
	assert.Equal(t, "inventario-seasafety-2024-04-09.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-inv"), doc.Content)
}

func TestInventoryReport_TituloPersonalizado(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := newTestUseCase(gen).InventoryReport(context.Background(), "Auditoria Navio Atlântico")
	require.NoError(t, err)
	assert.Equal(t, "Auditoria Navio Atlântico", gen.title)
}

func TestMovementReport(t *testing.T) {
	gen := &fakeGenerator{}
	doc, err := newTestUseCase(gen).MovementReport(context.Background())

	require.NoError(t, err)
	assert.Len(t, gen.movements, 1)
	assert.Equal(t, "movimentacoes-seasafety-2024-04-09.pdf", doc.Filename)
}

func TestReport_ErrorDelGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("fuente no disponible")}
	_, err := newTestUseCase(gen).MovementReport(context.Background())
	assert.ErrorContains(t, err, "fuente no disponible")
}
