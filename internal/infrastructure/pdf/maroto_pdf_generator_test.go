package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

var generatedAt = time.Date(2024, time.May, 2, 16, 45, 0, 0, time.UTC)

func TestInventoryPDF(t *testing.T) {
	g := NewMarotoReportGenerator(time.UTC)
	items := []entity.InventoryItem{
		{ID: "1", Name: "Coletes Salva-vidas Pro", Category: "Segurança", Quantity: 1450, Unit: "un", MinLevel: 20},
		{ID: "2", Name: "Boia Circular Rígida", Category: "Salvamento", Quantity: 8, Unit: "un", MinLevel: 10},
	}

	out, err := g.InventoryPDF(context.Background(), "Inventário SEASAFETY", items, generatedAt)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestInventoryPDF_SinItems(t *testing.T) {
	out, err := NewMarotoReportGenerator(nil).InventoryPDF(context.Background(), "Vazio", nil, generatedAt)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMovementPDF(t *testing.T) {
	g := NewMarotoReportGenerator(time.UTC)
	movements := []entity.Movement{
		{ID: "x2", ItemName: "Boia Circular Rígida", Type: entity.MovementTypeOUT, Quantity: 2, Destination: "Navio Atlântico", Date: generatedAt, User: "Ana"},
		{ID: "m1", ItemName: "Coletes Salva-vidas Pro", Type: entity.MovementTypeIN, Quantity: 50, Destination: "Doca Principal", Date: generatedAt.Add(-time.Hour), User: "Admin"},
	}

	out, err := g.MovementPDF(context.Background(), movements, generatedAt)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPrinterPtBR(t *testing.T) {
	g := NewMarotoReportGenerator(time.UTC)
	assert.Equal(t, "1.450", g.printer.Sprintf("%d", 1450))
}
