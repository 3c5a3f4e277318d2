// Package pdf implementa los reportes de inventario y movimientos con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SEASAFETY + título   │  Fecha de emisión (pt-BR)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por item o movimiento                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales (unidades, items críticos, volumen)        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/seasafety-api/internal/application/report"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorOK      = &props.Color{Red: 20, Green: 130, Blue: 70}
)

const (
	brandName      = "SEASAFETY"
	movementsTitle = "Relatório de Movimentações"
	dateTimeLayout = "02/01/2006 15:04"
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	printer  *message.Printer
	location *time.Location
}

// NewMarotoReportGenerator construye el generador. loc nil usa la hora local.
func NewMarotoReportGenerator(loc *time.Location) *MarotoReportGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &MarotoReportGenerator{
		printer:  message.NewPrinter(language.BrazilianPortuguese),
		location: loc,
	}
}

// InventoryPDF tabla de items con saldo, mínimo y estado de reposición.
func (g *MarotoReportGenerator) InventoryPDF(_ context.Context, title string, items []entity.InventoryItem, generatedAt time.Time) ([]byte, error) {
	m := newDocument(title)

	m.AddRows(g.headerRow(title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	m.AddRows(tableHeaderRow([]headerCell{
		{"Material", 4, align.Left},
		{"Categoria", 3, align.Left},
		{"Saldo", 2, align.Right},
		{"Mínimo", 1, align.Right},
		{"Status", 2, align.Center},
	}))
	if len(items) == 0 {
		m.AddRows(emptyRow("Nenhum item cadastrado."))
	}
	critical, total := 0, 0
	for _, it := range items {
		if it.IsCritical() {
			critical++
		}
		total += it.Quantity
		m.AddRows(g.itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(
		g.printer.Sprintf("Total de itens: %d   |   Unidades em estoque: %d", len(items), total),
		g.printer.Sprintf("Itens em reposição: %d", critical),
		critical > 0,
	))

	return generate(m)
}

// MovementPDF tabla del log completo, en el orden recibido (más reciente primero).
func (g *MarotoReportGenerator) MovementPDF(_ context.Context, movements []entity.Movement, generatedAt time.Time) ([]byte, error) {
	m := newDocument(movementsTitle)

	m.AddRows(g.headerRow(movementsTitle, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	m.AddRows(tableHeaderRow([]headerCell{
		{"Data/Hora", 2, align.Left},
		{"Operação", 2, align.Center},
		{"Material", 3, align.Left},
		{"Volume", 1, align.Right},
		{"Destino", 2, align.Left},
		{"Usuário", 2, align.Left},
	}))
	if len(movements) == 0 {
		m.AddRows(emptyRow("Nenhuma movimentação registrada."))
	}
	in, out := 0, 0
	for _, mv := range movements {
		if mv.Type == entity.MovementTypeOUT {
			out += mv.Quantity
		} else {
			in += mv.Quantity
		}
		m.AddRows(g.movementRow(mv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(
		g.printer.Sprintf("Movimentações: %d", len(movements)),
		g.printer.Sprintf("Entradas: %d   |   Saídas: %d", in, out),
		false,
	))

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(brandName, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: marca + título (izq) y fecha de emisión (der).
func (g *MarotoReportGenerator) headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(brandName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("EMITIDO EM", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.In(g.location).Format(dateTimeLayout), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla con fondo azul.
func tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

func (g *MarotoReportGenerator) itemRow(it entity.InventoryItem) core.Row {
	status, statusColor := "OK", colorOK
	if it.IsCritical() {
		status, statusColor = "REPOSIÇÃO", colorAlert
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(it.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(
			g.printer.Sprintf("%d %s", it.Quantity, it.Unit),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			g.printer.Sprintf("%d", it.MinLevel),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(status, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor,
		})),
	)
}

func (g *MarotoReportGenerator) movementRow(mv entity.Movement) core.Row {
	label, labelColor := "ENTRADA", colorOK
	if mv.Type == entity.MovementTypeOUT {
		label, labelColor = "SAÍDA", colorAlert
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(mv.Date.In(g.location).Format(dateTimeLayout), props.Text{Size: 7.5, Top: 1, Left: 1})),
		col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: labelColor,
		})),
		col.New(3).Add(text.New(mv.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(
			g.printer.Sprintf("%d", mv.Quantity),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(mv.Destination, props.Text{Size: 7.5, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(mv.User, props.Text{Size: 7.5, Top: 1, Left: 1, Color: colorGray})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
	))
}

// footerRow: resumen a la izquierda y destacado a la derecha.
func footerRow(summary, highlight string, alert bool) core.Row {
	c := colorPrimary
	if alert {
		c = colorAlert
	}
	return row.New(10).Add(
		col.New(7).Add(text.New(summary, props.Text{Size: 8, Top: 3, Color: colorGray})),
		col.New(5).Add(text.New(highlight, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Color: c,
		})),
	)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
