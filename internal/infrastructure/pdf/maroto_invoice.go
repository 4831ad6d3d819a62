// Package pdf renderiza la representación imprimible de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + título  │  N° Factura + fechas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Negocio / contacto / email / dirección             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | Tarifa (₦) | Costo (₦)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Primer abono / Otros pagos / BALANCE    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Estado + Términos y condiciones                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	appbilling "github.com/kelechidev/invoicer-api/internal/application/billing"
	domainbilling "github.com/kelechidev/invoicer-api/internal/domain/billing"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/pkg/money"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ appbilling.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229} // índigo del editor
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	profile entity.UserProfile,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(profile.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(inv.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas de servicio
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(inv) {
		m.AddRows(r)
	}

	// Footer: estado + términos
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(inv) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + título (izq) y N° de factura + fechas (der).
func headerRow(inv *entity.Invoice, profile entity.UserProfile) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(profile.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(profile.Title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(profile.Website, props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 9,
			}),
			text.New(fmt.Sprintf("Issued: %s   Due: %s", inv.IssueDate, inv.DueDate), props.Text{
				Size: 8, Align: align.Right, Top: 16, Color: colorGray,
			}),
		),
	)
}

// clientRow: bloque "Bill To".
func clientRow(client entity.ClientDetails) core.Row {
	name := client.BusinessName
	if name == "" {
		name = client.Name
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(strings.TrimSpace(client.Name+"  "+client.Email), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
			text.New(client.Address, props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	hRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right}
	return row.New(7).Add(
		col.New(6).Add(text.New("SERVICE DESCRIPTION", h)),
		col.New(1).Add(text.New("QTY", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Center})),
		col.New(2).Add(text.New("RATE (₦)", hRight)),
		col.New(3).Add(text.New("PROJECT COST (₦)", hRight)),
	)
}

func tableItemRows(items []entity.InvoiceItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Description, props.Text{Size: 8})),
			col.New(1).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center})),
			col.New(2).Add(text.New(money.Format(it.Rate), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(money.Format(it.Total()), props.Text{Size: 8, Align: align.Right, Style: fontstyle.Bold})),
		))
	}
	return rows
}

// totalsRows: subtotal, primer abono, otros pagos y balance final.
// El balance puede salir negativo si hay sobrepago; se imprime tal cual.
func totalsRows(inv *entity.Invoice) []core.Row {
	s := domainbilling.Summarize(inv)

	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	amount := props.Text{Size: 9, Align: align.Right}

	rows := []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Subtotal (Project Cost)", label)),
			col.New(3).Add(text.New(money.FormatNaira(s.Subtotal), amount)),
		),
		row.New(6).Add(
			col.New(9).Add(text.New("First Payment Made", label)),
			col.New(3).Add(text.New("-"+money.FormatNaira(s.DepositAmount), amount)),
		),
	}
	if s.OtherPayments.IsPositive() {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New("Other Payments", label)),
			col.New(3).Add(text.New("-"+money.FormatNaira(s.OtherPayments), amount)),
		))
	}
	rows = append(rows, row.New(9).Add(
		col.New(9).Add(text.New("TOTAL BALANCE DUE (NGN)", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(money.FormatNaira(s.Balance), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
		})),
	))
	return rows
}

func footerRows(inv *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("STATUS: "+strings.ToUpper(strings.ReplaceAll(inv.Status, "_", " ")), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Terms & Conditions", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
		)),
	}
	for _, lineText := range strings.Split(inv.Terms, "\n") {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(lineText, props.Text{Size: 7, Color: colorGray}),
		)))
	}
	return rows
}
