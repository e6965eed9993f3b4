// Package pdf genera con Maroto v2 los documentos descargables: el recibo de
// una venta y el reporte del gerente.
//
// Layout del recibo (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + RECIBO     │  N° Venta + Fecha            │
//	│  CAJERO / transacciones                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total | Stock restante   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / TOTAL                                   │
//	│  FOOTER: QR con sale_id + leyenda                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/storemax-web/internal/application/dto"
	"github.com/jhoicas/storemax-web/internal/application/ports"
	"github.com/jhoicas/storemax-web/internal/application/report"
)

var _ ports.DocumentRenderer = (*MarotoRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 122, Blue: 87}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoRenderer implementa ports.DocumentRenderer.
type MarotoRenderer struct {
	storeName string
}

// NewMarotoRenderer construye el renderer; storeName encabeza los documentos.
func NewMarotoRenderer(storeName string) *MarotoRenderer {
	return &MarotoRenderer{storeName: nonEmpty(storeName, "StoreMax")}
}

func (g *MarotoRenderer) document(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.storeName, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ReceiptPDF recibo de una venta confirmada.
func (g *MarotoRenderer) ReceiptPDF(r *dto.ReceiptDTO) ([]byte, error) {
	m := g.document("Receipt " + r.SaleID)

	m.AddRows(g.receiptHeaderRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cashierRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(
		heading{"Qty", 1, align.Center},
		heading{"Product", 5, align.Left},
		heading{"Unit price", 2, align.Right},
		heading{"Total", 2, align.Right},
		heading{"Stock left", 2, align.Right},
	))
	for _, l := range r.Lines {
		m.AddRows(tableRow(
			cell{fmt.Sprint(l.SoldQuantity), 1, align.Center},
			cell{l.ProductName, 5, align.Left},
			cell{report.Money(l.PricePerUnit), 2, align.Right},
			cell{report.Money(l.ItemTotal), 2, align.Right},
			cell{report.Number(l.RemainingStock), 2, align.Right},
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		[2]string{"Items:", report.Number(r.ItemCount)},
		[2]string{"TOTAL:", report.Money(r.TotalAmount)},
	))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(receiptFooterRow(r))

	return generate(m)
}

// ManagerReportPDF mismas secciones que el CSV del gerente.
func (g *MarotoRenderer) ManagerReportPDF(v *dto.ManagerDashboardDTO) ([]byte, error) {
	m := g.document(report.Title)

	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Manager Dashboard Report", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated At", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(v.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Size: 9, Align: align.Right, Top: 7}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(metricSection("OVERVIEW", [][2]string{
		{"Total Sales", report.Money(v.Sales.TotalSales)},
		{"Total Products", report.Number(v.Inventory.TotalProducts)},
		{"Low Stock Items", report.Number(v.Inventory.LowStockItems)},
		{"Out of Stock Items", report.Number(v.Inventory.OutOfStockItems)},
	})...)
	m.AddRows(metricSection("SALES METRICS", [][2]string{
		{"Total Revenue", report.Money(v.Sales.TotalSales)},
		{"Total Transactions", report.Number(v.Sales.TotalTransactions)},
		{"Average Ticket", report.Money(v.Sales.AverageTicket)},
		{"Items Sold", report.Number(v.Sales.ItemsSold)},
	})...)
	m.AddRows(metricSection("SALES TRENDS", [][2]string{
		{"Weekly (4 weeks)", report.Money(v.Trends.WeeklyAverage)},
		{"Monthly (12 months)", report.Money(v.Trends.MonthlyAverage)},
		{"Daily (30 days)", report.Money(v.Trends.DailyAverage)},
	})...)

	if len(v.Alerts) > 0 {
		m.AddRows(sectionTitle("ALERTS"))
		for _, a := range v.Alerts {
			m.AddRows(tableRow(
				cell{strings.ToUpper(a.Priority), 2, align.Left},
				cell{a.Title, 4, align.Left},
				cell{a.Description, 6, align.Left},
			))
		}
	}

	if len(v.Sales.RecentSales) > 0 {
		m.AddRows(sectionTitle("RECENT TRANSACTIONS"))
		m.AddRows(tableHeaderRow(
			heading{"Customer", 3, align.Left},
			heading{"Time", 3, align.Left},
			heading{"Items", 2, align.Center},
			heading{"Amount", 2, align.Right},
			heading{"Status", 2, align.Center},
		))
		for _, s := range v.Sales.RecentSales {
			m.AddRows(tableRow(
				cell{nonEmpty(s.Employee, "N/A"), 3, align.Left},
				cell{report.Timestamp(s.SaleDate), 3, align.Left},
				cell{report.Number(s.Items), 2, align.Center},
				cell{report.Money(s.Amount), 2, align.Right},
				cell{s.Status, 2, align.Center},
			))
		}
	}

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// receiptHeaderRow: tienda (izq) y N° de venta + fecha (der).
func (g *MarotoRenderer) receiptHeaderRow(r *dto.ReceiptDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Sales receipt", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECEIPT", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("#"+r.SaleID, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Date: "+r.Timestamp.Format("2006-01-02 15:04"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func cashierRow(r *dto.ReceiptDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CASHIER", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s   |   Transactions: %s",
				nonEmpty(r.Employee, "N/A"),
				nonEmpty(strings.Join(r.TransactionIDs, ", "), "N/A"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

type heading struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow cabecera de tabla en texto blanco sobre la franja primaria.
func tableHeaderRow(cols ...heading) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, h := range cols {
		out = append(out, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

type cell struct {
	value string
	size  int
	align align.Type
}

func tableRow(cells ...cell) core.Row {
	out := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		out = append(out, col.New(c.size).Add(text.New(c.value, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(out...)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// metricSection título + pares métrica/valor.
func metricSection(title string, metrics [][2]string) []core.Row {
	rows := []core.Row{sectionTitle(title)}
	for _, mv := range metrics {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(mv[0], props.Text{Size: 9, Top: 1, Left: 2})),
			col.New(6).Add(text.New(mv[1], props.Text{Size: 9, Top: 1, Align: align.Right, Right: 2})),
		))
	}
	return rows
}

// totalsRow bloque de totales alineado a la derecha; el último par va resaltado.
func totalsRow(pairs ...[2]string) core.Row {
	labels := make([]core.Component, 0, len(pairs))
	values := make([]core.Component, 0, len(pairs))
	for i, p := range pairs {
		style := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: float64(i * 6)}
		value := props.Text{Size: 9, Align: align.Right, Right: 1, Top: float64(i * 6)}
		if i == len(pairs)-1 {
			style.Size, style.Color = 10, colorPrimary
			value.Style, value.Size, value.Color = fontstyle.Bold, 10, colorPrimary
		}
		labels = append(labels, text.New(p[0], style))
		values = append(values, text.New(p[1], value))
	}
	return row.New(float64(6*len(pairs)+4)).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// receiptFooterRow QR con sale_id y total + leyenda.
func receiptFooterRow(r *dto.ReceiptDTO) core.Row {
	qr := fmt.Sprintf("sale_id=%s;total=%s", r.SaleID, r.TotalAmount.StringFixed(2))
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Thank you for your purchase.", props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary}),
			text.New("Keep this receipt as proof of payment.\nThe QR code identifies the sale in the store system.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
