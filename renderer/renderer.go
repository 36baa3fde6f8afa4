// Package renderer turns inventory data into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/evdv/stockpile"
)

//go:embed templates/*.md
var templates embed.FS

// ProductsView is the data behind a lot table: the inventory or expired
// report, or a raw bought ledger listing.
type ProductsView struct {
	Title    string
	Lots     []stockpile.BoughtLot
	Total    int
	Currency string
}

// SalesView is the data behind a sold entry table.
type SalesView struct {
	Title    string
	Entries  []stockpile.SoldEntry
	Total    int
	Currency string
}

// FigureView is a single named amount, such as a revenue or profit figure.
type FigureView struct {
	Title  string
	Amount stockpile.Money
	Day    string
}

// ChartView is the data behind the daily running totals table.
type ChartView struct {
	Title    string
	Series   []stockpile.DailyFigure
	Currency string
}

// RenderProducts renders a lot table to markdown.
func RenderProducts(v ProductsView) string {
	return renderTemplate("products", "templates/products.md", v)
}

// RenderSales renders a sold entry table to markdown.
func RenderSales(v SalesView) string {
	return renderTemplate("sales", "templates/sales.md", v)
}

// RenderFigure renders a single financial figure to markdown.
func RenderFigure(v FigureView) string {
	return renderTemplate("figure", "templates/figure.md", v)
}

// RenderChart renders the daily running totals to markdown.
func RenderChart(v ChartView) string {
	return renderTemplate("chart", "templates/chart.md", v)
}

// renderTemplate parses one embedded template with the shared helpers and
// executes it. Template errors surface in the output rather than as an
// error value; a broken template is a programming mistake, not a runtime
// condition the caller can handle.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Funcs(helpers).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
