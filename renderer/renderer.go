// Package renderer turns derived reports into markdown documents and charts.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/zenithfin/zenith"
)

//go:embed *.md
var templates embed.FS

// SummaryMarkdown renders the full ledger overview to a markdown string.
func SummaryMarkdown(r *zenith.SummaryReport) string {
	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
		"summary_cards":    "summary_cards.md",
		"summary_assets":   "summary_assets.md",
		"summary_goals":    "summary_goals.md",
	}
	return renderTemplate("summary", "summary.md", partials, r)
}

// InvoiceMarkdown renders one card invoice to a markdown string.
func InvoiceMarkdown(r *zenith.InvoiceReport) string {
	return renderTemplate("invoice", "invoice.md", nil, r)
}

// HistoryMarkdown renders the net-worth series to a markdown table.
func HistoryMarkdown(r *zenith.HistoryReport) string {
	return renderTemplate("history", "history.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
