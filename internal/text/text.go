// Package text builds the markdown documents shown by the TUI and CLI and
// renders them for the terminal.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/dicetray/internal/store"
)

// KeyHelp is one key binding as listed in the help document.
type KeyHelp struct {
	Keys string
	Does string
}

// HelpMarkdown lists the key bindings.
func HelpMarkdown(keys []KeyHelp) string {
	var b strings.Builder
	b.WriteString("# dicetray\n\n")
	b.WriteString("Queue dice into an equation, then roll it. Each die type is rolled as one group; ")
	b.WriteString("*take highest* and *take lowest* keep one face per group instead of the sum.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("| `%s` | %s |\n", k.Keys, k.Does))
	}
	return b.String()
}

// HistoryMarkdown lists stored rolls, newest first.
func HistoryMarkdown(records []store.HistoryRecord) string {
	var b strings.Builder
	b.WriteString("# History\n\n")
	if len(records) == 0 {
		b.WriteString("_No rolls recorded yet._\n")
		return b.String()
	}
	for _, r := range records {
		mode := ""
		if r.Mode != "" && r.Mode != "sum" {
			mode = " (" + r.Mode + ")"
		}
		b.WriteString(fmt.Sprintf("- **%s**%s `%s` → `%s`\n", r.Equation, mode, r.CreatedAt.Local().Format("Jan 2 15:04"), r.Result))
	}
	return b.String()
}

// Render turns markdown into styled terminal output wrapped at width. When
// glamour cannot build a renderer the markdown is returned as is.
func Render(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
