package text

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DaanHessen/dicetray/internal/store"
)

func TestHelpMarkdownListsKeys(t *testing.T) {
	md := HelpMarkdown([]KeyHelp{{Keys: "r", Does: "roll"}, {Keys: "c", Does: "clear"}})
	assert.Contains(t, md, "| `r` | roll |")
	assert.Contains(t, md, "| `c` | clear |")
}

func TestHistoryMarkdownEmpty(t *testing.T) {
	assert.Contains(t, HistoryMarkdown(nil), "No rolls recorded yet")
}

func TestHistoryMarkdownRows(t *testing.T) {
	md := HistoryMarkdown([]store.HistoryRecord{
		{Equation: "1d4 + 5d6", Mode: "sum", Result: "[1] + [1, 2, 3, 4, 5] -> 1 + 15 = 16", CreatedAt: time.Now()},
		{Equation: "2d20", Mode: "highest", Result: "[3, 17] -> 17 = 17", CreatedAt: time.Now()},
	})
	lines := strings.Split(strings.TrimSpace(md), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "**1d4 + 5d6**")
	assert.NotContains(t, lines[2], "(sum)")
	assert.Contains(t, lines[3], "(highest)")
}

func TestRenderKeepsContent(t *testing.T) {
	out := Render("# Title\n\nsome body text", 40)
	assert.Contains(t, out, "some body text")
}
