package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"multiselect/internal/config"
)

func newTestRenderer() *Renderer {
	cfg := config.DefaultConfig()
	return NewRenderer(NewStyles(cfg.Colors), Symbols{Pointer: ">", Checked: "[x]", Unchecked: "[ ]"})
}

func TestRenderRows(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(ViewState{
		Message: "Pick colors",
		Rows: []Row{
			{Label: "Red", Highlighted: true},
			{Label: "Green", Selected: true},
			{Label: "Blue"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Pick colors")
	assert.Contains(t, lines[1], "> [ ] Red")
	assert.Contains(t, lines[2], "  [x] Green")
	assert.Contains(t, lines[3], "  [ ] Blue")
}

func TestRenderSummaryErrorAndFooter(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(ViewState{
		Message:     "Pick",
		Rows:        []Row{{Label: "a", Highlighted: true}},
		ShowSummary: true,
		Summary:     []string{"A", "C"},
		Error:       "Select at least 3 options.",
		Footer:      "enter submit",
	})

	assert.Contains(t, out, "Selected: A, C")
	assert.Contains(t, out, "Select at least 3 options.")
	assert.Contains(t, out, "enter submit")
}

func TestSummaryHiddenWhenEmptyOrDisabled(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(ViewState{Message: "Pick", ShowSummary: true})
	assert.NotContains(t, out, "Selected:")

	out = r.Render(ViewState{Message: "Pick", Summary: []string{"A"}})
	assert.NotContains(t, out, "Selected:")
}

func TestScrollHints(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(ViewState{Message: "Pick", MoreAbove: true, MoreBelow: true})
	assert.Contains(t, out, "↑ more")
	assert.Contains(t, out, "↓ more")
}

func TestOverlayReplacesList(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(ViewState{
		Message: "Pick",
		Rows:    []Row{{Label: "hidden-row"}},
		Overlay: "help text",
	})
	assert.Contains(t, out, "help text")
	assert.NotContains(t, out, "hidden-row")
}

func TestFinalStates(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(ViewState{Message: "Pick", Done: true, Answer: []string{"Green", "Blue"}})
	assert.Contains(t, out, "Green, Blue")

	out = r.Render(ViewState{Message: "Pick", Done: true})
	assert.Contains(t, out, "none")

	out = r.Render(ViewState{Message: "Pick", Cancelled: true, Rows: []Row{{Label: "x"}}})
	assert.Contains(t, out, "cancelled")
	assert.NotContains(t, out, "[ ]")
}

func TestLongLabelsAreTruncated(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(ViewState{
		Message: "Pick",
		Width:   13,
		Rows:    []Row{{Label: "a very long label indeed"}},
	})
	assert.Contains(t, out, "a very…")
	assert.NotContains(t, out, "indeed")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "…", Truncate("anything", 1))
	assert.Equal(t, "abc…", Truncate("abcdefgh", 4))
	// wide runes take two columns each
	assert.Equal(t, "日本…", Truncate("日本語テキスト", 5))
}
