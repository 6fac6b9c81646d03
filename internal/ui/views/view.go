package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one option line as the renderer sees it
type Row struct {
	Label       string
	Highlighted bool
	Selected    bool
}

// Symbols are the markers drawn in front of each option
type Symbols struct {
	Pointer   string
	Checked   string
	Unchecked string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Message     string
	Rows        []Row
	MoreAbove   bool
	MoreBelow   bool
	ShowSummary bool
	Summary     []string // selected labels in catalog order
	Error       string
	Footer      string
	Overlay     string // help overlay, drawn instead of the list
	Done        bool
	Cancelled   bool
	Answer      []string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	symbols Symbols
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles, symbols Symbols) *Renderer {
	return &Renderer{
		styles:  styles,
		symbols: symbols,
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Done || state.Cancelled {
		return r.renderFinal(state)
	}

	var b strings.Builder

	b.WriteString(r.styles.Title.Render(state.Message))
	b.WriteString("\n")

	if state.Overlay != "" {
		b.WriteString(r.styles.HelpOverlay.Render(state.Overlay))
		b.WriteString("\n")
		return b.String()
	}

	if state.MoreAbove {
		b.WriteString(r.styles.Scroll.Render("  ↑ more"))
		b.WriteString("\n")
	}
	for _, row := range state.Rows {
		b.WriteString(r.renderRow(row, state.Width))
		b.WriteString("\n")
	}
	if state.MoreBelow {
		b.WriteString(r.styles.Scroll.Render("  ↓ more"))
		b.WriteString("\n")
	}

	if state.ShowSummary && len(state.Summary) > 0 {
		summary := "Selected: " + strings.Join(state.Summary, ", ")
		if state.Width > 0 {
			summary = Truncate(summary, state.Width)
		}
		b.WriteString(r.styles.Summary.Render(summary))
		b.WriteString("\n")
	}

	if state.Error != "" {
		b.WriteString(r.styles.Error.Render("⚠ " + state.Error))
		b.WriteString("\n")
	}

	if state.Footer != "" {
		b.WriteString("\n")
		b.WriteString(state.Footer)
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow draws "<pointer> <box> <label>", cutting the label to width
func (r *Renderer) renderRow(row Row, width int) string {
	pointer := strings.Repeat(" ", runewidth.StringWidth(r.symbols.Pointer))
	if row.Highlighted {
		pointer = r.styles.Pointer.Render(r.symbols.Pointer)
	}

	box := r.symbols.Unchecked
	if row.Selected {
		box = r.symbols.Checked
	}

	label := row.Label
	if width > 0 {
		prefix := runewidth.StringWidth(r.symbols.Pointer) + runewidth.StringWidth(box) + 2
		label = Truncate(label, width-prefix)
	}

	style := r.styles.Unselected
	switch {
	case row.Highlighted:
		style = r.styles.Highlight
	case row.Selected:
		style = r.styles.Selected
	}

	boxStyle := r.styles.Dim
	if row.Selected {
		boxStyle = r.styles.Selected
	}

	return pointer + " " + boxStyle.Render(box) + " " + style.Render(label)
}

func (r *Renderer) renderFinal(state ViewState) string {
	title := r.styles.Title.Render(state.Message)
	if state.Cancelled {
		return title + " " + r.styles.Dim.Render("cancelled") + "\n"
	}
	if len(state.Answer) == 0 {
		return title + " " + r.styles.Dim.Render("none") + "\n"
	}
	return title + " " + r.styles.Answer.Render(strings.Join(state.Answer, ", ")) + "\n"
}
