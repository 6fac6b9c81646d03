package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"multiselect/internal/ui/input"
	"multiselect/internal/ui/views"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// keyNames maps tea key names to what the help screen shows
var keyNames = map[string]string{
	" ":     "space",
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	styles *views.Styles
	keys   input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(styles *views.Styles, keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{
		styles: styles,
		keys:   keys,
	}
}

// lines builds the full help text, one entry per line
func (r *HelpRenderer) lines() []string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{r.keys.Up, r.keys.Down}},
		{"Selection", []key.Binding{r.keys.Toggle, r.keys.Submit}},
		{"Other", []key.Binding{r.keys.Help, r.keys.Cancel}},
	}

	var out []string
	for i, section := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, r.styles.HelpSection.Render(section.title))
		for _, b := range section.bindings {
			out = append(out, fmt.Sprintf("  %s  %s",
				r.styles.HelpKey.Render(fmt.Sprintf("%-16s", bindingKeys(b))),
				r.styles.HelpDesc.Render(b.Help().Desc)))
		}
	}

	out = append(out, "", r.styles.Dim.Render("  The list wraps around at both ends."))
	return out
}

func bindingKeys(b key.Binding) string {
	names := make([]string, 0, len(b.Keys()))
	for _, k := range b.Keys() {
		if display, ok := keyNames[k]; ok {
			k = display
		}
		names = append(names, k)
	}
	return strings.Join(names, ", ")
}

// visibleHeight is the number of help lines that fit in a terminal of the
// given height, leaving room for the title and the overlay border
func visibleHeight(height int) int {
	visible := height - 4
	if visible < 5 {
		visible = 5
	}
	return visible
}

// MaxScroll returns the largest useful scroll offset for height
func (r *HelpRenderer) MaxScroll(height int) int {
	maxOffset := len(r.lines()) - visibleHeight(height)
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// renderHelpContent renders the part of the help that fits in height,
// starting at scrollOffset
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	lines := r.lines()
	totalLines := len(lines)
	visible := visibleHeight(height)

	if totalLines <= visible {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visible
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	end := scrollOffset + visible
	visibleLines := append([]string(nil), lines[scrollOffset:end]...)

	if scrollOffset > 0 {
		visibleLines[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if end < totalLines {
		visibleLines[len(visibleLines)-1] = r.styles.Scroll.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}

// RenderHelpContentPlain generates the whole help text for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	return r.styles.Title.Render("Multiselect Help") + "\n\n" + strings.Join(r.lines(), "\n") + "\n"
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
