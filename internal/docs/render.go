package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	rendererMu sync.Mutex
	// Keyed by style + wrap width. A fixed style avoids the terminal
	// background query WithAutoStyle performs.
	renderers = map[string]*glamour.TermRenderer{}
)

// Style picks "dark" or "light" from a theme preference ("auto", "light",
// "dark") and an optional DTPICK_TUI_DARKBG / COLORFGBG hint.
func Style(theme, darkBG, colorFGBG string) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(darkBG)); err == nil {
		if b {
			return "dark"
		}
		return "light"
	}
	// COLORFGBG is "fg;bg"; xterm palette entries 7-15 are light.
	if v := strings.TrimSpace(colorFGBG); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && bg >= 0 {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Render renders markdown for a terminal. On renderer failure the markdown is
// returned unchanged along with the error.
func Render(md string, width int, style string) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	if width < 20 {
		width = 20
	}
	if style != "light" {
		style = "dark"
	}

	key := style + ":" + strconv.Itoa(width)
	rendererMu.Lock()
	defer rendererMu.Unlock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md, err
		}
		renderers[key] = rr
		r = rr
	}
	out, err := r.Render(md)
	if err != nil {
		return md, err
	}
	return strings.TrimRight(out, "\n"), nil
}
