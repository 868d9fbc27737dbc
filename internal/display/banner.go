package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art horizontally centred for the
// current terminal width. Art wider than the terminal is left as-is
// rather than clipped. To change the banner just replace banner.txt.
func RenderBanner() string {
	width := termWidth()

	art := strings.TrimRight(bannerRaw, "\n")
	if art == "" {
		return ""
	}
	if width <= lipgloss.Width(art) {
		return BannerStyle.Render(art)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, BannerStyle.Render(art))
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
