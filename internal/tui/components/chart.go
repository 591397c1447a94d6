package components

import (
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// HBar renders a single horizontal bar scaled against peak.
func HBar(value, peak float64, width int, color lipgloss.Color) string {
	t := theme.Active
	if width < 1 {
		width = 1
	}
	filled := 0
	if peak > 0 {
		filled = int(value / peak * float64(width))
	}
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}

	fg := lipgloss.NewStyle().Foreground(color)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return fg.Render(strings.Repeat("█", filled)) + dim.Render(strings.Repeat("░", width-filled))
}
