// Package render draws the equation structure of an assembled cell model
// as SVG: one row per governed state variable, colored by equation kind,
// with the termination events listed underneath.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/cellsim-xyz/go-cellsim/model"
)

// Visual constants for rendering.
const (
	rowHeight    = 34.0
	marginX      = 20.0
	marginY      = 48.0
	stateRadius  = 9.0
	labelOffset  = 18.0
	maxEquation  = 90 // equation text truncated beyond this many runes
	canvasWidth  = 900
	odeFillColor = "#4a90d9"
	daeFillColor = "#e2a33d"
)

// RenderSVG renders the model's equation structure to an SVG string.
// Output is deterministic: states appear in sorted order.
func RenderSVG(m *model.Model) string {
	summary := m.Summarize()

	rows := len(summary.Differential) + len(summary.Algebraic) + len(summary.Events)
	height := marginY + rowHeight*float64(rows) + 60

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%.0f" viewBox="0 0 %d %.0f">`,
		canvasWidth, height, canvasWidth, height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)
	fmt.Fprintf(&b, `<text x="%.0f" y="26" font-family="monospace" font-size="16" font-weight="bold">%s (%s)</text>`,
		marginX, escape(summary.Name), escape(summary.Solver))

	y := marginY
	for _, entry := range summary.Differential {
		label := fmt.Sprintf("d/dt %s = %s", entry.State, truncate(entry.Equation))
		y = renderState(&b, label, odeFillColor, y)
	}
	for _, entry := range summary.Algebraic {
		label := fmt.Sprintf("0 = %s  [%s]", truncate(entry.Equation), entry.State)
		y = renderState(&b, label, daeFillColor, y)
	}

	if len(summary.Events) > 0 {
		y += 10
		fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" font-family="monospace" font-size="13" font-weight="bold">events</text>`,
			marginX, y)
		y += rowHeight / 2
		for _, name := range summary.Events {
			fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" font-family="monospace" font-size="12">%s</text>`,
				marginX+labelOffset, y, escape(name))
			y += rowHeight / 2
		}
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// SaveSVG renders the model and writes the SVG to a file.
func SaveSVG(m *model.Model, filename string) error {
	return os.WriteFile(filename, []byte(RenderSVG(m)), 0644)
}

func renderState(b *strings.Builder, label, fill string, y float64) float64 {
	fmt.Fprintf(b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="%s"/>`,
		marginX+stateRadius, y, stateRadius, fill)
	fmt.Fprintf(b, `<text x="%.0f" y="%.0f" font-family="monospace" font-size="12">%s</text>`,
		marginX+2*stateRadius+8, y+4, escape(label))
	return y + rowHeight
}

// truncate keeps equation labels legible in the fixed-width canvas.
func truncate(equation string) string {
	runes := []rune(equation)
	if len(runes) <= maxEquation {
		return equation
	}
	return string(runes[:maxEquation]) + "..."
}

// escape performs minimal escaping for SVG text content.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
