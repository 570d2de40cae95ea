package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/pixed"
)

// Styles used throughout the TUI.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleEmptyCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	stylePanel = lipgloss.NewStyle().
			PaddingLeft(2)

	styleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)
)

// cellStyles caches one background style per color.
type cellStyles map[pixed.Color]lipgloss.Style

func (cs cellStyles) get(c pixed.Color) lipgloss.Style {
	if s, ok := cs[c]; ok {
		return s
	}
	rgb := pixed.RGB(c.R, c.G, c.B)
	s := lipgloss.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(contrast(c).Hex()))
	cs[c] = s
	return s
}

// contrast picks black or white, whichever reads better on c.
func contrast(c pixed.Color) pixed.Color {
	// Rec. 601 luma
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128*1000 {
		return pixed.Black
	}
	return pixed.White
}

// cell renders one canvas cell as cols columns. A transparent cell shows a
// dim dot; the cursor cell is bracketed.
func (cs cellStyles) cell(c pixed.Color, cols int, cursor bool) string {
	fill := strings.Repeat(" ", cols)
	if c.A == 0 {
		fill = "·" + strings.Repeat(" ", cols-1)
	}
	if cursor {
		if cols >= 2 {
			fill = "[" + strings.Repeat(" ", cols-2) + "]"
		} else {
			fill = "+"
		}
	}
	if c.A == 0 && !cursor {
		return styleEmptyCell.Render(fill)
	}
	if c.A == 0 {
		return fill
	}
	return cs.get(c).Render(fill)
}

// renderImage draws img with each pixel as a cols×rows block of terminal
// cells. cursor marks one pixel; pass an out-of-range point for none.
func (cs cellStyles) renderImage(img image.Image, cols, rows int, cursor image.Point) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			c := pixed.FromColor(img.At(x, y))
			line.WriteString(cs.cell(c, cols, cursor.X == x && cursor.Y == y))
		}
		for r := 0; r < rows; r++ {
			sb.WriteString(line.String())
			if y < b.Max.Y-1 || r < rows-1 {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
