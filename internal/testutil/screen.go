package testutil

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ScreenText flattens the simulation screen's cell grid into one string per
// row, for Contains-style assertions on rendered frames.
func ScreenText(t *testing.T, screen tcell.SimulationScreen) []string {
	t.Helper()

	cells, width, height := screen.GetContents()
	lines := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) == 0 {
				row.WriteRune(' ')
				continue
			}
			row.WriteRune(cell.Runes[0])
		}
		lines = append(lines, row.String())
	}
	return lines
}

// FrameContains reports whether any row of the rendered frame contains want.
func FrameContains(t *testing.T, screen tcell.SimulationScreen, want string) bool {
	t.Helper()

	for _, line := range ScreenText(t, screen) {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}
