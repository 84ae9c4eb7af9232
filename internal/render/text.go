package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// TextSurface renders the grid as rows of characters with row and column
// numbers along the edges.
type TextSurface struct {
	cells  [][]string
	status string
}

func NewTextSurface() *TextSurface {
	return &TextSurface{}
}

func (s *TextSurface) Reset(rows, cols int) {
	s.cells = make([][]string, rows)
	for i := range s.cells {
		s.cells[i] = make([]string, cols)
	}
	s.status = ""
}

func (s *TextSurface) DrawTile(c mines.Coordinate, status mines.CellStatus) {
	if status == 0 {
		s.cells[c.Row][c.Col] = "."
		return
	}
	s.cells[c.Row][c.Col] = status.String()
}

func (s *TextSurface) DrawStatus(state mines.GameState, revealed, mineCount int) {
	s.status = fmt.Sprintf("%s, %d revealed, %d mines", state, revealed, mineCount)
}

// String implements [fmt.Stringer]
func (s *TextSurface) String() string {
	var b strings.Builder
	if len(s.cells) == 0 {
		return s.status
	}
	width := len(fmt.Sprint(len(s.cells) - 1))
	colWidth := len(fmt.Sprint(len(s.cells[0]) - 1))

	fmt.Fprintf(&b, "%*s ", width, "")
	for col := range s.cells[0] {
		fmt.Fprintf(&b, " %*d", colWidth, col)
	}
	b.WriteByte('\n')

	for row, line := range s.cells {
		fmt.Fprintf(&b, "%*d:", width, row)
		for _, cell := range line {
			fmt.Fprintf(&b, " %*s", colWidth, cell)
		}
		b.WriteByte('\n')
	}
	b.WriteString(s.status)
	b.WriteByte('\n')
	return b.String()
}

func (s *TextSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
