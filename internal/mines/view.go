package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown      CellStatus = -2
	ExplodedMine CellStatus = 65
	// 0-8 for an open tile with given number of mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "-"
	case ExplodedMine:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// GridInfo is what the player can see, row-major.
type GridInfo []CellStatus

func (g GridInfo) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// PlayerView reports covered tiles as [Unknown] and open tiles by their
// mine neighbor count. The only mine ever shown is the one that exploded.
func (g *Game) PlayerView() GridInfo {
	view := make(GridInfo, len(g.grid.tiles))
	for i, t := range g.grid.tiles {
		if t.revealed {
			view[i] = CellStatus(t.mineNeighborCount)
		} else {
			view[i] = Unknown
		}
	}
	if c, ok := g.Exploded(); ok {
		view[c.Row*g.grid.cols+c.Col] = ExplodedMine
	}
	return view
}
