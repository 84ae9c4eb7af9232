package mines

import (
	"fmt"
	"math"
	"strings"
)

type GameParams struct {
	Rows, Cols, MineCount int
	Lives                 int
	// FloodFill keeps cascading through zero tiles instead of stopping after
	// the neighbors of the opened one.
	FloodFill bool
}

func (p GameParams) TileCount() int {
	return p.Rows * p.Cols
}

// Seed packs the params into a "rows:cols:mines:lives:floodfill" string.
func (p GameParams) Seed() string {
	f := 0
	if p.FloodFill {
		f = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d:%d", p.Rows, p.Cols, p.MineCount, p.Lives, f)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	f := 0
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d %d", &p.Rows, &p.Cols, &p.MineCount, &p.Lives, &f,
	)
	if n != 5 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if f != 0 && f != 1 {
		return nil, fmt.Errorf("invalid game params seed %q: flood fill must be 0 or 1, got %d", seed, f)
	}
	p.FloodFill = f == 1
	return p, nil
}

// Validate checks the params can produce a playable grid. Tile 0:0 is never
// mined, so at most rows*cols-1 mines fit.
func (p GameParams) Validate() error {
	switch {
	case p.Rows < 1:
		return &InvalidParamsError{p, "rows must be at least 1"}
	case p.Cols < 1:
		return &InvalidParamsError{p, "cols must be at least 1"}
	case p.Rows > math.MaxInt/p.Cols:
		return &InvalidParamsError{p, "grid too large"}
	case p.Lives < 1:
		return &InvalidParamsError{p, "lives must be at least 1"}
	case p.MineCount < 0:
		return &InvalidParamsError{p, "mine count cannot be negative"}
	case p.MineCount >= p.TileCount():
		return &InvalidParamsError{p, fmt.Sprintf(
			"not enough room for %d mines on %d tiles", p.MineCount, p.TileCount(),
		)}
	}
	return nil
}
