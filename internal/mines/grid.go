package mines

import (
	"iter"
	"math/rand/v2"
)

// Grid is a rows x cols field of tiles stored row-major. The mine layout is
// fixed when the grid is built.
type Grid struct {
	rows, cols int
	mineCount  int
	tiles      []Tile
}

// NewGrid seeds p.MineCount mines, none of them on 0:0, and precomputes
// every tile's mine neighbor count.
func NewGrid(p GameParams, r *rand.Rand) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		rows:      p.Rows,
		cols:      p.Cols,
		mineCount: p.MineCount,
		tiles:     make([]Tile, p.TileCount()),
	}
	g.placeMines(r)
	g.countNeighbors()
	return g, nil
}

/*
Walk the tiles in row-major order, skipping 0:0, and mine each one with
probability remaining/candidates, where candidates includes the tile being
looked at. Once remaining == candidates every tile left is mined, so the
final count is always exact.
*/
func (g *Grid) placeMines(r *rand.Rand) {
	remaining := g.mineCount
	candidates := len(g.tiles) - 1
	for i := 1; i < len(g.tiles); i++ {
		if r.IntN(candidates) < remaining {
			g.tiles[i].mined = true
			remaining--
		}
		candidates--
	}
}

func (g *Grid) countNeighbors() {
	for row := range g.rows {
		for col := range g.cols {
			c := Coordinate{row, col}
			t := g.tile(c)
			for n := range g.Neighbors(c) {
				if g.tile(n).mined {
					t.mineNeighborCount++
				}
			}
		}
	}
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) MineCount() int {
	return g.mineCount
}

func (g *Grid) TileCount() int {
	return len(g.tiles)
}

func (g *Grid) InBounds(c Coordinate) bool {
	return 0 <= c.Row && c.Row < g.rows && 0 <= c.Col && c.Col < g.cols
}

// Neighbors yields the in-bounds neighbors of c. Edge tiles have 5 of them
// and corner tiles 3.
func (g *Grid) Neighbors(c Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range neighborOffsets {
			n := Coordinate{c.Row + d.Row, c.Col + d.Col}
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// Tile returns a copy of the tile at c. The second value is false if c is
// out of bounds.
func (g *Grid) Tile(c Coordinate) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return *g.tile(c), true
}

// panics if c is out of bounds
func (g *Grid) tile(c Coordinate) *Tile {
	return &g.tiles[c.Row*g.cols+c.Col]
}
