package mines

// Tile is a single cell of the grid. Only the revealed flag changes once the
// grid has been built.
type Tile struct {
	mined             bool
	revealed          bool
	mineNeighborCount int
}

func (t Tile) Mined() bool {
	return t.mined
}

func (t Tile) Revealed() bool {
	return t.revealed
}

func (t Tile) MineNeighborCount() int {
	return t.mineNeighborCount
}

// Reveal opens the tile regardless of what is under it. It reports whether
// the tile was newly revealed.
func (t *Tile) Reveal() bool {
	if t.revealed {
		return false
	}
	t.revealed = true
	return true
}

// Click is a player opening the tile. A mined tile is left covered and
// false is returned, as is the case for a tile that is already open.
func (t *Tile) Click() bool {
	if t.mined {
		return false
	}
	return t.Reveal()
}
