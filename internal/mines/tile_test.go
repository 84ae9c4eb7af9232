package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileReveal(t *testing.T) {
	var tile Tile
	assert.True(t, tile.Reveal())
	assert.True(t, tile.Revealed())
	assert.False(t, tile.Reveal(), "second reveal must be a no-op")
}

func TestTileRevealIgnoresMine(t *testing.T) {
	tile := Tile{mined: true}
	assert.True(t, tile.Reveal())
	assert.True(t, tile.Revealed())
}

func TestTileClick(t *testing.T) {
	safe := Tile{}
	assert.True(t, safe.Click())
	assert.False(t, safe.Click())

	mined := Tile{mined: true}
	assert.False(t, mined.Click())
	assert.False(t, mined.Revealed(), "clicking a mine must not open it")
}
