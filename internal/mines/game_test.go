package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameNoMines2x2(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := NewGame(&GameParams{Rows: 2, Cols: 2, MineCount: 0, Lives: 1}, r)
	require.NoError(t, err)

	assert.Equal(t, Completed, g.State())
	assert.Equal(t, 4, g.RevealedCount())
	for _, s := range g.PlayerView() {
		assert.Equal(t, CellStatus(0), s)
	}
}

func TestNewGameForcedMine1x2(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := NewGame(&GameParams{Rows: 1, Cols: 2, MineCount: 1, Lives: 1}, r)
	require.NoError(t, err)

	start, _ := g.Tile(Coordinate{0, 0})
	assert.True(t, start.Revealed())
	assert.Equal(t, 1, start.MineNeighborCount())
	mine, _ := g.Tile(Coordinate{0, 1})
	assert.True(t, mine.Mined())
	assert.False(t, mine.Revealed())

	// the only safe tile is open: 1 revealed + 1 mine covers both tiles
	assert.Equal(t, 1, g.RevealedCount())
	assert.Equal(t, Completed, g.State())

	assert.Equal(t, RevealMine, g.Reveal(0, 1))
	assert.Equal(t, Completed, g.State())
	assert.Equal(t, 1, g.RevealedCount())
	_, ok := g.Exploded()
	assert.False(t, ok)
	assert.Equal(t, GridInfo{1, Unknown}, g.PlayerView())
}

func TestRevealMineExplodes(t *testing.T) {
	g := gameFromLayout(false,
		".*.",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 0))
	assert.Equal(t, Playing, g.State())

	assert.Equal(t, RevealMine, g.Reveal(0, 1))
	assert.Equal(t, Exploded, g.State())
	assert.Equal(t, 1, g.RevealedCount())
	at, ok := g.Exploded()
	assert.True(t, ok)
	assert.Equal(t, Coordinate{0, 1}, at)
	assert.Equal(t, GridInfo{1, ExplodedMine, Unknown}, g.PlayerView())
}

func TestNewGameAlwaysStartsSafe(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	p := &GameParams{Rows: 5, Cols: 5, MineCount: 24, Lives: 1}
	for range 100 {
		g, err := NewGame(p, r)
		require.NoError(t, err)
		start, _ := g.Tile(Coordinate{0, 0})
		assert.True(t, start.Revealed())
		assert.GreaterOrEqual(t, g.RevealedCount(), 1)
		// one safe tile only, so the opening move wins
		assert.Equal(t, Completed, g.State())
	}
}

func TestNewGameInvalidParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, p := range []GameParams{
		{Rows: 3, Cols: 3, MineCount: 9, Lives: 1},
		// rows*cols wraps around to 4
		{Rows: 1<<62 + 1, Cols: 4, MineCount: 0, Lives: 1},
	} {
		_, err := NewGame(&p, r)
		var ipe *InvalidParamsError
		assert.True(t, errors.As(err, &ipe), p.Seed())
	}
}

func TestRevealIdempotent(t *testing.T) {
	g := gameFromLayout(false,
		"..*",
		"...",
		"*..",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 1))
	assert.Equal(t, 1, g.RevealedCount())
	assert.Equal(t, RevealIgnored, g.Reveal(0, 1))
	assert.Equal(t, 1, g.RevealedCount())
	assert.Equal(t, Playing, g.State())
}

func TestRevealOutOfBounds(t *testing.T) {
	g := gameFromLayout(false,
		"..*",
		"...",
	)
	before := g.PlayerView()
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {100, 100}} {
		assert.Equal(t, RevealIgnored, g.Reveal(c[0], c[1]))
	}
	assert.Equal(t, 0, g.RevealedCount())
	assert.Equal(t, Playing, g.State())
	assert.Equal(t, before, g.PlayerView())
}

func TestRevealCascadeSingleLevel(t *testing.T) {
	g := gameFromLayout(false,
		"....",
		"....",
		"...*",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 0))
	assert.Equal(t, 4, g.RevealedCount())

	revealed := map[Coordinate]bool{
		{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true,
	}
	for row := range 3 {
		for col := range 4 {
			c := Coordinate{row, col}
			tile, _ := g.Tile(c)
			assert.Equal(t, revealed[c], tile.Revealed(), c.String())
		}
	}
	assert.Equal(t, Playing, g.State())
}

func TestRevealCascadeCountsOnlyNewTiles(t *testing.T) {
	g := gameFromLayout(false,
		"....",
		"....",
		"...*",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 1))
	assert.Equal(t, 6, g.RevealedCount())
	assert.Equal(t, RevealIgnored, g.Reveal(0, 0))
	assert.Equal(t, 6, g.RevealedCount())
	// 0:3 is a zero tile whose neighbors 0:2 and 1:2 are already open
	assert.Equal(t, RevealSafe, g.Reveal(0, 3))
	assert.Equal(t, 8, g.RevealedCount())
}

func TestRevealFloodFill(t *testing.T) {
	g := gameFromLayout(true,
		"....",
		"....",
		"...*",
	)
	assert.Equal(t, RevealWin, g.Reveal(0, 0))
	assert.Equal(t, 11, g.RevealedCount())
	assert.Equal(t, Completed, g.State())
	mine, _ := g.Tile(Coordinate{2, 3})
	assert.False(t, mine.Revealed())
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	g := gameFromLayout(true,
		"..*..",
		"..*..",
		"..*..",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 0))
	assert.Equal(t, 6, g.RevealedCount())
	right, _ := g.Tile(Coordinate{0, 4})
	assert.False(t, right.Revealed())
}

func TestWinDetection(t *testing.T) {
	g := gameFromLayout(false,
		"..*",
		"...",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 0))
	assert.Equal(t, 4, g.RevealedCount())
	assert.Equal(t, Playing, g.State(), "one safe tile is still covered")

	assert.Equal(t, RevealWin, g.Reveal(1, 2))
	assert.Equal(t, 5, g.RevealedCount())
	assert.Equal(t, Completed, g.State())
	assert.Equal(t, g.Rows()*g.Cols(), g.RevealedCount()+g.MineCount())
}

func TestWinWithoutCascade(t *testing.T) {
	g := gameFromLayout(false,
		".*.",
	)
	assert.Equal(t, RevealSafe, g.Reveal(0, 0))
	assert.Equal(t, Playing, g.State())
	assert.Equal(t, RevealWin, g.Reveal(0, 2))
	assert.Equal(t, Completed, g.State())
}

func TestTerminalStateIgnoresReveals(t *testing.T) {
	g := gameFromLayout(false,
		".*.",
		"...",
	)
	assert.Equal(t, RevealMine, g.Reveal(0, 1))
	assert.Equal(t, Exploded, g.State())
	assert.Equal(t, RevealIgnored, g.Reveal(0, 0))
	assert.Equal(t, 0, g.RevealedCount())
	assert.Equal(t, Exploded, g.State())
}

func TestCompletedGameReportsMines(t *testing.T) {
	g := gameFromLayout(false,
		".*.",
	)
	g.Reveal(0, 0)
	assert.Equal(t, RevealWin, g.Reveal(0, 2))
	assert.Equal(t, RevealMine, g.Reveal(0, 1))
	assert.Equal(t, RevealIgnored, g.Reveal(0, 0))
	assert.Equal(t, Completed, g.State())
	assert.Equal(t, 2, g.RevealedCount())
}

func TestLivesAreInert(t *testing.T) {
	g := gameFromLayout(false,
		".*.",
	)
	g.params.Lives = 3
	g.Reveal(0, 0)
	assert.Equal(t, RevealMine, g.Reveal(0, 1))
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, Exploded, g.State())
}

func TestPlayerViewHidesMines(t *testing.T) {
	g := gameFromLayout(false,
		"...",
		"..*",
	)
	g.Reveal(0, 0)
	assert.Equal(t, GridInfo{
		0, 1, Unknown,
		0, 1, Unknown,
	}, g.PlayerView())
	assert.Equal(t, "0 1 - \n0 1 - \n", g.PlayerView().ToString(g.Cols()))
}
