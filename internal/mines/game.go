package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameState int8

const (
	Playing GameState = iota
	Completed
	Exploded
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

func (s GameState) Terminal() bool {
	return s == Completed || s == Exploded
}

// RevealResult is the outcome of a single [Game.Reveal] call.
type RevealResult int8

const (
	RevealIgnored RevealResult = iota // out of bounds, already open or exploded
	RevealSafe
	RevealMine
	RevealWin
)

func (r RevealResult) String() string {
	switch r {
	case RevealIgnored:
		return "ignored"
	case RevealSafe:
		return "safe"
	case RevealMine:
		return "mine"
	case RevealWin:
		return "win"
	default:
		return "unknown"
	}
}

// Game is one minesweeper session. It is not safe for concurrent use;
// callers sharing a Game must serialize calls to Reveal.
type Game struct {
	params        GameParams
	grid          *Grid
	state         GameState
	revealedCount int
	exploded      *Coordinate
}

// NewGame builds a grid for params and opens 0:0, which is never mined, so
// the player always starts with something uncovered.
func NewGame(params *GameParams, r *rand.Rand) (*Game, error) {
	grid, err := NewGrid(*params, r)
	if err != nil {
		return nil, err
	}
	game := &Game{
		params: *params,
		grid:   grid,
		state:  Playing,
	}
	if game.Reveal(0, 0) == RevealMine {
		return nil, fmt.Errorf("mine in starting cell")
	}
	Log.WithFields(logrus.Fields{
		"params":   params.Seed(),
		"revealed": game.revealedCount,
		"state":    game.state,
	}).Debug("new game")
	return game, nil
}

/*
Reveal opens the tile at row:col on behalf of the player.

Opening a zero tile also opens its neighbors. By default only the direct
neighbors are opened; with [GameParams.FloodFill] the cascade keeps going
through every zero tile it reaches. The game is won once every safe tile is
open.

Hitting a mine while playing ends the game with [Exploded]. A completed
game stays completed; clicking one of its mines still reports [RevealMine].
Out of bounds coordinates, tiles that are already open and any call after an
explosion change nothing and return [RevealIgnored].
*/
func (g *Game) Reveal(row, col int) RevealResult {
	c := Coordinate{row, col}
	if !g.grid.InBounds(c) || g.state == Exploded {
		return RevealIgnored
	}

	t := g.grid.tile(c)
	if !t.Click() {
		if !t.mined {
			return RevealIgnored
		}
		if g.state == Playing {
			g.state = Exploded
			g.exploded = &c
			Log.WithField("at", c.String()).Debug("mine hit")
		}
		return RevealMine
	}
	g.revealedCount++

	if t.mineNeighborCount == 0 {
		if g.params.FloodFill {
			g.floodFill(c)
		} else {
			g.revealNeighbors(c)
		}
	}

	if g.allClicked() {
		g.state = Completed
		return RevealWin
	}
	return RevealSafe
}

// Neighbors of a zero tile are never mined, so they are opened without the
// mine check Click does.
func (g *Game) revealNeighbors(c Coordinate) {
	for n := range g.grid.Neighbors(c) {
		if g.grid.tile(n).Reveal() {
			g.revealedCount++
		}
	}
}

func (g *Game) floodFill(start Coordinate) {
	var todo deque.Deque[Coordinate]
	todo.PushBack(start)
	for todo.Len() > 0 {
		c := todo.PopFront()
		for n := range g.grid.Neighbors(c) {
			t := g.grid.tile(n)
			if !t.Reveal() {
				continue
			}
			g.revealedCount++
			if t.mineNeighborCount == 0 {
				todo.PushBack(n)
			}
		}
	}
}

func (g *Game) allClicked() bool {
	return g.revealedCount+g.grid.mineCount >= g.grid.TileCount()
}

func (g *Game) Params() GameParams {
	return g.params
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) RevealedCount() int {
	return g.revealedCount
}

// Lives is the configured number of lives. Mine hits do not consume them.
func (g *Game) Lives() int {
	return g.params.Lives
}

func (g *Game) Rows() int {
	return g.grid.rows
}

func (g *Game) Cols() int {
	return g.grid.cols
}

func (g *Game) MineCount() int {
	return g.grid.mineCount
}

func (g *Game) Tile(c Coordinate) (Tile, bool) {
	return g.grid.Tile(c)
}

// Exploded returns the mine that ended the game, if any.
func (g *Game) Exploded() (Coordinate, bool) {
	if g.exploded == nil {
		return Coordinate{}, false
	}
	return *g.exploded, true
}
