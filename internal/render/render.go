// Package render draws a game's player view onto a [Surface]. Nothing here
// can change the game; it only reads what a player is allowed to see.
package render

import "github.com/vancomm/minesweeper-engine/internal/mines"

// Board is the read-only part of [mines.Game] a renderer needs.
type Board interface {
	Rows() int
	Cols() int
	MineCount() int
	RevealedCount() int
	State() mines.GameState
	PlayerView() mines.GridInfo
}

type Surface interface {
	Reset(rows, cols int)
	DrawTile(c mines.Coordinate, s mines.CellStatus)
	DrawStatus(state mines.GameState, revealed, mineCount int)
}

func Draw(s Surface, b Board) {
	rows, cols := b.Rows(), b.Cols()
	s.Reset(rows, cols)
	view := b.PlayerView()
	for i, status := range view {
		s.DrawTile(mines.Coordinate{Row: i / cols, Col: i % cols}, status)
	}
	s.DrawStatus(b.State(), b.RevealedCount(), b.MineCount())
}
