package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Rows      int  `schema:"rows,required"`
	Cols      int  `schema:"cols,required"`
	MineCount int  `schema:"mine_count,required"`
	Lives     int  `schema:"lives,default:1"`
	FloodFill bool `schema:"flood_fill"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto NewGameDTO) GameParams() mines.GameParams {
	return mines.GameParams{
		Rows:      dto.Rows,
		Cols:      dto.Cols,
		MineCount: dto.MineCount,
		Lives:     dto.Lives,
		FloodFill: dto.FloodFill,
	}
}

type Position struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameSessionDTO struct {
	GameSessionId string         `json:"game_session_id"`
	Grid          mines.GridInfo `json:"grid"`
	Rows          int            `json:"rows"`
	Cols          int            `json:"cols"`
	MineCount     int            `json:"mine_count"`
	Lives         int            `json:"lives"`
	FloodFill     bool           `json:"flood_fill"`
	State         string         `json:"state"`
	RevealedCount int            `json:"revealed_count"`
	StartedAt     int64          `json:"started_at"`
	EndedAt       *int64         `json:"ended_at,omitempty"`
	Result        string         `json:"result,omitempty"`
}

// NewGameSessionDTO must be called with the session locked.
func NewGameSessionDTO(s *repository.GameSession) *GameSessionDTO {
	var endedAt *int64
	if s.EndedAt != nil {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	g := s.State
	return &GameSessionDTO{
		GameSessionId: s.GameSessionId.String(),
		Grid:          g.PlayerView(),
		Rows:          g.Rows(),
		Cols:          g.Cols(),
		MineCount:     g.MineCount(),
		Lives:         g.Lives(),
		FloodFill:     g.Params().FloodFill,
		State:         g.State().String(),
		RevealedCount: g.RevealedCount(),
		StartedAt:     s.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}
