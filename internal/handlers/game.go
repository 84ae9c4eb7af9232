package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

var ErrForbidden = errors.New("game session belongs to another player")

type GameHandler struct {
	log  logrus.FieldLogger
	repo *repository.Store
	ws   *config.WebSocket
	cfg  *config.Game

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	repo *repository.Store,
	ws *config.WebSocket,
	cfg *config.Game,
	rnd *rand.Rand,
) *GameHandler {
	handler := &GameHandler{
		log:  log,
		repo: repo,
		ws:   ws,
		cfg:  cfg,
		rnd:  rnd,
	}
	return handler
}

func playerId(r *http.Request) string {
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		return claims.PlayerId
	}
	return ""
}

func checkOwner(s *repository.GameSession, playerId string) error {
	if s.PlayerId != "" && s.PlayerId != playerId {
		return ErrForbidden
	}
	return nil
}

func (g *GameHandler) sendSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		SendErrorOrLog(w, g.log, http.StatusNotFound, err)
	case errors.Is(err, ErrForbidden):
		SendErrorOrLog(w, g.log, http.StatusUnauthorized, err)
	default:
		g.log.WithError(err).Error("game session failure")
		SendErrorOrLog(w, g.log, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func (g *GameHandler) newGame(params *mines.GameParams) (*mines.Game, error) {
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return mines.NewGame(params, g.rnd)
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	params := dto.GameParams()
	if err := params.Validate(); err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if params.TileCount() > g.cfg.MaxTiles {
		SendErrorOrLog(w, g.log, http.StatusBadRequest,
			fmt.Errorf("grid too large: %d tiles, at most %d allowed", params.TileCount(), g.cfg.MaxTiles))
		return
	}

	game, err := g.newGame(&params)
	if err != nil {
		g.log.WithError(err).Error("unable to generate a new game")
		SendErrorOrLog(w, g.log, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, repository.CreateGameSessionParams{
		PlayerId: playerId(r),
	})
	if err != nil {
		g.sendSessionError(w, err)
		return
	}

	g.log.WithFields(logrus.Fields{
		"game_session_id": session.GameSessionId,
		"params":          params.Seed(),
	}).Debug("created game session")

	// nobody else knows the id yet
	SendJSONOrLog(w, g.log, NewGameSessionDTO(session))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	var dto *GameSessionDTO
	err = g.repo.FetchGameSession(r.Context(), id, func(s *repository.GameSession) error {
		if err := checkOwner(s, playerId(r)); err != nil {
			return err
		}
		dto = NewGameSessionDTO(s)
		return nil
	})
	if err != nil {
		g.sendSessionError(w, err)
		return
	}

	SendJSONOrLog(w, g.log, dto)
}

func (g *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	var dto *GameSessionDTO
	err = g.repo.UpdateGameSession(r.Context(), id, func(s *repository.GameSession) error {
		if err := checkOwner(s, playerId(r)); err != nil {
			return err
		}
		result := s.Reveal(pos.Row, pos.Col)
		g.log.WithFields(logrus.Fields{
			"game_session_id": id,
			"row":             pos.Row,
			"col":             pos.Col,
			"result":          result,
		}).Debug("reveal")
		dto = NewGameSessionDTO(s)
		dto.Result = result.String()
		return nil
	})
	if err != nil {
		g.sendSessionError(w, err)
		return
	}
	SendJSONOrLog(w, g.log, dto)
}

// Board renders the player's view as plain text.
func (g *GameHandler) Board(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	surface := render.NewTextSurface()
	err = g.repo.FetchGameSession(r.Context(), id, func(s *repository.GameSession) error {
		if err := checkOwner(s, playerId(r)); err != nil {
			return err
		}
		render.Draw(surface, s.State)
		return nil
	})
	if err != nil {
		g.sendSessionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := surface.WriteTo(w); err != nil {
		g.log.WithError(err).Error("failed to send board")
	}
}
