package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

type wsCommand string

const (
	wsNoop   wsCommand = "g"
	wsReveal wsCommand = "o"
)

var errUnknownCommand = errors.New("unknown command")

func parseRowCol(args []string) (row int, col int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// execute runs one command line against the session and returns the reveal
// result, if the command was a reveal.
func execute(s *repository.GameSession, line string) (*mines.RevealResult, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil, nil
	case wsReveal:
		row, col, err := parseRowCol(args)
		if err != nil {
			return nil, err
		}
		result := s.Reveal(row, col)
		return &result, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownCommand, tokens[0])
	}
}

// runBatch executes the newline separated commands of one message. It stops
// early once the game is over.
func (g *GameHandler) runBatch(
	ctx context.Context, id uuid.UUID, player string, message string,
) (*GameSessionDTO, error) {
	var dto *GameSessionDTO
	err := g.repo.UpdateGameSession(ctx, id, func(s *repository.GameSession) error {
		if err := checkOwner(s, player); err != nil {
			return err
		}
		var last *mines.RevealResult
		for _, line := range strings.Split(message, "\n") {
			result, err := execute(s, line)
			if err != nil {
				return err
			}
			if result != nil {
				last = result
			}
			if s.State.State().Terminal() {
				break
			}
		}
		dto = NewGameSessionDTO(s)
		if last != nil {
			dto.Result = last.String()
		}
		return nil
	})
	return dto, err
}

func (g *GameHandler) wsRunGameLoop(
	ctx context.Context, conn *websocket.Conn, id uuid.UUID, player string,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		dto, err := g.runBatch(ctx, id, player, message)
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, ErrForbidden) {
			return err
		}
		if err != nil {
			if err := conn.WriteJSON(wrapError(err)); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			continue
		}

		if err := conn.WriteJSON(dto); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	player := playerId(r)

	err = g.repo.FetchGameSession(r.Context(), id, func(s *repository.GameSession) error {
		return checkOwner(s, player)
	})
	if err != nil {
		g.sendSessionError(w, err)
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	log := g.log.WithField("game_session_id", id)
	log.Debug("established WS connection")

	err = g.wsRunGameLoop(r.Context(), conn, id, player)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.WithError(err).Warn("error in ws loop")
		return
	}
	log.Debug("closed WS connection")
}
