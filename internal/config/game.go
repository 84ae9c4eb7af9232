package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Game struct {
	// MaxTiles caps rows*cols of games created over http.
	MaxTiles int
	// IdleTimeout is how long an untouched session is kept in memory.
	IdleTimeout time.Duration
}

func NewGame() (*Game, error) {
	game := &Game{
		MaxTiles:    10000,
		IdleTimeout: time.Hour,
	}

	if s, ok := os.LookupEnv("GAME_MAX_TILES"); ok {
		maxTiles, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("unable to convert GAME_MAX_TILES to int: %w", err)
		}
		if maxTiles < 1 {
			return nil, fmt.Errorf("GAME_MAX_TILES must be positive, got %d", maxTiles)
		}
		game.MaxTiles = maxTiles
	}

	if s, ok := os.LookupEnv("SESSION_IDLE_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SESSION_IDLE_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", timeout)
		}
		game.IdleTimeout = timeout
	}

	return game, nil
}
