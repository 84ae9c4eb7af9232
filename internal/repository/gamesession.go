package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrNotFound = errors.New("game session not found")

// GameSession is a game plus its bookkeeping. Fields must only be touched
// inside the callbacks passed to [Store.FetchGameSession] and
// [Store.UpdateGameSession], which hold the session's lock.
type GameSession struct {
	GameSessionId uuid.UUID
	PlayerId      string
	State         *mines.Game
	StartedAt     time.Time
	EndedAt       *time.Time
	UpdatedAt     time.Time

	mu  sync.Mutex
	now func() time.Time
}

// Reveal opens a tile and stamps EndedAt once the game is over.
func (s *GameSession) Reveal(row, col int) mines.RevealResult {
	result := s.State.Reveal(row, col)
	s.markEnded(s.now())
	return result
}

func (s *GameSession) markEnded(now time.Time) {
	if s.EndedAt == nil && s.State.State().Terminal() {
		s.EndedAt = &now
	}
}

// Store keeps game sessions in process memory. Nothing survives a restart.
type Store struct {
	log      logrus.FieldLogger
	mu       sync.RWMutex
	sessions map[uuid.UUID]*GameSession
	now      func() time.Time
}

func New(log logrus.FieldLogger) *Store {
	return &Store{
		log:      log,
		sessions: make(map[uuid.UUID]*GameSession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type CreateGameSessionParams struct {
	PlayerId string
}

func (s *Store) CreateGameSession(
	ctx context.Context, state *mines.Game, params CreateGameSessionParams,
) (*GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()
	session := &GameSession{
		GameSessionId: uuid.New(),
		PlayerId:      params.PlayerId,
		State:         state,
		StartedAt:     now,
		UpdatedAt:     now,
		now:           s.now,
	}
	session.markEnded(now)

	s.mu.Lock()
	s.sessions[session.GameSessionId] = session
	s.mu.Unlock()

	return session, nil
}

func (s *Store) lookup(ctx context.Context, id uuid.UUID) (*GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// FetchGameSession calls fn with the session locked.
func (s *Store) FetchGameSession(
	ctx context.Context, id uuid.UUID, fn func(*GameSession) error,
) error {
	session, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return fn(session)
}

// UpdateGameSession calls fn with the session locked, so reveals on one
// session never overlap. Afterwards the session is marked as touched.
func (s *Store) UpdateGameSession(
	ctx context.Context, id uuid.UUID, fn func(*GameSession) error,
) error {
	session, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := fn(session); err != nil {
		return err
	}
	now := s.now()
	session.UpdatedAt = now
	session.markEnded(now)
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// DeleteIdle drops every session not updated since before and returns how
// many were removed.
func (s *Store) DeleteIdle(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := session.UpdatedAt.Before(before)
		session.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Sweep deletes sessions idle for longer than idle until ctx is done.
func (s *Store) Sweep(ctx context.Context, idle time.Duration) error {
	interval := idle / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.DeleteIdle(s.now().Add(-idle)); n > 0 {
				s.log.WithFields(logrus.Fields{
					"deleted": n,
					"left":    s.Count(),
				}).Debug("swept idle sessions")
			}
		}
	}
}
