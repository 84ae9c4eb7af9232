package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/repository"
)

type App struct {
	log     *logrus.Logger
	router  *http.ServeMux
	repo    *repository.Store
	cookies *config.Cookies
	ws      *config.WebSocket
	game    *config.Game
}

func New(log *logrus.Logger) *App {
	app := &App{
		log:    log,
		router: http.NewServeMux(),
		repo:   repository.New(log),
	}
	return app
}

func (a *App) setup() error {
	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load jwt config: %w", err)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return fmt.Errorf("unable to load cookies config: %w", err)
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	game, err := config.NewGame()
	if err != nil {
		return fmt.Errorf("unable to load game config: %w", err)
	}
	a.game = game

	a.loadRoutes()
	return nil
}

// Handler is the full middleware stack around the router.
func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Auth(a.log, a.cookies),
		middleware.Cors(config.Development(), config.CorsOrigins()...),
		middleware.Logging(a.log),
		middleware.BasePath(config.BasePath()),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.setup(); err != nil {
		return err
	}

	addr := config.Port()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.repo.Sweep(gCtx, a.game.IdleTimeout)
	})

	a.log.WithFields(logrus.Fields{
		"addr":      addr,
		"base path": config.BasePath(),
		"max tiles": a.game.MaxTiles,
		"idle":      a.game.IdleTimeout.String(),
	}).Info("server listening")

	return g.Wait()
}
