package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
)

// Auth makes sure every request carries player claims. Requests without a
// valid token get a fresh anonymous player and new cookies.
func Auth(log logrus.FieldLogger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				claims = config.NewAnonymousClaims(cookies.JWT().TokenLifetime())
				token, err := cookies.JWT().Sign(claims)
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					log.WithError(err).Error("unable to sign player claims")
					return
				}
				if err := cookies.Refresh(w, token); err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					log.WithError(err).Error("unable to refresh cookies")
					return
				}
				log.WithField("player_id", claims.PlayerId).Debug("issued anonymous player")
			}
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func PlayerClaims(ctx context.Context) (*config.PlayerClaims, bool) {
	claims, ok := ctx.Value(CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}
