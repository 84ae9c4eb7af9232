package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets any origin through in development. Otherwise only the listed
// origins may call the api with credentials, and with no origins listed
// every cross-origin request is refused.
func Cors(development bool, origins ...string) Middleware {
	options := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	switch {
	case development:
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	case len(origins) == 0:
		options.AllowOriginFunc = func(origin string) bool {
			return false
		}
	}
	return cors.New(options).Handler
}
