package middleware

import (
	"net/http"
	"strings"
)

type Middleware func(http.Handler) http.Handler

// Wrap applies mws so that the last one is the outermost.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

// BasePath mounts the handler under prefix. An empty prefix is a no-op.
func BasePath(prefix string) Middleware {
	prefix = strings.TrimSuffix(prefix, "/")
	return func(h http.Handler) http.Handler {
		if prefix == "" {
			return h
		}
		return http.StripPrefix(prefix, h)
	}
}
