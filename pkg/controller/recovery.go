package controller

import (
	"errors"
	"fmt"
	"net/http"

	"usermgmt/pkg/logger"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that converts a panic in next into a 500
// response with the generic application error body. http.ErrAbortHandler is
// re-raised so net/http can abort the connection as intended.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(p)
			}

			logger.Error(r.Context(), "recovered from handler panic",
				zap.String("panic", fmt.Sprint(p)),
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.Stack("stack"),
			)
			WriteError(w, http.StatusInternalServerError, "application error", "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
