package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/todokata/todokata/internal/api/response"
	"github.com/todokata/todokata/internal/domain"
)

// Recovery returns middleware that turns panics into a 500 response.
func Recovery(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Printf("panic recovered: %v\n%s", err, debug.Stack())
					response.Error(w, domain.NewInternalError(nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
