package httpx

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware intercepts panics from request handling, logs them with
// full detail server-side, and answers with the error envelope. The detail
// exposed to the client follows the ErrorWriter's mode.
func RecoveryMiddleware(errs ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("panic recovered: request_id=%s error=%v stack=%s",
						RequestIDFrom(r), rec, string(debug.Stack()))

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						errs.respond(w, fmt.Errorf("%v", rec))
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
