package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// errPanic is what clients learn about a recovered panic. The panic value
// and stack only go to the log.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a panic in a downstream handler
// into a 500 written by fail (problem JSON when fail is nil). When the
// handler had already started its response, the panic is only logged.
func Recovery(logger *slog.Logger, fail FailureWriter) func(http.Handler) http.Handler {
	fail = orProblemJSON(fail)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rec.written {
					fail(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
