package middleware

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/logger"
)

// Dispatch runs the handlers t resolves for each request ahead of the wrapped http.Handler.
//
// If t is nil, NoopAdapter returns and this middleware does nothing.
func Dispatch(t *dispatch.Table, l logger.Logger) Adapter {
	if t == nil {
		return NoopAdapter
	}

	return DispatchFunc(t.Dispatcher, l)
}

// DispatchFunc calls fn for every request and executes the *dispatch.Dispatcher it builds.
//
// When no handler responds, the wrapped http.Handler serves the request.
// When one does, its dispatch.Response is served instead.
// When one errors, the error is logged to l and http.StatusInternalServerError written.
//
// If fn is nil, NoopAdapter returns and this middleware does nothing.
func DispatchFunc(fn func(r *http.Request) *dispatch.Dispatcher, l logger.Logger) Adapter {
	if fn == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := fn(r).Execute()
			if err != nil {
				if l != nil {
					l.Error(fmt.Sprintf("dispatch %s: %s", r.URL.Path, err), &logger.LogContext{Error: err, Request: r})
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if dispatch.IsNext(res) {
				h.ServeHTTP(w, r)
				return
			}

			res.ServeHTTP(w, r)
		})
	}
}
