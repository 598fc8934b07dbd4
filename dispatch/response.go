package dispatch

import "net/http"

// A Response is what a Handler produces when it intervenes in a request.
// Serving it writes the response.
type Response interface {
	http.Handler
}

// Next is the Response signaling no handler intervened
// and the request ought to continue on to whatever handles it normally.
var Next Response = next{}

type next struct{}

// ServeHTTP writes nothing.
func (next) ServeHTTP(http.ResponseWriter, *http.Request) {}

// IsNext asserts whether res is Next.
func IsNext(res Response) bool {
	_, ok := res.(next)
	return ok
}
