package middleware

import (
	"net/http"

	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/resp"
)

// Maintenance responds to every request with http.StatusServiceUnavailable,
// asking clients to retry in ten minutes.
// msg, if set, becomes the body of the response.
func Maintenance(msg string) *dispatch.Handler {
	return dispatch.NewHandler("maintenance", func(r *http.Request) (dispatch.Response, error) {
		fns := []resp.Fn{resp.Code(http.StatusServiceUnavailable), resp.Header("Retry-After", "600")}
		if msg != "" {
			fns = append(fns, resp.Text(msg))
		}

		return resp.New(fns...), nil
	})
}
