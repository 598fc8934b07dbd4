package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/resp"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is not "development".
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to a boss application
// running behind a proxy.
func ForceHTTPS(env boss.Environment) *dispatch.Handler {
	return dispatch.NewHandler("force-https", func(r *http.Request) (dispatch.Response, error) {
		if env.IsDevelopment() || r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			return nil, nil
		}

		u := new(url.URL)
		*u = *r.URL
		u.Scheme = "https"
		u.Host = r.Host

		return resp.Redirect(u.String(), http.StatusPermanentRedirect), nil
	})
}
