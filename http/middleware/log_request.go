package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/logger"
)

// LogRequest logs the request's originating IP address, method, and requested URL
// using the enclosed implementation of logger.Logger.
// LogRequest never responds.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// If logger.Logger is nil, the returned handler does nothing.
func LogRequest(ls logger.Logger) *dispatch.Handler {
	if ls == nil {
		return dispatch.NewHandler("log-request", nil)
	}

	return dispatch.NewHandler("log-request", func(r *http.Request) (dispatch.Response, error) {
		uri := r.URL.Path
		q := r.URL.Query()
		if val := q.Get("password"); val != "" {
			q.Set("password", boss.LogMaskVal)
		}

		if query := q.Encode(); query != "" {
			uri += "?" + query
		}

		strs := []string{r.Method, uri}
		if val, ok := r.Context().Value(boss.IpAddrKey).(string); ok {
			strs = append([]string{val}, strs...)
		}

		ls.Info(strings.Join(strs, " "), nil)
		return nil, nil
	})
}
