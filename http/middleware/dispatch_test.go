package middleware_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/http/resp"
	"github.com/xy-planning-network/boss/logger"
)

func TestDispatch(t *testing.T) {
	// Arrange + Act
	actual := middleware.Dispatch(nil, nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	tbl := dispatch.NewTable()
	tbl.Add("/admin/*", []*dispatch.Handler{dispatch.NewHandler("deny", func(r *http.Request) (dispatch.Response, error) {
		return resp.Status(http.StatusForbidden), nil
	})}, dispatch.Exclusive())
	tbl.Add("/broken", []*dispatch.Handler{dispatch.NewHandler("broken", func(r *http.Request) (dispatch.Response, error) {
		return nil, errors.New("boom")
	})})
	tbl.Add("/*", []*dispatch.Handler{dispatch.NewHandler("pass", nil)})

	h := middleware.Dispatch(tbl, l)(teapotHandler())

	for _, tc := range []struct {
		name     string
		path     string
		expected int
	}{
		{"Pass-Through", "/home", http.StatusTeapot},
		{"No-Match", "", http.StatusTeapot},
		{"Responded", "/admin/settings", http.StatusForbidden},
		{"Errored", "/broken", http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com"+tc.path, nil)

			// Act
			h.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}

	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "dispatch /broken: boom")
}

func TestDispatchFunc(t *testing.T) {
	// Arrange
	var called bool
	build := func(r *http.Request) *dispatch.Dispatcher {
		d := dispatch.New(r)
		d.Add("/:path*", []*dispatch.Handler{dispatch.NewHandler("record", func(r *http.Request) (dispatch.Response, error) {
			called = true
			return nil, nil
		})})

		return d
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/anything", nil)

	// Act
	middleware.DispatchFunc(build, nil)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.True(t, called)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestDispatchTypedNilResponse(t *testing.T) {
	// Arrange
	tbl := dispatch.NewTable()
	tbl.Add("/*", []*dispatch.Handler{dispatch.NewHandler("typed-nil", func(*http.Request) (dispatch.Response, error) {
		var res *resp.Response
		return res, nil
	})})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/home", nil)

	// Act
	require.NotPanics(t, func() { middleware.Dispatch(tbl, nil)(teapotHandler()).ServeHTTP(w, r) })

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
