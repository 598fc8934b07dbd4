package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/http/resp"
	"github.com/xy-planning-network/boss/http/router"
)

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func header(key, val string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(key, val)
			h.ServeHTTP(w, r)
		})
	}
}

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	r := router.New(boss.Testing)
	r.OnEveryRequest(header("X-Order", "every"))
	r.HandleRoutes(
		[]router.Route{
			{Path: "/users", Method: http.MethodGet, Handler: statusHandler(http.StatusOK)},
			{
				Path:        "/users",
				Method:      http.MethodPost,
				Handler:     statusHandler(http.StatusCreated),
				Middlewares: []middleware.Adapter{header("X-Order", "route")},
			},
		},
		header("X-Order", "group"),
	)

	for _, tc := range []struct {
		name     string
		method   string
		path     string
		code     int
		expected []string
	}{
		{"Get", http.MethodGet, "/users", http.StatusOK, []string{"every", "group"}},
		{"Post", http.MethodPost, "/users", http.StatusCreated, []string{"every", "group", "route"}},
		{"Wrong-Method", http.MethodDelete, "/users", http.StatusMethodNotAllowed, nil},
		{"Not-Found", http.MethodGet, "/accounts", http.StatusNotFound, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.expected, w.Header().Values("X-Order"))
		})
	}
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	r := router.New(boss.Testing)
	r.OnEveryRequest(header("X-Order", "every"))
	r.HandleNotFound(statusHandler(http.StatusTeapot))
	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "every", w.Header().Get("X-Order"))
}

func TestRouterCatchAll(t *testing.T) {
	// Arrange
	r := router.New(boss.Testing)
	r.CatchAll(statusHandler(http.StatusServiceUnavailable))

	for _, path := range []string{"/", "/users", "/deeply/nested/path"} {
		t.Run(path, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			// Assert
			require.Equal(t, http.StatusServiceUnavailable, w.Code)
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	// Arrange
	tbl := dispatch.NewTable()
	tbl.Add("/admin/*", []*dispatch.Handler{dispatch.NewHandler("deny", func(*http.Request) (dispatch.Response, error) {
		return resp.Status(http.StatusForbidden), nil
	})})

	r := router.New(boss.Testing)
	r.Dispatch(tbl, nil)
	r.Handle(router.Route{Path: "/admin/users", Method: http.MethodGet, Handler: statusHandler(http.StatusOK)})
	r.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: statusHandler(http.StatusOK)})

	for _, tc := range []struct {
		path     string
		expected int
	}{
		{"/admin/users", http.StatusForbidden},
		{"/admin/unrouted", http.StatusForbidden},
		{"/users", http.StatusOK},
	} {
		t.Run(tc.path, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	r := router.New(boss.Testing)
	r.OnEveryRequest(header("X-Order", "every"))
	sub := r.Subrouter("/api/v1")
	sub.OnEveryRequest(header("X-Order", "api"))
	sub.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: statusHandler(http.StatusOK)})
	r.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: statusHandler(http.StatusAccepted)})

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"every", "api"}, w.Header().Values("X-Order"))

	// Act
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	// Assert
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, []string{"every"}, w.Header().Values("X-Order"))
}

func TestRouterDispatchRecovers(t *testing.T) {
	// Arrange
	tbl := dispatch.NewTable()
	tbl.Add("/*", []*dispatch.Handler{dispatch.NewHandler("panics", func(*http.Request) (dispatch.Response, error) {
		panic("dispatched handler panicked")
	})})

	r := router.New(boss.Testing)
	r.Dispatch(tbl, nil)
	r.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: statusHandler(http.StatusAccepted)})
	w := httptest.NewRecorder()

	// Act + Assert
	require.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	})
	require.NotEqual(t, http.StatusAccepted, w.Code)
}
