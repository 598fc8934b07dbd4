package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/http/middleware"
)

func TestCORS(t *testing.T) {
	// Arrange + Act
	actual := middleware.CORS("")

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("Origin", "https://client.example.com")

	// Act
	middleware.CORS("https://client.example.com")(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "https://client.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	var id string

	// Act
	middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		var ok bool
		id, ok = rx.Context().Value(boss.RequestIDKey).(string)
		require.True(t, ok)
	})).ServeHTTP(w, r)

	// Assert
	require.NotZero(t, id)
	require.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1, 10.0.0.1")

	// Act
	middleware.InjectIPAddress()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		// Assert
		require.Equal(t, "1.1.1.1", rx.Context().Value(boss.IpAddrKey))
	})).ServeHTTP(w, r)
}

func TestReportPanic(t *testing.T) {
	// Arrange + Act
	actual := middleware.ReportPanic(boss.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("oh no") })

	// Act + Assert
	require.NotPanics(t, func() {
		middleware.ReportPanic(boss.Testing)(panicky).ServeHTTP(w, r)
	})
}

func TestGetIPAddress(t *testing.T) {
	header := func(key, val string) http.Header {
		h := make(http.Header)
		h.Set(key, val)
		return h
	}

	for _, tc := range []struct {
		name     string
		hm       http.Header
		expected string
	}{
		{"No-Match", make(http.Header), "0.0.0.0"},
		{"Only-Private-IP", header("X-Forwarded-For", "192.168.0.0"), "0.0.0.0"},
		{"Only-Shared-IP", header("X-Forwarded-For", "100.64.1.1"), "0.0.0.0"},
		{"Only-Public-IP", header("X-Forwarded-For", "1.1.1.1"), "1.1.1.1"},
		{"Garbage", header("X-Forwarded-For", "not-an-ip"), "0.0.0.0"},
		{"Get-Before-Proxy", header("X-Real-Ip", "10.0.0.1,1.1.1.1"), "1.1.1.1"},
		{"Get-First-Public", header("X-Real-Ip", "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0"), "1.1.1.1"},
		{"IPv6", header("X-Forwarded-For", "2606:4700:4700::1111"), "2606:4700:4700::1111"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.hm))
		})
	}
}
