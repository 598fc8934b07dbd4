package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/boss/pattern"
)

func TestMatches(t *testing.T) {
	for _, tc := range []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"Universal", "/anything/at/all", "*", true},
		{"Universal-Empty", "", "*", true},
		{"Wildcard-Tail", "/admin/settings", "/admin/*", true},
		{"Wildcard-Tail-Deep", "/admin/users/7", "/admin/*", true},
		{"Wildcard-Needs-Slash", "/admin", "/admin/*", false},
		{"Wildcard-Prefix-Only", "/administrator", "/admin/*", false},
		{"Param", "/42", "/:id", true},
		{"Param-One-Segment", "/42/edit", "/:id", false},
		{"Param-Not-Empty", "/", "/:id", false},
		{"Param-Middle", "/users/7/posts", "/users/:id/posts", true},
		{"Param-Then-Wildcard", "/users/7/posts/1", "/users/:id/*", true},
		{"Param-Star", "/x/y", "/:path*", true},
		{"Param-Star-Root", "/", "/:path*", false},
		{"Double-Slash", "/a/b", "/a//b", true},
		{"Many-Slashes", "/a/b", "/a////b", true},
		{"Trailing-Slash-Stripped", "/a", "/a/", true},
		{"Trailing-Slash-Path", "/a/", "/a/", false},
		{"Root-Pattern", "/", "/", false},
		{"Literal-Dot", "/file.txt", "/file.txt", true},
		{"Literal-Dot-Quoted", "/fileatxt", "/file.txt", false},
		{"Literal-Brackets", "/v[1]", "/v[1]", true},
		{"Anchored-Start", "/prefix/admin/x", "/admin/*", false},
		{"Exact", "/login", "/login", true},
		{"Exact-Mismatch", "/logout", "/login", false},
		{"Empty-Pattern", "/", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, pattern.Matches(tc.path, tc.pattern))
			require.Equal(t, tc.expected, pattern.Compile(tc.pattern).Matches(tc.path))
		})
	}
}

func TestScore(t *testing.T) {
	for _, tc := range []struct {
		name     string
		path     string
		pattern  string
		expected float64
	}{
		{"Exact", "/admin/settings", "/admin/settings", 100},
		{"Wildcard-Segment", "/admin/settings", "/admin/*", 100},
		{"Shallow-Wildcard", "/admin/settings", "/*", 200.0 / 3},
		{"Universal", "/admin/settings", "*", 100.0 / 3},
		{"Longer-Pattern", "/a", "/a/*", 0},
		{"Gate-Fails", "/a", "/b", 0},
		{"Param-Ignored", "/42", "/:id", 0},
		{"Param-Literal", "/:id", "/:id", 100},
		{"Not-Normalized", "/a/b", "/a//b", 0},
		{"Wildcard-Inside-Segment", "/admin-panel/x", "/admin*", 100.0 / 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, pattern.Score(tc.path, tc.pattern), 0.0001)
		})
	}
}

func TestScoreParamPolicy(t *testing.T) {
	for _, tc := range []struct {
		name     string
		path     string
		pattern  string
		expected float64
	}{
		{"Param", "/42", "/:id", 100},
		{"Param-Middle", "/users/7/posts", "/users/:id/posts", 100},
		{"Param-Star", "/x/y", "/:path*", 100.0 / 3},
		{"Gate-Uses-Matches", "/a/b", "/a//b", 200.0 / 4},
		{"Gate-Fails", "/42/edit", "/:id", 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := pattern.Compile(tc.pattern, pattern.WithScorePolicy(pattern.ParamScore))
			require.Equal(t, pattern.ParamScore, p.Policy())
			require.InDelta(t, tc.expected, p.Score(tc.path), 0.0001)
		})
	}
}

func TestMatchesAndScoreArePure(t *testing.T) {
	// Arrange
	p := pattern.Compile("/admin/*")

	// Act
	m1, s1 := p.Matches("/admin/x"), p.Score("/admin/x")
	m2, s2 := p.Matches("/admin/x"), p.Score("/admin/x")

	// Assert
	require.Equal(t, m1, m2)
	require.Equal(t, s1, s2)
	require.Equal(t, "/admin/*", p.String())
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		valid   bool
	}{
		{"Universal", "*", true},
		{"Wildcard", "/admin/*", true},
		{"Param", "/users/:id", true},
		{"Empty", "", false},
		{"No-Leading-Slash", "admin/*", false},
		{"Unnamed-Param", "/users/:", false},
		{"Unnamed-Param-Middle", "/users/:/posts", false},
		{"Root", "/", false},
		{"Only-Slashes", "///", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := pattern.Validate(tc.pattern)
			if tc.valid {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, pattern.ErrNotValid)
		})
	}
}
