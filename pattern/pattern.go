package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotValid reports a pattern that is unlikely to match what its author intended.
	ErrNotValid = errors.New("invalid pattern")

	paramRegexp    = regexp.MustCompile(`:\w+`)
	soloParamRegex = regexp.MustCompile(`^:\w+$`)
	slashesRegexp  = regexp.MustCompile(`/{2,}`)
)

// A ScorePolicy decides how [Pattern.Score] treats ':name' parameters.
type ScorePolicy int

const (
	// LegacyScore expands only '*' when scoring; ':name' is compared literally.
	LegacyScore ScorePolicy = iota

	// ParamScore scores with the same rules [Pattern.Matches] uses
	// and counts a ':name' segment as matching any non-empty path segment.
	ParamScore
)

func (sp ScorePolicy) String() string {
	switch sp {
	case LegacyScore:
		return "legacy"
	case ParamScore:
		return "param"
	default:
		return "unknown"
	}
}

// An Option configures a Pattern when compiling it.
type Option func(*Pattern)

// WithScorePolicy sets the ScorePolicy a Pattern scores paths with.
func WithScorePolicy(sp ScorePolicy) Option {
	return func(p *Pattern) {
		p.policy = sp
	}
}

// A Pattern is a compiled path template.
// A Pattern is safe for concurrent use.
type Pattern struct {
	raw      string
	match    *regexp.Regexp
	gate     *regexp.Regexp
	segments []string
	policy   ScorePolicy
}

// Compile prepares raw for matching and scoring.
// Compile never fails: a pattern that makes no sense simply matches nothing.
func Compile(raw string, opts ...Option) *Pattern {
	p := &Pattern{
		raw:      raw,
		match:    regexp.MustCompile(matchExpr(raw)),
		gate:     regexp.MustCompile("^" + wildcardExpr(raw) + "$"),
		segments: strings.Split(raw, "/"),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Matches reports whether path fits the pattern raw.
func Matches(path, raw string) bool { return Compile(raw).Matches(path) }

// Score rates how closely path mirrors the pattern raw, from 0 to 100.
func Score(path, raw string) float64 { return Compile(raw).Score(path) }

// Matches reports whether path fits the Pattern.
func (p *Pattern) Matches(path string) bool { return p.match.MatchString(path) }

// Policy returns the ScorePolicy the Pattern scores with.
func (p *Pattern) Policy() ScorePolicy { return p.policy }

// Score rates how closely path mirrors the Pattern, from 0 to 100.
//
// Each segment of path earns a point when the segment at the same position in the Pattern
// is '*' or identical to it.
// The points are then taken as a share of the longer of the two segment lists.
// A path failing the scoring gate scores 0.
func (p *Pattern) Score(path string) float64 {
	gate := p.gate
	if p.policy == ParamScore {
		gate = p.match
	}

	if !gate.MatchString(path) {
		return 0
	}

	segments := strings.Split(path, "/")
	var points int
	for i, seg := range segments {
		if i >= len(p.segments) {
			break
		}

		if p.segmentMatches(p.segments[i], seg) {
			points++
		}
	}

	return float64(points) / float64(max(len(segments), len(p.segments))) * 100
}

// String returns the pattern as it was written.
func (p *Pattern) String() string { return p.raw }

func (p *Pattern) segmentMatches(patternSeg, pathSeg string) bool {
	if patternSeg == "*" || patternSeg == pathSeg {
		return true
	}

	return p.policy == ParamScore && pathSeg != "" && soloParamRegex.MatchString(patternSeg)
}

// Validate reports patterns that compile into something their author likely did not mean.
// Validate does not change how a pattern matches.
func Validate(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrNotValid)
	}

	if raw[0] != '/' && raw[0] != '*' {
		return fmt.Errorf("%w: %q must begin with '/' or '*'", ErrNotValid, raw)
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] == ':' && (i+1 == len(raw) || !isWordByte(raw[i+1])) {
			return fmt.Errorf("%w: %q has an unnamed parameter at offset %d", ErrNotValid, raw, i)
		}
	}

	if normalize(raw) == "" {
		return fmt.Errorf("%w: %q matches no request path", ErrNotValid, raw)
	}

	return nil
}

// normalize collapses runs of '/' and strips a trailing '/'.
func normalize(raw string) string {
	return strings.TrimSuffix(slashesRegexp.ReplaceAllString(raw, "/"), "/")
}

// matchExpr builds the anchored expression Matches uses.
func matchExpr(raw string) string {
	norm := normalize(raw)

	var b strings.Builder
	b.WriteString("^")

	var last int
	for _, loc := range paramRegexp.FindAllStringIndex(norm, -1) {
		b.WriteString(wildcardExpr(norm[last:loc[0]]))
		b.WriteString("[^/]+")
		last = loc[1]
	}
	b.WriteString(wildcardExpr(norm[last:]))

	b.WriteString("$")
	return b.String()
}

// wildcardExpr quotes s, turning each '*' into ".*".
func wildcardExpr(s string) string {
	parts := strings.Split(s, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}

	return strings.Join(parts, ".*")
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
