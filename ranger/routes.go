package ranger

import (
	"fmt"
	"io"
	"os"

	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/logger"
	"github.com/xy-planning-network/boss/pattern"
	"gopkg.in/yaml.v3"
)

// routesFile is the YAML document LoadRoutes reads.
type routesFile struct {
	ScorePolicy string       `yaml:"score_policy"`
	Global      []string     `yaml:"global"`
	Routes      []routeEntry `yaml:"routes"`
}

type routeEntry struct {
	Pattern   string   `yaml:"pattern"`
	Handlers  []string `yaml:"handlers"`
	Exclusive bool     `yaml:"exclusive"`
}

// LoadRoutes builds a *dispatch.Table from the YAML document in r.
// Handler names in the document are looked up in named.
//
// The document looks like:
//
//	score_policy: legacy # or param
//	global: [log]
//	routes:
//	  - pattern: /admin/*
//	    handlers: [require-jwt]
//	    exclusive: true
//
// A name missing from named is a boss.ErrNotExist wrapped in boss.ErrBadConfig.
// Patterns failing pattern.Validate are still registered;
// the reason is logged to l as a warning, if l is not nil.
func LoadRoutes(r io.Reader, named map[string]*dispatch.Handler, l logger.Logger) (*dispatch.Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc routesFile
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: decoding routes: %s", boss.ErrBadConfig, err)
	}

	sp, err := parseScorePolicy(doc.ScorePolicy)
	if err != nil {
		return nil, err
	}

	global, err := lookup(named, doc.Global)
	if err != nil {
		return nil, fmt.Errorf("%w: global: %w", boss.ErrBadConfig, err)
	}

	opts := []dispatch.Option{dispatch.WithGlobal(global...), dispatch.WithScorePolicy(sp)}
	if l != nil {
		opts = append(opts, dispatch.WithLogger(l))
	}

	t := dispatch.NewTable(opts...)
	for _, route := range doc.Routes {
		handlers, err := lookup(named, route.Handlers)
		if err != nil {
			return nil, fmt.Errorf("%w: route %q: %w", boss.ErrBadConfig, route.Pattern, err)
		}

		if err := pattern.Validate(route.Pattern); err != nil && l != nil {
			l.Warn(fmt.Sprintf("registering route anyway: %s", err), nil)
		}

		var addOpts []dispatch.AddOption
		if route.Exclusive {
			addOpts = append(addOpts, dispatch.Exclusive())
		}

		t.Add(route.Pattern, handlers, addOpts...)
	}

	return t, nil
}

// LoadRoutesFile opens the file at path and calls LoadRoutes with it.
func LoadRoutesFile(path string, named map[string]*dispatch.Handler, l logger.Logger) (*dispatch.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", boss.ErrBadConfig, err)
	}
	defer f.Close()

	return LoadRoutes(f, named, l)
}

func lookup(named map[string]*dispatch.Handler, names []string) ([]*dispatch.Handler, error) {
	handlers := make([]*dispatch.Handler, 0, len(names))
	for _, name := range names {
		h, ok := named[name]
		if !ok {
			return nil, fmt.Errorf("%w: handler %q", boss.ErrNotExist, name)
		}

		handlers = append(handlers, h)
	}

	return handlers, nil
}

func parseScorePolicy(val string) (pattern.ScorePolicy, error) {
	switch val {
	case "", pattern.LegacyScore.String():
		return pattern.LegacyScore, nil
	case pattern.ParamScore.String():
		return pattern.ParamScore, nil
	default:
		return pattern.LegacyScore, fmt.Errorf("%w: %w: score_policy %q", boss.ErrBadConfig, boss.ErrNotValid, val)
	}
}
