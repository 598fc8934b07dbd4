package dispatch

import "net/http"

// A HandlerFunc inspects a request and either responds to it
// or returns a nil Response to let the next handler have a go.
//
// That nil must be an untyped nil: a nil pointer stored in a Response is not nil
// and counts as responding.
type HandlerFunc func(r *http.Request) (Response, error)

// A Handler is a named HandlerFunc with an identity.
//
// Two Handlers are the same Handler only if they are the same pointer:
// Handlers built from the same HandlerFunc by separate calls to NewHandler are distinct.
type Handler struct {
	name string
	fn   HandlerFunc
}

// NewHandler constructs a *Handler calling fn.
// name shows up in logs.
func NewHandler(name string, fn HandlerFunc) *Handler {
	return &Handler{name: name, fn: fn}
}

// Handle calls the enclosed HandlerFunc.
// A nil *Handler, or one without a HandlerFunc, never responds.
func (h *Handler) Handle(r *http.Request) (Response, error) {
	if h == nil || h.fn == nil {
		return nil, nil
	}

	return h.fn(r)
}

// Name returns the name the Handler was constructed with.
func (h *Handler) Name() string {
	if h == nil {
		return ""
	}

	return h.name
}

func (h *Handler) String() string { return h.Name() }

// Names lists the names of handlers.
func Names(handlers []*Handler) []string {
	names := make([]string, len(handlers))
	for i, h := range handlers {
		names[i] = h.Name()
	}

	return names
}
