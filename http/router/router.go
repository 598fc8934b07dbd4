package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/logger"
)

// A Route maps a path and HTTP method to an [http.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// Router routes requests to the Route registered for them.
type Router struct {
	Env           boss.Environment
	everyReqStack []middleware.Adapter
	h             http.Handler
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env boss.Environment) *Router {
	r := mux.NewRouter()
	return &Router{Env: env, h: r, r: r}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.Handler) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(handler),
			r.everyReqStack...,
		),
	)
}

// Dispatch runs the handlers t resolves for every request the [*Router] serves,
// ahead of routing.
// A handler error is logged to l.
//
// Panics in dispatched handlers are reported the same as those in a Route's handler.
//
// Calling Dispatch again replaces t.
func (r *Router) Dispatch(t *dispatch.Table, l logger.Logger) {
	if t == nil {
		r.h = r.r
		return
	}

	r.h = middleware.ReportPanic(r.Env)(middleware.Dispatch(t, l)(r.r))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.Handler] as the default handler
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.everyReqStack...,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.h.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
//
// Dispatch remains the parent's concern: the parent runs it before the subrouter is reached.
func (r *Router) Subrouter(prefix string) *Router {
	sub := r.r.PathPrefix(prefix).Subrouter()
	return &Router{
		Env:           r.Env,
		everyReqStack: r.everyReqStack[:len(r.everyReqStack):len(r.everyReqStack)],
		h:             sub,
		r:             sub,
	}
}
