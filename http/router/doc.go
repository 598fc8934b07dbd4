/*
Package router routes requests to the http.Handler registered for a path and HTTP method.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
Before a request gets to a Route's handler, though,
the adapters set with [Router.OnEveryRequest] are called in the order they appear,
followed by any [middleware.Adapter] passed alongside the Route.

Pattern-matched dispatch sits in front of routing:
[Router.Dispatch] runs the handlers a [*dispatch.Table] resolves for the request path
before mux ever chooses a Route.
*/
package router
