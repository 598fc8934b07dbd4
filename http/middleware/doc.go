/*
The middleware package defines what a middleware is in boss and a set of basic middlewares.

Middlewares come in two shapes.

An [Adapter] wraps an [net/http.Handler] and always calls through to it, decorating the request on the way.
The available Adapters are:
  - CORS
  - Dispatch
  - InjectIPAddress
  - ReportPanic
  - RequestID

A *dispatch.Handler may intervene: it inspects a request and either responds or lets it pass.
Which ones run for a request is decided by a dispatch.Table according to the request path;
[Dispatch] is the Adapter putting a dispatch.Table in front of a [net/http.Handler].
The available handlers are:
  - ForceHTTPS
  - LogRequest
  - Maintenance
  - RateLimit
  - RequireJWT

Due to the amount of configuration required, middleware does not provide a default chain.
Instead, the following can be copy-pasted:

	logReq := middleware.LogRequest(log)
	tbl := dispatch.NewTable(dispatch.WithGlobal(logReq, middleware.ForceHTTPS(env)))
	tbl.Add("/api/*", []*dispatch.Handler{middleware.RateLimit(middleware.NewVisitors(5, 20))})
	tbl.Add("/admin/*", []*dispatch.Handler{logReq, middleware.RequireJWT(key)}, dispatch.Exclusive())

	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.Dispatch(tbl, log),
	}
*/
package middleware
