/*
Package dispatch selects and runs the handlers registered for a request's path.

A [Dispatcher] serves exactly one request.
Build one with [New], register patterns and the handlers to run for them with [Dispatcher.Add],
then call [Dispatcher.Execute] once:

	d := dispatch.New(r, dispatch.WithGlobal(logRequest))
	d.Add("/admin/*", []*dispatch.Handler{requireJWT}, dispatch.Exclusive())
	d.Add("/:path*", []*dispatch.Handler{logRequest, rateLimit})
	res, err := d.Execute()

# Resolution

Only registrations whose pattern matches the request path are considered; cf. package pattern.
If any of those is exclusive, the exclusive registration scoring highest against the path wins outright
and its handlers alone run; ties go to the one registered first.
Otherwise the handlers of every matching registration run in registration order,
each [*Handler] at most once, at the position it first appeared.

# Execution

Handlers run one at a time.
The first to return a non-nil [Response] stops the run and its Response is returned.
A handler returning an error stops the run too; the error is returned as is.
If no handler responds, Execute returns [Next].

# Tables

Registering patterns for every request recompiles them every time.
A [Table] holds registrations made once, at configuration time,
and hands out a Dispatcher per request with [Table.Dispatcher].
*/
package dispatch
