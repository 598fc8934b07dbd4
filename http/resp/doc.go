/*
Package resp builds the responses a dispatch.Handler returns when it intervenes in a request.

A [*Response] is assembled from [Fn] functional options and written when served:

	return resp.New(resp.Code(http.StatusTooManyRequests), resp.Header("Retry-After", "1")), nil

Shorthands cover the common cases: [Status], [Redirect], and [Json].
*/
package resp
