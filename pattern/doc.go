/*
Package pattern matches request paths against path templates.

A pattern is a path made of literal segments, '*' wildcards and ':name' parameters:

	/admin/*         every path below /admin/
	/users/:id       /users/42 but not /users/42/posts
	/:path*          any path with a non-empty first segment
	*                every path

Two questions get asked of a pattern.
[Pattern.Matches] is the structural gate: does the path fit the template at all?
[Pattern.Score] ranks patterns that passed the gate:
the closer a pattern's segments mirror the path's, the higher the score, from 0 to 100.

# Matching

Before matching, runs of '/' in the pattern collapse into one and a single trailing '/' is dropped.
'*' then stands for zero or more of any character
and ':name' for one or more characters other than '/'.
Everything else is literal.
The whole path must fit.

Note that "/" normalizes to the empty pattern, which no request path fits.

# Scoring

By default scoring knows nothing of ':name' parameters.
Its own gate only expands '*', and a parameter is compared to the path segment literally,
so "/:id" passes [Pattern.Matches] for "/42" yet scores 0.
[ParamScore] opts into scoring that treats a parameter as matching any non-empty segment.
*/
package pattern
