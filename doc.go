/*
Package boss holds what every other package in a boss app shares:
the [Environment] an app runs in, helpers for reading configuration
from environment variables, context keys, and sentinel errors.

The interesting parts live elsewhere:
  - package pattern matches request paths against registered patterns
  - package dispatch selects and runs handlers for a request
  - package http/middleware adapts a dispatch.Table onto a net/http stack
  - package ranger assembles and runs a boss web server
*/
package boss
