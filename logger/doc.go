/*
Package logger provides logging functionality to a boss app by defining the required behavior in [Logger]
and providing an implementation of it with [BossLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [BossLogger] is initialized with [LogLevelWarn],
only [*BossLogger.Warn], [*BossLogger.Error], and [*BossLogger.Fatal] produce messages.

# BossLogger

Log messages emitted by [BossLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [DEBUG] dispatch/dispatch.go:97 'dispatch /admin/settings: 2 of 3 registrations matched' log_context: {"data":{"handlers":["auth"]}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper
but which gives a fuller picture of the application state at the time of logging.

# SentryLogger

When SENTRY_DSN is set, [New] wraps the [BossLogger] in a [SentryLogger],
which also ships errors found in a [LogContext] to Sentry.
*/
package logger
