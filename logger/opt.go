package logger

import "log"

// A LoggerOptFn is a functional option configuring a BossLogger when constructing a new one.
type LoggerOptFn func(*BossLogger)

// WithEnv sets the environment BossLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *BossLogger) {
		l.env = env
	}
}

// WithLevel sets the log level BossLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *BossLogger) {
		if level == LogLevelUnk {
			return
		}

		l.ll = level
	}
}

// WithLogger sets the log.Logger BossLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *BossLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *BossLogger) {
		l.skip = skip
	}
}
