// Package logger is the public API of termlog. Most users only need to
// import this package.
//
// A Logger is an immutable value: the With* methods derive a new Logger
// and never modify the receiver. This makes a Logger inherently safe to
// share across goroutines without locking on the read path, and a single
// call to Log always produces one indivisible write, so concurrent
// callers never interleave line fragments.
//
// The output format is
//
//	[YYYY-MM-DD HH:MM:SS.mmm ]LEVELCODE message[ key=value]*
//
// with the four-character level code (TRCE, DEBG, INFO, WARN, ERRO)
// colorized when the sink is an interactive terminal. Detection runs
// once per logger construction and honors NO_COLOR and TERM=dumb;
// WithColors overrides it unconditionally.
//
// The package holds a process-wide default logger that is created
// lazily on first use. The package-level functions Info, Error, Warnf,
// etc. delegate to it, so simple programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, derive from New:
//
//	log := logger.New().
//	    WithLevel(logger.DebugLevel).
//	    WithColors(true).
//	    With(logger.String("service", "auth"), logger.String("version", "1.2.0"))
//
//	logger.SetDefault(log)
//
// Child loggers with extra context are created via With, which returns a
// new Logger carrying additional base fields:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Logging never fails from the caller's perspective: levels below the
// configured minimum cost a single comparison, and a sink write failure
// drops the line silently (counted in Stats) instead of surfacing an
// error into the caller's own failure handling.
package logger
