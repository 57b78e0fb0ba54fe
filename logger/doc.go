// Package logger implements a process-wide, name-hierarchical logger
// registry.
//
// Loggers are identified by dot-separated names: "svc.http.handler" is a
// descendant of "svc.http", which is a descendant of "svc", which descends
// from the root logger named "" (the empty string). A logger created through
// Get inherits its level and channel from the nearest already-registered
// ancestor as a one-time snapshot; later changes to the ancestor do not
// propagate to loggers that already exist. Subtree-wide changes are made
// explicitly with SetLevel, SetChannel and SetProperty.
//
// Every logger filters by a numeric severity threshold: a message of rank r
// is emitted only when 0 < r <= level. Level severity.None disables the
// logger entirely. A logger without a channel silently drops everything it
// would otherwise emit.
//
// # Usage
//
//	channel.Register("console", channel.NewConsole(os.Stderr, false))
//	logger.SetProperty("", "channel", "console")
//
//	log := logger.Get("svc.http")
//	log.Warning("listener restarted")
//	if log.DebugEnabled() {
//	    log.Debug(logger.Format("request from $0 took $1", addr, elapsed))
//	}
//
// Structural operations (Get, Create, Destroy, Shutdown, Names and the
// subtree mutations) serialize on one registry mutex. Emission never takes
// that mutex; it reads the logger's own fields, so logging proceeds
// concurrently with unrelated registry changes.
package logger
