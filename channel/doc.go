// Package channel defines the output side of logtree: the Channel interface
// a logger forwards records to, a process-wide Directory of named channels,
// and a set of ready-made channel implementations (writer, zerolog bridge,
// splitter, memory capture, null, otel instrumentation).
//
// A channel may be shared by any number of loggers simultaneously, so every
// implementation in this package is safe for concurrent use.
//
// # Usage
//
//	ch := channel.NewConsole(os.Stderr, false)
//	channel.Register("console", ch)
//	logger.SetChannel("svc", ch)
package channel
