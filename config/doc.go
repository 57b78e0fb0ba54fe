// Package config loads a declarative logging configuration and applies it
// to a logger registry and channel directory.
//
// Configuration lives under a top-level "logging" key:
//
//	logging:
//	  channels:
//	    console:
//	      type: console
//	      output: stderr
//	    audit:
//	      type: json
//	      output: stdout
//	  loggers:
//	    "":
//	      level: information
//	      channel: console
//	    "svc.http":
//	      level: debug
//	      channel: audit
//
// Channels are built and registered first, then loggers are configured
// ancestors-first so that loggers created later inherit the configured
// state. The environment variables LOGTREE_LEVEL and LOGTREE_CHANNEL
// override the root logger's settings; an optional .env file can supply
// them.
package config
