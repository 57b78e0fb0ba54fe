package logger

import (
	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/severity"
)

// defaultRegistry is the process-wide registry behind the package-level
// functions. It resolves channel names against channel.Default().
var defaultRegistry = NewRegistry(nil)

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Get returns the named logger from the process-wide registry, creating it
// with inherited settings if needed.
func Get(name string) *Logger { return defaultRegistry.Get(name) }

// UnsafeGet is Get without locking. See Registry.UnsafeGet for the warning;
// it applies doubly to process-wide state.
func UnsafeGet(name string) *Logger { return defaultRegistry.UnsafeGet(name) }

// Create registers a logger with an explicit channel and level in the
// process-wide registry, replacing any existing logger of that name.
func Create(name string, ch channel.Channel, level severity.Level) *Logger {
	return defaultRegistry.Create(name, ch, level)
}

// Has returns the named logger if it is registered, or nil.
func Has(name string) *Logger { return defaultRegistry.Has(name) }

// Destroy removes the named logger from the process-wide registry.
func Destroy(name string) { defaultRegistry.Destroy(name) }

// Shutdown releases all loggers in the process-wide registry.
func Shutdown() { defaultRegistry.Shutdown() }

// Names returns the sorted names of all registered loggers.
func Names() []string { return defaultRegistry.Names() }

// Root returns the root logger of the process-wide registry.
func Root() *Logger { return defaultRegistry.Root() }

// SetLevel sets the level on the named logger and all its registered
// descendants.
func SetLevel(name string, level severity.Level) { defaultRegistry.SetLevel(name, level) }

// SetChannel attaches ch to the named logger and all its registered
// descendants.
func SetChannel(name string, ch channel.Channel) { defaultRegistry.SetChannel(name, ch) }

// SetProperty applies the "level" or "channel" property to the named logger
// and all its registered descendants.
func SetProperty(name, property, value string) error {
	return defaultRegistry.SetProperty(name, property, value)
}
