package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/severity"
)

// RootName is the name of the root logger, the ultimate ancestor of every
// other logger.
const RootName = ""

// ErrUnknownProperty is returned by SetProperty for a property other than
// "level" or "channel".
var ErrUnknownProperty = errors.New("unknown logger property")

// Registry owns the name-to-logger map. One mutex serializes all structural
// operations; it is held only for in-memory map work, never across a channel
// call. Field mutation on a Logger already handed out does not involve the
// registry at all.
//
// Most applications use the package-level functions, which operate on a
// shared default registry. A dedicated Registry instance is useful in tests
// and in libraries that must not touch process-wide state.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	dir     *channel.Directory
}

// NewRegistry creates an empty registry. Symbolic channel names passed to
// SetProperty resolve against dir; a nil dir uses channel.Default().
func NewRegistry(dir *channel.Directory) *Registry {
	if dir == nil {
		dir = channel.Default()
	}
	return &Registry{
		loggers: make(map[string]*Logger),
		dir:     dir,
	}
}

// Get returns the logger with the given name, creating it if needed. A new
// logger takes its level and channel from the nearest registered ancestor as
// a snapshot; if no ancestor exists the root logger (created on demand with
// severity.Information and no channel) is the source. Calling Get twice for
// the same name returns the same logger until it is destroyed.
func (r *Registry) Get(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(name)
}

// UnsafeGet is Get without the registry lock.
//
// WARNING: it is not safe for concurrent use with any other registry
// operation and exists only for single-threaded startup paths where the
// locking cost matters. Under contention it can corrupt the registry. Use
// Get instead.
func (r *Registry) UnsafeGet(name string) *Logger {
	return r.get(name)
}

func (r *Registry) get(name string) *Logger {
	if l, ok := r.loggers[name]; ok {
		return l
	}
	var l *Logger
	if name == RootName {
		l = newLogger(RootName, nil, severity.Information)
	} else {
		p := r.parent(name)
		l = newLogger(name, p.Channel(), p.Level())
	}
	r.loggers[name] = l
	return l
}

// parent returns the nearest registered ancestor of name, walking the name
// up one dot at a time. The root logger terminates the walk and is created
// if it does not exist yet.
func (r *Registry) parent(name string) *Logger {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		pname := name[:i]
		if p, ok := r.loggers[pname]; ok {
			return p
		}
		return r.parent(pname)
	}
	return r.get(RootName)
}

// Create registers a logger with the given channel and level, replacing any
// existing logger of that name. No inheritance takes place.
func (r *Registry) Create(name string, ch channel.Channel, level severity.Level) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := newLogger(name, ch, level)
	r.loggers[name] = l
	return l
}

// Has returns the logger with the given name, or nil if it has not been
// registered. It never creates a logger.
func (r *Registry) Has(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loggers[name]
}

// Destroy removes the named logger. It does nothing if the logger is not
// registered. References obtained earlier keep working in isolation but are
// no longer what the registry hands out; callers should drop them.
func (r *Registry) Destroy(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loggers, name)
}

// Shutdown releases every logger, including the root. The next operation
// that needs the root re-creates it with default settings. As with Destroy,
// previously obtained references must not be retained across a shutdown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
}

// Names returns the sorted names of all currently registered loggers.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Root returns the root logger, creating it on demand with
// severity.Information and no channel.
func (r *Registry) Root() *Logger {
	return r.Get(RootName)
}

// SetLevel sets the level on the named logger and every registered
// descendant. Loggers created afterwards are unaffected beyond normal
// creation-time inheritance.
func (r *Registry) SetLevel(name string, level severity.Level) {
	r.applySubtree(name, func(l *Logger) { l.SetLevel(level) })
}

// SetChannel attaches ch to the named logger and every registered
// descendant.
func (r *Registry) SetChannel(name string, ch channel.Channel) {
	r.applySubtree(name, func(l *Logger) { l.SetChannel(ch) })
}

// SetProperty applies a named property to the named logger and every
// registered descendant. "level" parses value as a symbolic severity;
// "channel" resolves value through the registry's channel directory. Any
// other property fails with ErrUnknownProperty.
func (r *Registry) SetProperty(name, property, value string) error {
	switch property {
	case "level":
		level, err := severity.Parse(value)
		if err != nil {
			return err
		}
		r.SetLevel(name, level)
		return nil
	case "channel":
		ch, err := r.dir.Resolve(value)
		if err != nil {
			return err
		}
		r.SetChannel(name, ch)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
}

// applySubtree runs fn on every registered logger whose name equals target
// or begins with target plus a dot. The empty target matches every logger.
// The match set is a point-in-time snapshot under the registry lock.
func (r *Registry) applySubtree(target string, fn func(*Logger)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := target + "."
	for name, l := range r.loggers {
		if target == RootName || name == target || strings.HasPrefix(name, prefix) {
			fn(l)
		}
	}
}
