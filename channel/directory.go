package channel

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownChannel is returned by Resolve for a name that has not been
// registered.
var ErrUnknownChannel = errors.New("unknown channel")

// Directory is a registry of channels by name. It backs symbolic channel
// references, such as the "channel" logger property.
type Directory struct {
	mu       sync.RWMutex
	channels map[string]Channel
}

// NewDirectory creates an empty channel directory.
func NewDirectory() *Directory {
	return &Directory{channels: make(map[string]Channel)}
}

// Register stores ch under name, replacing any previous registration.
func (d *Directory) Register(name string, ch Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[name] = ch
}

// Unregister removes the named channel. It does nothing if the name is not
// registered.
func (d *Directory) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.channels, name)
}

// Resolve returns the channel registered under name, or ErrUnknownChannel.
func (d *Directory) Resolve(name string) (Channel, error) {
	d.mu.RLock()
	ch, ok := d.channels[name]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ch, nil
}

// Names returns the sorted names of all registered channels.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.channels))
	for name := range d.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes every registration.
func (d *Directory) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels = make(map[string]Channel)
}

// defaultDirectory is the process-wide directory used by the package-level
// functions and, through it, by the logger package's property handling.
var defaultDirectory = NewDirectory()

// Default returns the process-wide channel directory.
func Default() *Directory { return defaultDirectory }

// Register stores ch under name in the process-wide directory.
func Register(name string, ch Channel) { defaultDirectory.Register(name, ch) }

// Unregister removes name from the process-wide directory.
func Unregister(name string) { defaultDirectory.Unregister(name) }

// Resolve looks up name in the process-wide directory.
func Resolve(name string) (Channel, error) { return defaultDirectory.Resolve(name) }
