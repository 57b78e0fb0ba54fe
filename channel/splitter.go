package channel

import (
	"errors"
	"sync"

	"github.com/kbukum/logtree/record"
)

// Splitter fans every record out to a set of channels. Delivery continues
// past failing channels; the errors are joined and returned.
type Splitter struct {
	mu       sync.RWMutex
	channels []Channel
}

// NewSplitter creates a splitter over the given channels.
func NewSplitter(channels ...Channel) *Splitter {
	s := &Splitter{}
	s.channels = append(s.channels, channels...)
	return s
}

// Add appends a destination channel.
func (s *Splitter) Add(ch Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels = append(s.channels, ch)
}

// Count returns the number of destination channels.
func (s *Splitter) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.channels)
}

// Log delivers the record to every destination.
func (s *Splitter) Log(r record.Record) error {
	s.mu.RLock()
	channels := s.channels
	s.mu.RUnlock()

	var errs []error
	for _, ch := range channels {
		if err := ch.Log(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
