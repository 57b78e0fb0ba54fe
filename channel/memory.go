package channel

import (
	"sync"

	"github.com/kbukum/logtree/record"
)

// Memory is a channel that stores records in memory. It is mainly useful in
// tests and for capturing recent output for diagnostics.
type Memory struct {
	mu      sync.Mutex
	records []record.Record
}

// NewMemory creates an empty memory channel.
func NewMemory() *Memory {
	return &Memory{}
}

// Log appends the record to the in-memory buffer.
func (m *Memory) Log(r record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// Records returns a copy of all captured records.
func (m *Memory) Records() []record.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]record.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of captured records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Last returns the most recent record and true, or a zero record and false
// if nothing has been captured.
func (m *Memory) Last() (record.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) == 0 {
		return record.Record{}, false
	}
	return m.records[len(m.records)-1], true
}

// Reset discards all captured records.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}
