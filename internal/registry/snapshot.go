package registry

import (
	"sort"
	"sync/atomic"
)

// Snapshot is an immutable view of the loaded registry. It is built once and
// published by reference; concurrent readers need no lock because no writer
// exists after publication.
type Snapshot struct {
	records map[string]VendorRecord
	names   []string
}

func NewSnapshot(records map[string]VendorRecord) *Snapshot {
	normalized := make(map[string]VendorRecord, len(records))
	names := make([]string, 0, len(records))
	for name, rec := range records {
		rec.Name = name
		normalized[name] = rec
		names = append(names, name)
	}
	sort.Strings(names)
	return &Snapshot{records: normalized, names: names}
}

// Names returns the de-duplicated candidate vendor names in sorted order.
// Callers must not modify the returned slice.
func (s *Snapshot) Names() []string {
	return s.names
}

// Lookup returns the record for a canonical vendor name.
func (s *Snapshot) Lookup(name string) (VendorRecord, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

// Holder publishes the current registry snapshot. Hot reload is an atomic
// swap to a newly built snapshot, never in-place mutation visible to
// in-flight reads.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

func NewHolder(s *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

func (h *Holder) Swap(s *Snapshot) {
	h.current.Store(s)
}
