package filemap

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-json"
)

// Map is the result of a successful build. It never changes after Build returns,
// so it can be read from any number of goroutines.
type Map struct {
	entries     map[string]string
	path        string
	pairSep     string
	keyValueSep string
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// MustGet returns the value for key.
//
// It panics when the key isn't in the map. Use it only where the key is known to exist.
func (m *Map) MustGet(key string) string {
	v, ok := m.entries[key]
	if !ok {
		if m.path == "" {
			panic(fmt.Sprintf("filemap: cannot find %q", key))
		}
		panic(fmt.Sprintf("filemap: cannot find %q in %s", key, m.path))
	}

	return v
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	return slices.Sorted(maps.Keys(m.entries))
}

// Entries returns a copy of the underlying entries.
func (m *Map) Entries() map[string]string {
	return maps.Clone(m.entries)
}

// All iterates over the entries in key order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Path returns the file the map was built from.
func (m *Map) Path() string {
	return m.path
}

func (m *Map) PairSeparator() string {
	return m.pairSep
}

func (m *Map) KeyValueSeparator() string {
	return m.keyValueSep
}

// MarshalJSON encodes the entries as a JSON object.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.entries)
}
