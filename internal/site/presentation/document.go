package presentation

import (
	"sort"
	"strings"
	"sync"
)

// Document is an in-memory Root. Class order follows insertion.
type Document struct {
	attrs   map[string]string
	classes []string
}

// NewDocument returns an empty document root.
func NewDocument() *Document {
	return &Document{attrs: map[string]string{}}
}

// SetAttribute sets an attribute on the root.
func (d *Document) SetAttribute(name, value string) {
	if d.attrs == nil {
		d.attrs = map[string]string{}
	}
	d.attrs[name] = value
}

// Attribute returns an attribute value and whether it is set.
func (d *Document) Attribute(name string) (string, bool) {
	value, ok := d.attrs[name]
	return value, ok
}

// Attributes returns the attribute names in sorted order.
func (d *Document) Attributes() []string {
	names := make([]string, 0, len(d.attrs))
	for name := range d.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToggleClass adds name when on is true and removes it otherwise.
func (d *Document) ToggleClass(name string, on bool) {
	idx := d.classIndex(name)
	switch {
	case on && idx < 0:
		d.classes = append(d.classes, name)
	case !on && idx >= 0:
		d.classes = append(d.classes[:idx], d.classes[idx+1:]...)
	}
}

// ClassName returns the class attribute value.
func (d *Document) ClassName() string {
	return strings.Join(d.classes, " ")
}

func (d *Document) classIndex(name string) int {
	for i, class := range d.classes {
		if class == name {
			return i
		}
	}
	return -1
}

// MemoryStorage is a map-backed Storage safe for concurrent use.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage returns storage seeded with values.
func NewMemoryStorage(values map[string]string) *MemoryStorage {
	seeded := make(map[string]string, len(values))
	for key, value := range values {
		seeded[key] = value
	}
	return &MemoryStorage{values: seeded}
}

// Get returns the stored value, or "" when the key is absent.
func (s *MemoryStorage) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

// Set stores value under key.
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}
