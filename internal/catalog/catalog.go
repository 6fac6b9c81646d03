package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a catalog would be empty or would
// contain the same key twice.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Shape records which input form a catalog was built from
type Shape int

const (
	// ShapeList catalogs use each entry as both key and label
	ShapeList Shape = iota
	// ShapeKeyed catalogs carry independent keys and labels
	ShapeKeyed
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// Option is a single selectable entry
type Option struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// Catalog is an ordered, immutable list of options with unique keys.
// Both input shapes are normalized to (key, label) pairs so callers never
// need to know which one they were given.
type Catalog struct {
	options []Option
	index   map[string]int
	shape   Shape
}

// FromList builds a catalog where every entry is its own key
func FromList(items []string) (*Catalog, error) {
	options := make([]Option, len(items))
	for i, item := range items {
		options[i] = Option{Key: item, Label: item}
	}
	return build(options, ShapeList)
}

// FromPairs builds a keyed catalog, keeping the order of pairs
func FromPairs(pairs []Option) (*Catalog, error) {
	options := make([]Option, len(pairs))
	copy(options, pairs)
	return build(options, ShapeKeyed)
}

// MustFromList is like FromList but panics on error. Intended for tests and
// static catalogs.
func MustFromList(items ...string) *Catalog {
	c, err := FromList(items)
	if err != nil {
		panic(err)
	}
	return c
}

// MustFromPairs is like FromPairs but panics on error
func MustFromPairs(pairs ...Option) *Catalog {
	c, err := FromPairs(pairs)
	if err != nil {
		panic(err)
	}
	return c
}

func build(options []Option, shape Shape) (*Catalog, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: no options", ErrInvalidCatalog)
	}

	index := make(map[string]int, len(options))
	for i, opt := range options {
		if _, exists := index[opt.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidCatalog, opt.Key)
		}
		index[opt.Key] = i
	}

	return &Catalog{
		options: options,
		index:   index,
		shape:   shape,
	}, nil
}

// Len returns the number of options
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.options)
}

// At returns the option at index i. It panics if i is out of range.
func (c *Catalog) At(i int) Option {
	return c.options[i]
}

// KeyAt returns the key of the option at index i
func (c *Catalog) KeyAt(i int) string {
	return c.options[i].Key
}

// Shape returns the input shape the catalog was built from
func (c *Catalog) Shape() Shape {
	return c.shape
}

// Contains reports whether key is part of the catalog
func (c *Catalog) Contains(key string) bool {
	_, ok := c.index[key]
	return ok
}

// IndexOf returns the position of key, or -1
func (c *Catalog) IndexOf(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	return -1
}

// Label returns the label for key
func (c *Catalog) Label(key string) (string, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.options[i].Label, true
}

// Options returns a copy of the options in catalog order
func (c *Catalog) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// Keys returns all keys in catalog order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.options))
	for i, opt := range c.options {
		keys[i] = opt.Key
	}
	return keys
}
