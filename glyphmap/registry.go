package glyphmap

import (
	"strconv"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Registry remembers the glyphs already written to the mapping and alias
// outputs. It only grows, and remembers the order of insertion.
//
// Keys are built from a glyph name and the decimal value of a nibble, see
// RegistryKey. The emitted glyph name uses a hex digit instead. As keys are
// built the same way for lookup and insertion, de-duplication is consistent.
type Registry struct {
	keys *linkedhashset.Set
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: linkedhashset.New()}
}

// RegistryKey returns the key for glyph name with nibble n, i.e. name_<decimal n>.
func RegistryKey(name string, n int) string {
	return name + "_" + strconv.Itoa(n)
}

// Add inserts a key. It returns false if the key has already been present.
func (reg *Registry) Add(key string) bool {
	if reg.keys.Contains(key) {
		return false
	}
	reg.keys.Add(key)
	return true
}

// Contains is a predicate: has key been registered?
func (reg *Registry) Contains(key string) bool {
	return reg.keys.Contains(key)
}

// Size returns the number of keys in the registry.
func (reg *Registry) Size() int {
	return reg.keys.Size()
}

// Keys returns all keys in order of insertion.
func (reg *Registry) Keys() []string {
	values := reg.keys.Values()
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = v.(string)
	}
	return keys
}
