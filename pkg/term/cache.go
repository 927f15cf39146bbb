package term

import "sync"

// ComponentCache maps import aliases to the cached component forest. It is
// owned by a Renderer, not by the package, so two renderers never observe
// each other's components even when they reuse an alias for different files.
//
// Entries are populated lazily by the import resolver on the first import of
// an alias and live for the life of the renderer; there is no invalidation.
// The stored forest is never handed out directly: every lookup site clones
// it before splicing, preserving single ownership of each node.
type ComponentCache struct {
	mu         sync.RWMutex
	components map[string][]*Node
}

// NewComponentCache creates an empty component cache.
func NewComponentCache() *ComponentCache {
	return &ComponentCache{
		components: make(map[string][]*Node),
	}
}

// Lookup returns the cached forest for an alias.
func (c *ComponentCache) Lookup(alias string) ([]*Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	forest, ok := c.components[alias]
	return forest, ok
}

// Store caches a component forest under an alias. The first import of an
// alias wins; later imports of the same alias are no-ops.
func (c *ComponentCache) Store(alias string, forest []*Node) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.components[alias]; exists {
		return false
	}
	c.components[alias] = forest
	return true
}

// Contains reports whether an alias has been cached.
func (c *ComponentCache) Contains(alias string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.components[alias]
	return ok
}

// Size returns the number of cached components.
func (c *ComponentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.components)
}

// Clear drops all cached components.
func (c *ComponentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components = make(map[string][]*Node)
}
