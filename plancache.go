package retsu

import "reflect"

// planCache stores compiled plans keyed by their Go type, so that each bundle
// or view shape is compiled at most once per table. Plans never go stale:
// they hold IDs, and the registry graph only grows.
type planCache struct {
	items map[reflect.Type]any
}

// cachedPlan returns the cached plan of type P, building and storing it on
// first use.
func cachedPlan[P any](c *planCache, build func() P) P {
	t := reflect.TypeFor[P]()
	if p, ok := c.items[t]; ok {
		return p.(P)
	}
	if c.items == nil {
		c.items = make(map[reflect.Type]any)
	}
	p := build()
	c.items[t] = p
	return p
}

// Len returns the number of cached plans.
func (c *planCache) Len() int {
	return len(c.items)
}
