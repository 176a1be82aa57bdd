package chart

// FastDrawCache memoizes series fetched during one top-level redraw so
// sibling widgets bound to the same key share a single data layer query.
// Values stored while a pass is open are returned as-is until the pass ends,
// even if the data layer changed underneath.
type FastDrawCache struct {
	active bool
	series map[string]*Series
}

// Begin opens a pass. It reports false when a pass is already open, in which
// case the caller must not End it.
func (c *FastDrawCache) Begin() bool {
	if c.active {
		return false
	}
	c.active = true
	c.series = make(map[string]*Series)
	return true
}

func (c *FastDrawCache) End() {
	c.active = false
	c.series = nil
}

func (c *FastDrawCache) Active() bool {
	return c.active
}

func (c *FastDrawCache) Lookup(key string) (*Series, bool) {
	if !c.active {
		return nil, false
	}
	s, ok := c.series[key]
	return s, ok
}

func (c *FastDrawCache) Store(key string, s *Series) {
	if !c.active {
		return
	}
	c.series[key] = s
}
