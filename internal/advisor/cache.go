package advisor

import "sync"

// fifoCache is a bounded map that evicts the oldest inserted key first.
type fifoCache struct {
	mu    sync.Mutex
	limit int
	order []string
	items map[string]string
}

func newFIFOCache(limit int) *fifoCache {
	return &fifoCache{limit: limit, items: make(map[string]string, limit)}
}

func (c *fifoCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

// Put stores value. Overwriting a key keeps its original position.
func (c *fifoCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		c.items[key] = value
		return
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.order = append(c.order, key)
	c.items[key] = value
}

func (c *fifoCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *fifoCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.items = make(map[string]string, c.limit)
}
