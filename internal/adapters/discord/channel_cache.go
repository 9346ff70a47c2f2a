package discord

import "sync"

// channelCache remembers channels that were confirmed to be text channels so
// repeated suggestions skip the REST lookup.
type channelCache struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

func newChannelCache() *channelCache {
	return &channelCache{
		items: make(map[string]struct{}),
	}
}

func (c *channelCache) Has(channelID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[channelID]
	return ok
}

func (c *channelCache) Add(channelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[channelID] = struct{}{}
}

func (c *channelCache) Invalidate(channelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, channelID)
}
