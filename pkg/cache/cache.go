package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/fx"
)

var (
	Module      = fx.Provide(New)
	ErrNotFound = errors.New("not found")
)

type (
	// ICache is the in-memory counterpart of the redis client, used when no
	// redis address is configured. Entries expire, they are never refreshed
	// in place.
	ICache interface {
		SaveObj(key string, value interface{}, dur time.Duration) error
		GetObj(key string, value interface{}) error
		Delete(key string) error
	}

	entry struct {
		payload   []byte
		expiresAt time.Time
	}

	cache struct {
		entries map[string]entry
		m       sync.RWMutex
	}
)

func New() ICache {
	return &cache{
		entries: map[string]entry{},
	}
}

func (c *cache) SaveObj(key string, value interface{}, dur time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var deadline time.Time
	if dur > 0 {
		deadline = time.Now().Add(dur)
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.entries[key] = entry{payload: b, expiresAt: deadline}
	return nil
}

func (c *cache) GetObj(key string, value interface{}) error {
	c.m.RLock()
	e, ok := c.entries[key]
	c.m.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.m.Lock()
		delete(c.entries, key)
		c.m.Unlock()
		return ErrNotFound
	}

	return json.Unmarshal(e.payload, value)
}

func (c *cache) Delete(key string) error {
	c.m.Lock()
	defer c.m.Unlock()

	delete(c.entries, key)
	return nil
}
