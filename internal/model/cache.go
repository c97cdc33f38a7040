package model

import (
	"container/list"
	"sync"

	"github.com/lexigraph/tokenizer/internal/pretok"
)

// wordCache is the interface BPE uses to cache the merged token sequence
// for a pre-token, keyed on its text (spec §4.5, §5: the only mutable state
// touched during encode). Adapted from the teacher's bpe.Cache, generalized
// from []int to []pretok.Token and renamed to describe what it holds.
type wordCache interface {
	Get(key string) ([]pretok.Token, bool)
	Put(key string, value []pretok.Token)
}

// lruWordCache is a thread-safe, size-bounded LRU cache.
type lruWordCache struct {
	capacity int
	items    map[string]*list.Element
	lru      *list.List
	mu       sync.RWMutex
}

type wordCacheEntry struct {
	key   string
	value []pretok.Token
}

// newLRUWordCache builds an LRU cache. capacity == 0 means unlimited.
func newLRUWordCache(capacity int) *lruWordCache {
	return &lruWordCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		lru:      list.New(),
	}
}

func (c *lruWordCache) Get(key string) ([]pretok.Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*wordCacheEntry).value, true
	}
	return nil, false
}

func (c *lruWordCache) Put(key string, value []pretok.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*wordCacheEntry).value = value
		return
	}
	entry := &wordCacheEntry{key: key, value: value}
	elem := c.lru.PushFront(entry)
	c.items[key] = elem
	if c.capacity > 0 && c.lru.Len() > c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			c.lru.Remove(oldest)
			delete(c.items, oldest.Value.(*wordCacheEntry).key)
		}
	}
}
