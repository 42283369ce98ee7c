package syncutil

import (
	"iter"
	"maps"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ShardMap is a thread-safe string-keyed map that uses sharding to reduce lock contention.
type ShardMap[V any] struct {
	shards []*shard[V]
}

type shard[V any] struct {
	sync.RWMutex
	items map[string]V
}

// ShardsNum is the number of shards of a [ShardMap].
type ShardsNum uint

const defShardsNum ShardsNum = 32

// NewShardMap creates a new [ShardMap].
// If the number of shards is 0, the default number of shards (32) is used.
func NewShardMap[V any](num ShardsNum) *ShardMap[V] {
	if num == 0 {
		num = defShardsNum
	}
	shards := make([]*shard[V], num)
	for i := range shards {
		shards[i] = &shard[V]{items: make(map[string]V)}
	}
	return &ShardMap[V]{shards: shards}
}

func (m *ShardMap[V]) getShard(key string) *shard[V] {
	return m.shards[xxhash.Sum64String(key)%uint64(len(m.shards))]
}

// Get retrieves a value by key.
func (m *ShardMap[V]) Get(key string) (V, bool) {
	shard := m.getShard(key)
	shard.RLock()
	defer shard.RUnlock()
	val, ok := shard.items[key]
	return val, ok
}

// GetOrCreate returns the value stored under the key.
// If there is none, it stores and returns the result of create.
// It reports whether the value was created.
func (m *ShardMap[V]) GetOrCreate(key string, create func() V) (V, bool) {
	shard := m.getShard(key)
	shard.RLock()
	val, ok := shard.items[key]
	shard.RUnlock()
	if ok {
		return val, false
	}

	shard.Lock()
	defer shard.Unlock()
	if val, ok := shard.items[key]; ok {
		return val, false
	}
	val = create()
	shard.items[key] = val
	return val, true
}

// Del removes a key-value pair by key.
func (m *ShardMap[V]) Del(key string) (V, bool) {
	shard := m.getShard(key)
	shard.Lock()
	val, ok := shard.items[key]
	if ok {
		delete(shard.items, key)
	}
	shard.Unlock()
	return val, ok
}

// Size returns the total number of items in the map.
func (m *ShardMap[V]) Size() int {
	size := 0
	for _, shard := range m.shards {
		shard.RLock()
		size += len(shard.items)
		shard.RUnlock()
	}
	return size
}

// Items returns an iterator over a snapshot of every shard.
func (m *ShardMap[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, shard := range m.shards {
			shard.RLock()
			items := maps.Clone(shard.items)
			shard.RUnlock()

			for k, v := range items {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
