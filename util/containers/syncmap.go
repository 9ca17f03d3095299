package containers

import "sync"

type SyncMap[K any, V any] struct {
	internal sync.Map
}

func (m *SyncMap[K, V]) Load(key K) (V, bool) {
	val, found := m.internal.Load(key)
	if !found {
		var empty V
		return empty, false
	}
	return val.(V), true
}

func (m *SyncMap[K, V]) Store(key K, val V) {
	m.internal.Store(key, val)
}

func (m *SyncMap[K, V]) LoadOrStore(key K, val V) (V, bool) {
	actual, loaded := m.internal.LoadOrStore(key, val)
	return actual.(V), loaded
}

func (m *SyncMap[K, V]) Delete(key K) {
	m.internal.Delete(key)
}

// Range calls foo for each entry until foo returns false.
func (m *SyncMap[K, V]) Range(foo func(key K, val V) bool) {
	m.internal.Range(func(key, val any) bool {
		return foo(key.(K), val.(V))
	})
}
