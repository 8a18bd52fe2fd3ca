package store

import (
	"strings"
	"sync"
)

//MapStore store use map, for tests and demos
type MapStore struct {
	store map[string]string
	mux   *sync.RWMutex
}

//NewMapStore new map store
func NewMapStore() *MapStore {
	return &MapStore{store: make(map[string]string), mux: &sync.RWMutex{}}
}

//Put set key/value
func (m *MapStore) Put(key []byte, val []byte) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.store[string(key)] = string(val)
	return nil
}

//Get get value of key, ErrNotFound when absent
func (m *MapStore) Get(key []byte) ([]byte, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.store[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

//Delete delete key/value, absent key is a no-op
func (m *MapStore) Delete(key []byte) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	delete(m.store, string(key))
	return nil
}

//Items get key/value pairs by key's prefix
func (m *MapStore) Items(prefix ...string) ([]*KeyValuePair, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	out := make([]*KeyValuePair, 0)
	var p string
	if len(prefix) != 0 && prefix[0] != "" {
		p = prefix[0]
	}
	for k, v := range m.store {
		if strings.HasPrefix(k, p) {
			out = append(out, &KeyValuePair{
				Key:   []byte(k),
				Value: []byte(v),
			})
		}
	}
	return out, nil
}
