package credits

import (
	"strconv"
	"sync"
)

// MemoryKV is an in-process KV, used by tests and when no storage is available
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryKV creates an empty MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

// Incr implements Incrementer
func (kv *MemoryKV) Incr(key string, delta int) (int, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	n, err := strconv.Atoi(kv.m[key])
	if err != nil || n < 0 {
		n = 0
	}
	n += delta
	kv.m[key] = strconv.Itoa(n)
	return n, nil
}
