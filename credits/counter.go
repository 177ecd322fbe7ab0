// Package credits persists the arcade credit balance as a plain integer string
// under a fixed key of a key-value store.
package credits

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
)

// DefaultKey is the storage key the balance lives under
const DefaultKey = "cursorGameCredits"

// ErrNegative is returned when Add is given a negative amount
var ErrNegative = errors.New("credit amount cannot be negative")

// KV is the minimal key-value store the counter needs
type KV interface {
	// Get returns the stored value and whether the key exists
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Incrementer is implemented by stores that can add to a stored integer in one
// step. Counters sharing such a store never overwrite each other's credits.
type Incrementer interface {
	// Incr adds delta to the integer under key, treating a missing or
	// unparsable value as zero, and returns the new total
	Incr(key string, delta int) (int, error)
}

// Counter is a credit balance backed by a KV store. Every change is written
// through immediately.
type Counter struct {
	mu    sync.Mutex
	kv    KV
	key   string
	value int
}

// Open loads the balance stored under key. A missing key starts at zero; an
// unparsable value is logged and also treated as zero.
func Open(kv KV, key string) (*Counter, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load credits: %w", err)
	}
	c := &Counter{kv: kv, key: key}
	if !ok {
		return c, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("credits: ignoring invalid stored value %q under %s", raw, key)
		return c, nil
	}
	c.value = n
	return c, nil
}

// Value returns the current balance
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Add credits n and persists the new balance. On an Incrementer store the
// addition happens in the store, so the returned total includes credits
// added through other counters on the same key.
func (c *Counter) Add(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if inc, ok := c.kv.(Incrementer); ok {
		v, err := inc.Incr(c.key, n)
		if err != nil {
			return c.value, fmt.Errorf("failed to save credits: %w", err)
		}
		c.value = v
		return v, nil
	}
	v := c.value + n
	if err := c.kv.Set(c.key, strconv.Itoa(v)); err != nil {
		return c.value, fmt.Errorf("failed to save credits: %w", err)
	}
	c.value = v
	return v, nil
}
