// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/vulkan/vk"
)

// ErrDuplicate is returned by Register when the key is already live.
var ErrDuplicate = errors.New("layer: dispatch key already registered")

// ProtocolError is the panic value raised when the loader breaks the layer
// protocol: a call arrives for an object this layer never saw created, or a
// create call carries no link info. It is not meant to be recovered.
type ProtocolError struct {
	Op  string
	Key vk.DispatchKey
	Msg string
}

func (e *ProtocolError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("layer: %s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("layer: %s: no object registered for %v", e.Op, e.Key)
}

// Registry maps dispatch keys to the records of live objects. Each object
// moves through one lifecycle: Register after a successful create,
// Lookup any number of times, Remove exactly once on destroy.
//
// Registry is safe for concurrent use. Lookups only take the read lock, so
// intercepted calls on unrelated objects do not serialize. The zero value
// is ready to use.
type Registry[R any] struct {
	mu      sync.RWMutex
	entries map[vk.DispatchKey]R
}

// NewRegistry creates a new empty registry.
// Most code should use the registries of Default.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{
		entries: make(map[vk.DispatchKey]R),
	}
}

// Register inserts rec under key. It fails with ErrDuplicate if key is
// already live; the existing record is kept.
func (r *Registry[R]) Register(key vk.DispatchKey, rec R) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[vk.DispatchKey]R)
	}
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, key)
	}
	r.entries[key] = rec
	return nil
}

// Lookup returns the record under key.
func (r *Registry[R]) Lookup(key vk.DispatchKey) (R, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.entries[key]
	return rec, ok
}

// MustLookup returns the record under key and panics with a *ProtocolError
// if there is none.
func (r *Registry[R]) MustLookup(op string, key vk.DispatchKey) R {
	rec, ok := r.Lookup(key)
	if !ok {
		panic(&ProtocolError{Op: op, Key: key})
	}
	return rec
}

// Remove deletes and returns the record under key.
func (r *Registry[R]) Remove(key vk.DispatchKey) (R, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.entries[key]
	if ok {
		delete(r.entries, key)
	}
	return rec, ok
}

// MustRemove deletes and returns the record under key and panics with a
// *ProtocolError if there is none.
func (r *Registry[R]) MustRemove(op string, key vk.DispatchKey) R {
	rec, ok := r.Remove(key)
	if !ok {
		panic(&ProtocolError{Op: op, Key: key})
	}
	return rec
}

// Len returns the number of live records.
func (r *Registry[R]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Keys returns the live keys in ascending order.
func (r *Registry[R]) Keys() []vk.DispatchKey {
	r.mu.RLock()
	keys := make([]vk.DispatchKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}
