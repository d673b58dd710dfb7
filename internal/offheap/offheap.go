// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package offheap hands out small fixed-size slots in memory the Go runtime
// does not manage. Tests use the slots as the objects behind fake
// dispatchable handles: a handle is a bare address that gets converted back
// into a pointer, which the checkptr instrumentation enabled by -race only
// allows for memory outside Go allocations.
package offheap

import (
	"sync"
	"unsafe"
)

const (
	wordSize  = int(unsafe.Sizeof(uintptr(0)))
	slotWords = 2
	slabWords = 64 << 10 / wordSize
)

var (
	mu   sync.Mutex
	free []*uintptr
	live = map[uintptr]*uintptr{}
)

// Alloc returns the address of a free slot whose first word holds key.
func Alloc(key uintptr) (uintptr, error) {
	mu.Lock()
	defer mu.Unlock()
	if len(free) == 0 {
		if err := grow(); err != nil {
			return 0, err
		}
	}
	p := free[len(free)-1]
	free = free[:len(free)-1]
	*p = key
	h := uintptr(unsafe.Pointer(p))
	live[h] = p
	return h, nil
}

// MustAlloc is like Alloc but panics on failure.
func MustAlloc(key uintptr) uintptr {
	h, err := Alloc(key)
	if err != nil {
		panic(err)
	}
	return h
}

// Free returns the slot at h to the pool. Addresses not handed out by Alloc
// are ignored.
func Free(h uintptr) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := live[h]
	if !ok {
		return
	}
	delete(live, h)
	*p = 0
	free = append(free, p)
}

// Live returns the number of allocated slots.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(live)
}

func grow() error {
	words, err := mapWords(slabWords)
	if err != nil {
		return err
	}
	for i := len(words) - slotWords; i >= 0; i -= slotWords {
		free = append(free, &words[i])
	}
	return nil
}
