// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin || freebsd || linux || netbsd || openbsd

package offheap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapWords maps n zeroed words of anonymous memory. The mapping is never
// released; slots are recycled through the free list instead.
func mapWords(n int) ([]uintptr, error) {
	mem, err := unix.Mmap(-1, 0, n*wordSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("offheap: mmap: %w", err)
	}
	return unsafe.Slice((*uintptr)(unsafe.Pointer(&mem[0])), n), nil
}
