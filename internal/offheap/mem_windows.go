// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package offheap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapWords commits n zeroed words of private memory. The region is never
// released; slots are recycled through the free list instead.
func mapWords(n int) ([]uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n*wordSize), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("offheap: VirtualAlloc: %w", err)
	}
	return unsafe.Slice((*uintptr)(unsafe.Pointer(addr)), n), nil //nolint:govet // memory outside the Go heap
}
