// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"
)

// Dispatchable handles.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles.
type (
	CommandPool            uint64
	ShaderModule           uint64
	SurfaceKHR             uint64
	SwapchainKHR           uint64
	DebugUtilsMessengerEXT uint64
)

// NullHandle is VK_NULL_HANDLE.
const NullHandle = 0

// DispatchableHandle is satisfied by every pointer-sized Vulkan handle.
type DispatchableHandle interface {
	~uintptr
}

// DispatchKey identifies the loader dispatch table behind a dispatchable
// handle. It is only ever compared and hashed, never dereferenced.
type DispatchKey uintptr

// String implements fmt.Stringer.
func (k DispatchKey) String() string {
	return fmt.Sprintf("DispatchKey(%#x)", uintptr(k))
}

// DispatchKeyOf returns the dispatch key of a dispatchable handle.
//
// The loader driver interface guarantees that every dispatchable object
// starts with a pointer to the loader's dispatch table, and that this
// pointer is shared by an instance or device and all objects dispatched
// through it (a command buffer has the key of its device). The first
// machine word behind the handle is therefore a stable per-object key.
//
// This is the only place the module reads memory behind a handle. h must be
// a live dispatchable handle or NullHandle; the key of NullHandle is 0.
func DispatchKeyOf[H DispatchableHandle](h H) DispatchKey {
	if h == NullHandle {
		return 0
	}
	return DispatchKey(*(*uintptr)(unsafe.Pointer(uintptr(h)))) //nolint:govet // handle is a foreign object pointer
}
