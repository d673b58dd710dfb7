// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loader resolves Vulkan command names to raw callable addresses.
//
// Two sources are supported. A [Library] opens the platform Vulkan loader
// (libvulkan.so.1, vulkan-1.dll, libvulkan.dylib) and looks symbols up in
// it. A [Func] wraps a resolver callback, which is what a layer uses: it is
// itself loaded by the Vulkan loader and must resolve everything through the
// next element of the layer chain rather than through a library.
//
// Addresses returned by a Library are only valid while it stays open.
package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrSymbolNotFound is matched by every *NotFoundError.
	ErrSymbolNotFound = errors.New("loader: symbol not found")

	// ErrBackend is matched by every *BackendError.
	ErrBackend = errors.New("loader: dynamic library failure")

	// ErrClosed is returned by Load on a closed Library.
	ErrClosed = errors.New("loader: library closed")

	// ErrUnsupported is returned by Open on platforms without a dynamic
	// library backend.
	ErrUnsupported = errors.New("loader: dynamic libraries not supported on this platform")
)

// Loader resolves a command name to its address.
type Loader interface {
	Load(name string) (uintptr, error)
}

// NotFoundError reports a symbol that the source does not export.
type NotFoundError struct {
	Name string
	Err  error // platform detail, may be nil
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loader: symbol %q not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("loader: symbol %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSymbolNotFound) true.
func (e *NotFoundError) Is(target error) bool { return target == ErrSymbolNotFound }

// BackendError reports a failure of the dynamic library mechanism itself,
// such as a library that cannot be opened.
type BackendError struct {
	Op   string // "open", "close"
	Path string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("loader: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrBackend) true.
func (e *BackendError) Is(target error) bool { return target == ErrBackend }

// Func adapts a resolver callback to the Loader interface. A zero address
// is reported as *NotFoundError.
//
//	next := loader.Func(func(name string) uintptr {
//	    return nextGetInstanceProcAddr(0, vk.CString(name))
//	})
type Func func(name string) uintptr

// Load calls f.
func (f Func) Load(name string) (uintptr, error) {
	addr := f(name)
	if addr == 0 {
		return 0, &NotFoundError{Name: name}
	}
	return addr, nil
}
