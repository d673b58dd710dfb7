// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"log/slog"
	"sync"
)

// Library is a dynamically opened shared library. It is safe for concurrent
// use. Close invalidates every address previously returned by Load.
type Library struct {
	path string

	mu     sync.RWMutex
	handle uintptr
	closed bool
}

// Open opens the shared library at path. The path is passed to the
// platform loader unchanged, so a bare file name is searched for on the
// usual library path.
func Open(path string) (*Library, error) {
	h, err := openLibrary(path)
	if err != nil {
		return nil, &BackendError{Op: "open", Path: path, Err: err}
	}
	slogger().Debug("loader: library opened", slog.String("path", path))
	return &Library{path: path, handle: h}, nil
}

// OpenDefault opens the platform Vulkan loader, trying DefaultLibrary first
// and then the platform fallbacks. The returned error joins every failure.
func OpenDefault() (*Library, error) {
	var errs []error
	for _, path := range defaultLibraries() {
		lib, err := Open(path)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrUnsupported
	}
	return nil, errors.Join(errs...)
}

// DefaultLibrary returns the file name of the platform Vulkan loader.
func DefaultLibrary() string {
	return defaultLibraries()[0]
}

// Path returns the path the library was opened with.
func (l *Library) Path() string { return l.path }

// Load resolves name in the library.
func (l *Library) Load(name string) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return 0, ErrClosed
	}
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, &NotFoundError{Name: name, Err: err}
	}
	if addr == 0 {
		return 0, &NotFoundError{Name: name}
	}
	return addr, nil
}

// Close releases the library. Closing twice is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if err := closeLibrary(l.handle); err != nil {
		return &BackendError{Op: "close", Path: l.path, Err: err}
	}
	slogger().Debug("loader: library closed", slog.String("path", l.path))
	return nil
}
