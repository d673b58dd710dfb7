// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(darwin || freebsd || linux || netbsd || openbsd || windows)

package offheap

import (
	"errors"
	"fmt"
	"runtime"
)

func mapWords(int) ([]uintptr, error) {
	return nil, fmt.Errorf("offheap: %s: %w", runtime.GOOS, errors.ErrUnsupported)
}
