// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CString returns a NUL-terminated copy of s in Go memory. The result stays
// valid for as long as the caller keeps it reachable.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CStrings converts ss with CString. The returned slice backs a
// `const char* const*` argument: pass &result[0] together with len(result).
func CStrings(ss []string) []*byte {
	if len(ss) == 0 {
		return nil
	}
	out := make([]*byte, len(ss))
	for i, s := range ss {
		out[i] = CString(s)
	}
	return out
}

// GoString copies a NUL-terminated C string. A nil pointer yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// GoStringN copies a C string of at most limit bytes, stopping early at a NUL.
func GoStringN(p *byte, limit int) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < limit && *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// FixedString converts a fixed-size NUL-padded array field, such as
// ExtensionProperties.ExtensionName, to a string.
func FixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
