// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

// MakeAPIVersion packs a version the way VK_MAKE_API_VERSION does.
func MakeAPIVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

// APIVersionVariant extracts the variant of a packed version.
func APIVersionVariant(v uint32) uint32 { return v >> 29 }

// APIVersionMajor extracts the major number of a packed version.
func APIVersionMajor(v uint32) uint32 { return (v >> 22) & 0x7F }

// APIVersionMinor extracts the minor number of a packed version.
func APIVersionMinor(v uint32) uint32 { return (v >> 12) & 0x3FF }

// APIVersionPatch extracts the patch number of a packed version.
func APIVersionPatch(v uint32) uint32 { return v & 0xFFF }

var (
	APIVersion10 = MakeAPIVersion(0, 1, 0, 0)
	APIVersion11 = MakeAPIVersion(0, 1, 1, 0)
	APIVersion12 = MakeAPIVersion(0, 1, 2, 0)
	APIVersion13 = MakeAPIVersion(0, 1, 3, 0)
)
