// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chain

import (
	"iter"
	"unsafe"

	"github.com/gogpu/vulkan/vk"
)

// OutputPtr is a non-nil pointer to a node of an output chain.
type OutputPtr struct {
	p *vk.BaseOutStructure
}

// NewOutputPtr wraps head. It reports false for a nil head.
func NewOutputPtr(head unsafe.Pointer) (OutputPtr, bool) {
	if head == nil {
		return OutputPtr{}, false
	}
	return OutputPtr{p: (*vk.BaseOutStructure)(head)}, true
}

// Tag returns the node's SType without looking at the rest of the struct.
func (p OutputPtr) Tag() vk.StructureType { return p.p.SType }

// Base returns the node's common header.
func (p OutputPtr) Base() *vk.BaseOutStructure { return p.p }

// Pointer returns the raw node address.
func (p OutputPtr) Pointer() unsafe.Pointer { return unsafe.Pointer(p.p) }

// Next returns the following node, if any.
func (p OutputPtr) Next() (OutputPtr, bool) { return NewOutputPtr(p.p.Next) }

// Output returns a lazy sequence over the output chain starting at head.
func Output(head unsafe.Pointer) iter.Seq[OutputPtr] {
	return func(yield func(OutputPtr) bool) {
		for p, ok := NewOutputPtr(head); ok; p, ok = p.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// AsOutput views an output chain node as T. It panics with *MismatchError
// when the node's tag is not T's tag.
func AsOutput[T vk.ChainStruct](p OutputPtr) *T {
	mustMatch[T](p.Tag())
	return (*T)(unsafe.Pointer(p.p))
}
