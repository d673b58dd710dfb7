// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chain walks Vulkan pointer chains: singly linked lists of
// extensible structs threaded through their Next field, each starting with
// an SType tag.
//
// Input chains are built by the caller and read by the callee (for example
// the chain of a vk.InstanceCreateInfo). Output chains are allocated by the
// caller and filled in by the callee (for example vk.PhysicalDeviceFeatures2).
// Both share the same physical shape and are walked the same way; the split
// keeps read-only and writable views apart.
//
//	for p := range chain.Input(info.Next) {
//	    if p.Tag() == vk.StructureTypeValidationFeaturesEXT {
//	        features := chain.As[vk.ValidationFeaturesEXT](p)
//	        ...
//	    }
//	}
//
// Chains are acyclic by contract of whoever built them. Nothing here checks
// for cycles, and every pointer reached must point at a correctly tagged
// struct.
package chain

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/gogpu/vulkan/vk"
)

// MismatchError is the panic value raised when a node is downcast to a
// struct whose tag differs from the node's SType. It signals corrupt or
// misdescribed foreign data and is not meant to be recovered in production.
type MismatchError struct {
	Got    vk.StructureType
	Want   vk.StructureType
	Target string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("chain: cannot view %v node as %s (want %v)", e.Got, e.Target, e.Want)
}

// InputPtr is a non-nil pointer to a node of an input chain.
type InputPtr struct {
	p *vk.BaseInStructure
}

// NewInputPtr wraps head. It reports false for a nil head.
func NewInputPtr(head unsafe.Pointer) (InputPtr, bool) {
	if head == nil {
		return InputPtr{}, false
	}
	return InputPtr{p: (*vk.BaseInStructure)(head)}, true
}

// Tag returns the node's SType without looking at the rest of the struct.
func (p InputPtr) Tag() vk.StructureType { return p.p.SType }

// Base returns the node's common header.
func (p InputPtr) Base() *vk.BaseInStructure { return p.p }

// Pointer returns the raw node address.
func (p InputPtr) Pointer() unsafe.Pointer { return unsafe.Pointer(p.p) }

// Next returns the following node, if any.
func (p InputPtr) Next() (InputPtr, bool) { return NewInputPtr(p.p.Next) }

// Input returns a lazy sequence over the input chain starting at head.
// Every range over the sequence walks again from head. A nil head yields
// nothing.
func Input(head unsafe.Pointer) iter.Seq[InputPtr] {
	return func(yield func(InputPtr) bool) {
		for p, ok := NewInputPtr(head); ok; p, ok = p.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// As views an input chain node as T. It panics with *MismatchError when the
// node's tag is not T's tag.
func As[T vk.ChainStruct](p InputPtr) *T {
	mustMatch[T](p.Tag())
	return (*T)(unsafe.Pointer(p.p))
}

// Find returns the first node of the input chain at head whose tag is T's.
func Find[T vk.ChainStruct](head unsafe.Pointer) (*T, bool) {
	var zero T
	want := zero.Type()
	for p := range Input(head) {
		if p.Tag() == want {
			return As[T](p), true
		}
	}
	return nil, false
}

// Len counts the nodes of the chain at head.
func Len(head unsafe.Pointer) int {
	n := 0
	for range Input(head) {
		n++
	}
	return n
}

// Link threads the given structs into a chain in argument order and
// returns its head, which is nil when no nodes are given. Each node must
// point at a struct that begins with the SType/Next header; the last node's
// Next is cleared. Nodes are owned by the caller and must stay reachable
// while the chain is in use.
func Link(nodes ...unsafe.Pointer) unsafe.Pointer {
	for i, n := range nodes {
		base := (*vk.BaseOutStructure)(n)
		if i+1 < len(nodes) {
			base.Next = nodes[i+1]
		} else {
			base.Next = nil
		}
	}
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func mustMatch[T vk.ChainStruct](got vk.StructureType) {
	var zero T
	if want := zero.Type(); got != want {
		panic(&MismatchError{
			Got:    got,
			Want:   want,
			Target: reflect.TypeFor[T]().String(),
		})
	}
}
