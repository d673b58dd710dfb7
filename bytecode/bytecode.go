// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bytecode holds SPIR-V shader code in the 4-byte aligned form
// vkCreateShaderModule expects, and compiles WGSL to it with naga.
package bytecode

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/gogpu/naga"

	"github.com/gogpu/vulkan/vk"
)

// Magic is the first word of every SPIR-V module.
const Magic uint32 = 0x07230203

// LengthError reports code whose size is zero or not a multiple of four.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bytecode: invalid length %d, want a non-zero multiple of 4", e.Len)
}

// Bytecode is an immutable, word-aligned copy of SPIR-V code.
type Bytecode struct {
	words []uint32
}

// New copies code into an aligned buffer. The bytes are kept in their
// original order, so code must already be in host byte order, which is what
// every SPIR-V producer emits for the machine it runs on.
func New(code []byte) (*Bytecode, error) {
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, &LengthError{Len: len(code)}
	}
	words := make([]uint32, len(code)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(code)), code)
	return &Bytecode{words: words}, nil
}

// FromWords copies words into a new buffer.
func FromWords(words []uint32) (*Bytecode, error) {
	if len(words) == 0 {
		return nil, &LengthError{}
	}
	return &Bytecode{words: slices.Clone(words)}, nil
}

// CompileWGSL compiles WGSL source to SPIR-V with naga's default options.
func CompileWGSL(source string) (*Bytecode, error) {
	return CompileWGSLWithOptions(source, naga.DefaultOptions())
}

// CompileWGSLWithOptions compiles WGSL source to SPIR-V.
func CompileWGSLWithOptions(source string, opts naga.CompileOptions) (*Bytecode, error) {
	code, err := naga.CompileWithOptions(source, opts)
	if err != nil {
		return nil, fmt.Errorf("bytecode: compile wgsl: %w", err)
	}
	return New(code)
}

// Words returns the code as 32-bit words. The slice must not be modified.
func (b *Bytecode) Words() []uint32 { return b.words }

// Bytes returns the code as bytes, sharing storage with Words.
func (b *Bytecode) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.words[0])), len(b.words)*4)
}

// CodeSize is the size in bytes, as passed in VkShaderModuleCreateInfo.
func (b *Bytecode) CodeSize() uintptr { return uintptr(len(b.words) * 4) }

// Code points at the first word.
func (b *Bytecode) Code() *uint32 { return &b.words[0] }

// IsSPIRV reports whether the code starts with the SPIR-V magic number.
func (b *Bytecode) IsSPIRV() bool { return b.words[0] == Magic }

// ShaderModuleCreateInfo returns a create info referencing the code. b must
// stay reachable until the create call returns.
func (b *Bytecode) ShaderModuleCreateInfo() vk.ShaderModuleCreateInfo {
	return vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: b.CodeSize(),
		Code:     b.Code(),
	}
}
