// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vk holds the raw Vulkan ABI types used by this module: handles,
// result codes, structure types and the subset of structs that the command
// tables, pointer chains and the layer interface operate on.
//
// Every struct in this package mirrors its C counterpart field for field.
// The other end of each call is compiled independently, so field order,
// size and alignment must never change.
//
// Dispatchable handles (Instance, PhysicalDevice, Device, Queue,
// CommandBuffer) are pointer sized. Non-dispatchable handles are always
// 64 bits wide.
package vk
