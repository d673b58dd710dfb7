// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer implements a Vulkan layer: a shim the Vulkan loader inserts
// between the application and the driver, forwarding every command to the
// next element of the chain and intercepting a few.
//
// The loader discovers the layer through a JSON manifest and calls
// vkNegotiateLoaderLayerInterfaceVersion, then resolves everything through
// the layer's vkGetInstanceProcAddr and vkGetDeviceProcAddr. The layer
// answers with its own entry points for the intercepted commands and with
// the next element's entry points for the rest.
//
// Because one layer instance serves every VkInstance and VkDevice in the
// process, per-object state lives in two registries keyed by the dispatch
// key of the handle (see vk.DispatchKeyOf). Command buffers and queues share
// the key of their device, so an intercepted command buffer call finds its
// device record directly.
//
// cmd/vklayer builds the package into a loadable shared library.
package layer

import (
	"log/slog"
	"sync"

	"github.com/gogpu/vulkan"
	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/vk"
)

// InstanceRecord is the registry record of an instance created through the
// layer.
type InstanceRecord struct {
	// Instance wraps the created handle. Its commands come from the next
	// element of the chain.
	Instance *vulkan.Instance

	NextGetInstanceProcAddr       commands.GetInstanceProcAddrFunc
	NextGetPhysicalDeviceProcAddr uintptr
}

// DeviceRecord is the registry record of a device created through the
// layer.
type DeviceRecord struct {
	// Device wraps the created handle. Its commands come from the next
	// element of the chain.
	Device *vulkan.Device

	NextGetDeviceProcAddr commands.GetDeviceProcAddrFunc
}

// Hooks are the side effects run by intercepted commands before the call
// is forwarded. A nil hook is skipped.
type Hooks struct {
	BeginCommandBuffer func(device *vulkan.Device, buffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo)
	EndCommandBuffer   func(device *vulkan.Device, buffer vk.CommandBuffer)
}

// Option configures New.
type Option func(*Layer)

// WithLogger sets the layer's logger. By default the layer logs through
// vulkan.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(ly *Layer) {
		if l != nil {
			ly.log = l
		}
	}
}

// WithHooks replaces the default hooks, which log the intercepted calls at
// debug level.
func WithHooks(h Hooks) Option {
	return func(ly *Layer) {
		ly.hooks = h
	}
}

// WithInstanceRegistry makes the layer store instance records in r.
func WithInstanceRegistry(r *Registry[InstanceRecord]) Option {
	return func(ly *Layer) {
		ly.instances = r
	}
}

// WithDeviceRegistry makes the layer store device records in r.
func WithDeviceRegistry(r *Registry[DeviceRecord]) Option {
	return func(ly *Layer) {
		ly.devices = r
	}
}

// Layer is an interposing layer. Its methods implement the intercepted
// commands with Go signatures; Procs exposes them as C entry points.
type Layer struct {
	log       *slog.Logger
	hooks     Hooks
	instances *Registry[InstanceRecord]
	devices   *Registry[DeviceRecord]

	procsOnce sync.Once
	procs     *procTable
}

// New creates a layer with fresh registries.
//
// The first call to Procs, or to any method that resolves an intercepted
// name, creates eight C callbacks for the layer. Callbacks are never freed
// and purego caps how many a process may create, so a process should build
// a small, fixed number of layers; the exported library uses Default.
func New(opts ...Option) *Layer {
	l := &Layer{
		log:       vulkan.Logger(),
		instances: NewRegistry[InstanceRecord](),
		devices:   NewRegistry[DeviceRecord](),
	}
	l.hooks = l.logHooks()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	defaultOnce  sync.Once
	defaultLayer *Layer
)

// Default returns the process-wide layer used by the exported entry points.
// It is created on first use and lives until the process exits.
func Default() *Layer {
	defaultOnce.Do(func() {
		defaultLayer = New()
	})
	return defaultLayer
}

// Instances returns the instance registry.
func (l *Layer) Instances() *Registry[InstanceRecord] { return l.instances }

// Devices returns the device registry.
func (l *Layer) Devices() *Registry[DeviceRecord] { return l.devices }

func (l *Layer) logHooks() Hooks {
	return Hooks{
		BeginCommandBuffer: func(device *vulkan.Device, buffer vk.CommandBuffer, _ *vk.CommandBufferBeginInfo) {
			l.log.Debug("layer: intercepted vkBeginCommandBuffer",
				slog.Any("device", device.DispatchKey()),
				slog.Uint64("buffer", uint64(buffer)))
		},
		EndCommandBuffer: func(device *vulkan.Device, buffer vk.CommandBuffer) {
			l.log.Debug("layer: intercepted vkEndCommandBuffer",
				slog.Any("device", device.DispatchKey()),
				slog.Uint64("buffer", uint64(buffer)))
		},
	}
}
