// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"log/slog"
	"unsafe"

	"github.com/gogpu/vulkan"
	"github.com/gogpu/vulkan/chain"
	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/vk"
)

type createDeviceFunc func(
	physicalDevice vk.PhysicalDevice,
	info *vk.DeviceCreateInfo,
	allocator *vk.AllocationCallbacks,
	device *vk.Device,
) vk.Result

// Procs are the C entry points of a layer.
type Procs struct {
	GetInstanceProcAddr uintptr
	GetDeviceProcAddr   uintptr
}

// procTable holds the C entry points of the intercepted commands.
type procTable struct {
	Procs
	instance map[string]uintptr
	device   map[string]uintptr
}

func (l *Layer) table() *procTable {
	l.procsOnce.Do(func() {
		l.procs = newProcTable(l)
	})
	return l.procs
}

// Procs returns the layer's C-callable vkGetInstanceProcAddr and
// vkGetDeviceProcAddr. They are created on first use, once per layer, and
// stay valid for the life of the process.
func (l *Layer) Procs() Procs { return l.table().Procs }

// GetInstanceProcAddr resolves name for instance. Intercepted commands
// resolve to the layer's own entry points; everything else is forwarded to
// the next element of the chain recorded when instance was created.
//
// Non-intercepted names with a null instance resolve to 0, as the loader
// interface requires for commands that are not global.
func (l *Layer) GetInstanceProcAddr(instance vk.Instance, name string) uintptr {
	if addr, ok := l.table().instance[name]; ok {
		return addr
	}
	if instance == vk.NullHandle {
		return 0
	}
	rec := l.instances.MustLookup("vkGetInstanceProcAddr", vk.DispatchKeyOf(instance))
	return rec.NextGetInstanceProcAddr.Resolve(instance, name)
}

// GetDeviceProcAddr resolves name for device, forwarding non-intercepted
// names to the next element recorded when device was created.
func (l *Layer) GetDeviceProcAddr(device vk.Device, name string) uintptr {
	if addr, ok := l.table().device[name]; ok {
		return addr
	}
	if device == vk.NullHandle {
		return 0
	}
	rec := l.devices.MustLookup("vkGetDeviceProcAddr", vk.DispatchKeyOf(device))
	return rec.NextGetDeviceProcAddr.Resolve(device, name)
}

// instanceLink returns the loader's link node in an instance create chain.
func instanceLink(head unsafe.Pointer) *vk.LayerInstanceCreateInfo {
	for p := range chain.Input(head) {
		if p.Tag() != vk.StructureTypeLoaderInstanceCreateInfo {
			continue
		}
		if info := chain.As[vk.LayerInstanceCreateInfo](p); info.Function == vk.LayerLinkInfo {
			return info
		}
	}
	return nil
}

// deviceLink returns the loader's link node in a device create chain.
func deviceLink(head unsafe.Pointer) *vk.LayerDeviceCreateInfo {
	for p := range chain.Input(head) {
		if p.Tag() != vk.StructureTypeLoaderDeviceCreateInfo {
			continue
		}
		if info := chain.As[vk.LayerDeviceCreateInfo](p); info.Function == vk.LayerLinkInfo {
			return info
		}
	}
	return nil
}

// CreateInstance creates the instance through the next element of the
// chain and registers it. A failure of the next element is returned
// unchanged and nothing is registered.
func (l *Layer) CreateInstance(info *vk.InstanceCreateInfo, allocator *vk.AllocationCallbacks, out *vk.Instance) vk.Result {
	const op = "vkCreateInstance"

	link := instanceLink(info.Next)
	if link == nil || link.Payload.LayerInfo == nil {
		panic(&ProtocolError{Op: op, Msg: "missing layer link info"})
	}
	next := link.Payload.LayerInfo

	entry, err := vulkan.EntryFromProcAddr(next.NextGetInstanceProcAddr)
	if err != nil {
		l.log.Error("layer: next element unusable", slog.String("op", op), slog.Any("err", err))
		return vk.ErrorInitializationFailed
	}

	// The next layer finds its own link after ours.
	link.Payload.LayerInfo = next.Next

	if r := entry.Commands().CreateInstance(info, allocator, out); r.IsError() {
		return r
	}

	instance, err := vulkan.InstanceFromCreated(entry.GetInstanceProcAddr(), info, *out)
	if err != nil {
		l.log.Error("layer: created instance unusable", slog.Any("err", err))
		return vk.ErrorInitializationFailed
	}

	key := instance.DispatchKey()
	rec := InstanceRecord{
		Instance:                      instance,
		NextGetInstanceProcAddr:       entry.GetInstanceProcAddr(),
		NextGetPhysicalDeviceProcAddr: next.NextGetPhysicalDeviceProcAddr,
	}
	if err := l.instances.Register(key, rec); err != nil {
		panic(&ProtocolError{Op: op, Key: key, Msg: err.Error()})
	}
	l.log.Info("layer: instance registered", slog.Any("key", key))
	return vk.Success
}

// DestroyInstance deregisters instance and destroys it through the next
// element of the chain.
func (l *Layer) DestroyInstance(instance vk.Instance, allocator *vk.AllocationCallbacks) {
	if instance == vk.NullHandle {
		return
	}
	key := vk.DispatchKeyOf(instance)
	rec := l.instances.MustRemove("vkDestroyInstance", key)
	rec.Instance.Commands().DestroyInstance(instance, allocator)
	l.log.Info("layer: instance deregistered", slog.Any("key", key))
}

// CreateDevice creates the device through the next element of the chain
// and registers it. No device dispatch chain exists yet, so the next
// vkCreateDevice is resolved through the next vkGetInstanceProcAddr with a
// null instance.
func (l *Layer) CreateDevice(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, allocator *vk.AllocationCallbacks, out *vk.Device) vk.Result {
	const op = "vkCreateDevice"

	link := deviceLink(info.Next)
	if link == nil || link.Payload.LayerInfo == nil {
		panic(&ProtocolError{Op: op, Msg: "missing layer link info"})
	}
	next := link.Payload.LayerInfo

	gipa, ok := commands.GetInstanceProcAddr(next.NextGetInstanceProcAddr)
	if !ok {
		return vk.ErrorInitializationFailed
	}
	gdpa, ok := commands.GetDeviceProcAddr(next.NextGetDeviceProcAddr)
	if !ok {
		return vk.ErrorInitializationFailed
	}
	create, ok := commands.Bind[createDeviceFunc](gipa.Resolve(vk.NullHandle, op))
	if !ok {
		l.log.Error("layer: next element has no vkCreateDevice")
		return vk.ErrorInitializationFailed
	}

	link.Payload.LayerInfo = next.Next

	if r := create(physicalDevice, info, allocator, out); r.IsError() {
		return r
	}

	device, err := vulkan.DeviceFromCreated(gdpa, physicalDevice, info, *out)
	if err != nil {
		l.log.Error("layer: created device unusable", slog.Any("err", err))
		return vk.ErrorInitializationFailed
	}

	key := device.DispatchKey()
	rec := DeviceRecord{Device: device, NextGetDeviceProcAddr: gdpa}
	if err := l.devices.Register(key, rec); err != nil {
		panic(&ProtocolError{Op: op, Key: key, Msg: err.Error()})
	}
	l.log.Info("layer: device registered", slog.Any("key", key))
	return vk.Success
}

// DestroyDevice deregisters device and destroys it through the next
// element of the chain.
func (l *Layer) DestroyDevice(device vk.Device, allocator *vk.AllocationCallbacks) {
	if device == vk.NullHandle {
		return
	}
	key := vk.DispatchKeyOf(device)
	rec := l.devices.MustRemove("vkDestroyDevice", key)
	rec.Device.Commands().DestroyDevice(device, allocator)
	l.log.Info("layer: device deregistered", slog.Any("key", key))
}

// BeginCommandBuffer runs the BeginCommandBuffer hook and forwards the
// call. The result of the next element is returned unchanged.
func (l *Layer) BeginCommandBuffer(buffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	rec := l.devices.MustLookup("vkBeginCommandBuffer", vk.DispatchKeyOf(buffer))
	if h := l.hooks.BeginCommandBuffer; h != nil {
		h(rec.Device, buffer, info)
	}
	return rec.Device.Commands().BeginCommandBuffer(buffer, info)
}

// EndCommandBuffer runs the EndCommandBuffer hook and forwards the call.
func (l *Layer) EndCommandBuffer(buffer vk.CommandBuffer) vk.Result {
	rec := l.devices.MustLookup("vkEndCommandBuffer", vk.DispatchKeyOf(buffer))
	if h := l.hooks.EndCommandBuffer; h != nil {
		h(rec.Device, buffer)
	}
	return rec.Device.Commands().EndCommandBuffer(buffer)
}

// NegotiateLoaderLayerInterfaceVersion answers the loader's negotiation
// call. Loaders older than interface version 2 are refused.
func (l *Layer) NegotiateLoaderLayerInterfaceVersion(iface *vk.NegotiateLayerInterface) vk.Result {
	if iface == nil || iface.SType != vk.LayerNegotiateInterfaceStruct {
		return vk.ErrorInitializationFailed
	}
	if iface.LoaderLayerInterfaceVersion < vk.CurrentLoaderLayerInterfaceVersion {
		l.log.Warn("layer: loader interface too old",
			slog.Uint64("version", uint64(iface.LoaderLayerInterfaceVersion)))
		return vk.ErrorInitializationFailed
	}

	procs := l.Procs()
	iface.LoaderLayerInterfaceVersion = vk.CurrentLoaderLayerInterfaceVersion
	iface.PfnGetInstanceProcAddr = procs.GetInstanceProcAddr
	iface.PfnGetDeviceProcAddr = procs.GetDeviceProcAddr
	iface.PfnGetPhysicalDeviceProcAddr = 0
	return vk.Success
}
