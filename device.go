package vulkan

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vulkan/bytecode"
	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/names"
	"github.com/gogpu/vulkan/vk"
)

// Device is a created VkDevice with its command table.
type Device struct {
	handle     vk.Device
	physical   vk.PhysicalDevice
	gdpa       commands.GetDeviceProcAddrFunc
	cmds       *commands.DeviceCommands
	extensions names.Set
	layers     names.Set
}

// DeviceFromCreated wraps a device that was created by other means,
// typically by the next element of a layer chain. gdpa resolves the device's
// commands; info is the create info it was created with.
func DeviceFromCreated(gdpa commands.GetDeviceProcAddrFunc, physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, handle vk.Device) (*Device, error) {
	cmds, err := commands.LoadDevice(gdpa, handle)
	if err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}
	d := &Device{
		handle:     handle,
		physical:   physicalDevice,
		gdpa:       gdpa,
		cmds:       cmds,
		extensions: names.FromRaw(info.EnabledExtensionCount, info.EnabledExtensionNames),
		layers:     names.FromRaw(info.EnabledLayerCount, info.EnabledLayerNames),
	}

	loaded, total := commands.Count(cmds)
	Logger().Info("vulkan: device created",
		slog.Any("key", d.DispatchKey()),
		slog.Int("extensions", d.extensions.Len()),
		slog.Int("commands", loaded),
		slog.Int("known", total))
	return d, nil
}

// Handle returns the VkDevice.
func (d *Device) Handle() vk.Device { return d.handle }

// PhysicalDevice returns the physical device the device was created from.
func (d *Device) PhysicalDevice() vk.PhysicalDevice { return d.physical }

// Commands returns the device command table.
func (d *Device) Commands() *commands.DeviceCommands { return d.cmds }

// GetDeviceProcAddr returns the vkGetDeviceProcAddr the table was loaded
// through.
func (d *Device) GetDeviceProcAddr() commands.GetDeviceProcAddrFunc { return d.gdpa }

// Extensions returns the enabled device extensions.
func (d *Device) Extensions() names.Set { return d.extensions }

// Layers returns the device layers named at creation. Device layers are
// deprecated and usually empty.
func (d *Device) Layers() names.Set { return d.layers }

// DispatchKey returns the loader dispatch key of the device. Queues and
// command buffers of the device share it.
func (d *Device) DispatchKey() vk.DispatchKey { return vk.DispatchKeyOf(d.handle) }

// Destroy calls vkDestroyDevice.
func (d *Device) Destroy(allocator *vk.AllocationCallbacks) {
	key := d.DispatchKey()
	d.cmds.DestroyDevice(d.handle, allocator)
	Logger().Info("vulkan: device destroyed", slog.Any("key", key))
}

// WaitIdle calls vkDeviceWaitIdle.
func (d *Device) WaitIdle() error {
	if d.cmds.DeviceWaitIdle == nil {
		return fmt.Errorf("vulkan: %w: vkDeviceWaitIdle", commands.ErrNotLoaded)
	}
	return d.cmds.DeviceWaitIdle(d.handle).Err()
}

// Queue returns queue index of queue family family.
func (d *Device) Queue(family, index uint32) vk.Queue {
	var q vk.Queue
	if d.cmds.GetDeviceQueue != nil {
		d.cmds.GetDeviceQueue(d.handle, family, index, &q)
	}
	return q
}

// CreateCommandPool creates a command pool for queue family family.
func (d *Device) CreateCommandPool(family uint32, flags uint32, allocator *vk.AllocationCallbacks) (vk.CommandPool, error) {
	if d.cmds.CreateCommandPool == nil {
		return 0, fmt.Errorf("vulkan: %w: vkCreateCommandPool", commands.ErrNotLoaded)
	}
	info := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            flags,
		QueueFamilyIndex: family,
	}
	var pool vk.CommandPool
	if r := d.cmds.CreateCommandPool(d.handle, &info, allocator, &pool); r.IsError() {
		return 0, r
	}
	return pool, nil
}

// DestroyCommandPool destroys pool and frees its command buffers.
func (d *Device) DestroyCommandPool(pool vk.CommandPool, allocator *vk.AllocationCallbacks) {
	if d.cmds.DestroyCommandPool != nil {
		d.cmds.DestroyCommandPool(d.handle, pool, allocator)
	}
}

// AllocateCommandBuffers allocates count primary command buffers from pool.
func (d *Device) AllocateCommandBuffers(pool vk.CommandPool, count uint32) ([]vk.CommandBuffer, error) {
	if d.cmds.AllocateCommandBuffers == nil {
		return nil, fmt.Errorf("vulkan: %w: vkAllocateCommandBuffers", commands.ErrNotLoaded)
	}
	if count == 0 {
		return nil, nil
	}
	info := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	}
	buffers := make([]vk.CommandBuffer, count)
	if r := d.cmds.AllocateCommandBuffers(d.handle, &info, &buffers[0]); r.IsError() {
		return nil, r
	}
	return buffers, nil
}

// FreeCommandBuffers returns buffers to pool.
func (d *Device) FreeCommandBuffers(pool vk.CommandPool, buffers []vk.CommandBuffer) {
	if d.cmds.FreeCommandBuffers == nil || len(buffers) == 0 {
		return
	}
	d.cmds.FreeCommandBuffers(d.handle, pool, uint32(len(buffers)), &buffers[0])
}

// BeginCommandBuffer starts recording buffer. A nil info begins with no
// flags.
func (d *Device) BeginCommandBuffer(buffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) error {
	if d.cmds.BeginCommandBuffer == nil {
		return fmt.Errorf("vulkan: %w: vkBeginCommandBuffer", commands.ErrNotLoaded)
	}
	if info == nil {
		info = &vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	}
	return d.cmds.BeginCommandBuffer(buffer, info).Err()
}

// EndCommandBuffer finishes recording buffer.
func (d *Device) EndCommandBuffer(buffer vk.CommandBuffer) error {
	if d.cmds.EndCommandBuffer == nil {
		return fmt.Errorf("vulkan: %w: vkEndCommandBuffer", commands.ErrNotLoaded)
	}
	return d.cmds.EndCommandBuffer(buffer).Err()
}

// CreateShaderModule creates a shader module from SPIR-V code.
func (d *Device) CreateShaderModule(code *bytecode.Bytecode, allocator *vk.AllocationCallbacks) (vk.ShaderModule, error) {
	if d.cmds.CreateShaderModule == nil {
		return 0, fmt.Errorf("vulkan: %w: vkCreateShaderModule", commands.ErrNotLoaded)
	}
	info := code.ShaderModuleCreateInfo()
	var module vk.ShaderModule
	if r := d.cmds.CreateShaderModule(d.handle, &info, allocator, &module); r.IsError() {
		return 0, r
	}
	return module, nil
}

// DestroyShaderModule destroys module.
func (d *Device) DestroyShaderModule(module vk.ShaderModule, allocator *vk.AllocationCallbacks) {
	if d.cmds.DestroyShaderModule != nil {
		d.cmds.DestroyShaderModule(d.handle, module, allocator)
	}
}
