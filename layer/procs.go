//go:build (darwin || linux || windows) && (amd64 || arm64)

package layer

import (
	"github.com/ebitengine/purego"

	"github.com/gogpu/vulkan/vk"
)

// newProcTable creates the C entry points of l. Callbacks are never freed,
// so this runs once per Layer.
func newProcTable(l *Layer) *procTable {
	gipa := purego.NewCallback(func(instance vk.Instance, name *byte) uintptr {
		return l.GetInstanceProcAddr(instance, vk.GoString(name))
	})
	gdpa := purego.NewCallback(func(device vk.Device, name *byte) uintptr {
		return l.GetDeviceProcAddr(device, vk.GoString(name))
	})
	createInstance := purego.NewCallback(func(info *vk.InstanceCreateInfo, allocator *vk.AllocationCallbacks, out *vk.Instance) uintptr {
		return uintptr(l.CreateInstance(info, allocator, out))
	})
	destroyInstance := purego.NewCallback(func(instance vk.Instance, allocator *vk.AllocationCallbacks) uintptr {
		l.DestroyInstance(instance, allocator)
		return 0
	})
	createDevice := purego.NewCallback(func(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, allocator *vk.AllocationCallbacks, out *vk.Device) uintptr {
		return uintptr(l.CreateDevice(physicalDevice, info, allocator, out))
	})
	destroyDevice := purego.NewCallback(func(device vk.Device, allocator *vk.AllocationCallbacks) uintptr {
		l.DestroyDevice(device, allocator)
		return 0
	})
	begin := purego.NewCallback(func(buffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) uintptr {
		return uintptr(l.BeginCommandBuffer(buffer, info))
	})
	end := purego.NewCallback(func(buffer vk.CommandBuffer) uintptr {
		return uintptr(l.EndCommandBuffer(buffer))
	})

	return &procTable{
		Procs: Procs{GetInstanceProcAddr: gipa, GetDeviceProcAddr: gdpa},
		instance: map[string]uintptr{
			"vkGetInstanceProcAddr": gipa,
			"vkCreateInstance":      createInstance,
			"vkDestroyInstance":     destroyInstance,
			"vkCreateDevice":        createDevice,
			"vkDestroyDevice":       destroyDevice,
		},
		device: map[string]uintptr{
			"vkGetDeviceProcAddr":  gdpa,
			"vkCreateDevice":       createDevice,
			"vkDestroyDevice":      destroyDevice,
			"vkBeginCommandBuffer": begin,
			"vkEndCommandBuffer":   end,
		},
	}
}
