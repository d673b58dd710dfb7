package commands

import "github.com/gogpu/vulkan/vk"

// EntryCommands are the global commands, resolved with a null instance.
type EntryCommands struct {
	CreateInstance func(
		info *vk.InstanceCreateInfo,
		allocator *vk.AllocationCallbacks,
		instance *vk.Instance,
	) vk.Result `vk:"vkCreateInstance,required"`

	EnumerateInstanceExtensionProperties func(
		layerName *byte,
		count *uint32,
		properties *vk.ExtensionProperties,
	) vk.Result `vk:"vkEnumerateInstanceExtensionProperties"`

	EnumerateInstanceLayerProperties func(
		count *uint32,
		properties *vk.LayerProperties,
	) vk.Result `vk:"vkEnumerateInstanceLayerProperties"`

	// Vulkan 1.1. Absent on 1.0 loaders.
	EnumerateInstanceVersion func(version *uint32) vk.Result `vk:"vkEnumerateInstanceVersion"`
}

// InstanceCommands are resolved through vkGetInstanceProcAddr with a live
// instance.
type InstanceCommands struct {
	DestroyInstance func(
		instance vk.Instance,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroyInstance,required"`

	EnumeratePhysicalDevices func(
		instance vk.Instance,
		count *uint32,
		devices *vk.PhysicalDevice,
	) vk.Result `vk:"vkEnumeratePhysicalDevices"`

	GetPhysicalDeviceFeatures2 func(
		physicalDevice vk.PhysicalDevice,
		features *vk.PhysicalDeviceFeatures2,
	) `vk:"vkGetPhysicalDeviceFeatures2"`

	GetPhysicalDeviceQueueFamilyProperties func(
		physicalDevice vk.PhysicalDevice,
		count *uint32,
		properties *vk.QueueFamilyProperties,
	) `vk:"vkGetPhysicalDeviceQueueFamilyProperties"`

	EnumerateDeviceExtensionProperties func(
		physicalDevice vk.PhysicalDevice,
		layerName *byte,
		count *uint32,
		properties *vk.ExtensionProperties,
	) vk.Result `vk:"vkEnumerateDeviceExtensionProperties"`

	CreateDevice func(
		physicalDevice vk.PhysicalDevice,
		info *vk.DeviceCreateInfo,
		allocator *vk.AllocationCallbacks,
		device *vk.Device,
	) vk.Result `vk:"vkCreateDevice"`

	GetDeviceProcAddr func(device vk.Device, name *byte) uintptr `vk:"vkGetDeviceProcAddr"`

	// VK_KHR_surface
	DestroySurfaceKHR func(
		instance vk.Instance,
		surface vk.SurfaceKHR,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroySurfaceKHR"`

	// VK_EXT_debug_utils
	CreateDebugUtilsMessengerEXT func(
		instance vk.Instance,
		info *vk.DebugUtilsMessengerCreateInfoEXT,
		allocator *vk.AllocationCallbacks,
		messenger *vk.DebugUtilsMessengerEXT,
	) vk.Result `vk:"vkCreateDebugUtilsMessengerEXT"`

	DestroyDebugUtilsMessengerEXT func(
		instance vk.Instance,
		messenger vk.DebugUtilsMessengerEXT,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroyDebugUtilsMessengerEXT"`
}

// DeviceCommands are resolved through vkGetDeviceProcAddr with a live
// device.
type DeviceCommands struct {
	DestroyDevice func(
		device vk.Device,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroyDevice,required"`

	GetDeviceQueue func(
		device vk.Device,
		queueFamilyIndex uint32,
		queueIndex uint32,
		queue *vk.Queue,
	) `vk:"vkGetDeviceQueue"`

	DeviceWaitIdle func(device vk.Device) vk.Result `vk:"vkDeviceWaitIdle"`

	QueueWaitIdle func(queue vk.Queue) vk.Result `vk:"vkQueueWaitIdle"`

	CreateCommandPool func(
		device vk.Device,
		info *vk.CommandPoolCreateInfo,
		allocator *vk.AllocationCallbacks,
		pool *vk.CommandPool,
	) vk.Result `vk:"vkCreateCommandPool"`

	DestroyCommandPool func(
		device vk.Device,
		pool vk.CommandPool,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroyCommandPool"`

	AllocateCommandBuffers func(
		device vk.Device,
		info *vk.CommandBufferAllocateInfo,
		buffers *vk.CommandBuffer,
	) vk.Result `vk:"vkAllocateCommandBuffers"`

	FreeCommandBuffers func(
		device vk.Device,
		pool vk.CommandPool,
		count uint32,
		buffers *vk.CommandBuffer,
	) `vk:"vkFreeCommandBuffers"`

	BeginCommandBuffer func(
		buffer vk.CommandBuffer,
		info *vk.CommandBufferBeginInfo,
	) vk.Result `vk:"vkBeginCommandBuffer"`

	EndCommandBuffer func(buffer vk.CommandBuffer) vk.Result `vk:"vkEndCommandBuffer"`

	CreateShaderModule func(
		device vk.Device,
		info *vk.ShaderModuleCreateInfo,
		allocator *vk.AllocationCallbacks,
		module *vk.ShaderModule,
	) vk.Result `vk:"vkCreateShaderModule"`

	DestroyShaderModule func(
		device vk.Device,
		module vk.ShaderModule,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroyShaderModule"`

	// VK_KHR_swapchain
	DestroySwapchainKHR func(
		device vk.Device,
		swapchain vk.SwapchainKHR,
		allocator *vk.AllocationCallbacks,
	) `vk:"vkDestroySwapchainKHR"`
}
