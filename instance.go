package vulkan

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/names"
	"github.com/gogpu/vulkan/vk"
)

// Instance is a created VkInstance with its command table and the names of
// the layers and extensions it was created with.
type Instance struct {
	handle     vk.Instance
	gipa       commands.GetInstanceProcAddrFunc
	cmds       *commands.InstanceCommands
	version    Version
	extensions names.Set
	layers     names.Set
}

// InstanceFromCreated wraps an instance that was created by other means,
// typically by the next element of a layer chain. gipa resolves the
// instance's commands; info is the create info it was created with.
func InstanceFromCreated(gipa commands.GetInstanceProcAddrFunc, info *vk.InstanceCreateInfo, handle vk.Instance) (*Instance, error) {
	cmds, err := commands.LoadInstance(gipa, handle)
	if err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}

	version := Version10
	if info.ApplicationInfo != nil && info.ApplicationInfo.APIVersion != 0 {
		version = VersionFromAPI(info.ApplicationInfo.APIVersion)
	}

	i := &Instance{
		handle:     handle,
		gipa:       gipa,
		cmds:       cmds,
		version:    version,
		extensions: names.FromRaw(info.EnabledExtensionCount, info.EnabledExtensionNames),
		layers:     names.FromRaw(info.EnabledLayerCount, info.EnabledLayerNames),
	}

	loaded, total := commands.Count(cmds)
	Logger().Info("vulkan: instance created",
		slog.Any("key", i.DispatchKey()),
		slog.String("version", version.String()),
		slog.Int("extensions", i.extensions.Len()),
		slog.Int("commands", loaded),
		slog.Int("known", total))
	return i, nil
}

// Handle returns the VkInstance.
func (i *Instance) Handle() vk.Instance { return i.handle }

// Commands returns the instance command table.
func (i *Instance) Commands() *commands.InstanceCommands { return i.cmds }

// GetInstanceProcAddr returns the vkGetInstanceProcAddr the table was
// loaded through.
func (i *Instance) GetInstanceProcAddr() commands.GetInstanceProcAddrFunc { return i.gipa }

// Version returns the API version requested at creation, or 1.0 when the
// application did not ask for one.
func (i *Instance) Version() Version { return i.version }

// Extensions returns the enabled instance extensions.
func (i *Instance) Extensions() names.Set { return i.extensions }

// Layers returns the enabled instance layers.
func (i *Instance) Layers() names.Set { return i.layers }

// DispatchKey returns the loader dispatch key of the instance.
func (i *Instance) DispatchKey() vk.DispatchKey { return vk.DispatchKeyOf(i.handle) }

// Destroy calls vkDestroyInstance. Every child object must be destroyed
// first.
func (i *Instance) Destroy(allocator *vk.AllocationCallbacks) {
	key := i.DispatchKey()
	i.cmds.DestroyInstance(i.handle, allocator)
	Logger().Info("vulkan: instance destroyed", slog.Any("key", key))
}

// EnumeratePhysicalDevices lists the physical devices of the instance.
func (i *Instance) EnumeratePhysicalDevices() ([]vk.PhysicalDevice, error) {
	if i.cmds.EnumeratePhysicalDevices == nil {
		return nil, fmt.Errorf("vulkan: %w: vkEnumeratePhysicalDevices", commands.ErrNotLoaded)
	}
	return enumerate(func(count *uint32, out *vk.PhysicalDevice) vk.Result {
		return i.cmds.EnumeratePhysicalDevices(i.handle, count, out)
	})
}

// QueueFamilyProperties lists the queue families of physicalDevice.
func (i *Instance) QueueFamilyProperties(physicalDevice vk.PhysicalDevice) []vk.QueueFamilyProperties {
	if i.cmds.GetPhysicalDeviceQueueFamilyProperties == nil {
		return nil
	}
	var count uint32
	i.cmds.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &count, nil)
	if count == 0 {
		return nil
	}
	out := make([]vk.QueueFamilyProperties, count)
	i.cmds.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, &count, &out[0])
	return out[:count]
}

// EnumerateDeviceExtensionProperties lists the device extensions of
// physicalDevice, or of layer when it is not empty.
func (i *Instance) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layer string) ([]vk.ExtensionProperties, error) {
	if i.cmds.EnumerateDeviceExtensionProperties == nil {
		return nil, fmt.Errorf("vulkan: %w: vkEnumerateDeviceExtensionProperties", commands.ErrNotLoaded)
	}
	var name *byte
	if layer != "" {
		name = vk.CString(layer)
	}
	return enumerate(func(count *uint32, out *vk.ExtensionProperties) vk.Result {
		return i.cmds.EnumerateDeviceExtensionProperties(physicalDevice, name, count, out)
	})
}

// Features2 fills features, and any output structs chained to it, through
// vkGetPhysicalDeviceFeatures2.
func (i *Instance) Features2(physicalDevice vk.PhysicalDevice, features *vk.PhysicalDeviceFeatures2) error {
	if i.cmds.GetPhysicalDeviceFeatures2 == nil {
		return fmt.Errorf("vulkan: %w: vkGetPhysicalDeviceFeatures2", commands.ErrNotLoaded)
	}
	i.cmds.GetPhysicalDeviceFeatures2(physicalDevice, features)
	return nil
}

// CreateDevice calls vkCreateDevice and wraps the result. The device's
// commands are resolved through vkGetDeviceProcAddr.
func (i *Instance) CreateDevice(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, allocator *vk.AllocationCallbacks) (*Device, error) {
	if i.cmds.CreateDevice == nil {
		return nil, fmt.Errorf("vulkan: %w: vkCreateDevice", commands.ErrNotLoaded)
	}
	if i.cmds.GetDeviceProcAddr == nil {
		return nil, fmt.Errorf("vulkan: %w: vkGetDeviceProcAddr", commands.ErrNotLoaded)
	}

	var handle vk.Device
	if r := i.cmds.CreateDevice(physicalDevice, info, allocator, &handle); r.IsError() {
		return nil, r
	}
	device, err := DeviceFromCreated(i.cmds.GetDeviceProcAddr, physicalDevice, info, handle)
	if err != nil {
		Logger().Warn("vulkan: device created without a usable command table",
			slog.Any("err", err))
		return nil, err
	}
	return device, nil
}
