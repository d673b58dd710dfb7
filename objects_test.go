//go:build (darwin || linux || windows) && (amd64 || arm64)

package vulkan

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/vulkan/bytecode"
	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/internal/fakevk"
	"github.com/gogpu/vulkan/names"
	"github.com/gogpu/vulkan/vk"
)

func newFakeEntry(t *testing.T, drv *fakevk.Driver) *Entry {
	t.Helper()
	e, err := EntryFromProcAddr(drv.GetInstanceProcAddr())
	if err != nil {
		t.Fatalf("EntryFromProcAddr: %v", err)
	}
	return e
}

func createFakeInstance(t *testing.T, e *Entry, extensions ...string) *Instance {
	t.Helper()
	ext := vk.CStrings(extensions)
	app := vk.ApplicationInfo{
		SType:      vk.StructureTypeApplicationInfo,
		APIVersion: vk.APIVersion12,
	}
	info := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		ApplicationInfo:       &app,
		EnabledExtensionCount: uint32(len(ext)),
	}
	if len(ext) > 0 {
		info.EnabledExtensionNames = &ext[0]
	}
	instance, err := e.CreateInstance(&info, nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	return instance
}

func TestEntryVersion(t *testing.T) {
	drv := fakevk.New()
	e := newFakeEntry(t, drv)

	v, err := e.Version()
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if got := v.String(); got != "1.3.250" {
		t.Errorf("Version() = %s, want 1.3.250", got)
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close on a borrowed loader = %v, want nil", err)
	}
}

func TestEntryVersionWithout11(t *testing.T) {
	drv := fakevk.New()
	drv.Omit["vkEnumerateInstanceVersion"] = true
	e := newFakeEntry(t, drv)

	if e.Commands().EnumerateInstanceVersion != nil {
		t.Fatal("omitted vkEnumerateInstanceVersion was bound")
	}
	v, err := e.Version()
	if err != nil || v != Version10 {
		t.Errorf("Version() = %v, %v; want %v, nil", v, err, Version10)
	}
}

func TestEntryMissingCreateInstance(t *testing.T) {
	drv := fakevk.New()
	drv.Omit["vkCreateInstance"] = true

	_, err := EntryFromProcAddr(drv.GetInstanceProcAddr())
	var missing *commands.MissingCommandError
	if !errors.As(err, &missing) || missing.Name != "vkCreateInstance" {
		t.Fatalf("EntryFromProcAddr error = %v, want missing vkCreateInstance", err)
	}
}

func TestEntryEnumerate(t *testing.T) {
	drv := fakevk.New()
	drv.InstanceExtensions = []string{"VK_KHR_surface", "VK_EXT_debug_utils"}
	drv.InstanceLayers = []string{"VK_LAYER_KHRONOS_validation"}
	e := newFakeEntry(t, drv)

	ext, err := e.EnumerateInstanceExtensionProperties("")
	if err != nil {
		t.Fatalf("EnumerateInstanceExtensionProperties: %v", err)
	}
	got := names.FromProperties(ext).Sorted()
	if want := []string{"VK_EXT_debug_utils", "VK_KHR_surface"}; !slices.Equal(got, want) {
		t.Errorf("extensions = %v, want %v", got, want)
	}

	layers, err := e.EnumerateInstanceLayerProperties()
	if err != nil {
		t.Fatalf("EnumerateInstanceLayerProperties: %v", err)
	}
	if len(layers) != 1 || vk.FixedString(layers[0].LayerName[:]) != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("layers = %v", layers)
	}

	// Native error codes come back unchanged.
	_, err = e.EnumerateInstanceExtensionProperties("VK_LAYER_missing")
	var r vk.Result
	if !errors.As(err, &r) || r != vk.ErrorLayerNotPresent {
		t.Errorf("error = %v, want %v", err, vk.ErrorLayerNotPresent)
	}
}

func TestEntryEnumerateEmpty(t *testing.T) {
	drv := fakevk.New()
	e := newFakeEntry(t, drv)

	ext, err := e.EnumerateInstanceExtensionProperties("")
	if err != nil || len(ext) != 0 {
		t.Errorf("EnumerateInstanceExtensionProperties = %v, %v; want empty", ext, err)
	}
}

func TestCreateInstanceFailure(t *testing.T) {
	drv := fakevk.New()
	drv.CreateInstanceResult = vk.ErrorIncompatibleDriver
	e := newFakeEntry(t, drv)

	info := vk.InstanceCreateInfo{SType: vk.StructureTypeInstanceCreateInfo}
	instance, err := e.CreateInstance(&info, nil)
	if instance != nil {
		t.Error("CreateInstance returned an instance on failure")
	}
	if !errors.Is(err, vk.ErrorIncompatibleDriver) {
		t.Errorf("error = %v, want %v", err, vk.ErrorIncompatibleDriver)
	}
}

func TestInstanceLifecycle(t *testing.T) {
	drv := fakevk.New()
	e := newFakeEntry(t, drv)

	instance := createFakeInstance(t, e, "VK_KHR_surface")
	if drv.Live() != 1 {
		t.Fatalf("Live() = %d after create, want 1", drv.Live())
	}
	if !instance.Extensions().Contains("VK_KHR_surface") || instance.Extensions().Len() != 1 {
		t.Errorf("Extensions() = %v", instance.Extensions().Sorted())
	}
	if instance.Layers().Len() != 0 {
		t.Errorf("Layers() = %v, want empty", instance.Layers().Sorted())
	}
	if got := instance.Version().String(); got != "1.2.0" {
		t.Errorf("Version() = %s, want 1.2.0", got)
	}
	if instance.DispatchKey() == 0 {
		t.Error("DispatchKey() = 0 for a live instance")
	}
	if instance.Commands().DestroySurfaceKHR != nil {
		t.Error("unimplemented vkDestroySurfaceKHR was bound")
	}

	devices, err := instance.EnumeratePhysicalDevices()
	if err != nil || len(devices) != 1 {
		t.Fatalf("EnumeratePhysicalDevices = %v, %v", devices, err)
	}
	if vk.DispatchKeyOf(devices[0]) != instance.DispatchKey() {
		t.Error("physical device does not share the instance dispatch key")
	}
	if families := instance.QueueFamilyProperties(devices[0]); len(families) != 1 {
		t.Errorf("QueueFamilyProperties = %v", families)
	}

	instance.Destroy(nil)
	if drv.Live() != 0 {
		t.Errorf("Live() = %d after destroy, want 0", drv.Live())
	}
	if drv.Calls("vkDestroyInstance") != 1 {
		t.Errorf("vkDestroyInstance called %d times, want 1", drv.Calls("vkDestroyInstance"))
	}
}

func TestDeviceLifecycle(t *testing.T) {
	drv := fakevk.New()
	drv.DeviceExtensions = []string{"VK_KHR_swapchain"}
	e := newFakeEntry(t, drv)
	instance := createFakeInstance(t, e)
	defer instance.Destroy(nil)

	devices, err := instance.EnumeratePhysicalDevices()
	if err != nil {
		t.Fatal(err)
	}
	ext, err := instance.EnumerateDeviceExtensionProperties(devices[0], "")
	if err != nil || !names.FromProperties(ext).Contains("VK_KHR_swapchain") {
		t.Errorf("EnumerateDeviceExtensionProperties = %v, %v", ext, err)
	}

	swapchain := vk.CStrings([]string{"VK_KHR_swapchain"})
	priority := float32(1)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:           vk.StructureTypeDeviceQueueCreateInfo,
		QueueCount:      1,
		QueuePriorities: &priority,
	}
	info := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:  1,
		QueueCreateInfos:      &queueInfo,
		EnabledExtensionCount: 1,
		EnabledExtensionNames: &swapchain[0],
	}
	device, err := instance.CreateDevice(devices[0], &info, nil)
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	if !device.Extensions().Contains("VK_KHR_swapchain") {
		t.Errorf("device Extensions() = %v", device.Extensions().Sorted())
	}
	if device.DispatchKey() == instance.DispatchKey() {
		t.Error("device shares the instance dispatch key")
	}
	if device.Commands().DestroySwapchainKHR != nil {
		t.Error("unimplemented vkDestroySwapchainKHR was bound")
	}

	queue := device.Queue(0, 0)
	if vk.DispatchKeyOf(queue) != device.DispatchKey() {
		t.Error("queue does not share the device dispatch key")
	}

	pool, err := device.CreateCommandPool(0, 0, nil)
	if err != nil {
		t.Fatalf("CreateCommandPool: %v", err)
	}
	buffers, err := device.AllocateCommandBuffers(pool, 2)
	if err != nil || len(buffers) != 2 {
		t.Fatalf("AllocateCommandBuffers = %v, %v", buffers, err)
	}
	if vk.DispatchKeyOf(buffers[1]) != device.DispatchKey() {
		t.Error("command buffer does not share the device dispatch key")
	}
	if err := device.BeginCommandBuffer(buffers[0], nil); err != nil {
		t.Errorf("BeginCommandBuffer: %v", err)
	}
	if err := device.EndCommandBuffer(buffers[0]); err != nil {
		t.Errorf("EndCommandBuffer: %v", err)
	}
	device.FreeCommandBuffers(pool, buffers)
	device.DestroyCommandPool(pool, nil)

	code, err := bytecode.FromWords([]uint32{bytecode.Magic, 0x00010300, 0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	module, err := device.CreateShaderModule(code, nil)
	if err != nil || module == 0 {
		t.Fatalf("CreateShaderModule = %v, %v", module, err)
	}
	if sizes := drv.ShaderSizes(); len(sizes) != 1 || sizes[0] != 20 {
		t.Errorf("shader code sizes = %v, want [20]", sizes)
	}
	device.DestroyShaderModule(module, nil)

	if err := device.WaitIdle(); err != nil {
		t.Errorf("WaitIdle: %v", err)
	}
	device.Destroy(nil)
	if drv.Calls("vkDestroyDevice") != 1 {
		t.Errorf("vkDestroyDevice called %d times, want 1", drv.Calls("vkDestroyDevice"))
	}
}

func TestDeviceCommandErrorsPassThrough(t *testing.T) {
	drv := fakevk.New()
	drv.BeginResult = vk.ErrorOutOfDeviceMemory
	e := newFakeEntry(t, drv)
	instance := createFakeInstance(t, e)
	defer instance.Destroy(nil)

	devices, _ := instance.EnumeratePhysicalDevices()
	info := vk.DeviceCreateInfo{SType: vk.StructureTypeDeviceCreateInfo}
	device, err := instance.CreateDevice(devices[0], &info, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer device.Destroy(nil)

	buffers, err := device.AllocateCommandBuffers(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := device.BeginCommandBuffer(buffers[0], nil); !errors.Is(err, vk.ErrorOutOfDeviceMemory) {
		t.Errorf("BeginCommandBuffer error = %v, want %v", err, vk.ErrorOutOfDeviceMemory)
	}
}

func TestDeviceOptionalCommandMissing(t *testing.T) {
	drv := fakevk.New()
	drv.Omit["vkDeviceWaitIdle"] = true
	e := newFakeEntry(t, drv)
	instance := createFakeInstance(t, e)
	defer instance.Destroy(nil)

	devices, _ := instance.EnumeratePhysicalDevices()
	info := vk.DeviceCreateInfo{SType: vk.StructureTypeDeviceCreateInfo}
	device, err := instance.CreateDevice(devices[0], &info, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer device.Destroy(nil)

	if err := device.WaitIdle(); !errors.Is(err, commands.ErrNotLoaded) {
		t.Errorf("WaitIdle error = %v, want commands.ErrNotLoaded", err)
	}
}

func TestCreateDeviceMissingDestroy(t *testing.T) {
	drv := fakevk.New()
	drv.Omit["vkDestroyDevice"] = true
	e := newFakeEntry(t, drv)
	instance := createFakeInstance(t, e)
	defer instance.Destroy(nil)

	devices, _ := instance.EnumeratePhysicalDevices()
	info := vk.DeviceCreateInfo{SType: vk.StructureTypeDeviceCreateInfo}
	_, err := instance.CreateDevice(devices[0], &info, nil)
	if !errors.Is(err, commands.ErrMissingCommand) {
		t.Errorf("CreateDevice error = %v, want commands.ErrMissingCommand", err)
	}
}
