//go:build (darwin || linux || windows) && (amd64 || arm64)

// Package fakevk is an in-process stand-in for a Vulkan implementation. It
// exposes C-callable vkGetInstanceProcAddr and vkGetDeviceProcAddr entry
// points backed by Go code, so command tables, wrappers and layers can be
// exercised without a GPU or a Vulkan loader.
//
// Dispatchable handles point at off-heap slots whose first word is a
// dispatch key, as the loader interface requires: a command buffer carries
// the key of its device. Keeping them outside the Go heap lets the handles
// be turned back into pointers under -race.
//
// Callbacks are process-wide and created once. They serve whichever Driver
// was created last, so tests using fakevk must not run in parallel.
package fakevk

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/vulkan/internal/offheap"
	"github.com/gogpu/vulkan/vk"
)

// object describes a live dispatchable handle.
type object struct {
	dispatch uintptr
	parent   uintptr
	root     bool // instance or device
}

// Driver is a fake implementation. Configure the exported fields before the
// first call through it.
type Driver struct {
	// Omit lists commands the proc-addr functions resolve to 0.
	Omit map[string]bool

	CreateInstanceResult vk.Result
	CreateDeviceResult   vk.Result
	BeginResult          vk.Result
	EndResult            vk.Result

	APIVersion         uint32
	InstanceExtensions []string
	InstanceLayers     []string
	DeviceExtensions   []string
	PhysicalDevices    int
	QueueFamilies      []vk.QueueFamilyProperties

	mu      sync.Mutex
	calls   map[string]int
	objects map[uintptr]*object
	nextKey uintptr
	shaders []uintptr
}

var active atomic.Pointer[Driver]

// New returns a driver with one physical device and one graphics queue
// family, and makes it the target of the process-wide callbacks.
func New() *Driver {
	d := &Driver{
		Omit:            map[string]bool{},
		APIVersion:      vk.MakeAPIVersion(0, 1, 3, 250),
		PhysicalDevices: 1,
		QueueFamilies: []vk.QueueFamilyProperties{
			{QueueFlags: 1, QueueCount: 1},
		},
		calls:   map[string]int{},
		objects: map[uintptr]*object{},
		nextKey: 0x7f0000010000,
	}
	registerOnce.Do(register)
	active.Store(d)
	return d
}

func current() *Driver { return active.Load() }

// GetInstanceProcAddr returns the C address of the fake vkGetInstanceProcAddr.
func (d *Driver) GetInstanceProcAddr() uintptr { return procs["vkGetInstanceProcAddr"].addr }

// GetDeviceProcAddr returns the C address of the fake vkGetDeviceProcAddr.
func (d *Driver) GetDeviceProcAddr() uintptr { return procs["vkGetDeviceProcAddr"].addr }

// Calls returns how many times the named command ran.
func (d *Driver) Calls(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[name]
}

// Live returns the number of instances and devices created and not yet
// destroyed.
func (d *Driver) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, o := range d.objects {
		if o.root {
			n++
		}
	}
	return n
}

// ShaderSizes returns the code sizes passed to vkCreateShaderModule.
func (d *Driver) ShaderSizes() []uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]uintptr(nil), d.shaders...)
}

func (d *Driver) count(name string) {
	d.mu.Lock()
	d.calls[name]++
	d.mu.Unlock()
}

// newObject allocates a dispatchable object. A zero key allocates a fresh
// dispatch key for a new instance or device; children share their parent's
// key.
func (d *Driver) newObject(key, parent uintptr) uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()
	root := key == 0
	if root {
		d.nextKey += 0x100
		key = d.nextKey
	}
	h := offheap.MustAlloc(key)
	d.objects[h] = &object{dispatch: key, parent: parent, root: root}
	return h
}

func (d *Driver) freeObject(h uintptr) {
	d.mu.Lock()
	_, ok := d.objects[h]
	delete(d.objects, h)
	d.mu.Unlock()
	if ok {
		offheap.Free(h)
	}
}

func (d *Driver) keyOf(h uintptr) uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()
	if o, ok := d.objects[h]; ok {
		return o.dispatch
	}
	return 0
}

// resolve implements both proc-addr functions.
func (d *Driver) resolve(name string, device bool) uintptr {
	if d == nil || d.Omit[name] {
		return 0
	}
	p, ok := procs[name]
	if !ok || device && !p.device {
		return 0
	}
	return p.addr
}

// fill implements the two-call enumeration idiom.
func fill[T any](src []T, count *uint32, out *T) vk.Result {
	if out == nil {
		*count = uint32(len(src))
		return vk.Success
	}
	n := copy(unsafe.Slice(out, *count), src)
	*count = uint32(n)
	if n < len(src) {
		return vk.Incomplete
	}
	return vk.Success
}

func extensionProperties(list []string) []vk.ExtensionProperties {
	out := make([]vk.ExtensionProperties, len(list))
	for i, name := range list {
		copy(out[i].ExtensionName[:len(out[i].ExtensionName)-1], name)
		out[i].SpecVersion = 1
	}
	return out
}

func result(r vk.Result) uintptr { return uintptr(r) }

type proc struct {
	addr   uintptr
	device bool
}

var (
	registerOnce sync.Once
	procs        map[string]proc
)

func register() {
	instance := map[string]any{
		"vkGetInstanceProcAddr":                    getInstanceProcAddr,
		"vkCreateInstance":                         createInstance,
		"vkDestroyInstance":                        destroyInstance,
		"vkEnumerateInstanceVersion":               enumerateInstanceVersion,
		"vkEnumerateInstanceExtensionProperties":   enumerateInstanceExtensionProperties,
		"vkEnumerateInstanceLayerProperties":       enumerateInstanceLayerProperties,
		"vkEnumeratePhysicalDevices":               enumeratePhysicalDevices,
		"vkGetPhysicalDeviceQueueFamilyProperties": getPhysicalDeviceQueueFamilyProperties,
		"vkEnumerateDeviceExtensionProperties":     enumerateDeviceExtensionProperties,
		"vkCreateDevice":                           createDevice,
	}
	device := map[string]any{
		"vkGetDeviceProcAddr":      getDeviceProcAddr,
		"vkDestroyDevice":          destroyDevice,
		"vkDeviceWaitIdle":         deviceWaitIdle,
		"vkGetDeviceQueue":         getDeviceQueue,
		"vkCreateCommandPool":      createCommandPool,
		"vkDestroyCommandPool":     destroyCommandPool,
		"vkAllocateCommandBuffers": allocateCommandBuffers,
		"vkFreeCommandBuffers":     freeCommandBuffers,
		"vkBeginCommandBuffer":     beginCommandBuffer,
		"vkEndCommandBuffer":       endCommandBuffer,
		"vkCreateShaderModule":     createShaderModule,
		"vkDestroyShaderModule":    destroyShaderModule,
	}
	procs = make(map[string]proc, len(instance)+len(device))
	for name, fn := range instance {
		procs[name] = proc{addr: purego.NewCallback(fn)}
	}
	for name, fn := range device {
		procs[name] = proc{addr: purego.NewCallback(fn), device: true}
	}
}

func getInstanceProcAddr(_ vk.Instance, name *byte) uintptr {
	return current().resolve(vk.GoString(name), false)
}

func getDeviceProcAddr(_ vk.Device, name *byte) uintptr {
	return current().resolve(vk.GoString(name), true)
}

func createInstance(_ *vk.InstanceCreateInfo, _ *vk.AllocationCallbacks, out *vk.Instance) uintptr {
	d := current()
	d.count("vkCreateInstance")
	if d.CreateInstanceResult.IsError() {
		return result(d.CreateInstanceResult)
	}
	*out = vk.Instance(d.newObject(0, 0))
	return result(vk.Success)
}

func destroyInstance(instance vk.Instance, _ *vk.AllocationCallbacks) uintptr {
	d := current()
	d.count("vkDestroyInstance")
	d.freeObject(uintptr(instance))
	return 0
}

func enumerateInstanceVersion(version *uint32) uintptr {
	d := current()
	d.count("vkEnumerateInstanceVersion")
	*version = d.APIVersion
	return result(vk.Success)
}

func enumerateInstanceExtensionProperties(layer *byte, count *uint32, out *vk.ExtensionProperties) uintptr {
	d := current()
	d.count("vkEnumerateInstanceExtensionProperties")
	if layer != nil {
		return result(vk.ErrorLayerNotPresent)
	}
	return result(fill(extensionProperties(d.InstanceExtensions), count, out))
}

func enumerateInstanceLayerProperties(count *uint32, out *vk.LayerProperties) uintptr {
	d := current()
	d.count("vkEnumerateInstanceLayerProperties")
	layers := make([]vk.LayerProperties, len(d.InstanceLayers))
	for i, name := range d.InstanceLayers {
		copy(layers[i].LayerName[:len(layers[i].LayerName)-1], name)
		layers[i].SpecVersion = vk.MakeAPIVersion(0, 1, 3, 0)
	}
	return result(fill(layers, count, out))
}

func enumeratePhysicalDevices(instance vk.Instance, count *uint32, out *vk.PhysicalDevice) uintptr {
	d := current()
	d.count("vkEnumeratePhysicalDevices")
	key := d.keyOf(uintptr(instance))
	devices := make([]vk.PhysicalDevice, d.PhysicalDevices)
	if out != nil {
		for i := range devices {
			devices[i] = vk.PhysicalDevice(d.newObject(key, uintptr(instance)))
		}
	}
	return result(fill(devices, count, out))
}

func getPhysicalDeviceQueueFamilyProperties(_ vk.PhysicalDevice, count *uint32, out *vk.QueueFamilyProperties) uintptr {
	d := current()
	d.count("vkGetPhysicalDeviceQueueFamilyProperties")
	fill(d.QueueFamilies, count, out)
	return 0
}

func enumerateDeviceExtensionProperties(_ vk.PhysicalDevice, layer *byte, count *uint32, out *vk.ExtensionProperties) uintptr {
	d := current()
	d.count("vkEnumerateDeviceExtensionProperties")
	if layer != nil {
		return result(vk.ErrorLayerNotPresent)
	}
	return result(fill(extensionProperties(d.DeviceExtensions), count, out))
}

func createDevice(physicalDevice vk.PhysicalDevice, _ *vk.DeviceCreateInfo, _ *vk.AllocationCallbacks, out *vk.Device) uintptr {
	d := current()
	d.count("vkCreateDevice")
	if d.CreateDeviceResult.IsError() {
		return result(d.CreateDeviceResult)
	}
	*out = vk.Device(d.newObject(0, uintptr(physicalDevice)))
	return result(vk.Success)
}

func destroyDevice(device vk.Device, _ *vk.AllocationCallbacks) uintptr {
	d := current()
	d.count("vkDestroyDevice")
	d.freeObject(uintptr(device))
	return 0
}

func deviceWaitIdle(vk.Device) uintptr {
	current().count("vkDeviceWaitIdle")
	return result(vk.Success)
}

func getDeviceQueue(device vk.Device, _, _ uint32, out *vk.Queue) uintptr {
	d := current()
	d.count("vkGetDeviceQueue")
	*out = vk.Queue(d.newObject(d.keyOf(uintptr(device)), uintptr(device)))
	return 0
}

func createCommandPool(_ vk.Device, _ *vk.CommandPoolCreateInfo, _ *vk.AllocationCallbacks, out *vk.CommandPool) uintptr {
	current().count("vkCreateCommandPool")
	*out = 0xc0de
	return result(vk.Success)
}

func destroyCommandPool(vk.Device, vk.CommandPool, *vk.AllocationCallbacks) uintptr {
	current().count("vkDestroyCommandPool")
	return 0
}

func allocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, out *vk.CommandBuffer) uintptr {
	d := current()
	d.count("vkAllocateCommandBuffers")
	key := d.keyOf(uintptr(device))
	buffers := unsafe.Slice(out, info.CommandBufferCount)
	for i := range buffers {
		buffers[i] = vk.CommandBuffer(d.newObject(key, uintptr(device)))
	}
	return result(vk.Success)
}

func freeCommandBuffers(_ vk.Device, _ vk.CommandPool, count uint32, buffers *vk.CommandBuffer) uintptr {
	d := current()
	d.count("vkFreeCommandBuffers")
	for _, cb := range unsafe.Slice(buffers, count) {
		d.freeObject(uintptr(cb))
	}
	return 0
}

func beginCommandBuffer(vk.CommandBuffer, *vk.CommandBufferBeginInfo) uintptr {
	d := current()
	d.count("vkBeginCommandBuffer")
	return result(d.BeginResult)
}

func endCommandBuffer(vk.CommandBuffer) uintptr {
	d := current()
	d.count("vkEndCommandBuffer")
	return result(d.EndResult)
}

func createShaderModule(_ vk.Device, info *vk.ShaderModuleCreateInfo, _ *vk.AllocationCallbacks, out *vk.ShaderModule) uintptr {
	d := current()
	d.count("vkCreateShaderModule")
	d.mu.Lock()
	d.shaders = append(d.shaders, info.CodeSize)
	d.mu.Unlock()
	*out = 0x54ade
	return result(vk.Success)
}

func destroyShaderModule(vk.Device, vk.ShaderModule, *vk.AllocationCallbacks) uintptr {
	current().count("vkDestroyShaderModule")
	return 0
}
