// Command vkinfo prints what the Vulkan loader reports and, optionally,
// exercises a device end to end: a command buffer is recorded and a WGSL
// compute shader is compiled to SPIR-V and turned into a shader module.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/vulkan"
	"github.com/gogpu/vulkan/bytecode"
	"github.com/gogpu/vulkan/names"
	"github.com/gogpu/vulkan/vk"
)

const computeShader = `
@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] * 2u;
}
`

func main() {
	var (
		library = flag.String("lib", "", "path to the Vulkan loader (default: platform loader)")
		verbose = flag.Bool("v", false, "log debug output to stderr")
		device  = flag.Bool("device", false, "create a device on the first physical device")
		layers  = flag.String("layers", "", "comma separated instance layers to enable")
	)
	flag.Parse()

	if *verbose {
		vulkan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opts []vulkan.EntryOption
	if *library != "" {
		opts = append(opts, vulkan.WithLibrary(*library))
	}
	entry, err := vulkan.Open(opts...)
	if err != nil {
		log.Fatalf("Failed to open Vulkan: %v", err)
	}
	defer entry.Close()

	version, err := entry.Version()
	if err != nil {
		log.Fatalf("Failed to query version: %v", err)
	}
	fmt.Printf("Instance version: %s\n", version)

	available, err := entry.EnumerateInstanceLayerProperties()
	if err != nil {
		log.Fatalf("Failed to enumerate layers: %v", err)
	}
	fmt.Printf("Layers (%d):\n", len(available))
	for _, l := range available {
		fmt.Printf("  %-40s %s\n", vk.FixedString(l.LayerName[:]), vk.FixedString(l.Description[:]))
	}

	extensions, err := entry.EnumerateInstanceExtensionProperties("")
	if err != nil {
		log.Fatalf("Failed to enumerate extensions: %v", err)
	}
	printNames("Instance extensions", names.FromProperties(extensions))

	instance, err := createInstance(entry, version, splitList(*layers))
	if err != nil {
		log.Fatalf("Failed to create instance: %v", err)
	}
	defer instance.Destroy(nil)

	physical, err := instance.EnumeratePhysicalDevices()
	if err != nil {
		log.Fatalf("Failed to enumerate physical devices: %v", err)
	}
	fmt.Printf("Physical devices: %d\n", len(physical))
	for n, pd := range physical {
		fmt.Printf("  [%d] dispatch key %s\n", n, vk.DispatchKeyOf(pd))
		for f, family := range instance.QueueFamilyProperties(pd) {
			fmt.Printf("      queue family %d: %d queues, flags %s\n", f, family.QueueCount, queueFlags(family.QueueFlags))
		}
	}

	if !*device || len(physical) == 0 {
		return
	}
	if err := exerciseDevice(instance, physical[0]); err != nil {
		log.Fatalf("Device check failed: %v", err)
	}
}

func createInstance(entry *vulkan.Entry, version vulkan.Version, layers []string) (*vulkan.Instance, error) {
	app := vk.ApplicationInfo{
		SType:           vk.StructureTypeApplicationInfo,
		ApplicationName: vk.CString("vkinfo"),
		EngineName:      vk.CString("gogpu"),
		APIVersion:      version.API(),
	}
	info := vk.InstanceCreateInfo{
		SType:           vk.StructureTypeInstanceCreateInfo,
		ApplicationInfo: &app,
	}
	if cs := vk.CStrings(layers); len(cs) > 0 {
		info.EnabledLayerCount = uint32(len(cs))
		info.EnabledLayerNames = &cs[0]
	}
	return entry.CreateInstance(&info, nil)
}

func exerciseDevice(instance *vulkan.Instance, pd vk.PhysicalDevice) error {
	family, ok := pickFamily(instance.QueueFamilyProperties(pd))
	if !ok {
		return fmt.Errorf("no compute queue family")
	}

	exts, err := instance.EnumerateDeviceExtensionProperties(pd, "")
	if err != nil {
		return err
	}
	printNames("Device extensions", names.FromProperties(exts))

	priority := float32(1)
	queue := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: family,
		QueueCount:       1,
		QueuePriorities:  &priority,
	}
	info := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		QueueCreateInfos:     &queue,
	}
	dev, err := instance.CreateDevice(pd, &info, nil)
	if err != nil {
		return err
	}
	defer dev.Destroy(nil)
	fmt.Printf("Device created, queue %s\n", vk.DispatchKeyOf(dev.Queue(family, 0)))

	pool, err := dev.CreateCommandPool(family, 0, nil)
	if err != nil {
		return err
	}
	defer dev.DestroyCommandPool(pool, nil)

	buffers, err := dev.AllocateCommandBuffers(pool, 1)
	if err != nil {
		return err
	}
	if err := dev.BeginCommandBuffer(buffers[0], nil); err != nil {
		return err
	}
	if err := dev.EndCommandBuffer(buffers[0]); err != nil {
		return err
	}
	dev.FreeCommandBuffers(pool, buffers)

	code, err := bytecode.CompileWGSL(computeShader)
	if err != nil {
		return err
	}
	module, err := dev.CreateShaderModule(code, nil)
	if err != nil {
		return err
	}
	dev.DestroyShaderModule(module, nil)
	fmt.Printf("Shader module created from %d bytes of SPIR-V\n", code.CodeSize())

	return dev.WaitIdle()
}

func pickFamily(families []vk.QueueFamilyProperties) (uint32, bool) {
	for i, f := range families {
		if f.QueueFlags&vk.QueueComputeBit != 0 && f.QueueCount > 0 {
			return uint32(i), true
		}
	}
	return 0, false
}

func queueFlags(flags uint32) string {
	var parts []string
	for _, b := range []struct {
		bit  uint32
		name string
	}{
		{vk.QueueGraphicsBit, "graphics"},
		{vk.QueueComputeBit, "compute"},
		{vk.QueueTransferBit, "transfer"},
		{vk.QueueSparseBindingBit, "sparse"},
	} {
		if flags&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func printNames(title string, set names.Set) {
	fmt.Printf("%s (%d):\n", title, set.Len())
	for _, n := range set.Sorted() {
		fmt.Printf("  %s\n", n)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
