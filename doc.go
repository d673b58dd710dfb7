// Package vulkan is a thin, allocation-light binding to the Vulkan API.
//
// # Overview
//
// The package loads the Vulkan loader at run time (no cgo, no link-time
// dependency), builds per-object command tables from it, and wraps the
// three dispatch levels in small types:
//
//	Entry     global commands, resolved with a null instance
//	Instance  commands resolved through vkGetInstanceProcAddr
//	Device    commands resolved through vkGetDeviceProcAddr
//
// # Quick Start
//
//	entry, err := vulkan.Open()
//	if err != nil {
//	    log.Fatal(err) // no Vulkan loader on this system
//	}
//	defer entry.Close()
//
//	info := vk.InstanceCreateInfo{SType: vk.StructureTypeInstanceCreateInfo}
//	instance, err := entry.CreateInstance(&info, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer instance.Destroy(nil)
//
// # Command tables
//
// Every object holds a pointer to a command table from package commands.
// Commands that the implementation does not expose are nil. Calls through
// the table are raw: arguments go to C unchanged and the returned vk.Result
// is not interpreted. The wrapper methods on Entry, Instance and Device
// return error codes as vk.Result values, which implement error.
//
// # Pointer chains
//
// Extension structs are attached through Next fields. Package chain builds
// and walks such chains.
//
// # Layers
//
// Package layer implements the loader's layer protocol, and cmd/vklayer
// builds it into a loadable layer library.
//
// # Logging
//
// Nothing is logged by default. See SetLogger.
package vulkan
