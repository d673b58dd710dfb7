// Command vklayer is a pass-through Vulkan layer. It forwards every call
// to the next element of the loader chain and logs the command buffer
// recording it intercepts.
//
// Build it as a shared library and point the loader at the manifest:
//
//	go build -buildmode=c-shared -o libVkLayer_gogpu_sample.so ./cmd/vklayer
//	VK_ADD_LAYER_PATH=$PWD/cmd/vklayer VK_INSTANCE_LAYERS=VK_LAYER_GOGPU_sample vkcube
//
// VK_LAYER_GOGPU_LOG=debug|info|warn|error enables logging to stderr.
package main

// #include <stdint.h>
import "C"

import (
	"unsafe"

	"github.com/gogpu/vulkan/layer"
	"github.com/gogpu/vulkan/vk"
)

func init() {
	configureLogging()
}

//export vkNegotiateLoaderLayerInterfaceVersion
func vkNegotiateLoaderLayerInterfaceVersion(iface unsafe.Pointer) C.int32_t {
	r := layer.Default().NegotiateLoaderLayerInterfaceVersion((*vk.NegotiateLayerInterface)(iface))
	return C.int32_t(r)
}

//export vkGetInstanceProcAddr
func vkGetInstanceProcAddr(instance C.uintptr_t, name *C.char) C.uintptr_t {
	addr := layer.Default().GetInstanceProcAddr(vk.Instance(instance), C.GoString(name))
	return C.uintptr_t(addr)
}

//export vkGetDeviceProcAddr
func vkGetDeviceProcAddr(device C.uintptr_t, name *C.char) C.uintptr_t {
	addr := layer.Default().GetDeviceProcAddr(vk.Device(device), C.GoString(name))
	return C.uintptr_t(addr)
}

func main() {}
