// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"strconv"
	"unsafe"
)

// Types from vk_layer.h, the loader-layer interface.

// LayerFunction selects the payload of a loader create-info struct.
type LayerFunction int32

const (
	LayerLinkInfo                   LayerFunction = 0
	LoaderDataCallback              LayerFunction = 1
	LoaderLayerCreateDeviceCallback LayerFunction = 2
	LoaderFeatures                  LayerFunction = 3
)

// String implements fmt.Stringer.
func (f LayerFunction) String() string {
	switch f {
	case LayerLinkInfo:
		return "VK_LAYER_LINK_INFO"
	case LoaderDataCallback:
		return "VK_LOADER_DATA_CALLBACK"
	case LoaderLayerCreateDeviceCallback:
		return "VK_LOADER_LAYER_CREATE_DEVICE_CALLBACK"
	case LoaderFeatures:
		return "VK_LOADER_FEATURES"
	default:
		return "VkLayerFunction(" + strconv.Itoa(int(f)) + ")"
	}
}

// LoaderFeatureFlags is a VkLoaderFeatureFlags.
type LoaderFeatureFlags uint32

const LoaderFeaturePhysicalDeviceSorting LoaderFeatureFlags = 1

// LayerInstanceLink is one element of the loader's instance call chain.
type LayerInstanceLink struct {
	Next                          *LayerInstanceLink
	NextGetInstanceProcAddr       uintptr
	NextGetPhysicalDeviceProcAddr uintptr
}

// LayerDevice holds the loader's device create/destroy callbacks.
type LayerDevice struct {
	LayerCreateDevice  uintptr
	LayerDestroyDevice uintptr
}

// LayerInstanceCreatePayload is the C union carried by
// LayerInstanceCreateInfo. LayerInfo is the member for LayerLinkInfo; the
// accessors reinterpret the same storage for the other functions.
type LayerInstanceCreatePayload struct {
	LayerInfo *LayerInstanceLink
	_         uintptr
}

// SetInstanceLoaderData returns the member for LoaderDataCallback.
func (p *LayerInstanceCreatePayload) SetInstanceLoaderData() uintptr {
	return *(*uintptr)(unsafe.Pointer(p))
}

// LayerDevice returns the member for LoaderLayerCreateDeviceCallback.
func (p *LayerInstanceCreatePayload) LayerDevice() LayerDevice {
	return *(*LayerDevice)(unsafe.Pointer(p))
}

// LoaderFeatures returns the member for LoaderFeatures.
func (p *LayerInstanceCreatePayload) LoaderFeatures() LoaderFeatureFlags {
	return *(*LoaderFeatureFlags)(unsafe.Pointer(p))
}

// LayerInstanceCreateInfo is a VkLayerInstanceCreateInfo. The loader
// appends these to the chain of the VkInstanceCreateInfo it hands to each
// layer.
type LayerInstanceCreateInfo struct {
	SType    StructureType
	Next     unsafe.Pointer
	Function LayerFunction
	Payload  LayerInstanceCreatePayload
}

func (LayerInstanceCreateInfo) Type() StructureType { return StructureTypeLoaderInstanceCreateInfo }

// LayerDeviceLink is one element of the loader's device call chain.
type LayerDeviceLink struct {
	Next                    *LayerDeviceLink
	NextGetInstanceProcAddr uintptr
	NextGetDeviceProcAddr   uintptr
}

// LayerDeviceCreatePayload is the C union carried by LayerDeviceCreateInfo.
type LayerDeviceCreatePayload struct {
	LayerInfo *LayerDeviceLink
}

// SetDeviceLoaderData returns the member for LoaderDataCallback.
func (p *LayerDeviceCreatePayload) SetDeviceLoaderData() uintptr {
	return *(*uintptr)(unsafe.Pointer(p))
}

// LayerDeviceCreateInfo is a VkLayerDeviceCreateInfo.
type LayerDeviceCreateInfo struct {
	SType    StructureType
	Next     unsafe.Pointer
	Function LayerFunction
	Payload  LayerDeviceCreatePayload
}

func (LayerDeviceCreateInfo) Type() StructureType { return StructureTypeLoaderDeviceCreateInfo }

// NegotiateLayerStructType is a VkNegotiateLayerStructType.
type NegotiateLayerStructType int32

const LayerNegotiateInterfaceStruct NegotiateLayerStructType = 1

// CurrentLoaderLayerInterfaceVersion is the interface version this module
// implements.
const CurrentLoaderLayerInterfaceVersion = 2

// NegotiateLayerInterface is a VkNegotiateLayerInterface, filled in by
// vkNegotiateLoaderLayerInterfaceVersion.
type NegotiateLayerInterface struct {
	SType                        NegotiateLayerStructType
	Next                         unsafe.Pointer
	LoaderLayerInterfaceVersion  uint32
	PfnGetInstanceProcAddr       uintptr
	PfnGetDeviceProcAddr         uintptr
	PfnGetPhysicalDeviceProcAddr uintptr
}
