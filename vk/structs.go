// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Bool32 is a VkBool32.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Array capacities from the C headers.
const (
	MaxExtensionNameSize = 256
	MaxDescriptionSize   = 256
)

// ChainStruct is implemented by every struct that may appear in a pointer
// chain. Type is defined on the value receiver and reports the tag the
// struct's SType field must hold, so it can be asked of a zero value.
type ChainStruct interface {
	Type() StructureType
}

// BaseInStructure is the common header of structs in input chains.
type BaseInStructure struct {
	SType StructureType
	Next  unsafe.Pointer
}

// BaseOutStructure is the common header of structs in output chains.
type BaseOutStructure struct {
	SType StructureType
	Next  unsafe.Pointer
}

// AllocationCallbacks is passed through to the implementation untouched.
type AllocationCallbacks struct {
	UserData              unsafe.Pointer
	PfnAllocation         uintptr
	PfnReallocation       uintptr
	PfnFree               uintptr
	PfnInternalAllocation uintptr
	PfnInternalFree       uintptr
}

// ApplicationInfo is a VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	ApplicationName    *byte
	ApplicationVersion uint32
	EngineName         *byte
	EngineVersion      uint32
	APIVersion         uint32
}

func (ApplicationInfo) Type() StructureType { return StructureTypeApplicationInfo }

// InstanceCreateInfo is a VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	ApplicationInfo       *ApplicationInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     **byte
	EnabledExtensionCount uint32
	EnabledExtensionNames **byte
}

func (InstanceCreateInfo) Type() StructureType { return StructureTypeInstanceCreateInfo }

// DeviceQueueCreateInfo is a VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	QueuePriorities  *float32
}

func (DeviceQueueCreateInfo) Type() StructureType { return StructureTypeDeviceQueueCreateInfo }

// DeviceCreateInfo is a VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	QueueCreateInfoCount  uint32
	QueueCreateInfos      *DeviceQueueCreateInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     **byte
	EnabledExtensionCount uint32
	EnabledExtensionNames **byte
	EnabledFeatures       *PhysicalDeviceFeatures
}

func (DeviceCreateInfo) Type() StructureType { return StructureTypeDeviceCreateInfo }

// ShaderModuleCreateInfo is a VkShaderModuleCreateInfo. CodeSize is in bytes.
type ShaderModuleCreateInfo struct {
	SType    StructureType
	Next     unsafe.Pointer
	Flags    uint32
	CodeSize uintptr
	Code     *uint32
}

func (ShaderModuleCreateInfo) Type() StructureType { return StructureTypeShaderModuleCreateInfo }

// CommandPoolCreateInfo is a VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
}

func (CommandPoolCreateInfo) Type() StructureType { return StructureTypeCommandPoolCreateInfo }

// CommandBufferLevel is a VkCommandBufferLevel.
type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// CommandBufferAllocateInfo is a VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

func (CommandBufferAllocateInfo) Type() StructureType {
	return StructureTypeCommandBufferAllocateInfo
}

// CommandBufferBeginInfo is a VkCommandBufferBeginInfo. InheritanceInfo
// points to a VkCommandBufferInheritanceInfo and is passed through as is.
type CommandBufferBeginInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	InheritanceInfo unsafe.Pointer
}

func (CommandBufferBeginInfo) Type() StructureType { return StructureTypeCommandBufferBeginInfo }

// ExtensionProperties is a VkExtensionProperties.
type ExtensionProperties struct {
	ExtensionName [MaxExtensionNameSize]byte
	SpecVersion   uint32
}

// LayerProperties is a VkLayerProperties.
type LayerProperties struct {
	LayerName             [MaxExtensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [MaxDescriptionSize]byte
}

// Extent3D is a VkExtent3D.
type Extent3D struct {
	Width, Height, Depth uint32
}

// QueueFamilyProperties is a VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	QueueFlags                  uint32
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// VkQueueFlagBits.
const (
	QueueGraphicsBit uint32 = 1 << iota
	QueueComputeBit
	QueueTransferBit
	QueueSparseBindingBit
)

// PhysicalDeviceFeatures is a VkPhysicalDeviceFeatures. The 55 VkBool32
// members are kept as an array in declaration order; the first few are
// named by the index constants below.
type PhysicalDeviceFeatures struct {
	Features [55]Bool32
}

const (
	FeatureRobustBufferAccess = iota
	FeatureFullDrawIndexUint32
	FeatureImageCubeArray
	FeatureIndependentBlend
	FeatureGeometryShader
	FeatureTessellationShader
)

// PhysicalDeviceFeatures2 is a VkPhysicalDeviceFeatures2, the head of an
// output chain.
type PhysicalDeviceFeatures2 struct {
	SType    StructureType
	Next     unsafe.Pointer
	Features PhysicalDeviceFeatures
}

func (PhysicalDeviceFeatures2) Type() StructureType { return StructureTypePhysicalDeviceFeatures2 }

// PhysicalDeviceVulkan11Features is a VkPhysicalDeviceVulkan11Features.
type PhysicalDeviceVulkan11Features struct {
	SType                              StructureType
	Next                               unsafe.Pointer
	StorageBuffer16BitAccess           Bool32
	UniformAndStorageBuffer16BitAccess Bool32
	StoragePushConstant16              Bool32
	StorageInputOutput16               Bool32
	Multiview                          Bool32
	MultiviewGeometryShader            Bool32
	MultiviewTessellationShader        Bool32
	VariablePointersStorageBuffer      Bool32
	VariablePointers                   Bool32
	ProtectedMemory                    Bool32
	SamplerYcbcrConversion             Bool32
	ShaderDrawParameters               Bool32
}

func (PhysicalDeviceVulkan11Features) Type() StructureType {
	return StructureTypePhysicalDeviceVulkan11Features
}

// ValidationFlagsEXT is a VkValidationFlagsEXT.
type ValidationFlagsEXT struct {
	SType                        StructureType
	Next                         unsafe.Pointer
	DisabledValidationCheckCount uint32
	DisabledValidationChecks     *int32
}

func (ValidationFlagsEXT) Type() StructureType { return StructureTypeValidationFlagsEXT }

// ValidationFeaturesEXT is a VkValidationFeaturesEXT.
type ValidationFeaturesEXT struct {
	SType                          StructureType
	Next                           unsafe.Pointer
	EnabledValidationFeatureCount  uint32
	EnabledValidationFeatures      *int32
	DisabledValidationFeatureCount uint32
	DisabledValidationFeatures     *int32
}

func (ValidationFeaturesEXT) Type() StructureType { return StructureTypeValidationFeaturesEXT }

// DebugUtilsMessengerCreateInfoEXT is a VkDebugUtilsMessengerCreateInfoEXT.
// PfnUserCallback must be a C-callable function address.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	MessageSeverity uint32
	MessageType     uint32
	PfnUserCallback uintptr
	UserData        unsafe.Pointer
}

func (DebugUtilsMessengerCreateInfoEXT) Type() StructureType {
	return StructureTypeDebugUtilsMessengerCreateInfoEXT
}
