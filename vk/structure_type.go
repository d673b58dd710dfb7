// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import "strconv"

// StructureType is a VkStructureType, the tag at the start of every
// extensible struct.
type StructureType int32

const (
	StructureTypeApplicationInfo                  StructureType = 0
	StructureTypeInstanceCreateInfo               StructureType = 1
	StructureTypeDeviceQueueCreateInfo            StructureType = 2
	StructureTypeDeviceCreateInfo                 StructureType = 3
	StructureTypeShaderModuleCreateInfo           StructureType = 16
	StructureTypeCommandPoolCreateInfo            StructureType = 39
	StructureTypeCommandBufferAllocateInfo        StructureType = 40
	StructureTypeCommandBufferInheritanceInfo     StructureType = 41
	StructureTypeCommandBufferBeginInfo           StructureType = 42
	StructureTypeLoaderInstanceCreateInfo         StructureType = 47
	StructureTypeLoaderDeviceCreateInfo           StructureType = 48
	StructureTypePhysicalDeviceVulkan11Features   StructureType = 49
	StructureTypePhysicalDeviceFeatures2          StructureType = 1000059000
	StructureTypeValidationFlagsEXT               StructureType = 1000061000
	StructureTypeDebugUtilsMessengerCreateInfoEXT StructureType = 1000128004
	StructureTypeValidationFeaturesEXT            StructureType = 1000247000
)

var structureTypeNames = map[StructureType]string{
	StructureTypeApplicationInfo:                  "VK_STRUCTURE_TYPE_APPLICATION_INFO",
	StructureTypeInstanceCreateInfo:               "VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO",
	StructureTypeDeviceQueueCreateInfo:            "VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO",
	StructureTypeDeviceCreateInfo:                 "VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO",
	StructureTypeShaderModuleCreateInfo:           "VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO",
	StructureTypeCommandPoolCreateInfo:            "VK_STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO",
	StructureTypeCommandBufferAllocateInfo:        "VK_STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO",
	StructureTypeCommandBufferInheritanceInfo:     "VK_STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO",
	StructureTypeCommandBufferBeginInfo:           "VK_STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO",
	StructureTypeLoaderInstanceCreateInfo:         "VK_STRUCTURE_TYPE_LOADER_INSTANCE_CREATE_INFO",
	StructureTypeLoaderDeviceCreateInfo:           "VK_STRUCTURE_TYPE_LOADER_DEVICE_CREATE_INFO",
	StructureTypePhysicalDeviceVulkan11Features:   "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_FEATURES",
	StructureTypePhysicalDeviceFeatures2:          "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2",
	StructureTypeValidationFlagsEXT:               "VK_STRUCTURE_TYPE_VALIDATION_FLAGS_EXT",
	StructureTypeDebugUtilsMessengerCreateInfoEXT: "VK_STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT",
	StructureTypeValidationFeaturesEXT:            "VK_STRUCTURE_TYPE_VALIDATION_FEATURES_EXT",
}

// String returns the C enumerant name, or the numeric value for tags this
// package does not name.
func (t StructureType) String() string {
	if name, ok := structureTypeNames[t]; ok {
		return name
	}
	return "VkStructureType(" + strconv.Itoa(int(t)) + ")"
}
