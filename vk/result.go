// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import "strconv"

// Result is a VkResult. Negative values are error codes, zero and positive
// values are success codes.
//
// Result implements error so a native error code can travel through Go
// error returns unchanged. Wrappers never translate or retry it; use
// errors.As to recover the original code.
type Result int32

// Success codes.
const (
	Success       Result = 0
	NotReady      Result = 1
	Timeout       Result = 2
	EventSet      Result = 3
	EventReset    Result = 4
	Incomplete    Result = 5
	SuboptimalKHR Result = 1000001003
)

// Error codes.
const (
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorFormatNotSupported   Result = -11
	ErrorFragmentedPool       Result = -12
	ErrorUnknown              Result = -13
	ErrorOutOfPoolMemory      Result = -1000069000
	ErrorSurfaceLostKHR       Result = -1000000000
	ErrorOutOfDateKHR         Result = -1000001004
	ErrorValidationFailedEXT  Result = -1000011001
)

var resultNames = map[Result]string{
	Success:                   "VK_SUCCESS",
	NotReady:                  "VK_NOT_READY",
	Timeout:                   "VK_TIMEOUT",
	EventSet:                  "VK_EVENT_SET",
	EventReset:                "VK_EVENT_RESET",
	Incomplete:                "VK_INCOMPLETE",
	SuboptimalKHR:             "VK_SUBOPTIMAL_KHR",
	ErrorOutOfHostMemory:      "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:    "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed: "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:           "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:      "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:      "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:  "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:    "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:   "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:       "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:   "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:       "VK_ERROR_FRAGMENTED_POOL",
	ErrorUnknown:              "VK_ERROR_UNKNOWN",
	ErrorOutOfPoolMemory:      "VK_ERROR_OUT_OF_POOL_MEMORY",
	ErrorSurfaceLostKHR:       "VK_ERROR_SURFACE_LOST_KHR",
	ErrorOutOfDateKHR:         "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorValidationFailedEXT:  "VK_ERROR_VALIDATION_FAILED_EXT",
}

// String returns the C enumerant name, or the numeric value for codes this
// package does not name.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "VkResult(" + strconv.Itoa(int(r)) + ")"
}

// Error implements error.
func (r Result) Error() string {
	return "vk: " + r.String()
}

// IsError reports whether r is an error code.
func (r Result) IsError() bool { return r < 0 }

// Err returns r as an error when it is an error code and nil otherwise.
// Success codes other than Success (for example Incomplete) are not errors;
// callers that care about them must inspect the Result directly.
func (r Result) Err() error {
	if r.IsError() {
		return r
	}
	return nil
}
