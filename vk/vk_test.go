// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/vulkan/internal/offheap"
)

// Dispatch table addresses of two fake loader objects. Only the values are
// compared; nothing reads through them.
const (
	tableAddr  = 0x7f0012340000
	otherTable = tableAddr + 64
)

// offheapObject allocates a stand-in for a loader-created dispatchable
// object. It lives outside the Go heap, as a real one would.
func offheapObject(t *testing.T, key uintptr) uintptr {
	t.Helper()
	h, err := offheap.Alloc(key)
	if err != nil {
		t.Skipf("no off-heap memory: %v", err)
	}
	t.Cleanup(func() { offheap.Free(h) })
	return h
}

func TestDispatchKeyOf(t *testing.T) {
	device := offheapObject(t, tableAddr)
	commandBuffer := offheapObject(t, tableAddr)
	other := offheapObject(t, otherTable)

	dk := DispatchKeyOf(Device(device))
	ck := DispatchKeyOf(CommandBuffer(commandBuffer))
	ok := DispatchKeyOf(Device(other))

	if dk != DispatchKey(tableAddr) {
		t.Errorf("device key = %v, want %#x", dk, tableAddr)
	}
	if dk != ck {
		t.Errorf("command buffer key = %v, want device key %v", ck, dk)
	}
	if dk == ok {
		t.Error("objects with different dispatch tables share a key")
	}
	if got := DispatchKeyOf(Instance(NullHandle)); got != 0 {
		t.Errorf("null handle key = %v, want 0", got)
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		r       Result
		name    string
		isError bool
	}{
		{Success, "VK_SUCCESS", false},
		{Incomplete, "VK_INCOMPLETE", false},
		{ErrorDeviceLost, "VK_ERROR_DEVICE_LOST", true},
		{Result(-424242), "VkResult(-424242)", true},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.r.IsError(); got != tt.isError {
			t.Errorf("%v.IsError() = %v, want %v", tt.r, got, tt.isError)
		}
		if got := tt.r.Err() != nil; got != tt.isError {
			t.Errorf("%v.Err() != nil = %v, want %v", tt.r, got, tt.isError)
		}
	}

	var err error = ErrorOutOfHostMemory
	var r Result
	if !errors.As(err, &r) || r != ErrorOutOfHostMemory {
		t.Errorf("errors.As recovered %v, want %v", r, ErrorOutOfHostMemory)
	}
}

func TestAPIVersion(t *testing.T) {
	v := MakeAPIVersion(0, 1, 3, 250)
	if got := APIVersionMajor(v); got != 1 {
		t.Errorf("major = %d, want 1", got)
	}
	if got := APIVersionMinor(v); got != 3 {
		t.Errorf("minor = %d, want 3", got)
	}
	if got := APIVersionPatch(v); got != 250 {
		t.Errorf("patch = %d, want 250", got)
	}
	if got := APIVersionVariant(v); got != 0 {
		t.Errorf("variant = %d, want 0", got)
	}
	if APIVersion12 <= APIVersion11 {
		t.Error("packed versions must order by major/minor")
	}
}

func TestStrings(t *testing.T) {
	p := CString("VK_KHR_surface")
	if got := GoString(p); got != "VK_KHR_surface" {
		t.Errorf("GoString = %q", got)
	}
	if got := GoStringN(p, 5); got != "VK_KH" {
		t.Errorf("GoStringN = %q, want VK_KH", got)
	}
	if got := GoString(nil); got != "" {
		t.Errorf("GoString(nil) = %q", got)
	}

	var props ExtensionProperties
	copy(props.ExtensionName[:], "VK_EXT_debug_utils")
	if got := FixedString(props.ExtensionName[:]); got != "VK_EXT_debug_utils" {
		t.Errorf("FixedString = %q", got)
	}

	if CStrings(nil) != nil {
		t.Error("CStrings(nil) should be nil")
	}
	ss := CStrings([]string{"a", "bc"})
	if len(ss) != 2 || GoString(ss[1]) != "bc" {
		t.Errorf("CStrings = %v", ss)
	}
}

// TestLayout pins the C layout of the structs that cross the ABI.
func TestLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout table is for 64-bit targets")
	}
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"ApplicationInfo", unsafe.Sizeof(ApplicationInfo{}), 48},
		{"InstanceCreateInfo", unsafe.Sizeof(InstanceCreateInfo{}), 64},
		{"DeviceCreateInfo", unsafe.Sizeof(DeviceCreateInfo{}), 72},
		{"CommandBufferBeginInfo", unsafe.Sizeof(CommandBufferBeginInfo{}), 32},
		{"ExtensionProperties", unsafe.Sizeof(ExtensionProperties{}), 260},
		{"LayerProperties", unsafe.Sizeof(LayerProperties{}), 520},
		{"PhysicalDeviceFeatures", unsafe.Sizeof(PhysicalDeviceFeatures{}), 220},
		{"PhysicalDeviceVulkan11Features", unsafe.Sizeof(PhysicalDeviceVulkan11Features{}), 64},
		{"LayerInstanceCreateInfo", unsafe.Sizeof(LayerInstanceCreateInfo{}), 40},
		{"LayerDeviceCreateInfo", unsafe.Sizeof(LayerDeviceCreateInfo{}), 32},
		{"NegotiateLayerInterface", unsafe.Sizeof(NegotiateLayerInterface{}), 48},
		{"LayerInstanceCreateInfo.Payload offset", unsafe.Offsetof(LayerInstanceCreateInfo{}.Payload), 24},
		{"InstanceCreateInfo.Next offset", unsafe.Offsetof(InstanceCreateInfo{}.Next), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestChainStructTypes(t *testing.T) {
	tests := []struct {
		s    ChainStruct
		want StructureType
	}{
		{InstanceCreateInfo{}, StructureTypeInstanceCreateInfo},
		{DeviceCreateInfo{}, StructureTypeDeviceCreateInfo},
		{LayerInstanceCreateInfo{}, StructureTypeLoaderInstanceCreateInfo},
		{LayerDeviceCreateInfo{}, StructureTypeLoaderDeviceCreateInfo},
		{PhysicalDeviceFeatures2{}, StructureTypePhysicalDeviceFeatures2},
		{ValidationFeaturesEXT{}, StructureTypeValidationFeaturesEXT},
	}
	for _, tt := range tests {
		if got := tt.s.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.s, got, tt.want)
		}
	}
	if got := StructureType(123456).String(); got != "VkStructureType(123456)" {
		t.Errorf("unknown tag String() = %q", got)
	}
	if got := LoaderFeatures.String(); got != "VK_LOADER_FEATURES" {
		t.Errorf("LayerFunction String() = %q", got)
	}
}

func TestLayerPayloadUnion(t *testing.T) {
	const callback = uintptr(0x7f00dead0000)
	info := new(LayerInstanceCreateInfo)
	info.Function = LoaderLayerCreateDeviceCallback
	words := (*[2]uintptr)(unsafe.Pointer(&info.Payload))
	words[0] = callback
	words[1] = callback + 16

	if got := info.Payload.SetInstanceLoaderData(); got != callback {
		t.Errorf("SetInstanceLoaderData() = %#x, want %#x", got, callback)
	}
	ld := info.Payload.LayerDevice()
	if ld.LayerCreateDevice != callback || ld.LayerDestroyDevice != callback+16 {
		t.Errorf("LayerDevice() = %+v", ld)
	}
}
