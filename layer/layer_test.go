package layer

import (
	"bytes"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/gogpu/vulkan"
	"github.com/gogpu/vulkan/chain"
	"github.com/gogpu/vulkan/vk"
)

func TestNewOptions(t *testing.T) {
	instances := NewRegistry[InstanceRecord]()
	devices := NewRegistry[DeviceRecord]()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	called := false

	l := New(
		WithInstanceRegistry(instances),
		WithDeviceRegistry(devices),
		WithLogger(logger),
		WithHooks(Hooks{EndCommandBuffer: func(*vulkan.Device, vk.CommandBuffer) { called = true }}),
	)
	if l.Instances() != instances || l.Devices() != devices {
		t.Error("injected registries not used")
	}
	if l.log != logger {
		t.Error("WithLogger not applied")
	}
	if l.hooks.BeginCommandBuffer != nil {
		t.Error("WithHooks kept the default BeginCommandBuffer hook")
	}
	l.hooks.EndCommandBuffer(nil, 0)
	if !called {
		t.Error("custom hook not installed")
	}

	// A nil logger keeps the default.
	if l := New(WithLogger(nil)); l.log == nil {
		t.Error("WithLogger(nil) cleared the logger")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different layers")
	}
}

func TestNegotiateRejectsOldLoader(t *testing.T) {
	l := New()
	if r := l.NegotiateLoaderLayerInterfaceVersion(nil); r != vk.ErrorInitializationFailed {
		t.Errorf("nil struct: %v, want %v", r, vk.ErrorInitializationFailed)
	}

	iface := vk.NegotiateLayerInterface{
		SType:                       vk.LayerNegotiateInterfaceStruct,
		LoaderLayerInterfaceVersion: 1,
	}
	if r := l.NegotiateLoaderLayerInterfaceVersion(&iface); r != vk.ErrorInitializationFailed {
		t.Errorf("version 1: %v, want %v", r, vk.ErrorInitializationFailed)
	}
	if iface.PfnGetInstanceProcAddr != 0 {
		t.Error("rejected negotiation filled in entry points")
	}

	iface = vk.NegotiateLayerInterface{LoaderLayerInterfaceVersion: 2}
	if r := l.NegotiateLoaderLayerInterfaceVersion(&iface); r != vk.ErrorInitializationFailed {
		t.Errorf("wrong sType: %v, want %v", r, vk.ErrorInitializationFailed)
	}
}

func TestInstanceLinkAmongUnrelated(t *testing.T) {
	flags := &vk.ValidationFlagsEXT{SType: vk.StructureTypeValidationFlagsEXT}
	data := &vk.LayerInstanceCreateInfo{
		SType:    vk.StructureTypeLoaderInstanceCreateInfo,
		Function: vk.LoaderDataCallback,
	}
	link := &vk.LayerInstanceCreateInfo{
		SType:    vk.StructureTypeLoaderInstanceCreateInfo,
		Function: vk.LayerLinkInfo,
	}
	head := chain.Link(unsafe.Pointer(flags), unsafe.Pointer(data), unsafe.Pointer(link))

	if got := instanceLink(head); got != link {
		t.Errorf("instanceLink = %p, want %p", got, link)
	}
	if got := instanceLink(unsafe.Pointer(data)); got != link {
		t.Errorf("instanceLink from the data node = %p, want %p", got, link)
	}
	if got := instanceLink(unsafe.Pointer(data)); got == data {
		t.Error("instanceLink returned a non-link loader node")
	}
	if got := instanceLink(nil); got != nil {
		t.Errorf("instanceLink(nil) = %p, want nil", got)
	}
}

func TestDeviceLink(t *testing.T) {
	link := &vk.LayerDeviceCreateInfo{
		SType:    vk.StructureTypeLoaderDeviceCreateInfo,
		Function: vk.LayerLinkInfo,
	}
	features := &vk.PhysicalDeviceFeatures2{SType: vk.StructureTypePhysicalDeviceFeatures2}
	head := chain.Link(unsafe.Pointer(features), unsafe.Pointer(link))
	if got := deviceLink(head); got != link {
		t.Errorf("deviceLink = %p, want %p", got, link)
	}

	alone := &vk.PhysicalDeviceFeatures2{SType: vk.StructureTypePhysicalDeviceFeatures2}
	if got := deviceLink(unsafe.Pointer(alone)); got != nil {
		t.Errorf("deviceLink without link = %p, want nil", got)
	}
}

func TestCreateWithoutLinkPanics(t *testing.T) {
	l := New()

	instanceInfo := vk.InstanceCreateInfo{SType: vk.StructureTypeInstanceCreateInfo}
	var instance vk.Instance
	expectProtocolPanic(t, "vkCreateInstance", func() {
		l.CreateInstance(&instanceInfo, nil, &instance)
	})

	deviceInfo := vk.DeviceCreateInfo{SType: vk.StructureTypeDeviceCreateInfo}
	var device vk.Device
	expectProtocolPanic(t, "vkCreateDevice", func() {
		l.CreateDevice(0, &deviceInfo, nil, &device)
	})
	if l.Instances().Len() != 0 || l.Devices().Len() != 0 {
		t.Error("failed creates registered objects")
	}
}
