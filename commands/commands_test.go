package commands

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/vulkan/loader"
	"github.com/gogpu/vulkan/vk"
)

// threeCommands is a table small enough to reason about in tests.
type threeCommands struct {
	Begin func(buffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result `vk:"vkBeginCommandBuffer"`
	End   func(buffer vk.CommandBuffer) vk.Result                                  `vk:"vkEndCommandBuffer"`
	Wait  func(device vk.Device) vk.Result                                         `vk:"vkDeviceWaitIdle"`

	untagged int
}

type requiredCommands struct {
	Optional func(device vk.Device) vk.Result                          `vk:"vkDeviceWaitIdle"`
	Destroy  func(device vk.Device, allocator *vk.AllocationCallbacks) `vk:"vkDestroyDevice,required"`
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelEntry, "entry"},
		{LevelInstance, "instance"},
		{LevelDevice, "device"},
		{Level(9), "Level(9)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"vkBeginCommandBuffer", "vkEndCommandBuffer", "vkDeviceWaitIdle"}
	if got := Names[threeCommands](); !slices.Equal(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}

	// Every declared table starts with its required destroy or create command.
	firsts := map[string]string{
		"entry":    Names[EntryCommands]()[0],
		"instance": Names[InstanceCommands]()[0],
		"device":   Names[DeviceCommands]()[0],
	}
	wantFirst := map[string]string{
		"entry":    "vkCreateInstance",
		"instance": "vkDestroyInstance",
		"device":   "vkDestroyDevice",
	}
	for level, name := range wantFirst {
		if firsts[level] != name {
			t.Errorf("first %s command = %q, want %q", level, firsts[level], name)
		}
	}
}

func TestLoadMissingRequired(t *testing.T) {
	table, err := Load[requiredCommands](LevelDevice, func(string) uintptr { return 0 })
	if table != nil {
		t.Error("Load returned a table despite a missing required command")
	}
	var missing *MissingCommandError
	if !errors.As(err, &missing) {
		t.Fatalf("Load error = %v, want *MissingCommandError", err)
	}
	if missing.Name != "vkDestroyDevice" || missing.Level != LevelDevice {
		t.Errorf("MissingCommandError = %+v", missing)
	}
	if !errors.Is(err, ErrMissingCommand) {
		t.Error("error does not match ErrMissingCommand")
	}
	if got, want := err.Error(), "commands: required device command vkDestroyDevice not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLoadNothingAvailable(t *testing.T) {
	// No required fields: an empty implementation still yields a table.
	table, err := Load[threeCommands](LevelDevice, func(string) uintptr { return 0 })
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if table.Begin != nil || table.End != nil || table.Wait != nil {
		t.Error("commands bound without an address")
	}
	if loaded, total := Count(table); loaded != 0 || total != 3 {
		t.Errorf("Count = %d/%d, want 0/3", loaded, total)
	}
}

func TestLoadNonStructPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Load of a non-struct table did not panic")
		}
	}()
	_, _ = Load[int](LevelEntry, func(string) uintptr { return 0 })
}

func TestFromLoader(t *testing.T) {
	l := loader.Func(func(name string) uintptr {
		if name == "vkCreateInstance" {
			return 0x4000
		}
		return 0
	})
	load := FromLoader(l)
	if got := load("vkCreateInstance"); got != 0x4000 {
		t.Errorf("load(vkCreateInstance) = %#x, want 0x4000", got)
	}
	if got := load("vkMissing"); got != 0 {
		t.Errorf("load(vkMissing) = %#x, want 0", got)
	}
}

func TestBindZero(t *testing.T) {
	fn, ok := Bind[func() vk.Result](0)
	if ok || fn != nil {
		t.Error("Bind(0) produced a func")
	}
	if gipa, ok := GetInstanceProcAddr(0); ok || gipa != nil {
		t.Error("GetInstanceProcAddr(0) produced a func")
	}
}
