package vulkan

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vulkan/commands"
	"github.com/gogpu/vulkan/loader"
	"github.com/gogpu/vulkan/vk"
)

// Entry is the root of the Vulkan API: it owns the loader library (when it
// opened one) and the global command table.
type Entry struct {
	lib  *loader.Library
	gipa commands.GetInstanceProcAddrFunc
	cmds *commands.EntryCommands
}

// Open loads the Vulkan loader and builds the global command table. It
// fails if the library cannot be opened, if it does not export
// vkGetInstanceProcAddr, or if vkCreateInstance cannot be resolved.
func Open(opts ...EntryOption) (*Entry, error) {
	var o entryOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.loader != nil {
		return NewEntry(o.loader)
	}

	var (
		lib *loader.Library
		err error
	)
	if o.library != "" {
		lib, err = loader.Open(o.library)
	} else {
		lib, err = loader.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("vulkan: open loader: %w", err)
	}

	e, err := NewEntry(lib)
	if err != nil {
		lib.Close()
		return nil, err
	}
	e.lib = lib
	return e, nil
}

// NewEntry builds an Entry from vkGetInstanceProcAddr as resolved by l.
// The caller keeps ownership of l.
func NewEntry(l loader.Loader) (*Entry, error) {
	addr, err := l.Load("vkGetInstanceProcAddr")
	if err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}
	return EntryFromProcAddr(addr)
}

// EntryFromProcAddr builds an Entry from a raw vkGetInstanceProcAddr. Layers
// use it with the next element's proc-addr function.
func EntryFromProcAddr(gipa uintptr) (*Entry, error) {
	fn, ok := commands.GetInstanceProcAddr(gipa)
	if !ok {
		return nil, fmt.Errorf("vulkan: %w", &loader.NotFoundError{Name: "vkGetInstanceProcAddr"})
	}
	cmds, err := commands.LoadEntry(fn)
	if err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}
	return &Entry{gipa: fn, cmds: cmds}, nil
}

// Close releases the loader library if Open opened it. Objects created
// from the Entry must be destroyed first.
func (e *Entry) Close() error {
	if e.lib == nil {
		return nil
	}
	return e.lib.Close()
}

// Commands returns the global command table.
func (e *Entry) Commands() *commands.EntryCommands { return e.cmds }

// GetInstanceProcAddr returns the bound vkGetInstanceProcAddr.
func (e *Entry) GetInstanceProcAddr() commands.GetInstanceProcAddrFunc { return e.gipa }

// Version returns the instance-level API version supported by the loader.
func (e *Entry) Version() (Version, error) {
	if e.cmds.EnumerateInstanceVersion == nil {
		return Version10, nil
	}
	var v uint32
	if r := e.cmds.EnumerateInstanceVersion(&v); r.IsError() {
		return Version{}, r
	}
	return VersionFromAPI(v), nil
}

// EnumerateInstanceExtensionProperties lists the instance extensions of
// the implementation, or of layer when it is not empty.
func (e *Entry) EnumerateInstanceExtensionProperties(layer string) ([]vk.ExtensionProperties, error) {
	if e.cmds.EnumerateInstanceExtensionProperties == nil {
		return nil, fmt.Errorf("vulkan: %w: vkEnumerateInstanceExtensionProperties", commands.ErrNotLoaded)
	}
	var name *byte
	if layer != "" {
		name = vk.CString(layer)
	}
	return enumerate(func(count *uint32, out *vk.ExtensionProperties) vk.Result {
		return e.cmds.EnumerateInstanceExtensionProperties(name, count, out)
	})
}

// EnumerateInstanceLayerProperties lists the available instance layers.
func (e *Entry) EnumerateInstanceLayerProperties() ([]vk.LayerProperties, error) {
	if e.cmds.EnumerateInstanceLayerProperties == nil {
		return nil, fmt.Errorf("vulkan: %w: vkEnumerateInstanceLayerProperties", commands.ErrNotLoaded)
	}
	return enumerate(e.cmds.EnumerateInstanceLayerProperties)
}

// CreateInstance calls vkCreateInstance and wraps the result. A native
// error code is returned unchanged as a vk.Result.
func (e *Entry) CreateInstance(info *vk.InstanceCreateInfo, allocator *vk.AllocationCallbacks) (*Instance, error) {
	var handle vk.Instance
	if r := e.cmds.CreateInstance(info, allocator, &handle); r.IsError() {
		return nil, r
	}
	instance, err := InstanceFromCreated(e.gipa, info, handle)
	if err != nil {
		// No usable vkDestroyInstance; the handle leaks.
		Logger().Warn("vulkan: instance created without a usable command table",
			slog.Any("err", err))
		return nil, err
	}
	return instance, nil
}

// enumerate runs the two-call idiom: query the count, then fill a slice,
// retrying while the implementation reports VK_INCOMPLETE.
func enumerate[T any](call func(count *uint32, out *T) vk.Result) ([]T, error) {
	for {
		var count uint32
		if r := call(&count, nil); r.IsError() {
			return nil, r
		}
		if count == 0 {
			return nil, nil
		}
		out := make([]T, count)
		r := call(&count, &out[0])
		if r == vk.Incomplete {
			continue
		}
		if r.IsError() {
			return nil, r
		}
		return out[:count], nil
	}
}
