package vulkan

import "github.com/gogpu/vulkan/loader"

// EntryOption configures Open.
//
// Example:
//
//	// System Vulkan loader
//	entry, err := vulkan.Open()
//
//	// A specific ICD or loader build
//	entry, err := vulkan.Open(vulkan.WithLibrary("/opt/vulkan/lib/libvulkan.so.1"))
type EntryOption func(*entryOptions)

// entryOptions holds optional configuration for Open.
type entryOptions struct {
	library string
	loader  loader.Loader
}

// WithLibrary opens the shared library at path instead of the platform
// Vulkan loader.
func WithLibrary(path string) EntryOption {
	return func(o *entryOptions) {
		o.library = path
	}
}

// WithLoader resolves vkGetInstanceProcAddr through l instead of opening a
// library. It takes precedence over WithLibrary. The caller keeps ownership
// of l; Entry.Close does not close it.
func WithLoader(l loader.Loader) EntryOption {
	return func(o *entryOptions) {
		o.loader = l
	}
}
