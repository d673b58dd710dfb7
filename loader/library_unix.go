//go:build darwin || freebsd || linux

package loader

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

func defaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
	case "android":
		return []string{"libvulkan.so"}
	default:
		return []string{"libvulkan.so.1", "libvulkan.so"}
	}
}
