//go:build !darwin && !freebsd && !linux && !windows

package loader

func openLibrary(string) (uintptr, error) { return 0, ErrUnsupported }

func lookupSymbol(uintptr, string) (uintptr, error) { return 0, ErrUnsupported }

func closeLibrary(uintptr) error { return nil }

func defaultLibraries() []string { return []string{"libvulkan.so.1"} }
