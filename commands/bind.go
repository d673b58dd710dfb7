//go:build darwin || freebsd || linux || windows

package commands

import "github.com/ebitengine/purego"

// bind makes the func pointed to by fptr call the C function at addr. It
// is the only place where untyped addresses turn into typed Go funcs.
func bind(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
