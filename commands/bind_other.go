//go:build !darwin && !freebsd && !linux && !windows

package commands

func bind(any, uintptr) {
	panic("commands: calling C functions is not supported on this platform")
}
