//go:build !((darwin || linux || windows) && (amd64 || arm64))

package layer

import "runtime"

func newProcTable(*Layer) *procTable {
	panic("layer: C entry points are not supported on " + runtime.GOOS + "/" + runtime.GOARCH)
}
