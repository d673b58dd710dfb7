package loader

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFunc(t *testing.T) {
	f := Func(func(name string) uintptr {
		if name == "vkCreateInstance" {
			return 0x1000
		}
		return 0
	})

	addr, err := f.Load("vkCreateInstance")
	if err != nil || addr != 0x1000 {
		t.Fatalf("Load(vkCreateInstance) = %#x, %v; want 0x1000, nil", addr, err)
	}

	_, err = f.Load("vkCreateFoo")
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("Load(vkCreateFoo) error = %v, want ErrSymbolNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "vkCreateFoo" {
		t.Errorf("error = %#v, want *NotFoundError{Name: vkCreateFoo}", err)
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&NotFoundError{Name: "vkFoo"}, `loader: symbol "vkFoo" not found`},
		{&NotFoundError{Name: "vkFoo", Err: errors.New("undefined")}, `loader: symbol "vkFoo" not found: undefined`},
		{&BackendError{Op: "open", Path: "libx.so", Err: errors.New("no such file")}, "loader: open libx.so: no such file"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestBackendErrorIs(t *testing.T) {
	cause := errors.New("boom")
	err := error(&BackendError{Op: "open", Path: "x", Err: cause})
	if !errors.Is(err, ErrBackend) {
		t.Error("BackendError does not match ErrBackend")
	}
	if !errors.Is(err, cause) {
		t.Error("BackendError does not unwrap to its cause")
	}
	if errors.Is(err, ErrSymbolNotFound) {
		t.Error("BackendError matches ErrSymbolNotFound")
	}
}

func TestOpenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libdoesnotexist.so")
	lib, err := Open(path)
	if err == nil {
		lib.Close()
		t.Fatal("Open on a missing file succeeded")
	}
	if !errors.Is(err, ErrBackend) {
		t.Errorf("Open error = %v, want ErrBackend", err)
	}
}

func TestDefaultLibrary(t *testing.T) {
	want := map[string]string{
		"linux":   "libvulkan.so.1",
		"darwin":  "libvulkan.dylib",
		"windows": "vulkan-1.dll",
		"android": "libvulkan.so",
	}
	if w, ok := want[runtime.GOOS]; ok {
		if got := DefaultLibrary(); got != w {
			t.Errorf("DefaultLibrary() = %q, want %q", got, w)
		}
	}
}

// systemLibrary names a library and a symbol that exist on every supported
// desktop platform, so Library can be tested without a Vulkan driver.
func systemLibrary(t *testing.T) (path, symbol string) {
	t.Helper()
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6", "malloc"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib", "malloc"
	case "windows":
		return "kernel32.dll", "GetCurrentProcessId"
	}
	t.Skipf("no system library known for %s", runtime.GOOS)
	return "", ""
}

func TestLibraryLifecycle(t *testing.T) {
	path, symbol := systemLibrary(t)
	lib, err := Open(path)
	if err != nil {
		t.Skipf("cannot open %s: %v", path, err)
	}
	if lib.Path() != path {
		t.Errorf("Path() = %q, want %q", lib.Path(), path)
	}

	addr, err := lib.Load(symbol)
	if err != nil || addr == 0 {
		t.Fatalf("Load(%s) = %#x, %v", symbol, addr, err)
	}

	_, err = lib.Load("vkThisCommandDoesNotExist")
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Errorf("Load of missing symbol error = %v, want ErrSymbolNotFound", err)
	}

	if err := lib.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if _, err := lib.Load(symbol); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close error = %v, want ErrClosed", err)
	}
}
