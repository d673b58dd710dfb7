// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package commands builds Vulkan command tables.
//
// A command table is a struct of func fields, one per command of an API
// level, each tagged with the Vulkan command name:
//
//	type EntryCommands struct {
//	    CreateInstance func(...) vk.Result `vk:"vkCreateInstance,required"`
//	    ...
//	}
//
// [Load] resolves every tagged name through a [LoadFunc] and binds the
// non-zero addresses to the func fields. Commands the implementation does
// not expose stay nil; only fields tagged "required" make Load fail. No
// signature checking happens: the Go func type is trusted to match the C
// prototype of the command it names.
//
// Tables are built once per object, never modified afterwards, and shared
// by pointer. They are safe for concurrent use.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/gogpu/vulkan/loader"
	"github.com/gogpu/vulkan/vk"
)

// Level is the dispatch level a command belongs to.
type Level uint8

// API levels.
const (
	LevelEntry Level = iota
	LevelInstance
	LevelDevice
)

var levelNames = [...]string{"entry", "instance", "device"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// LoadFunc returns the address of the named command, or 0 if it is not
// available.
type LoadFunc func(name string) uintptr

// FromLoader adapts a loader.Loader. Lookup failures become 0.
func FromLoader(l loader.Loader) LoadFunc {
	return func(name string) uintptr {
		addr, err := l.Load(name)
		if err != nil {
			if !errors.Is(err, loader.ErrSymbolNotFound) {
				slogger().Warn("commands: symbol lookup failed",
					slog.String("name", name), slog.Any("err", err))
			}
			return 0
		}
		return addr
	}
}

// Sentinel errors.
var (
	// ErrMissingCommand is matched by every *MissingCommandError.
	ErrMissingCommand = errors.New("commands: missing required command")

	// ErrNotLoaded reports a call to an optional command the
	// implementation did not expose.
	ErrNotLoaded = errors.New("commands: command not loaded")
)

// MissingCommandError reports a required command that resolved to 0.
type MissingCommandError struct {
	Level Level
	Name  string
}

func (e *MissingCommandError) Error() string {
	return fmt.Sprintf("commands: required %s command %s not found", e.Level, e.Name)
}

// Is makes errors.Is(err, ErrMissingCommand) true.
func (e *MissingCommandError) Is(target error) bool { return target == ErrMissingCommand }

// field describes one tagged func field of a table type.
type field struct {
	index    int
	name     string
	required bool
}

// layouts caches the parsed fields per table type.
var layouts sync.Map // reflect.Type -> []field

func layoutOf(t reflect.Type) []field {
	if v, ok := layouts.Load(t); ok {
		return v.([]field)
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("commands: table type %s is not a struct", t))
	}
	var fields []field
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("vk")
		if !ok {
			continue
		}
		if sf.Type.Kind() != reflect.Func {
			panic(fmt.Sprintf("commands: field %s.%s tagged %q is not a func", t, sf.Name, tag))
		}
		name, opt, _ := strings.Cut(tag, ",")
		fields = append(fields, field{index: i, name: name, required: opt == "required"})
	}
	v, _ := layouts.LoadOrStore(t, fields)
	return v.([]field)
}

// Load builds a command table of type T. Every tagged field whose command
// resolves to a non-zero address is bound; the rest stay nil. A required
// command that does not resolve fails the whole table with a
// *MissingCommandError, and no partially built table is returned.
func Load[T any](level Level, load LoadFunc) (*T, error) {
	table := new(T)
	v := reflect.ValueOf(table).Elem()
	fields := layoutOf(v.Type())

	loaded := 0
	for _, f := range fields {
		addr := load(f.name)
		if addr == 0 {
			if f.required {
				return nil, &MissingCommandError{Level: level, Name: f.name}
			}
			continue
		}
		bind(v.Field(f.index).Addr().Interface(), addr)
		loaded++
	}

	slogger().Debug("commands: table loaded",
		slog.String("level", level.String()),
		slog.Int("loaded", loaded),
		slog.Int("total", len(fields)))
	return table, nil
}

// Bind converts a raw command address into a Go func of type F. It reports
// false, leaving the func nil, for a zero address.
func Bind[F any](addr uintptr) (F, bool) {
	var fn F
	if addr == 0 {
		return fn, false
	}
	bind(&fn, addr)
	return fn, true
}

// Count reports how many commands of table are bound, and how many the
// table type declares.
func Count[T any](table *T) (loaded, total int) {
	v := reflect.ValueOf(table).Elem()
	fields := layoutOf(v.Type())
	for _, f := range fields {
		if !v.Field(f.index).IsNil() {
			loaded++
		}
	}
	return loaded, len(fields)
}

// Names lists the command names declared by table type T, in field order.
func Names[T any]() []string {
	fields := layoutOf(reflect.TypeFor[T]())
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.name
	}
	return out
}

// GetInstanceProcAddrFunc is vkGetInstanceProcAddr.
type GetInstanceProcAddrFunc func(instance vk.Instance, name *byte) uintptr

// GetDeviceProcAddrFunc is vkGetDeviceProcAddr.
type GetDeviceProcAddrFunc func(device vk.Device, name *byte) uintptr

// Resolve looks name up for instance.
func (f GetInstanceProcAddrFunc) Resolve(instance vk.Instance, name string) uintptr {
	return f(instance, vk.CString(name))
}

// Resolve looks name up for device.
func (f GetDeviceProcAddrFunc) Resolve(device vk.Device, name string) uintptr {
	return f(device, vk.CString(name))
}

// GetInstanceProcAddr binds a raw vkGetInstanceProcAddr address.
func GetInstanceProcAddr(addr uintptr) (GetInstanceProcAddrFunc, bool) {
	return Bind[GetInstanceProcAddrFunc](addr)
}

// GetDeviceProcAddr binds a raw vkGetDeviceProcAddr address.
func GetDeviceProcAddr(addr uintptr) (GetDeviceProcAddrFunc, bool) {
	return Bind[GetDeviceProcAddrFunc](addr)
}

// LoadEntry builds the global table through gipa with a null instance.
func LoadEntry(gipa GetInstanceProcAddrFunc) (*EntryCommands, error) {
	return Load[EntryCommands](LevelEntry, func(name string) uintptr {
		return gipa.Resolve(vk.NullHandle, name)
	})
}

// LoadInstance builds the table of instance through gipa.
func LoadInstance(gipa GetInstanceProcAddrFunc, instance vk.Instance) (*InstanceCommands, error) {
	return Load[InstanceCommands](LevelInstance, func(name string) uintptr {
		return gipa.Resolve(instance, name)
	})
}

// LoadDevice builds the table of device through gdpa.
func LoadDevice(gdpa GetDeviceProcAddrFunc, device vk.Device) (*DeviceCommands, error) {
	return Load[DeviceCommands](LevelDevice, func(name string) uintptr {
		return gdpa.Resolve(device, name)
	})
}
