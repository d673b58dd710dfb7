// Package names holds the extension and layer names a Vulkan object was
// created with.
//
// Names travel through the C ABI as NUL-terminated strings inside
// fixed-capacity arrays. Only the bytes up to the first NUL are meaningful,
// so a [Name] zeroes everything after the terminator on construction and
// plain == comparison and map hashing agree with C string semantics.
package names

import (
	"bytes"
	"iter"
	"maps"
	"slices"
	"unsafe"

	"github.com/gogpu/vulkan/vk"
)

// Name is a fixed-capacity NUL-terminated name, sized like
// VK_MAX_EXTENSION_NAME_SIZE. The zero value is the empty name.
type Name [vk.MaxExtensionNameSize]byte

// FromBytes builds a Name from b, keeping bytes up to the first NUL. Input
// longer than the capacity is truncated so that a terminator always fits.
func FromBytes(b []byte) Name {
	var n Name
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	copy(n[:len(n)-1], b)
	return n
}

// FromString builds a Name from s with the same rules as FromBytes.
func FromString(s string) Name {
	return FromBytes([]byte(s))
}

// Bytes returns the name without its terminator.
func (n Name) Bytes() []byte {
	if i := bytes.IndexByte(n[:], 0); i >= 0 {
		return n[:i]
	}
	return n[:]
}

// String returns the name as a Go string.
func (n Name) String() string {
	return string(n.Bytes())
}

// fromC copies a C string of at most len(Name)-1 bytes.
func fromC(p *byte) Name {
	var n Name
	if p == nil {
		return n
	}
	base := unsafe.Pointer(p)
	for i := 0; i < len(n)-1; i++ {
		c := *(*byte)(unsafe.Add(base, i))
		if c == 0 {
			break
		}
		n[i] = c
	}
	return n
}

// Set is an immutable set of names. The zero value is an empty set and is
// safe for concurrent reads.
type Set struct {
	m map[Name]struct{}
}

// New builds a set from Go strings.
func New(list ...string) Set {
	s := Set{m: make(map[Name]struct{}, len(list))}
	for _, name := range list {
		s.m[FromString(name)] = struct{}{}
	}
	return s
}

// FromRaw builds a set from the (count, array of C strings) pair found in
// create-info structs such as vk.InstanceCreateInfo. A nil array or a zero
// count yields an empty set without touching memory. Nil entries are
// skipped.
func FromRaw(count uint32, strings **byte) Set {
	if strings == nil || count == 0 {
		return Set{}
	}
	list := unsafe.Slice(strings, count)
	s := Set{m: make(map[Name]struct{}, count)}
	for _, p := range list {
		if p == nil {
			continue
		}
		s.m[fromC(p)] = struct{}{}
	}
	return s
}

// FromProperties builds a set from the names of extension properties
// returned by an enumeration call.
func FromProperties(props []vk.ExtensionProperties) Set {
	s := Set{m: make(map[Name]struct{}, len(props))}
	for i := range props {
		s.m[FromBytes(props[i].ExtensionName[:])] = struct{}{}
	}
	return s
}

// FromLayerProperties builds a set from the names of layer properties.
func FromLayerProperties(props []vk.LayerProperties) Set {
	s := Set{m: make(map[Name]struct{}, len(props))}
	for i := range props {
		s.m[FromBytes(props[i].LayerName[:])] = struct{}{}
	}
	return s
}

// Has reports whether n is in the set.
func (s Set) Has(n Name) bool {
	_, ok := s.m[n]
	return ok
}

// Contains reports whether the named entry is in the set.
func (s Set) Contains(name string) bool {
	return s.Has(FromString(name))
}

// Len returns the number of distinct names.
func (s Set) Len() int { return len(s.m) }

// All iterates the names in unspecified order.
func (s Set) All() iter.Seq[Name] {
	return maps.Keys(s.m)
}

// Sorted returns the names as sorted Go strings.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for n := range s.m {
		out = append(out, n.String())
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both sets hold the same names.
func (s Set) Equal(other Set) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for n := range s.m {
		if !other.Has(n) {
			return false
		}
	}
	return true
}
