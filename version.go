package vulkan

import (
	"fmt"

	"github.com/gogpu/vulkan/vk"
)

// Version is a Vulkan API version. When the implementation cannot report a
// patch level (Vulkan 1.0 loaders without vkEnumerateInstanceVersion),
// HasPatch is false.
type Version struct {
	Major    uint32
	Minor    uint32
	Patch    uint32
	HasPatch bool
}

// Version10 is reported by loaders that predate vkEnumerateInstanceVersion.
var Version10 = Version{Major: 1, Minor: 0}

// VersionFromAPI decodes a packed VK_MAKE_API_VERSION value.
func VersionFromAPI(v uint32) Version {
	return Version{
		Major:    vk.APIVersionMajor(v),
		Minor:    vk.APIVersionMinor(v),
		Patch:    vk.APIVersionPatch(v),
		HasPatch: true,
	}
}

// API packs v. An unknown patch level is encoded as 0.
func (v Version) API() uint32 {
	return vk.MakeAPIVersion(0, v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor uint32) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

func (v Version) String() string {
	if !v.HasPatch {
		return fmt.Sprintf("%d.%d.?", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
