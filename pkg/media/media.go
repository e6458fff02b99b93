// Package media defines the stable vocabulary shared by pickers, providers,
// and callers: media types, quality presets, permission states, picker and
// camera options, and picked-asset results.
package media

// Type specifies the kind of media to pick.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
	TypeAll   Type = "all"
)

// Quality is a compression hint in [0,1] passed through to the capability
// provider. It is not validated against asset content.
type Quality float64

// Named quality presets.
const (
	QualityLow    Quality = 0.3
	QualityMedium Quality = 0.7
	QualityHigh   Quality = 1.0
)

// LibraryPermission is the reconciled permission state for a capability
// domain. Any provider status that cannot be positively confirmed as granted
// reconciles to Denied. Limited is a distinct partial-grant state and is
// never upgraded to Granted.
type LibraryPermission string

const (
	PermissionGranted LibraryPermission = "granted"
	PermissionDenied  LibraryPermission = "denied"
	PermissionLimited LibraryPermission = "limited"
)

// Native media-type tags understood by capability providers.
const (
	nativeImages = "images"
	nativeVideos = "videos"
)

// NativeTypes translates a Type into the provider's native media-type tags.
// The "all" type is the union of images and videos, not a distinct native
// tag. Unrecognized types default to images.
func NativeTypes(t Type) []string {
	switch t {
	case TypeVideo:
		return []string{nativeVideos}
	case TypeAll:
		return []string{nativeImages, nativeVideos}
	default:
		return []string{nativeImages}
	}
}

// TypeFromNative normalizes a provider-native asset type string. Anything
// that is not exactly a video tag is treated as an image.
func TypeFromNative(native string) Type {
	switch native {
	case "video", nativeVideos:
		return TypeVideo
	default:
		return TypeImage
	}
}
