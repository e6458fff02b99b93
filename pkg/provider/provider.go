// Package provider defines the collaborator boundary the picker core sits
// on: a capability provider that owns the native camera/gallery UI and
// permission dialogs, and a storage provider that copies transient picker
// URIs into durable storage. Default implementations speak to the native
// host over mediakit bridge channels; applications may substitute their own.
package provider

import "context"

// Status is the provider-native permission vocabulary. It is an open set:
// providers may report values beyond the constants below, and callers must
// treat anything unrecognized as not granted.
type Status string

const (
	// StatusGranted indicates full access has been granted.
	StatusGranted Status = "granted"

	// StatusDenied indicates the user denied the permission.
	StatusDenied Status = "denied"

	// StatusUndetermined indicates the user has not yet been asked.
	StatusUndetermined Status = "undetermined"

	// StatusLimited indicates partial access (iOS only): the user selected
	// specific photos rather than granting full library access.
	StatusLimited Status = "limited"

	// StatusRestricted indicates a system policy prevents granting
	// (parental controls, MDM). No dialog will be shown.
	StatusRestricted Status = "restricted"

	// StatusPermanentlyDenied indicates the user denied with "don't ask
	// again" (Android) or denied twice (iOS).
	StatusPermanentlyDenied Status = "permanently_denied"

	// StatusUnknown indicates the status could not be determined.
	StatusUnknown Status = "unknown"
)

// RawAsset is one provider-native asset record. URI, Width, Height, and Type
// are expected; the rest are optional and zero when unreported.
type RawAsset struct {
	URI             string
	Width           int
	Height          int
	Type            string
	FileSize        int64
	FileName        string
	DurationSeconds float64
	Base64          string
	MimeType        string
}

// PickResult is a provider-native picking outcome: either canceled, or a
// list of asset records in the provider's reported order.
type PickResult struct {
	Canceled bool
	Assets   []RawAsset
}

// PickRequest carries gallery picker options in the provider's native shape.
type PickRequest struct {
	MediaTypes              []string
	AllowsEditing           bool
	AllowsMultipleSelection bool
	AspectWidth             int
	AspectHeight            int
	Quality                 float64
	SelectionLimit          int
}

// Camera capture modes.
const (
	CameraModePhoto = "photo"
	CameraModeVideo = "video"
)

// CameraRequest carries camera capture options in the provider's native shape.
type CameraRequest struct {
	Mode               string
	Quality            float64
	AllowsEditing      bool
	AspectWidth        int
	AspectHeight       int
	Base64             bool
	MaxDurationSeconds float64
}

// Capability is the boundary to the platform service that shows camera and
// gallery UI and reports permission state. Request methods may block on user
// interaction until the context is done.
type Capability interface {
	RequestCameraPermission(ctx context.Context) (Status, error)
	CameraPermissionStatus(ctx context.Context) (Status, error)
	RequestLibraryPermission(ctx context.Context) (Status, error)
	LibraryPermissionStatus(ctx context.Context) (Status, error)

	LaunchCamera(ctx context.Context, req CameraRequest) (PickResult, error)
	LaunchLibraryPicker(ctx context.Context, req PickRequest) (PickResult, error)
}

// CopyResult is the storage provider's answer to a single copy request.
type CopyResult struct {
	OK  bool
	URI string
}

// Storage is the boundary to the durable-storage service that copies a
// transient picker URI into a permanent location.
type Storage interface {
	CopyToPermanentStorage(ctx context.Context, uri, filename string) (CopyResult, error)
}
