package picker

import (
	"context"
	"time"

	"github.com/nextcore/mediakit/pkg/errors"
	"github.com/nextcore/mediakit/pkg/media"
	"github.com/nextcore/mediakit/pkg/provider"
)

// Picker orchestrates picking operations over a capability provider and an
// optional storage provider. It holds no mutable state; every operation is
// a single caller-driven flow with one suspension at the provider call.
type Picker struct {
	capability provider.Capability
	storage    provider.Storage
	probe      *Probe
}

// Option configures a Picker.
type Option func(*Picker)

// WithStorage attaches a storage provider for the persistence operations.
func WithStorage(s provider.Storage) Option {
	return func(p *Picker) { p.storage = s }
}

// WithProbe attaches a dimension probe that fills missing image dimensions
// on mapped assets.
func WithProbe(pr *Probe) Option {
	return func(p *Picker) { p.probe = pr }
}

// New creates a Picker over the given capability provider.
func New(capability provider.Capability, opts ...Option) *Picker {
	p := &Picker{capability: capability}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PickImage picks a single image from the gallery. Multi-selection is
// forced off regardless of the caller-supplied option.
func (p *Picker) PickImage(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	opts.AllowsMultipleSelection = false
	return p.pick(ctx, "picker.PickImage", opts)
}

// PickImages picks multiple images from the gallery. Multi-selection is
// forced on regardless of the caller-supplied option.
func (p *Picker) PickImages(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	opts.AllowsMultipleSelection = true
	return p.pick(ctx, "picker.PickImages", opts)
}

// PickVideo picks a video from the gallery.
func (p *Picker) PickVideo(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	opts.Types = media.TypeVideo
	return p.pick(ctx, "picker.PickVideo", opts)
}

// PickMedia picks any media from the gallery.
func (p *Picker) PickMedia(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	opts.Types = media.TypeAll
	return p.pick(ctx, "picker.PickMedia", opts)
}

// pick sequences permission request, provider invocation, and result
// mapping. All failure is expressed as a cancel-shaped result; nothing
// raised by a collaborator escapes this boundary.
func (p *Picker) pick(ctx context.Context, op string, opts media.PickerOptions) (result media.PickerResult) {
	result = media.Canceled()
	defer errors.Recover(op)

	status, err := p.capability.RequestLibraryPermission(ctx)
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindPermission, Err: err})
		return media.Canceled()
	}
	if Reconcile(status) == media.PermissionDenied {
		return media.Canceled()
	}

	raw, err := p.capability.LaunchLibraryPicker(ctx, pickRequest(opts.WithDefaults()))
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindPlatform, Err: err})
		return media.Canceled()
	}
	return p.mapResult(raw)
}

// CapturePhoto launches the camera to take a photo.
func (p *Picker) CapturePhoto(ctx context.Context, opts media.CameraOptions) media.PickerResult {
	return p.capture(ctx, "picker.CapturePhoto", provider.CameraModePhoto, opts)
}

// CaptureVideo launches the camera to record a video.
func (p *Picker) CaptureVideo(ctx context.Context, opts media.CameraOptions) media.PickerResult {
	return p.capture(ctx, "picker.CaptureVideo", provider.CameraModeVideo, opts)
}

func (p *Picker) capture(ctx context.Context, op, mode string, opts media.CameraOptions) (result media.PickerResult) {
	result = media.Canceled()
	defer errors.Recover(op)

	status, err := p.capability.RequestCameraPermission(ctx)
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindPermission, Err: err})
		return media.Canceled()
	}
	if Reconcile(status) == media.PermissionDenied {
		return media.Canceled()
	}

	raw, err := p.capability.LaunchCamera(ctx, cameraRequest(mode, opts.WithDefaults()))
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindPlatform, Err: err})
		return media.Canceled()
	}
	return p.mapResult(raw)
}

// RequestCameraPermission prompts for camera access and returns the
// reconciled state. Infrastructure failures reconcile to Denied.
func (p *Picker) RequestCameraPermission(ctx context.Context) media.LibraryPermission {
	return p.permission(ctx, "picker.RequestCameraPermission", p.capability.RequestCameraPermission)
}

// RequestLibraryPermission prompts for photo-library access and returns the
// reconciled state. Infrastructure failures reconcile to Denied.
func (p *Picker) RequestLibraryPermission(ctx context.Context) media.LibraryPermission {
	return p.permission(ctx, "picker.RequestLibraryPermission", p.capability.RequestLibraryPermission)
}

// CameraPermissionStatus reads the current camera permission state without
// prompting. Infrastructure failures reconcile to Denied.
func (p *Picker) CameraPermissionStatus(ctx context.Context) media.LibraryPermission {
	return p.permission(ctx, "picker.CameraPermissionStatus", p.capability.CameraPermissionStatus)
}

// LibraryPermissionStatus reads the current photo-library permission state
// without prompting. Infrastructure failures reconcile to Denied.
func (p *Picker) LibraryPermissionStatus(ctx context.Context) media.LibraryPermission {
	return p.permission(ctx, "picker.LibraryPermissionStatus", p.capability.LibraryPermissionStatus)
}

func (p *Picker) permission(ctx context.Context, op string, fn func(context.Context) (provider.Status, error)) (state media.LibraryPermission) {
	state = media.PermissionDenied
	defer errors.Recover(op)

	status, err := fn(ctx)
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindPermission, Err: err})
		return media.PermissionDenied
	}
	return Reconcile(status)
}

// pickRequest translates normalized options into the provider's native
// shape. Direct field mapping; the only logic is the media-type table.
func pickRequest(opts media.PickerOptions) provider.PickRequest {
	req := provider.PickRequest{
		MediaTypes:              media.NativeTypes(opts.Types),
		AllowsEditing:           opts.AllowsEditing,
		AllowsMultipleSelection: opts.AllowsMultipleSelection,
		Quality:                 float64(opts.Quality),
		SelectionLimit:          opts.SelectionLimit,
	}
	if opts.Aspect != nil {
		req.AspectWidth = opts.Aspect.Width
		req.AspectHeight = opts.Aspect.Height
	}
	return req
}

func cameraRequest(mode string, opts media.CameraOptions) provider.CameraRequest {
	req := provider.CameraRequest{
		Mode:               mode,
		Quality:            float64(opts.Quality),
		AllowsEditing:      opts.AllowsEditing,
		Base64:             opts.Base64,
		MaxDurationSeconds: opts.VideoMaxDuration.Seconds(),
	}
	if opts.Aspect != nil {
		req.AspectWidth = opts.Aspect.Width
		req.AspectHeight = opts.Aspect.Height
	}
	return req
}

// mapResult projects a provider-native pick result into the library shape.
// Cancellation short-circuits; otherwise assets are projected in provider
// order with native type strings normalized, and optional fields carried
// over as-is (zero means unreported).
func (p *Picker) mapResult(raw provider.PickResult) media.PickerResult {
	if raw.Canceled {
		return media.Canceled()
	}

	assets := make([]media.Asset, 0, len(raw.Assets))
	for _, a := range raw.Assets {
		asset := media.Asset{
			URI:      a.URI,
			Width:    a.Width,
			Height:   a.Height,
			Type:     media.TypeFromNative(a.Type),
			FileSize: a.FileSize,
			FileName: a.FileName,
			Base64:   a.Base64,
			MimeType: a.MimeType,
		}
		if a.DurationSeconds > 0 {
			asset.Duration = time.Duration(a.DurationSeconds * float64(time.Second))
		}
		if p.probe != nil {
			p.probe.fill(&asset)
		}
		assets = append(assets, asset)
	}
	return media.Picked(assets)
}
