package media

import "time"

// Default option values applied when a field is left at its zero value.
const (
	DefaultSelectionLimit = 10
	DefaultQuality        = QualityHigh
)

// Aspect is a width:height cropping ratio.
type Aspect struct {
	Width  int
	Height int
}

// PickerOptions configures gallery picking behavior. All fields are
// optional; zero values mean "use the default", never an error.
type PickerOptions struct {
	// Types selects which media kinds the picker offers. Default: image.
	Types Type
	// AllowsEditing enables the native crop/trim step. Default: false.
	AllowsEditing bool
	// AllowsMultipleSelection enables picking more than one asset. Default: false.
	AllowsMultipleSelection bool
	// Aspect is an optional crop ratio. No default.
	Aspect *Aspect
	// Quality is the compression hint. Default: QualityHigh.
	Quality Quality
	// SelectionLimit caps multi-selection. Default: 10.
	SelectionLimit int
}

// WithDefaults returns a copy with zero-valued fields replaced by their
// documented defaults.
func (o PickerOptions) WithDefaults() PickerOptions {
	if o.Types == "" {
		o.Types = TypeImage
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.SelectionLimit == 0 {
		o.SelectionLimit = DefaultSelectionLimit
	}
	return o
}

// CameraOptions configures camera capture behavior. All fields are optional.
type CameraOptions struct {
	// Quality is the compression hint. Default: QualityHigh.
	Quality Quality
	// AllowsEditing enables the native crop/trim step. Default: false.
	AllowsEditing bool
	// Aspect is an optional crop ratio. No default.
	Aspect *Aspect
	// Base64 requests an inline base64 payload on the captured asset. Default: false.
	Base64 bool
	// VideoMaxDuration caps video capture length. Zero means unbounded.
	VideoMaxDuration time.Duration
}

// WithDefaults returns a copy with zero-valued fields replaced by their
// documented defaults.
func (o CameraOptions) WithDefaults() CameraOptions {
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	return o
}
