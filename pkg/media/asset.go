package media

import "time"

// Asset is one picked item. It is constructed once from provider-native
// output and never mutated afterwards; callers own any copy they make.
//
// URI, Width, Height, and Type are always populated. The remaining fields
// are optional: a zero value means the provider did not report them.
type Asset struct {
	// URI is an opaque transient locator, valid for the current session only.
	URI string
	// Width and Height are the asset's pixel dimensions.
	Width  int
	Height int
	// Type is the normalized media kind, image or video.
	Type Type
	// FileSize is the asset size in bytes, when reported.
	FileSize int64
	// FileName is the display name, when reported.
	FileName string
	// Duration is the playback length for video assets, when reported.
	Duration time.Duration
	// Base64 is an inline payload, when requested and reported.
	Base64 string
	// MimeType is the asset's MIME type, when reported.
	MimeType string
}

// PickerResult is the outcome of a picking operation. Exactly one of two
// shapes is possible: canceled (Assets must not be read), or not canceled
// with a non-nil, possibly empty, provider-ordered asset sequence.
type PickerResult struct {
	Canceled bool
	Assets   []Asset
}

// Canceled returns the cancel-shaped result. Permission denial, provider
// failure, and genuine user cancellation all fold into this value.
func Canceled() PickerResult {
	return PickerResult{Canceled: true}
}

// Picked wraps assets in a non-canceled result. A nil slice becomes an
// empty one so callers can range over Assets without a nil check.
func Picked(assets []Asset) PickerResult {
	if assets == nil {
		assets = []Asset{}
	}
	return PickerResult{Assets: assets}
}
