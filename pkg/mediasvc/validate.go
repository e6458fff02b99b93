package mediasvc

import (
	"errors"
	"fmt"
	"slices"
)

// Validation errors for upload requests.
var (
	// ErrMissingURI indicates the request has no file locator.
	ErrMissingURI = errors.New("upload request has no uri")

	// ErrTooLarge indicates the file exceeds the configured size limit.
	ErrTooLarge = errors.New("file exceeds maximum upload size")

	// ErrUnsupportedType indicates the file's MIME type is not allowed.
	ErrUnsupportedType = errors.New("unsupported media type")
)

// Limits validates upload requests against a backend's constraints before
// any bytes are transferred.
type Limits struct {
	// MaxSize is the maximum allowed file size in bytes. Zero means no limit.
	MaxSize int64
	// AllowedMIME lists acceptable MIME types. Empty means all are accepted.
	AllowedMIME []string
}

// Validate checks the request's metadata. A zero Size or empty MimeType is
// not rejected; only positively known violations fail.
func (l Limits) Validate(req UploadRequest) error {
	if req.URI == "" {
		return ErrMissingURI
	}
	if l.MaxSize > 0 && req.Size > l.MaxSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, req.Size, l.MaxSize)
	}
	if len(l.AllowedMIME) > 0 && req.MimeType != "" && !slices.Contains(l.AllowedMIME, req.MimeType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, req.MimeType)
	}
	return nil
}
