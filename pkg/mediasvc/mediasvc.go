// Package mediasvc defines the boundary to an external multimedia backend:
// uploading picked files and submitting media generation requests. The
// interfaces keep the application core independent of the concrete service;
// implementations live with the application.
package mediasvc

import (
	"context"

	"github.com/google/uuid"

	"github.com/nextcore/mediakit/pkg/media"
)

// UploadRequest describes one file to upload, typically a picked asset that
// has already been copied to permanent storage.
type UploadRequest struct {
	// URI locates the file to upload.
	URI string
	// FileName is the display name, when known.
	FileName string
	// MimeType is the file's MIME type, when known.
	MimeType string
	// Size is the file size in bytes, when known.
	Size int64
}

// Upload is the backend's record of a completed upload.
type Upload struct {
	ID   uuid.UUID
	URL  string
	Size int64
}

// Uploader sends local files to the multimedia backend.
type Uploader interface {
	// UploadFile transfers one file and returns the backend's record of it.
	UploadFile(ctx context.Context, req UploadRequest) (Upload, error)
}

// GenerationRequest asks the backend to produce media from a prompt.
type GenerationRequest struct {
	// ID identifies the request for correlation and retry.
	ID uuid.UUID
	// Prompt is the generation instruction.
	Prompt string
	// Type selects the kind of media to generate.
	Type media.Type
}

// Generation is the backend's answer to a generation request.
type Generation struct {
	ID     uuid.UUID
	Assets []media.Asset
}

// Generator submits media generation work to the backend.
type Generator interface {
	// SubmitGenerationRequest sends one request and returns the generated
	// assets, or an error if generation fails.
	SubmitGenerationRequest(ctx context.Context, req GenerationRequest) (Generation, error)
}

// NewGenerationRequest creates a request with a fresh ID.
func NewGenerationRequest(prompt string, t media.Type) GenerationRequest {
	return GenerationRequest{
		ID:     uuid.New(),
		Prompt: prompt,
		Type:   t,
	}
}
