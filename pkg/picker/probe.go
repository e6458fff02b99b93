package picker

import (
	"image"
	"io"
	"os"
	"strings"

	// Header decoders for the formats gallery providers commonly return.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/nextcore/mediakit/pkg/errors"
	"github.com/nextcore/mediakit/pkg/media"
)

// Probe fills missing dimensions on image assets by decoding the image
// header of locally readable files. It only runs when the provider reported
// both dimensions as zero, and never overrides reported values.
type Probe struct {
	open func(path string) (io.ReadCloser, error)
}

// NewProbe creates a probe reading from the local filesystem.
func NewProbe() *Probe {
	return &Probe{
		open: func(path string) (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewProbeWithOpener creates a probe with a custom file opener, for tests
// or virtual filesystems.
func NewProbeWithOpener(open func(path string) (io.ReadCloser, error)) *Probe {
	return &Probe{open: open}
}

// fill decodes the asset's image header and fills Width, Height, and, when
// unreported, MimeType. Failures leave the asset untouched.
func (p *Probe) fill(a *media.Asset) {
	if a.Type != media.TypeImage || a.Width != 0 || a.Height != 0 {
		return
	}
	path, ok := localPath(a.URI)
	if !ok {
		return
	}

	rc, err := p.open(path)
	if err != nil {
		return
	}
	defer rc.Close()

	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		errors.Report(&errors.MediaError{
			Op:   "picker.probe",
			Kind: errors.KindParsing,
			Err:  err,
		})
		return
	}

	a.Width = cfg.Width
	a.Height = cfg.Height
	if a.MimeType == "" && format != "" {
		a.MimeType = "image/" + format
	}
}

// localPath extracts a filesystem path from a transient URI. Plain paths
// and file:// URIs qualify; any other scheme does not.
func localPath(uri string) (string, bool) {
	if uri == "" {
		return "", false
	}
	if rest, ok := strings.CutPrefix(uri, "file://"); ok {
		return rest, rest != ""
	}
	if strings.Contains(uri, "://") {
		return "", false
	}
	return uri, true
}
