package provider

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nextcore/mediakit/pkg/bridge"
	mkerrors "github.com/nextcore/mediakit/pkg/errors"
)

// Channel names spoken by the default providers.
const (
	pickerChannelName            = "mediakit/picker"
	pickerResultChannelName      = "mediakit/picker/result"
	permissionsChannelName       = "mediakit/permissions"
	permissionChangesChannelName = "mediakit/permissions/changes"
	storageChannelName           = "mediakit/storage"
)

// Permission domain names on the permissions channel.
const (
	permissionCamera = "camera"
	permissionPhotos = "photos"
)

// DefaultPermissionTimeout bounds permission requests whose context carries
// no deadline.
const DefaultPermissionTimeout = 30 * time.Second

// ErrBusy is returned when a picker or camera dialog is already in progress.
var ErrBusy = errors.New("picker operation already in progress")

// ChannelCapability is the default Capability implementation. It talks to
// the native host over the mediakit picker and permissions channels;
// picker results arrive on an event channel correlated by request ID.
type ChannelCapability struct {
	permissions *bridge.MethodChannel
	changes     *bridge.EventChannel
	picker      *bridge.MethodChannel
	results     *bridge.EventChannel

	// Serializes permission dialogs; only one can be shown at a time.
	requestMu sync.Mutex
	// Serializes picker and camera dialogs.
	pickMu sync.Mutex
}

// NewChannelCapability creates a capability provider bound to the standard
// mediakit channels.
func NewChannelCapability() *ChannelCapability {
	return &ChannelCapability{
		permissions: bridge.NewMethodChannel(permissionsChannelName),
		changes:     bridge.NewEventChannel(permissionChangesChannelName),
		picker:      bridge.NewMethodChannel(pickerChannelName),
		results:     bridge.NewEventChannel(pickerResultChannelName),
	}
}

// RequestCameraPermission prompts for camera access if not yet decided.
func (c *ChannelCapability) RequestCameraPermission(ctx context.Context) (Status, error) {
	return c.request(ctx, permissionCamera)
}

// CameraPermissionStatus reads the camera permission state without prompting.
func (c *ChannelCapability) CameraPermissionStatus(ctx context.Context) (Status, error) {
	return c.status(ctx, permissionCamera)
}

// RequestLibraryPermission prompts for photo-library access if not yet decided.
func (c *ChannelCapability) RequestLibraryPermission(ctx context.Context) (Status, error) {
	return c.request(ctx, permissionPhotos)
}

// LibraryPermissionStatus reads the photo-library permission state without prompting.
func (c *ChannelCapability) LibraryPermissionStatus(ctx context.Context) (Status, error) {
	return c.status(ctx, permissionPhotos)
}

func (c *ChannelCapability) status(ctx context.Context, name string) (Status, error) {
	if err := ctx.Err(); err != nil {
		return StatusUnknown, err
	}
	result, err := c.permissions.Invoke("check", map[string]any{
		"permission": name,
	})
	if err != nil {
		return StatusUnknown, err
	}
	return parseStatus(result), nil
}

// isTerminalStatus returns true if the status won't change from showing a
// permission dialog.
func isTerminalStatus(status Status) bool {
	switch status {
	case StatusGranted, StatusLimited, StatusRestricted, StatusPermanentlyDenied:
		return true
	default:
		return false
	}
}

func (c *ChannelCapability) request(ctx context.Context, name string) (Status, error) {
	c.requestMu.Lock()
	defer c.requestMu.Unlock()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPermissionTimeout)
		defer cancel()
	}

	// Return immediately if already in terminal state
	currentStatus, err := c.status(ctx, name)
	if err != nil {
		return StatusUnknown, err
	}
	if isTerminalStatus(currentStatus) {
		return currentStatus, nil
	}

	// Subscribe BEFORE triggering the native request to avoid a race with
	// the change event.
	resultChan := make(chan Status, 1)
	sub := c.changes.Listen(bridge.EventHandler{
		OnEvent: func(data any) {
			changed, status := parseStatusChange(data)
			if changed == name {
				select {
				case resultChan <- status:
				default:
				}
			}
		},
		OnError: func(err error) {
			mkerrors.Report(&mkerrors.MediaError{
				Op:      "provider.requestPermission",
				Kind:    mkerrors.KindPermission,
				Channel: permissionChangesChannelName,
				Err:     err,
			})
		},
	})
	defer sub.Cancel()

	// Trigger native request
	_, err = c.permissions.Invoke("request", map[string]any{"permission": name})
	if err != nil {
		return StatusUnknown, err
	}

	// Wait for result or timeout
	select {
	case result := <-resultChan:
		return result, nil
	case <-ctx.Done():
		// Re-check status in case we missed the event; the context is done
		// here, so the check runs detached from it.
		if finalStatus, err := c.status(context.WithoutCancel(ctx), name); err == nil && isTerminalStatus(finalStatus) {
			return finalStatus, nil
		}
		if ctx.Err() == context.DeadlineExceeded {
			return StatusUnknown, bridge.ErrTimeout
		}
		return StatusUnknown, bridge.ErrCanceled
	}
}

// LaunchCamera shows the native camera and blocks until a result arrives or
// the context is done. Returns ErrBusy if a dialog is already in progress.
func (c *ChannelCapability) LaunchCamera(ctx context.Context, req CameraRequest) (PickResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = CameraModePhoto
	}
	return c.invokePicker(ctx, "launchCamera", map[string]any{
		"mode":               mode,
		"quality":            req.Quality,
		"allowsEditing":      req.AllowsEditing,
		"aspectWidth":        req.AspectWidth,
		"aspectHeight":       req.AspectHeight,
		"base64":             req.Base64,
		"maxDurationSeconds": req.MaxDurationSeconds,
	})
}

// LaunchLibraryPicker shows the native gallery picker and blocks until a
// result arrives or the context is done. Returns ErrBusy if a dialog is
// already in progress.
func (c *ChannelCapability) LaunchLibraryPicker(ctx context.Context, req PickRequest) (PickResult, error) {
	return c.invokePicker(ctx, "launchPicker", map[string]any{
		"mediaTypes":     req.MediaTypes,
		"allowsEditing":  req.AllowsEditing,
		"allowMultiple":  req.AllowsMultipleSelection,
		"aspectWidth":    req.AspectWidth,
		"aspectHeight":   req.AspectHeight,
		"quality":        req.Quality,
		"selectionLimit": req.SelectionLimit,
	})
}

// invokePicker serializes dialog operations, subscribes to the result event
// channel filtered by a generated request ID, invokes the native method,
// and blocks until a matching result arrives or the context is canceled.
func (c *ChannelCapability) invokePicker(ctx context.Context, method string, args map[string]any) (PickResult, error) {
	if !c.pickMu.TryLock() {
		return PickResult{}, ErrBusy
	}
	defer c.pickMu.Unlock()

	requestID := uuid.NewString()

	resultChan := make(chan PickResult, 1)
	errChan := make(chan error, 1)
	sub := c.results.Listen(bridge.EventHandler{
		OnEvent: func(data any) {
			result, id, err := parsePickResult(data)
			if err != nil {
				mkerrors.Report(&mkerrors.MediaError{
					Op:      "provider.parsePickResult",
					Kind:    mkerrors.KindParsing,
					Channel: pickerResultChannelName,
					Err:     err,
				})
				return
			}
			if id == requestID {
				select {
				case resultChan <- result:
				default:
				}
			}
		},
		OnError: func(err error) {
			select {
			case errChan <- err:
			default:
			}
		},
	})
	defer sub.Cancel()

	args["requestId"] = requestID

	_, err := c.picker.Invoke(method, args)
	if err != nil {
		return PickResult{}, err
	}

	select {
	case result := <-resultChan:
		return result, nil
	case err := <-errChan:
		return PickResult{}, err
	case <-ctx.Done():
		return PickResult{}, ctx.Err()
	}
}

func parseStatus(result any) Status {
	if m := bridge.Map(result); m != nil {
		if status := bridge.String(m["status"]); status != "" {
			return Status(status)
		}
	}
	return StatusUnknown
}

func parseStatusChange(data any) (permission string, status Status) {
	m := bridge.Map(data)
	if m == nil {
		return "", StatusUnknown
	}
	return bridge.String(m["permission"]), Status(bridge.String(m["status"]))
}

func parsePickResult(data any) (PickResult, string, error) {
	m := bridge.Map(data)
	if m == nil {
		return PickResult{}, "", &mkerrors.ParseError{
			Channel:  pickerResultChannelName,
			DataType: "PickResult",
			Got:      data,
		}
	}

	requestID := bridge.String(m["requestId"])
	if requestID == "" {
		return PickResult{}, "", &mkerrors.ParseError{
			Channel:  pickerResultChannelName,
			DataType: "PickResult",
			Got:      data,
		}
	}

	result := PickResult{
		Canceled: bridge.Bool(m["cancelled"]),
	}

	if assets, ok := m["assets"].([]any); ok {
		for _, a := range assets {
			if am := bridge.Map(a); am != nil {
				result.Assets = append(result.Assets, RawAsset{
					URI:             bridge.String(am["uri"]),
					Width:           bridge.Int(am["width"]),
					Height:          bridge.Int(am["height"]),
					Type:            bridge.String(am["type"]),
					FileSize:        bridge.Int64(am["fileSize"]),
					FileName:        bridge.String(am["fileName"]),
					DurationSeconds: bridge.Float64(am["duration"]),
					Base64:          bridge.String(am["base64"]),
					MimeType:        bridge.String(am["mimeType"]),
				})
			}
		}
	}

	return result, requestID, nil
}

// ChannelStorage is the default Storage implementation. Copies run as plain
// method calls on the mediakit storage channel; no dialog is involved.
type ChannelStorage struct {
	channel *bridge.MethodChannel
}

// NewChannelStorage creates a storage provider bound to the standard
// mediakit storage channel.
func NewChannelStorage() *ChannelStorage {
	return &ChannelStorage{
		channel: bridge.NewMethodChannel(storageChannelName),
	}
}

// CopyToPermanentStorage copies a transient URI into durable storage. The
// filename is a hint; the provider may rename to avoid collisions.
func (s *ChannelStorage) CopyToPermanentStorage(ctx context.Context, uri, filename string) (CopyResult, error) {
	if err := ctx.Err(); err != nil {
		return CopyResult{}, err
	}
	result, err := s.channel.Invoke("copyToPermanentStorage", map[string]any{
		"uri":      uri,
		"filename": filename,
	})
	if err != nil {
		return CopyResult{}, err
	}
	m := bridge.Map(result)
	if m == nil {
		return CopyResult{}, &mkerrors.ParseError{
			Channel:  storageChannelName,
			DataType: "CopyResult",
			Got:      result,
		}
	}
	return CopyResult{
		OK:  bridge.Bool(m["success"]),
		URI: bridge.String(m["uri"]),
	}, nil
}
