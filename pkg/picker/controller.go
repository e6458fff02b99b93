package picker

import (
	"context"
	"sync"

	"github.com/nextcore/mediakit/pkg/media"
)

// Controller is a thin observable-state wrapper around a Picker for UI
// bindings. It tracks a busy flag, the last result, and a descriptive
// message for persistence failures, and notifies listeners on every state
// change. The underlying picking contract is unchanged: a cancel-shaped
// result is not an error.
type Controller struct {
	picker *Picker

	mu        sync.Mutex
	busy      bool
	message   string
	result    media.PickerResult
	listeners map[int]func()
	nextID    int
}

// NewController creates a Controller over the given Picker.
func NewController(p *Picker) *Controller {
	return &Controller{
		picker:    p,
		result:    media.Canceled(),
		listeners: make(map[int]func()),
	}
}

// AddListener adds a callback that fires whenever the controller's state
// changes. It returns a function that removes the listener.
func (c *Controller) AddListener(fn func()) (remove func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Busy reports whether a picking or persistence operation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Message returns the last failure description, or "" when the last
// operation finished cleanly. A user cancellation is a clean finish.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Result returns the last picking result.
func (c *Controller) Result() media.PickerResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Controller) notify() {
	c.mu.Lock()
	subs := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		subs = append(subs, fn)
	}
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (c *Controller) begin() {
	c.mu.Lock()
	c.busy = true
	c.message = ""
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) finish(result media.PickerResult) {
	c.mu.Lock()
	c.busy = false
	c.result = result
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) run(op func() media.PickerResult) media.PickerResult {
	c.begin()
	result := op()
	c.finish(result)
	return result
}

// PickImage wraps Picker.PickImage with busy-state bookkeeping.
func (c *Controller) PickImage(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.PickImage(ctx, opts) })
}

// PickImages wraps Picker.PickImages with busy-state bookkeeping.
func (c *Controller) PickImages(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.PickImages(ctx, opts) })
}

// PickVideo wraps Picker.PickVideo with busy-state bookkeeping.
func (c *Controller) PickVideo(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.PickVideo(ctx, opts) })
}

// PickMedia wraps Picker.PickMedia with busy-state bookkeeping.
func (c *Controller) PickMedia(ctx context.Context, opts media.PickerOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.PickMedia(ctx, opts) })
}

// CapturePhoto wraps Picker.CapturePhoto with busy-state bookkeeping.
func (c *Controller) CapturePhoto(ctx context.Context, opts media.CameraOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.CapturePhoto(ctx, opts) })
}

// CaptureVideo wraps Picker.CaptureVideo with busy-state bookkeeping.
func (c *Controller) CaptureVideo(ctx context.Context, opts media.CameraOptions) media.PickerResult {
	return c.run(func() media.PickerResult { return c.picker.CaptureVideo(ctx, opts) })
}

// PersistPicked wraps Picker.PersistPicked. A failed copy records a
// descriptive message for the UI.
func (c *Controller) PersistPicked(ctx context.Context, uri, filename string) (string, bool) {
	c.begin()
	permanent, ok := c.picker.PersistPicked(ctx, uri, filename)

	c.mu.Lock()
	c.busy = false
	if !ok {
		c.message = "failed to save media"
	}
	c.mu.Unlock()
	c.notify()
	return permanent, ok
}

// PersistPickedBatch wraps Picker.PersistPickedBatch. Dropped copies record
// a descriptive message for the UI.
func (c *Controller) PersistPickedBatch(ctx context.Context, uris []string) []string {
	c.begin()
	saved := c.picker.PersistPickedBatch(ctx, uris)

	c.mu.Lock()
	c.busy = false
	if len(saved) < len(uris) {
		c.message = "some media could not be saved"
	}
	c.mu.Unlock()
	c.notify()
	return saved
}
