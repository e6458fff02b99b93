package picker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nextcore/mediakit/pkg/errors"
)

// PersistPicked copies one transient URI into permanent storage. The
// returned bool is false when no storage provider is configured, the copy
// fails, or the provider reports no permanent URI; the cause is reported,
// not returned. A panicking provider counts as a failed copy.
func (p *Picker) PersistPicked(ctx context.Context, uri, filename string) (permanent string, ok bool) {
	const op = "picker.PersistPicked"
	if p.storage == nil {
		return "", false
	}
	defer errors.Recover(op)

	result, err := p.storage.CopyToPermanentStorage(ctx, uri, filename)
	if err != nil {
		errors.Report(&errors.MediaError{Op: op, Kind: errors.KindStorage, Err: err})
		return "", false
	}
	if !result.OK || result.URI == "" {
		return "", false
	}
	return result.URI, true
}

// PersistPickedBatch copies each transient URI into permanent storage. The
// copies run concurrently and the call waits for all of them; individual
// failures are dropped from the output, so the aggregate operation cannot
// fail, only under-return. Successes keep the input order. An empty input
// returns an empty sequence without touching the storage provider.
func (p *Picker) PersistPickedBatch(ctx context.Context, uris []string) []string {
	out := make([]string, 0, len(uris))
	if len(uris) == 0 || p.storage == nil {
		return out
	}

	results := make([]string, len(uris))
	persisted := make([]bool, len(uris))

	var g errgroup.Group
	for i, uri := range uris {
		i, uri := i, uri
		g.Go(func() error {
			// errgroup repropagates goroutine panics from Wait; recover here
			// so a panicking provider drops one item, not the whole batch.
			defer errors.Recover("picker.PersistPickedBatch")
			results[i], persisted[i] = p.PersistPicked(ctx, uri, "")
			return nil
		})
	}
	// Goroutines never return an error; Wait is a pure fan-in barrier.
	_ = g.Wait()

	for i := range uris {
		if persisted[i] {
			out = append(out, results[i])
		}
	}
	return out
}
