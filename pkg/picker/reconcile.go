// Package picker implements the media picking core: permission
// reconciliation, orchestration of camera and gallery operations over a
// capability provider, result normalization, and batch persistence of
// picked assets into durable storage.
//
// Every picking operation has exactly two outcomes: obtained (a result with
// assets, possibly empty) and not obtained (a cancel-shaped result).
// Permission denial, provider failure, and genuine user cancellation all
// fold into the latter; causes are reported through the errors package but
// never surfaced on the picking result.
package picker

import (
	"github.com/nextcore/mediakit/pkg/media"
	"github.com/nextcore/mediakit/pkg/provider"
)

// Reconcile maps a provider-native permission status into the library's
// three-state vocabulary. Only a positively confirmed grant reconciles to
// Granted; limited stays a distinct partial grant; everything else,
// including "undetermined" and unrecognized future statuses, reconciles to
// Denied (fail-closed). Total and side-effect-free.
func Reconcile(status provider.Status) media.LibraryPermission {
	switch status {
	case provider.StatusGranted:
		return media.PermissionGranted
	case provider.StatusLimited:
		return media.PermissionLimited
	default:
		return media.PermissionDenied
	}
}
