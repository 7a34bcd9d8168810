// Package client contains the client-side building blocks for talking to the
// Cap Check service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): fetch the
//     community feed, upload a photo post, probe reachability.
//  2. A concrete HTTP implementation (see HTTPClient) speaking JSON for the
//     feed and multipart/form-data for uploads.
//  3. Local persistence bootstrap (InitDatabase), opening the SQLite file and
//     applying the embedded goose migrations.
//
// # Error Handling
//
// Feed failures wrap ErrFeedLoad; reachability failures wrap ErrUnavailable.
// Upload failures are always *UploadError, carrying a user-facing Message and
// an UploadKind that separates server rejections from transport problems.
//
// # Identity
//
// WithIdentity stores the installation identity in a context; HTTPClient sends
// it in the X-User-Id header of feed requests.
package client
