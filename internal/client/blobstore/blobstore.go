// Package blobstore uploads and deletes the binary media objects referenced
// by gallery documents. Objects live in an S3-compatible bucket; the locator
// returned on upload is the public URL of the object and is the only handle
// the rest of the system keeps.
package blobstore

import "context"

// BlobStore is the contract consumed by the upload pipeline and the gallery
// coordinator.
type BlobStore interface {
	// Upload stores data and returns a dereferenceable locator for it.
	Upload(ctx context.Context, data []byte, contentType string) (string, error)

	// Delete removes the blob with the given id. Deleting an id that no
	// longer exists is not an error.
	Delete(ctx context.Context, blobID string) error
}
