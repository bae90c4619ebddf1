// Package gallery orchestrates multi-step operations against the two
// independent stores a gallery spans: the document backend holding the
// gallery record and the blob store holding the media bytes. There is no
// cross-store transaction; each operation is a short saga whose ordering and
// failure behavior are chosen so that a user is never shown a gallery
// pointing at media that was known to be gone.
//
// Known limitation: gallery updates are read-modify-write with no version
// token, so two clients appending to the same gallery concurrently can lose
// one writer's additions (last write wins on the document; the blobs stay
// behind, orphaned).
package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bettybooth/bettybooth/internal/client/locator"
	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/client/remote"
	"github.com/bettybooth/bettybooth/internal/common"
	"github.com/bettybooth/bettybooth/internal/logging"
)

// maxDeleteInFlight bounds concurrent blob deletions within one operation.
const maxDeleteInFlight = 4

// BlobDeleter is the slice of the blob store the coordinator needs.
type BlobDeleter interface {
	Delete(ctx context.Context, blobID string) error
}

// Uploader is satisfied by the upload pipeline.
type Uploader interface {
	UploadBatch(ctx context.Context, items []models.MediaItem) []string
}

type Coordinator struct {
	docs       remote.DocumentStore
	blobs      BlobDeleter
	uploads    Uploader
	log        logging.Logger
	collection string
}

func NewCoordinator(docs remote.DocumentStore, blobs BlobDeleter, uploads Uploader, log logging.Logger, collection string) *Coordinator {
	return &Coordinator{
		docs:       docs,
		blobs:      blobs,
		uploads:    uploads,
		log:        log,
		collection: collection,
	}
}

// Get fetches a single gallery record.
func (c *Coordinator) Get(ctx context.Context, galleryID string) (*models.Gallery, error) {
	var g models.Gallery
	if err := c.docs.GetDocument(ctx, c.collection, galleryID, &g); err != nil {
		return nil, fmt.Errorf("get gallery %s: %w", galleryID, err)
	}
	return &g, nil
}

// CreateGallery uploads the optional thumbnail and the initial assets, then
// creates the gallery document referencing the locators that made it.
//
// A failure after media was uploaded but before the document is created
// leaves orphaned blobs with no referencing record. That leak is accepted
// and not corrected here.
func (c *Coordinator) CreateGallery(ctx context.Context, title, ownerID string, thumbnail *models.MediaItem, initial []models.MediaItem) (*models.Gallery, error) {
	if title == "" {
		return nil, common.ErrorEmptyTitle
	}

	var thumbLoc string
	if thumbnail != nil {
		locs := c.uploads.UploadBatch(ctx, []models.MediaItem{*thumbnail})
		if len(locs) == 0 {
			return nil, fmt.Errorf("thumbnail upload: %w", common.ErrNothingUploaded)
		}
		thumbLoc = locs[0]
	}

	assets := c.uploads.UploadBatch(ctx, initial)
	if len(initial) > 0 && len(assets) == 0 {
		return nil, common.ErrNothingUploaded
	}
	if assets == nil {
		assets = []string{}
	}

	fields := map[string]any{
		"title":       title,
		"userId":      ownerID,
		"images":      assets,
		"accessLevel": models.AccessViewOnly,
	}
	if thumbLoc != "" {
		fields["thumbnail"] = thumbLoc
	}

	var g models.Gallery
	if err := c.docs.CreateDocument(ctx, c.collection, uuid.NewString(), fields, &g); err != nil {
		return nil, fmt.Errorf("create gallery document: %w", err)
	}

	c.log.Info(ctx, "gallery created", "gallery", g.ID, "assets", len(assets))
	return &g, nil
}

// AppendAssets adds locators to a gallery's asset list. Malformed locators
// are dropped, and locators already present are not added again, so
// replaying the same append cannot multiply entries. The write replaces the
// whole assets field read at the start of the call.
func (c *Coordinator) AppendAssets(ctx context.Context, galleryID string, newLocators []string) (*models.Gallery, error) {
	current, err := c.Get(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(current.Assets)+len(newLocators))
	for _, loc := range current.Assets {
		seen[loc] = struct{}{}
	}

	updated := append([]string{}, current.Assets...)
	for _, loc := range newLocators {
		if !locator.IsWellFormed(loc) {
			c.log.Warn(ctx, "dropping malformed locator on append", "gallery", galleryID, "locator", loc)
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		updated = append(updated, loc)
	}

	if len(updated) == len(current.Assets) {
		return current, nil
	}

	var g models.Gallery
	if err := c.docs.UpdateDocument(ctx, c.collection, galleryID, map[string]any{"images": updated}, &g); err != nil {
		return nil, fmt.Errorf("append assets to %s: %w", galleryID, err)
	}
	return &g, nil
}

// RemoveAssets deletes the blobs behind the given locators and drops them
// from the gallery record. Blob deletions run in parallel and are
// best-effort. A locator leaves the document only when its blob deletion
// succeeded, or when no blob id could be extracted from it at all (nothing
// to clean up, so keeping the entry would pin a dead reference forever).
// Locators whose deletion failed stay in the document for a later retry.
func (c *Coordinator) RemoveAssets(ctx context.Context, galleryID string, locatorsToRemove []string) (*models.Gallery, error) {
	current, err := c.Get(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	removable := c.deleteBlobs(ctx, galleryID, locatorsToRemove)

	updated := make([]string, 0, len(current.Assets))
	for _, loc := range current.Assets {
		if _, ok := removable[loc]; !ok {
			updated = append(updated, loc)
		}
	}

	var g models.Gallery
	if err := c.docs.UpdateDocument(ctx, c.collection, galleryID, map[string]any{"images": updated}, &g); err != nil {
		return nil, fmt.Errorf("remove assets from %s: %w", galleryID, err)
	}
	return &g, nil
}

// DeleteGallery removes every blob the gallery references (assets and
// thumbnail), then deletes the gallery document. Blob deletion failures do
// not stop the document delete: the ordering favors "no broken links shown
// to a user" over "no storage leak", so a half-failed run can leave
// unreferenced blobs behind but never a gallery pointing at dead media.
func (c *Coordinator) DeleteGallery(ctx context.Context, galleryID string) error {
	g, err := c.Get(ctx, galleryID)
	if err != nil {
		return err
	}

	locs := append([]string{}, g.Assets...)
	if g.Thumbnail != "" {
		locs = append(locs, g.Thumbnail)
	}
	c.deleteBlobs(ctx, galleryID, locs)

	if err := c.docs.DeleteDocument(ctx, c.collection, galleryID); err != nil {
		return fmt.Errorf("delete gallery document %s: %w", galleryID, err)
	}

	c.log.Info(ctx, "gallery deleted", "gallery", galleryID, "blobs", len(locs))
	return nil
}

// deleteBlobs fans out best-effort blob deletions and reports which
// locators may be dropped from a document: those whose blob was deleted and
// those that never resolved to a blob id.
func (c *Coordinator) deleteBlobs(ctx context.Context, galleryID string, locs []string) map[string]struct{} {
	var mu sync.Mutex
	removable := make(map[string]struct{}, len(locs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDeleteInFlight)

	for _, loc := range locs {
		loc := loc
		id, ok := locator.ExtractBlobID(loc)
		if !ok {
			c.log.Warn(ctx, "no blob id in locator, skipping blob delete", "gallery", galleryID, "locator", loc)
			mu.Lock()
			removable[loc] = struct{}{}
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			if err := c.blobs.Delete(ctx, id); err != nil {
				c.log.Warn(ctx, "blob delete failed", "gallery", galleryID, "blob", id, "error", err)
				return nil
			}
			mu.Lock()
			removable[loc] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return removable
}
