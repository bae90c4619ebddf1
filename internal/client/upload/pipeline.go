// Package upload implements the media upload pipeline: read a batch of
// user-picked files, compress each image, and push the results to the blob
// store. The pipeline never touches gallery documents; deciding what a
// successful upload means for a gallery is the coordinator's job.
package upload

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bettybooth/bettybooth/internal/client/blobstore"
	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/logging"
)

// maxInFlight bounds concurrent uploads within one batch.
const maxInFlight = 4

const uploadContentType = "image/jpeg"

type Pipeline struct {
	blobs    blobstore.BlobStore
	log      logging.Logger
	maxWidth int
	quality  int
}

func NewPipeline(blobs blobstore.BlobStore, log logging.Logger, maxWidth, quality int) *Pipeline {
	return &Pipeline{blobs: blobs, log: log, maxWidth: maxWidth, quality: quality}
}

// UploadBatch compresses and uploads every item, tolerating individual
// failures: an item that cannot be read, decoded or stored is logged and
// skipped, the rest of the batch proceeds. The returned locators belong to
// the items that succeeded, in their original relative order. Callers must
// treat an empty result for a non-empty batch as a failed upload, not as
// success.
func (p *Pipeline) UploadBatch(ctx context.Context, items []models.MediaItem) []string {
	if len(items) == 0 {
		return nil
	}

	results := make([]string, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			loc, err := p.uploadOne(ctx, item)
			if err != nil {
				p.log.Warn(ctx, "media item skipped", "name", item.Name, "error", err)
				return nil
			}
			results[i] = loc
			return nil
		})
	}
	// Item errors are swallowed above; Wait only joins the fan-out.
	_ = g.Wait()

	locators := make([]string, 0, len(items))
	for _, loc := range results {
		if loc != "" {
			locators = append(locators, loc)
		}
	}

	p.log.Info(ctx, "upload batch finished", "requested", len(items), "uploaded", len(locators))
	return locators
}

func (p *Pipeline) uploadOne(ctx context.Context, item models.MediaItem) (string, error) {
	data, err := os.ReadFile(item.Path)
	if err != nil {
		return "", err
	}

	compressed, err := compress(data, p.maxWidth, p.quality)
	if err != nil {
		return "", err
	}

	return p.blobs.Upload(ctx, compressed, uploadContentType)
}
