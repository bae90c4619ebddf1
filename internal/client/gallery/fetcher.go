package gallery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/client/remote"
	"github.com/bettybooth/bettybooth/internal/logging"
)

// Fetcher lists a user's galleries with a bounded fixed-delay retry. Only
// this read path retries; mutations surface their first failure.
type Fetcher struct {
	docs       remote.DocumentStore
	log        logging.Logger
	collection string
	maxRetries int
	delay      time.Duration
}

func NewFetcher(docs remote.DocumentStore, log logging.Logger, collection string, maxRetries int, delay time.Duration) *Fetcher {
	return &Fetcher{
		docs:       docs,
		log:        log,
		collection: collection,
		maxRetries: maxRetries,
		delay:      delay,
	}
}

// FetchForUser returns the user's galleries, newest first. On failure the
// call is retried up to maxRetries times with a fixed delay before the
// error is surfaced. Null entries in the response are dropped. An empty
// userID is the guest read path: no network call, empty result.
func (f *Fetcher) FetchForUser(ctx context.Context, userID string) ([]*models.Gallery, error) {
	if userID == "" {
		return []*models.Gallery{}, nil
	}

	var raw []*models.Gallery
	for attempt := 0; ; attempt++ {
		raw = nil
		err := f.docs.ListDocuments(ctx, f.collection, map[string]string{"userId": userID}, &raw)
		if err == nil {
			break
		}
		if attempt >= f.maxRetries {
			return nil, fmt.Errorf("list galleries for %s: %w", userID, err)
		}

		f.log.Warn(ctx, "gallery fetch failed, retrying",
			"user", userID, "retries_left", f.maxRetries-attempt, "error", err)
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	galleries := make([]*models.Gallery, 0, len(raw))
	for _, g := range raw {
		if g == nil {
			continue
		}
		galleries = append(galleries, g)
	}

	sort.Slice(galleries, func(i, j int) bool {
		return galleries[i].CreatedAt.After(galleries[j].CreatedAt)
	})
	return galleries, nil
}
