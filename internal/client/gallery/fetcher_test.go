package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/common"
	"github.com/bettybooth/bettybooth/internal/logging"
)

func newTestFetcher(docs *fakeDocStore, maxRetries int) *Fetcher {
	return NewFetcher(docs, logging.NewNopLogger(), "galleries", maxRetries, time.Millisecond)
}

func TestFetchForUser_SortsNewestFirst(t *testing.T) {
	now := time.Now().UTC()
	docs := newFakeDocStore()
	docs.listResult = []*models.Gallery{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-1 * time.Hour)},
	}

	got, err := newTestFetcher(docs, 3).FetchForUser(context.Background(), "u1")
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.ID)
	}
	require.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestFetchForUser_FiltersNullEntries(t *testing.T) {
	docs := newFakeDocStore()
	docs.listResult = []*models.Gallery{nil, {ID: "g1"}, nil}

	got, err := newTestFetcher(docs, 0).FetchForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "g1", got[0].ID)
}

func TestFetchForUser_RetriesThenSucceedsOnce(t *testing.T) {
	docs := newFakeDocStore()
	docs.listFailures = 2
	docs.listResult = []*models.Gallery{{ID: "g1"}}

	got, err := newTestFetcher(docs, 3).FetchForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 3, docs.listCalls)
}

func TestFetchForUser_ExhaustedRetriesSurfaceError(t *testing.T) {
	docs := newFakeDocStore()
	docs.listFailures = 100

	got, err := newTestFetcher(docs, 3).FetchForUser(context.Background(), "u1")
	require.ErrorIs(t, err, common.ErrorUnavailable)
	require.Nil(t, got)
	// initial attempt plus three retries
	require.Equal(t, 4, docs.listCalls)
}

func TestFetchForUser_GuestGetsEmptyListWithoutNetwork(t *testing.T) {
	docs := newFakeDocStore()
	docs.listFailures = 100

	got, err := newTestFetcher(docs, 3).FetchForUser(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, got)
	require.Zero(t, docs.listCalls)
}

func TestFetchForUser_ContextCancelledDuringBackoff(t *testing.T) {
	docs := newFakeDocStore()
	docs.listFailures = 100

	f := NewFetcher(docs, logging.NewNopLogger(), "galleries", 5, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.FetchForUser(ctx, "u1")
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, docs.listCalls)
}
