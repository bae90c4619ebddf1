package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/common"
)

// reencode copies v into out through JSON, the same way the real client
// decodes response bodies.
func reencode(v, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// fakeDocStore is an in-memory DocumentStore.
type fakeDocStore struct {
	mu        sync.Mutex
	galleries map[string]*models.Gallery

	createErr error
	updateErr error
	deleteErr error

	// listFailures makes the first N list calls fail.
	listFailures int
	listCalls    int
	listResult   []*models.Gallery

	updateCalls int
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{galleries: make(map[string]*models.Gallery)}
}

func (f *fakeDocStore) CreateDocument(ctx context.Context, collection, id string, fields, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	var g models.Gallery
	if err := reencode(fields, &g); err != nil {
		return err
	}
	g.ID = id
	g.CreatedAt = time.Now().UTC()
	f.galleries[id] = &g
	if out != nil {
		return reencode(g, out)
	}
	return nil
}

func (f *fakeDocStore) GetDocument(ctx context.Context, collection, id string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.galleries[id]
	if !ok {
		return fmt.Errorf("document %s: %w", id, common.ErrorNotFound)
	}
	return reencode(g, out)
}

func (f *fakeDocStore) UpdateDocument(ctx context.Context, collection, id string, fields, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	g, ok := f.galleries[id]
	if !ok {
		return fmt.Errorf("document %s: %w", id, common.ErrorNotFound)
	}
	patch, ok := fields.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected fields type %T", fields)
	}
	if images, ok := patch["images"]; ok {
		var assets []string
		if err := reencode(images, &assets); err != nil {
			return err
		}
		g.Assets = assets
	}
	if out != nil {
		return reencode(g, out)
	}
	return nil
}

func (f *fakeDocStore) DeleteDocument(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.galleries[id]; !ok {
		return fmt.Errorf("document %s: %w", id, common.ErrorNotFound)
	}
	delete(f.galleries, id)
	return nil
}

func (f *fakeDocStore) ListDocuments(ctx context.Context, collection string, filters map[string]string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listCalls <= f.listFailures {
		return fmt.Errorf("backend hiccup: %w", common.ErrorUnavailable)
	}
	if f.listResult != nil {
		return reencode(f.listResult, out)
	}
	var result []*models.Gallery
	for _, g := range f.galleries {
		if uid, ok := filters["userId"]; ok && g.UserID != uid {
			continue
		}
		result = append(result, g)
	}
	return reencode(result, out)
}

// fakeBlobDeleter records deletions and can refuse specific blob ids.
type fakeBlobDeleter struct {
	mu      sync.Mutex
	deleted []string
	failIDs map[string]bool
}

func (f *fakeBlobDeleter) Delete(ctx context.Context, blobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[blobID] {
		return fmt.Errorf("blob %s: delete refused", blobID)
	}
	f.deleted = append(f.deleted, blobID)
	return nil
}

// fakeUploader resolves items by name and can refuse specific names.
type fakeUploader struct {
	mu        sync.Mutex
	failNames map[string]bool
	batches   [][]string
}

func (f *fakeUploader) UploadBatch(ctx context.Context, items []models.MediaItem) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	var locs []string
	for _, item := range items {
		names = append(names, item.Name)
		if f.failNames[item.Name] {
			continue
		}
		locs = append(locs, "https://m.example.com/files/"+item.Name+"/original")
	}
	f.batches = append(f.batches, names)
	return locs
}
