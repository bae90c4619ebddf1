package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/common"
)

func mediaItemsFromPaths(paths []string) []models.MediaItem {
	items := make([]models.MediaItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, models.MediaItem{
			Name: filepath.Base(p),
			Path: p,
			MIME: "image/jpeg",
		})
	}
	return items
}

func (a *App) listGalleries(ctx context.Context) {
	var userID string
	if user := a.sessions.CurrentUser(); user != nil {
		userID = user.ID
	}

	galleries, err := a.lister.FetchForUser(ctx, userID)
	if err != nil {
		fmt.Println("Error fetching galleries:", err)
		return
	}
	if len(galleries) == 0 {
		fmt.Println("No galleries yet.")
		return
	}
	for _, g := range galleries {
		fmt.Printf("%s  %-24s %3d assets  %s\n",
			g.ID, g.Title, len(g.Assets), g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) showGallery(ctx context.Context, galleryID string) {
	g, err := a.galleries.Get(ctx, galleryID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%s (%d assets)\n", g.Title, len(g.Assets))
	if g.Thumbnail != "" {
		fmt.Println("thumbnail:", g.Thumbnail)
	}
	for _, loc := range g.Assets {
		fmt.Println("  ", loc)
	}
}

func (a *App) createGallery(ctx context.Context) {
	if err := a.sessions.Gate(); err != nil {
		fmt.Println(err)
		return
	}

	title, err := GetSimpleText(a.reader, "Gallery title", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	thumbPath, err := GetSimpleText(a.reader, "Thumbnail file (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	assetLine, err := GetSimpleText(a.reader, "Asset files, space separated (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	var thumbnail *models.MediaItem
	if thumbPath != "" {
		item := mediaItemsFromPaths([]string{thumbPath})[0]
		thumbnail = &item
	}
	initial := mediaItemsFromPaths(strings.Fields(assetLine))

	g, err := a.galleries.CreateGallery(ctx, title, a.sessions.CurrentUser().ID, thumbnail, initial)
	if err != nil {
		fmt.Println("Create failed:", err)
		return
	}
	fmt.Printf("Created gallery %s (%d assets)\n", g.ID, len(g.Assets))
}

func (a *App) uploadMedia(ctx context.Context, galleryID string, paths []string) {
	if err := a.sessions.Gate(); err != nil {
		fmt.Println(err)
		return
	}
	if len(paths) == 0 {
		fmt.Println(common.ErrorNoMediaSelected)
		return
	}

	locators := a.uploads.UploadBatch(ctx, mediaItemsFromPaths(paths))
	if len(locators) == 0 {
		fmt.Println("Nothing uploaded.")
		return
	}

	g, err := a.galleries.AppendAssets(ctx, galleryID, locators)
	if err != nil {
		fmt.Println("Upload failed:", err)
		return
	}
	if len(locators) < len(paths) {
		fmt.Printf("Uploaded %d of %d files.\n", len(locators), len(paths))
	}
	fmt.Printf("Gallery %s now has %d assets.\n", g.ID, len(g.Assets))
}

func (a *App) removeMedia(ctx context.Context, galleryID string, locators []string) {
	if err := a.sessions.Gate(); err != nil {
		fmt.Println(err)
		return
	}

	g, err := a.galleries.RemoveAssets(ctx, galleryID, locators)
	if err != nil {
		fmt.Println("Remove failed:", err)
		return
	}
	fmt.Printf("Gallery %s now has %d assets.\n", g.ID, len(g.Assets))
}

func (a *App) deleteGallery(ctx context.Context, galleryID string) {
	if err := a.sessions.Gate(); err != nil {
		fmt.Println(err)
		return
	}

	if err := a.galleries.DeleteGallery(ctx, galleryID); err != nil {
		fmt.Println("Delete failed:", err)
		return
	}
	fmt.Println("Gallery deleted.")
}
