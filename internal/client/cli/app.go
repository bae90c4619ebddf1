// Package cli implements the interactive bettybooth client: a small REPL
// over the session manager, the upload pipeline and the gallery
// coordinator. The CLI is also where guest gating happens — mutating
// commands consult the session state before any coordinator call is made.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/bettybooth/bettybooth/internal/client/blobstore"
	"github.com/bettybooth/bettybooth/internal/client/config"
	"github.com/bettybooth/bettybooth/internal/client/gallery"
	"github.com/bettybooth/bettybooth/internal/client/models"
	"github.com/bettybooth/bettybooth/internal/client/remote"
	"github.com/bettybooth/bettybooth/internal/client/session"
	"github.com/bettybooth/bettybooth/internal/client/upload"
	"github.com/bettybooth/bettybooth/internal/logging"
)

// Galleries is the slice of the coordinator the CLI uses.
type Galleries interface {
	Get(ctx context.Context, galleryID string) (*models.Gallery, error)
	CreateGallery(ctx context.Context, title, ownerID string, thumbnail *models.MediaItem, initial []models.MediaItem) (*models.Gallery, error)
	AppendAssets(ctx context.Context, galleryID string, newLocators []string) (*models.Gallery, error)
	RemoveAssets(ctx context.Context, galleryID string, locatorsToRemove []string) (*models.Gallery, error)
	DeleteGallery(ctx context.Context, galleryID string) error
}

// Lister is the retrying gallery list fetcher.
type Lister interface {
	FetchForUser(ctx context.Context, userID string) ([]*models.Gallery, error)
}

// Uploader is the media upload pipeline.
type Uploader interface {
	UploadBatch(ctx context.Context, items []models.MediaItem) []string
}

// Sessions is the identity state machine the CLI gates on.
type Sessions interface {
	Init(ctx context.Context) error
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, name string) error
	SignOut(ctx context.Context) error
	State() session.State
	CurrentUser() *models.User
	Gate() error
}

type App struct {
	config    *config.Config
	sessions  Sessions
	galleries Galleries
	lister    Lister
	uploads   Uploader
	log       logging.Logger
	reader    *bufio.Reader
}

// NewApp wires the client subsystems from configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	api := remote.NewClient(cfg.APIEndpoint, cfg.ProjectID, cfg.DatabaseID)

	blobs, err := blobstore.NewS3Store(ctx, blobstore.Config{
		Endpoint:     cfg.S3Endpoint,
		Region:       cfg.S3Region,
		Bucket:       cfg.S3Bucket,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		MediaBaseURL: cfg.MediaBaseURL,
	})
	if err != nil {
		return nil, err
	}

	markerDir, err := session.DefaultDir()
	if err != nil {
		return nil, err
	}
	markers, err := session.NewFSMarkerStore(markerDir)
	if err != nil {
		return nil, err
	}

	pipeline := upload.NewPipeline(blobs, log, cfg.CompressMaxWidth, cfg.CompressQuality)

	return &App{
		config:    cfg,
		sessions:  session.NewManager(api, api, markers, log),
		galleries: gallery.NewCoordinator(api, blobs, pipeline, log, cfg.GalleriesCol),
		lister:    gallery.NewFetcher(api, log, cfg.GalleriesCol, cfg.FetchRetries, cfg.FetchRetryDelay),
		uploads:   pipeline,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the startup identity state and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.sessions.Init(ctx); err != nil {
		return err
	}
	a.Root(ctx)
	return nil
}
