// Package models defines the gallery, user and session types exchanged with
// the remote document and identity services.
package models

import "time"

// AccessLevel controls what a client holding a shared gallery may do.
type AccessLevel int

const (
	// AccessViewOnly permits browsing only. Default when the field is absent.
	AccessViewOnly AccessLevel = iota
	AccessUploadDownload
	AccessUploadDownloadDelete
)

// Gallery is a titled, ordered collection of asset locators owned by a user.
//
// Assets holds opaque locator strings returned by the blob store. The blob id
// embedded in each locator is only ever derived through the locator package.
type Gallery struct {
	ID          string      `json:"$id"`
	Title       string      `json:"title"`
	UserID      string      `json:"userId"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Assets      []string    `json:"images"`
	AccessLevel AccessLevel `json:"accessLevel"`
	CreatedAt   time.Time   `json:"$createdAt"`
}

// MediaItem is a user-picked file queued for upload.
type MediaItem struct {
	Name string
	Path string
	MIME string
}
