// Package locator implements the convention linking a stored locator string
// back to the blob it references.
//
// A locator is an opaque URL returned by the blob store on upload. By
// convention it contains a path segment "files/{id}/", and that id is the
// blob's storage key. Every component that needs a blob id must derive it
// here; nothing else is allowed to take the format apart.
package locator

import (
	"regexp"
	"strings"
)

// blobIDPattern matches the id segment of a well-formed locator.
// The format is a fragile convention of the blob store layout, not a
// documented API; keep this the single chokepoint for it.
var blobIDPattern = regexp.MustCompile(`files/([A-Za-z0-9]+)/`)

// ExtractBlobID returns the blob id embedded in loc. Malformed or foreign
// locators yield ok=false; they must never panic, because deletion paths
// feed arbitrary stored strings through here.
func ExtractBlobID(loc string) (id string, ok bool) {
	m := blobIDPattern.FindStringSubmatch(loc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsWellFormed reports whether loc carries an extractable blob id.
func IsWellFormed(loc string) bool {
	_, ok := ExtractBlobID(loc)
	return ok
}

// objectName is the object stored under a blob's key prefix.
const objectName = "original"

// ObjectKey returns the storage key for a blob id.
func ObjectKey(id string) string {
	return "files/" + id + "/" + objectName
}

// Build constructs the locator for a blob id relative to the store's public
// base URL. Build and ExtractBlobID are inverses for any non-empty alnum id.
func Build(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/" + ObjectKey(id)
}
