package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Marker is the locally persisted session cache. It is not authoritative;
// the backend session is, and the marker is revalidated on startup.
type Marker struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Secret    string `json:"secret"`
}

// MarkerStore persists at most one session marker.
type MarkerStore interface {
	Save(m Marker) error
	// Load returns (nil, nil) when no marker is stored.
	Load() (*Marker, error)
	Clear() error
}

const markerFileName = "session"

// FSMarkerStore keeps the marker as a single JSON file under the user's
// config directory.
type FSMarkerStore struct {
	dir string
}

// NewFSMarkerStore stores the marker under dir, creating it when needed.
func NewFSMarkerStore(dir string) (*FSMarkerStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FSMarkerStore{dir: dir}, nil
}

// DefaultDir returns the per-user config directory for the client.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bettybooth"), nil
}

func (s *FSMarkerStore) path() string {
	return filepath.Join(s.dir, markerFileName)
}

func (s *FSMarkerStore) Save(m Marker) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0o600)
}

func (s *FSMarkerStore) Load() (*Marker, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var m Marker
	if err := json.Unmarshal(b, &m); err != nil {
		// A corrupt marker is treated as absent; it will be rewritten on
		// the next sign-in.
		return nil, nil
	}
	return &m, nil
}

func (s *FSMarkerStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
