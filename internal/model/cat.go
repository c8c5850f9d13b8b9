package model

import (
	"path"
	"strings"
	"time"
)

// CatRecord represents a single cat fetched from the image API
type CatRecord struct {
	ID        string
	URL       string         // absolute image location
	MimeType  string         // as reported by the API, may be empty
	Tags      []string       // API tags, may be empty
	Metadata  map[string]any // raw API object, passed through unchanged
	Image     []byte         // preloaded image bytes, nil unless loaded
	LoadState LoadState
	LoadError string // last preload error if any
	FetchedAt time.Time
}

// NewCatRecord creates a pending record for the given image URL
func NewCatRecord(id, url string) *CatRecord {
	return &CatRecord{
		ID:        id,
		URL:       url,
		Metadata:  make(map[string]any),
		LoadState: LoadStatePending,
		FetchedAt: time.Now(),
	}
}

// Settled reports whether the preload has finished
func (c *CatRecord) Settled() bool {
	return c != nil && c.LoadState.IsSettled()
}

// MarkLoaded stores the preloaded bytes
func (c *CatRecord) MarkLoaded(data []byte) {
	c.Image = data
	c.LoadState = LoadStateLoaded
	c.LoadError = ""
}

// MarkFailed records a preload failure; the record stays usable as a placeholder
func (c *CatRecord) MarkFailed(err error) {
	c.Image = nil
	c.LoadState = LoadStateFailed
	if err != nil {
		c.LoadError = err.Error()
	}
}

// ResourceName returns a file-like name for the image, used when handing the
// bytes to the rendering layer
func (c *CatRecord) ResourceName() string {
	var ext string
	switch strings.ToLower(c.MimeType) {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	default:
		ext = path.Ext(c.URL)
	}

	id := c.ID
	if id == "" {
		id = "cat"
	}
	return id + ext
}
