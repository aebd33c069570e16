package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MediaKind selects the output kind for a download request
type MediaKind string

const (
	// KindAudio requests the highest-quality audio-only stream, saved
	// with an .mp3 extension
	KindAudio MediaKind = "audio"

	// KindVideo requests the highest-resolution combined stream in its
	// native container
	KindVideo MediaKind = "video"
)

// String returns the string representation of MediaKind
func (mk MediaKind) String() string {
	return string(mk)
}

// Request ID prefix
const requestIDPrefix = "req-"

// DownloadRequest represents one user action: save the content at URL as
// the given kind. Requests are never persisted.
type DownloadRequest struct {
	ID        string
	URL       string
	Kind      MediaKind
	CreatedAt time.Time
}

// NewDownloadRequest creates a request with a fresh ID
func NewDownloadRequest(url string, kind MediaKind) DownloadRequest {
	return DownloadRequest{
		ID:        generateRequestID(),
		URL:       url,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

// generateRequestID generates a unique request ID using UUID v7 for better
// uniqueness and time ordering
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(requestIDPrefix+"%d", time.Now().UnixNano())
	}
	return requestIDPrefix + id.String()
}
