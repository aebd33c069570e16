package fetch

import (
	"context"

	"github.com/tubesaver/tubesaver/internal/model"
)

// Fetcher defines the interface for the download pipeline.
type Fetcher interface {
	// SetStatusCallback registers the per-step status observer
	SetStatusCallback(func(model.RequestStatus))

	// SetCompletionCallback registers the result consumer
	SetCompletionCallback(func(model.DownloadRequest, model.DownloadResult))

	// Submit runs the request in the background and reports through the
	// callbacks; it refuses a request while another is in flight
	Submit(req model.DownloadRequest) error

	// Fetch runs the pipeline synchronously
	Fetch(ctx context.Context, req model.DownloadRequest) model.DownloadResult

	// Busy reports whether a request is in flight
	Busy() bool

	// SetDownloadDirectory sets the destination directory
	SetDownloadDirectory(dir string)
}
