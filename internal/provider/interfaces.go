package provider

import (
	"context"
	"errors"

	"github.com/tubesaver/tubesaver/internal/model"
)

// Provider is the capability boundary to the external media service. The
// fetch pipeline depends only on this interface, never on the concrete
// client library.
type Provider interface {
	// Resolve turns a URL (or bare video ID) into video metadata.
	Resolve(ctx context.Context, rawURL string) (*model.VideoInfo, error)

	// SelectStream picks the track matching the requested kind: the
	// highest-bitrate audio-only track, or the highest-resolution
	// combined track.
	SelectStream(info *model.VideoInfo, kind model.MediaKind) (*model.StreamChoice, error)

	// Download fetches the selected stream into destDir and returns the
	// path of the written file.
	Download(ctx context.Context, choice *model.StreamChoice, destDir string) (string, error)
}

// Sentinel errors; the fetch pipeline classifies failures with errors.Is
// against these.
var (
	// ErrURLInvalid covers malformed, unresolvable, or rejected URLs
	ErrURLInvalid = errors.New("provider: invalid or unresolvable URL")

	// ErrAccessRestricted covers age gates, login walls, and videos with
	// no playable formats
	ErrAccessRestricted = errors.New("provider: access restricted")
)
