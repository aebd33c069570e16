package model

import "strings"

// MIME type prefixes
const (
	MimeAudioPrefix = "audio/"
	MimeVideoPrefix = "video/"
)

// VideoInfo is the resolved metadata for one video URL. It is transient:
// owned by the fetcher for the duration of a single request.
type VideoInfo struct {
	ID      string
	Title   string
	Formats []StreamFormat
}

// StreamFormat describes one encoded track offered by the provider
type StreamFormat struct {
	Itag     int
	MimeType string // e.g. "video/mp4; codecs=\"avc1.4d401f\""
	Width    int
	Height   int
	Bitrate  int // bits per second
}

// IsAudioOnly returns true for audio-only tracks
func (sf StreamFormat) IsAudioOnly() bool {
	return strings.HasPrefix(sf.MimeType, MimeAudioPrefix)
}

// IsCombined returns true for tracks that carry a video picture, i.e. the
// progressive candidates for a video download
func (sf StreamFormat) IsCombined() bool {
	return strings.HasPrefix(sf.MimeType, MimeVideoPrefix) && sf.Height > 0
}

// Ext returns the container extension implied by the MIME subtype, without
// a leading dot. Audio mp4 tracks map to m4a.
func (sf StreamFormat) Ext() string {
	parts := strings.SplitN(sf.MimeType, "/", 2)
	if len(parts) < 2 {
		return ""
	}
	sub := strings.SplitN(parts[1], ";", 2)[0]
	sub = strings.TrimSpace(sub)
	if sf.IsAudioOnly() && sub == "mp4" {
		return "m4a"
	}
	return sub
}

// StreamChoice is the opaque handle for one selected track of a resolved
// video, carrying everything the download step needs.
type StreamChoice struct {
	SourceURL string
	Kind      MediaKind
	Itag      int
	Ext       string
	Title     string
}
