package provider

import (
	"fmt"

	"github.com/tubesaver/tubesaver/internal/model"
)

// ChooseFormat picks the format for the requested kind from resolved
// metadata. Audio requests take the highest-bitrate audio-only track; video
// requests take the highest-resolution progressive mp4 track, bitrate
// breaking ties. Video candidates are restricted to the mp4 container
// because that is what the download step fetches; selection and download
// must describe the same stream. An empty candidate set is reported as an
// access restriction, which is how restricted videos surface at this stage.
func ChooseFormat(info *model.VideoInfo, kind model.MediaKind) (*model.StreamFormat, error) {
	var best *model.StreamFormat

	for i := range info.Formats {
		f := &info.Formats[i]

		switch kind {
		case model.KindAudio:
			if !f.IsAudioOnly() {
				continue
			}
			if best == nil || f.Bitrate > best.Bitrate {
				best = f
			}
		case model.KindVideo:
			if !f.IsCombined() || f.Ext() != "mp4" {
				continue
			}
			if best == nil || f.Height > best.Height ||
				(f.Height == best.Height && f.Bitrate > best.Bitrate) {
				best = f
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no playable %s format for %q", ErrAccessRestricted, kind, info.ID)
	}
	return best, nil
}
