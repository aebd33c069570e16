package provider

import (
	"errors"
	"testing"

	"github.com/tubesaver/tubesaver/internal/model"
)

func testInfo() *model.VideoInfo {
	return &model.VideoInfo{
		ID:    "dQw4w9WgXcQ",
		Title: "Test Video",
		Formats: []model.StreamFormat{
			{Itag: 18, MimeType: "video/mp4; codecs=\"avc1.42001E\"", Width: 640, Height: 360, Bitrate: 500_000},
			{Itag: 22, MimeType: "video/mp4; codecs=\"avc1.64001F\"", Width: 1280, Height: 720, Bitrate: 2_000_000},
			{Itag: 43, MimeType: "video/webm; codecs=\"vp8\"", Width: 640, Height: 360, Bitrate: 750_000},
			{Itag: 140, MimeType: "audio/mp4; codecs=\"mp4a.40.2\"", Bitrate: 128_000},
			{Itag: 251, MimeType: "audio/webm; codecs=\"opus\"", Bitrate: 160_000},
		},
	}
}

func TestChooseFormat_Audio(t *testing.T) {
	format, err := ChooseFormat(testInfo(), model.KindAudio)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if format.Itag != 251 {
		t.Errorf("Expected highest-bitrate audio itag 251, got %d", format.Itag)
	}

	if !format.IsAudioOnly() {
		t.Error("Selected format should be audio-only")
	}
}

func TestChooseFormat_Video(t *testing.T) {
	format, err := ChooseFormat(testInfo(), model.KindVideo)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if format.Itag != 22 {
		t.Errorf("Expected highest-resolution itag 22, got %d", format.Itag)
	}

	if format.Height != 720 {
		t.Errorf("Expected 720p selection, got %dp", format.Height)
	}
}

func TestChooseFormat_VideoBitrateBreaksTies(t *testing.T) {
	info := &model.VideoInfo{
		ID: "abc",
		Formats: []model.StreamFormat{
			{Itag: 1, MimeType: "video/mp4; codecs=\"avc1.42001E\"", Height: 360, Bitrate: 500_000},
			{Itag: 2, MimeType: "video/mp4; codecs=\"avc1.4d401e\"", Height: 360, Bitrate: 900_000},
		},
	}

	format, err := ChooseFormat(info, model.KindVideo)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if format.Itag != 2 {
		t.Errorf("Expected bitrate to break resolution tie, got itag %d", format.Itag)
	}
}

func TestChooseFormat_VideoRequiresMP4Container(t *testing.T) {
	// The download step fetches a progressive mp4 track, so selection must
	// never report a stream from another container.
	info := &model.VideoInfo{
		ID: "webm-only",
		Formats: []model.StreamFormat{
			{Itag: 43, MimeType: "video/webm; codecs=\"vp8\"", Height: 1080, Bitrate: 2_000_000},
			{Itag: 18, MimeType: "video/mp4; codecs=\"avc1.42001E\"", Height: 360, Bitrate: 500_000},
		},
	}

	format, err := ChooseFormat(info, model.KindVideo)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if format.Itag != 18 {
		t.Errorf("Expected the mp4 track despite lower resolution, got itag %d", format.Itag)
	}
	if format.Ext() != "mp4" {
		t.Errorf("Expected mp4 container, got %s", format.Ext())
	}
}

func TestChooseFormat_NoCandidates(t *testing.T) {
	info := &model.VideoInfo{
		ID: "restricted",
		Formats: []model.StreamFormat{
			{Itag: 140, MimeType: "audio/mp4", Bitrate: 128_000},
		},
	}

	_, err := ChooseFormat(info, model.KindVideo)
	if err == nil {
		t.Fatal("Expected error for missing video formats")
	}
	if !errors.Is(err, ErrAccessRestricted) {
		t.Errorf("Expected ErrAccessRestricted, got %v", err)
	}

	_, err = ChooseFormat(&model.VideoInfo{ID: "empty"}, model.KindAudio)
	if !errors.Is(err, ErrAccessRestricted) {
		t.Errorf("Expected ErrAccessRestricted for empty format list, got %v", err)
	}
}
