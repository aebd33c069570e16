package ui

import (
	"testing"

	"github.com/tubesaver/tubesaver/internal/model"
)

func TestNotifierDialogText(t *testing.T) {
	notifier := &Notifier{localization: NewLocalization()}

	tests := []struct {
		name        string
		result      model.DownloadResult
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "success",
			result:      model.Completed("/tmp/downloads/video.mp3"),
			wantTitle:   "Download Successful",
			wantMessage: "The content was successfully downloaded.",
		},
		{
			name:        "empty url",
			result:      model.Failure(model.ErrURLEmpty),
			wantTitle:   "URL Error",
			wantMessage: "The URL is empty.",
		},
		{
			name:        "invalid url",
			result:      model.Failure(model.ErrURLInvalid),
			wantTitle:   "URL Error",
			wantMessage: "The URL is invalid.",
		},
		{
			name:        "age restricted",
			result:      model.Failure(model.ErrAccessRestricted),
			wantTitle:   "Age Restriction Error",
			wantMessage: "The video is age restricted.",
		},
		{
			name:        "download failed",
			result:      model.Failure(model.ErrDownloadFailed),
			wantTitle:   "Download Error",
			wantMessage: "The download failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := notifier.dialogText(tt.result)
			if title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, title)
			}
			if message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, message)
			}
		})
	}
}
