package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/famomatic/ytv1/client"

	"github.com/tubesaver/tubesaver/internal/model"
)

func TestSelectionMode(t *testing.T) {
	tests := []struct {
		kind     model.MediaKind
		expected client.SelectionMode
	}{
		{model.KindAudio, client.SelectionModeAudioOnly},
		{model.KindVideo, client.SelectionModeMP4AV},
	}

	for _, test := range tests {
		if got := selectionMode(test.kind); got != test.expected {
			t.Errorf("selectionMode(%s) = %v, expected %v", test.kind, got, test.expected)
		}
	}
}

func TestMapClientError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"invalid input", client.ErrInvalidInput, ErrURLInvalid},
		{"login required", client.ErrLoginRequired, ErrAccessRestricted},
		{"no playable formats", client.ErrNoPlayableFormats, ErrAccessRestricted},
		{"wrapped login required", fmt.Errorf("extract: %w", client.ErrLoginRequired), ErrAccessRestricted},
		{"unknown failure folds into invalid URL", errors.New("connection reset"), ErrURLInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mapped := mapClientError(test.err)
			if !errors.Is(mapped, test.expected) {
				t.Errorf("mapClientError(%v) = %v, expected errors.Is %v", test.err, mapped, test.expected)
			}
		})
	}
}
