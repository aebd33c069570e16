package ui

import (
	"testing"

	"github.com/tubesaver/tubesaver/internal/model"
)

func TestStatusTextKey(t *testing.T) {
	tests := []struct {
		status  model.RequestStatus
		wantKey string
		wantOK  bool
	}{
		{model.StatusResolving, KeyStatusResolving, true},
		{model.StatusSelecting, KeyStatusSelecting, true},
		{model.StatusDownloading, KeyStatusDownloading, true},
		{model.StatusRenaming, KeyStatusRenaming, true},
		{model.StatusIdle, "", false},
		{model.StatusDone, "", false},
		{model.StatusFailed, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			key, ok := statusTextKey(tt.status)
			if ok != tt.wantOK {
				t.Errorf("statusTextKey(%q) ok = %v, want %v", tt.status, ok, tt.wantOK)
			}
			if key != tt.wantKey {
				t.Errorf("statusTextKey(%q) = %q, want %q", tt.status, key, tt.wantKey)
			}
		})
	}
}
