package model

import "testing"

func TestRequestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{StatusIdle, false},
		{StatusResolving, true},
		{StatusSelecting, true},
		{StatusDownloading, true},
		{StatusRenaming, true},
		{StatusDone, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RequestStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{StatusIdle, false},
		{StatusResolving, false},
		{StatusSelecting, false},
		{StatusDownloading, false},
		{StatusRenaming, false},
		{StatusDone, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("RequestStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRequestStatus_String(t *testing.T) {
	status := StatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("RequestStatus.String() = %s, expected %s", result, expected)
	}
}
