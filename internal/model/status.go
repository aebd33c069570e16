package model

// RequestStatus represents the lifecycle state of a single download request
type RequestStatus string

const (
	// StatusIdle means no request is being processed
	StatusIdle RequestStatus = "Idle"

	// StatusResolving means the URL is being resolved to video metadata
	StatusResolving RequestStatus = "Resolving"

	// StatusSelecting means a stream is being selected from the metadata
	StatusSelecting RequestStatus = "Selecting"

	// StatusDownloading means the selected stream is being fetched
	StatusDownloading RequestStatus = "Downloading"

	// StatusRenaming means the audio output is being relabeled to its
	// target container extension
	StatusRenaming RequestStatus = "Renaming"

	// StatusDone means the request finished successfully
	StatusDone RequestStatus = "Done"

	// StatusFailed means the request finished with an error
	StatusFailed RequestStatus = "Failed"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsActive returns true while the request is between submission and a
// terminal state
func (rs RequestStatus) IsActive() bool {
	return rs == StatusResolving || rs == StatusSelecting || rs == StatusDownloading || rs == StatusRenaming
}

// IsTerminal returns true if the request reached a final state
func (rs RequestStatus) IsTerminal() bool {
	return rs == StatusDone || rs == StatusFailed
}
