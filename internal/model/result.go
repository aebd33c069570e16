package model

// ErrorKind classifies why a download request failed
type ErrorKind string

const (
	// ErrNone means the request did not fail
	ErrNone ErrorKind = ""

	// ErrURLEmpty means the submitted URL was empty
	ErrURLEmpty ErrorKind = "url_empty"

	// ErrURLInvalid means the URL was malformed, unresolvable, or the
	// provider rejected it for any other reason
	ErrURLInvalid ErrorKind = "url_invalid"

	// ErrAccessRestricted means the provider signalled an access
	// restriction such as an age gate or login requirement
	ErrAccessRestricted ErrorKind = "access_restricted"

	// ErrDownloadFailed means the stream bytes could not be fetched or
	// written to disk
	ErrDownloadFailed ErrorKind = "download_failed"
)

// String returns the string representation of ErrorKind
func (ek ErrorKind) String() string {
	return string(ek)
}

// DownloadResult is produced once per request and consumed immediately by
// the notifier. FilePath is set only on success.
type DownloadResult struct {
	Success  bool
	FilePath string
	Err      ErrorKind
}

// Completed builds a successful result for the final output path
func Completed(filePath string) DownloadResult {
	return DownloadResult{Success: true, FilePath: filePath}
}

// Failure builds a failed result with the given error kind
func Failure(kind ErrorKind) DownloadResult {
	return DownloadResult{Success: false, Err: kind}
}
