package fetch

// Package fetch implements the download pipeline: resolve a URL via the
// media provider, select a stream for the requested kind, fetch it into the
// downloads directory, and relabel audio output to its target container
// extension. One request runs at a time; failures are terminal for the
// request and never retried.
