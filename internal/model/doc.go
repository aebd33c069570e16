package model

// Package model defines domain data structures used across the app: download
// requests and results, the per-request status enum, and resolved stream
// metadata returned by the media provider. Structures are created per user
// action and discarded when the request completes.
