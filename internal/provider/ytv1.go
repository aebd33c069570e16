// Package provider abstracts the external media service behind a narrow
// resolve/select/download boundary. The concrete implementation rides on
// github.com/famomatic/ytv1, a pure-Go client; its wire protocol, signature
// solving, and client rotation are entirely its own concern.
package provider

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/famomatic/ytv1/client"
	"go.uber.org/zap"

	"github.com/tubesaver/tubesaver/internal/model"
	"github.com/tubesaver/tubesaver/internal/platform"
)

// Options configures the ytv1-backed provider. CookiesPath and VisitorData
// enable the client's authenticated access mode, which bypasses some
// access checks.
type Options struct {
	CookiesPath string
	VisitorData string
	Log         *zap.Logger
}

// YTV1 implements Provider on top of the ytv1 client library
type YTV1 struct {
	c   *client.Client
	log *zap.Logger
}

// NewYTV1 creates the provider. Client lifecycle events are forwarded to
// the logger so every extraction and download step lands in the log file.
func NewYTV1(opts Options) *YTV1 {
	logger := opts.Log
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := client.Config{
		CookiesPath: opts.CookiesPath,
		VisitorData: opts.VisitorData,
		Logger:      logger.Sugar(),
		OnExtractionEvent: func(evt client.ExtractionEvent) {
			logger.Info("extraction event",
				zap.String("stage", evt.Stage),
				zap.String("phase", evt.Phase),
				zap.String("client", evt.Client),
				zap.String("detail", evt.Detail),
			)
		},
		OnDownloadEvent: func(evt client.DownloadEvent) {
			logger.Info("download event",
				zap.String("stage", evt.Stage),
				zap.String("phase", evt.Phase),
				zap.String("video_id", evt.VideoID),
				zap.String("path", evt.Path),
				zap.String("detail", evt.Detail),
			)
		},
	}

	return &YTV1{
		c:   client.New(cfg),
		log: logger,
	}
}

// Resolve turns a URL into video metadata
func (p *YTV1) Resolve(ctx context.Context, rawURL string) (*model.VideoInfo, error) {
	info, err := p.c.GetVideo(ctx, rawURL)
	if err != nil {
		return nil, mapClientError(err)
	}

	out := &model.VideoInfo{
		ID:      info.ID,
		Title:   info.Title,
		Formats: make([]model.StreamFormat, 0, len(info.Formats)),
	}
	for _, f := range info.Formats {
		out.Formats = append(out.Formats, model.StreamFormat{
			Itag:     f.Itag,
			MimeType: f.MimeType,
			Width:    f.Width,
			Height:   f.Height,
			Bitrate:  f.Bitrate,
		})
	}
	return out, nil
}

// SelectStream picks the track for the requested kind
func (p *YTV1) SelectStream(info *model.VideoInfo, kind model.MediaKind) (*model.StreamChoice, error) {
	format, err := ChooseFormat(info, kind)
	if err != nil {
		return nil, err
	}

	return &model.StreamChoice{
		SourceURL: info.ID,
		Kind:      kind,
		Itag:      format.Itag,
		Ext:       format.Ext(),
		Title:     info.Title,
	}, nil
}

// Download fetches the stream bytes into destDir. The requested file name
// is the sanitized video title with the track's native container extension;
// the path the client reports having written is authoritative.
func (p *YTV1) Download(ctx context.Context, choice *model.StreamChoice, destDir string) (string, error) {
	outPath := filepath.Join(destDir, platform.SanitizeFileName(choice.Title)+"."+choice.Ext)

	res, err := p.c.Download(ctx, choice.SourceURL, client.DownloadOptions{
		Mode:       selectionMode(choice.Kind),
		OutputPath: outPath,
	})
	if err != nil {
		return "", fmt.Errorf("stream download failed: %w", err)
	}

	if res.OutputPath != "" {
		return res.OutputPath, nil
	}
	return outPath, nil
}

// selectionMode maps the domain kind onto the client's format selector.
// Video uses the progressive mp4 mode so the client fetches a single
// combined track, the same stream family ChooseFormat selects from; the
// adaptive best mode would need a merge step this app does not perform.
func selectionMode(kind model.MediaKind) client.SelectionMode {
	if kind == model.KindAudio {
		return client.SelectionModeAudioOnly
	}
	return client.SelectionModeMP4AV
}

// mapClientError folds client failures into the provider's error taxonomy.
// Restrictions keep their identity regardless of which phase surfaced them;
// everything else is an invalid/unresolvable URL.
func mapClientError(err error) error {
	switch {
	case errors.Is(err, client.ErrLoginRequired),
		errors.Is(err, client.ErrNoPlayableFormats):
		return fmt.Errorf("%w: %v", ErrAccessRestricted, err)
	case errors.Is(err, client.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrURLInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrURLInvalid, err)
	}
}
