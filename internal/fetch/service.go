package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tubesaver/tubesaver/internal/model"
	"github.com/tubesaver/tubesaver/internal/platform"
	"github.com/tubesaver/tubesaver/internal/provider"
)

// AudioExtension is the container extension audio downloads are relabeled
// to. The bytes are not re-encoded; only the extension changes.
const AudioExtension = ".mp3"

// Service handles download requests
type Service struct {
	provider    provider.Provider
	log         *zap.Logger
	mu          sync.Mutex
	downloadDir string
	busy        bool
	onStatus    func(model.RequestStatus)
	onComplete  func(model.DownloadRequest, model.DownloadResult)
}

// NewService creates a new fetch service writing into downloadDir
func NewService(p provider.Provider, downloadDir string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider:    p,
		downloadDir: downloadDir,
		log:         log,
	}
}

// SetStatusCallback sets the callback invoked on every status transition
func (s *Service) SetStatusCallback(callback func(model.RequestStatus)) {
	s.onStatus = callback
}

// SetCompletionCallback sets the callback invoked with the final result
func (s *Service) SetCompletionCallback(callback func(model.DownloadRequest, model.DownloadResult)) {
	s.onComplete = callback
}

// SetDownloadDirectory sets the destination directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// Busy reports whether a request is currently in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Submit runs the request on a background goroutine and delivers the result
// through the completion callback. A second submission while one request is
// in flight is rejected; there is no cancellation of a running request.
func (s *Service) Submit(req model.DownloadRequest) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return fmt.Errorf("a download is already in progress")
	}
	s.busy = true
	s.mu.Unlock()

	go func() {
		result := s.Fetch(context.Background(), req)

		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()

		if s.onComplete != nil {
			s.onComplete(req, result)
		}
	}()

	return nil
}

// Fetch runs the pipeline for one request: resolve, select, download, and
// for audio requests relabel the extension. Every failure is terminal; no
// partial file is cleaned up on a mid-download failure.
func (s *Service) Fetch(ctx context.Context, req model.DownloadRequest) model.DownloadResult {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.log.Error("empty URL submitted", zap.String("request", req.ID))
		return s.finish(req, model.Failure(model.ErrURLEmpty))
	}

	s.setStatus(model.StatusResolving)
	s.log.Info("resolving URL", zap.String("request", req.ID), zap.String("url", url))

	info, err := s.provider.Resolve(ctx, url)
	if err != nil {
		s.log.Warn("unable to resolve URL",
			zap.String("request", req.ID),
			zap.String("url", url),
			zap.Error(err),
		)
		return s.finish(req, model.Failure(classify(err, model.ErrURLInvalid)))
	}
	s.log.Info("URL resolved", zap.String("request", req.ID), zap.String("title", info.Title))

	s.setStatus(model.StatusSelecting)
	s.log.Info("selecting stream", zap.String("request", req.ID), zap.String("kind", req.Kind.String()))

	choice, err := s.provider.SelectStream(info, req.Kind)
	if err != nil {
		s.log.Error("stream selection failed",
			zap.String("request", req.ID),
			zap.Error(err),
		)
		return s.finish(req, model.Failure(classify(err, model.ErrAccessRestricted)))
	}

	s.mu.Lock()
	destDir := s.downloadDir
	s.mu.Unlock()

	s.setStatus(model.StatusDownloading)
	s.log.Info("starting stream download",
		zap.String("request", req.ID),
		zap.Int("itag", choice.Itag),
		zap.String("dir", destDir),
	)

	outPath, err := s.provider.Download(ctx, choice, destDir)
	if err != nil {
		s.log.Error("stream download failed", zap.String("request", req.ID), zap.Error(err))
		return s.finish(req, model.Failure(classify(err, model.ErrDownloadFailed)))
	}
	s.log.Info("finished stream download", zap.String("request", req.ID), zap.String("path", outPath))

	if req.Kind == model.KindAudio {
		s.setStatus(model.StatusRenaming)
		s.log.Info("relabeling audio output", zap.String("request", req.ID))

		newPath, overwrote, err := platform.ReplaceExtension(outPath, AudioExtension)
		if err != nil {
			s.log.Error("relabel failed", zap.String("request", req.ID), zap.Error(err))
			return s.finish(req, model.Failure(model.ErrDownloadFailed))
		}
		if overwrote {
			s.log.Warn("overwrote file with identical name",
				zap.String("request", req.ID),
				zap.String("path", newPath),
			)
		}
		outPath = newPath
	}

	s.log.Info("request completed", zap.String("request", req.ID), zap.String("path", outPath))
	return s.finish(req, model.Completed(outPath))
}

// finish emits the terminal status and returns the result unchanged
func (s *Service) finish(req model.DownloadRequest, result model.DownloadResult) model.DownloadResult {
	if result.Success {
		s.setStatus(model.StatusDone)
	} else {
		s.setStatus(model.StatusFailed)
	}
	return result
}

// setStatus notifies the status observer if set
func (s *Service) setStatus(status model.RequestStatus) {
	if s.onStatus != nil {
		s.onStatus(status)
	}
}

// classify maps a provider error to an error kind, with restrictions
// keeping their identity and fallback covering everything else
func classify(err error, fallback model.ErrorKind) model.ErrorKind {
	switch {
	case errors.Is(err, provider.ErrAccessRestricted):
		return model.ErrAccessRestricted
	case errors.Is(err, provider.ErrURLInvalid):
		return model.ErrURLInvalid
	default:
		return fallback
	}
}
