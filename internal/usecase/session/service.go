package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/engine"
	"github.com/marcos-nsantos/image-toolbox/internal/adapter/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/valueobject"
)

const (
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	OutcomeSuperseded = "superseded"
)

// Validator checks an upload and decodes it. It installs nothing; the session
// owns the original-role handle.
type Validator interface {
	Validate(ctx context.Context, file entity.UploadFile) (*entity.SourceImage, error)
}

type ArtifactManager interface {
	Install(ctx context.Context, role entity.Role, data []byte, mimeType entity.MimeType) (entity.Handle, error)
	Release(ctx context.Context, role entity.Role)
	ReleaseAll(ctx context.Context)
	Download(ctx context.Context, handle entity.Handle, name string, d storage.Downloader) error
}

type Recorder interface {
	ObserveRun(operation, outcome string, elapsed time.Duration)
	ObserveArtifact(operation string, bytes int)
}

type Options struct {
	Tool           entity.Tool
	DefaultQuality int
	AspectLocked   bool
	AutoApply      bool
	// MaxEdge caps both resize dimensions. Zero means no cap.
	MaxEdge int
}

type Snapshot struct {
	Tool    entity.Tool
	Source  *entity.SourceImage
	Derived *entity.DerivedArtifact
	Quality int
	Resize  entity.ResizeParams
	Pending bool
	Error   string
	// Seq is the newest request sequence number issued so far.
	Seq uint64
}

func (s Snapshot) CompressionRatio() float64 {
	return entity.CompressionRatio(s.Source, s.Derived)
}

// Service is the single active tool session. All session state is mutated
// here; engines only return results, and every engine run is tagged with a
// sequence number so that only the newest request's result is installed.
type Service struct {
	validator  Validator
	compressor engine.Compressor
	resizer    engine.Resizer
	artifacts  ArtifactManager
	recorder   Recorder
	logger     *zap.Logger
	opts       Options

	runs     *semaphore.Weighted
	uploadMu sync.Mutex

	mu      sync.Mutex
	tool    entity.Tool
	source  *entity.SourceImage
	derived *entity.DerivedArtifact
	quality int
	resize  entity.ResizeParams
	seq     uint64
	epoch   uint64
	pending int
	lastErr string
}

func NewService(
	validator Validator,
	compressor engine.Compressor,
	resizer engine.Resizer,
	artifacts ArtifactManager,
	recorder Recorder,
	logger *zap.Logger,
	opts Options,
) *Service {
	if opts.Tool == "" {
		opts.Tool = entity.ToolCompress
	}
	if opts.DefaultQuality == 0 {
		opts.DefaultQuality = valueobject.DefaultQuality
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Service{
		validator:  validator,
		compressor: compressor,
		resizer:    resizer,
		artifacts:  artifacts,
		recorder:   recorder,
		logger:     logger,
		opts:       opts,
		runs:       semaphore.NewWeighted(1),
		tool:       opts.Tool,
		quality:    opts.DefaultQuality,
		resize:     entity.NewResizeParams(opts.AspectLocked, opts.MaxEdge),
	}
}

// Start ends the current session and opens a fresh one for tool.
func (s *Service) Start(ctx context.Context, tool entity.Tool) Snapshot {
	s.reset(ctx, tool)
	s.logger.Info("session started", zap.String("tool", string(tool)))
	return s.Snapshot()
}

// End releases every handle and returns the session to its initial state.
func (s *Service) End(ctx context.Context) Snapshot {
	s.reset(ctx, s.opts.Tool)
	s.logger.Info("session ended")
	return s.Snapshot()
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Tool:    s.tool,
		Source:  s.source,
		Derived: s.derived,
		Quality: s.quality,
		Resize:  s.resize,
		Pending: s.pending > 0,
		Error:   s.lastErr,
		Seq:     s.seq,
	}
}

// Upload replaces the session's source image. A rejected file leaves the
// session exactly as it was apart from the error message. An upload that
// overlaps a Start or End is discarded with ErrSuperseded.
func (s *Service) Upload(ctx context.Context, file entity.UploadFile) (Snapshot, error) {
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	src, err := s.validator.Validate(ctx, file)
	if err != nil {
		s.fail(err, "")
		s.logger.Warn("upload rejected", zap.String("name", file.Name), zap.String("content_type", file.ContentType), zap.Error(err))
		return Snapshot{}, err
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		s.logger.Info("upload discarded by session reset", zap.String("name", file.Name))
		return Snapshot{}, domain.ErrSuperseded
	}

	// the original handle is swapped under mu so a snapshot never shows a
	// source whose handle is already released
	handle, err := s.artifacts.Install(ctx, entity.RoleOriginal, src.Data, src.MimeType)
	if err != nil {
		s.lastErr = domain.Message(err, "")
		s.mu.Unlock()
		return Snapshot{}, fmt.Errorf("installing original: %w", err)
	}
	src.Handle = handle

	s.source = src
	s.derived = nil
	s.artifacts.Release(ctx, entity.RoleDerived)
	s.seq++
	s.resize.Reset()
	s.resize.Seed(src.Width, src.Height)
	s.lastErr = ""
	s.mu.Unlock()

	s.logger.Info("source image installed",
		zap.String("source_id", src.ID.String()),
		zap.String("handle", handle.ID.String()),
	)

	if s.opts.AutoApply {
		if _, err := s.Apply(ctx); err != nil && !errors.Is(err, domain.ErrSuperseded) {
			s.logger.Warn("auto apply failed", zap.String("source_id", src.ID.String()), zap.Error(err))
		}
	}

	return s.Snapshot(), nil
}

// Apply runs the active tool's engine with the current parameters.
func (s *Service) Apply(ctx context.Context) (*entity.DerivedArtifact, error) {
	s.mu.Lock()
	tool := s.tool
	quality := s.quality
	width, height := s.resize.Width(), s.resize.Height()
	s.mu.Unlock()

	if tool == entity.ToolResize {
		return s.Resize(ctx, width, height)
	}
	return s.Compress(ctx, quality)
}

func (s *Service) SetQuality(ctx context.Context, quality int) (Snapshot, error) {
	if _, err := valueobject.NewQuality(quality); err != nil {
		s.fail(err, entity.OpCompress)
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.quality = quality
	run := s.opts.AutoApply && s.source != nil && s.tool == entity.ToolCompress
	s.mu.Unlock()

	if run {
		if _, err := s.Compress(ctx, quality); err != nil {
			return Snapshot{}, err
		}
	}
	return s.Snapshot(), nil
}

func (s *Service) SetWidth(ctx context.Context, width int) (Snapshot, error) {
	return s.editDimensions(ctx, func(p *entity.ResizeParams) error { return p.SetWidth(width) })
}

func (s *Service) SetHeight(ctx context.Context, height int) (Snapshot, error) {
	return s.editDimensions(ctx, func(p *entity.ResizeParams) error { return p.SetHeight(height) })
}

// SetDimensions applies user-entered values for either or both fields as one
// edit, width first. Nothing changes unless every given value is accepted.
func (s *Service) SetDimensions(ctx context.Context, width, height *float64) (Snapshot, error) {
	if width == nil && height == nil {
		s.fail(domain.ErrInvalidDimensions, entity.OpResize)
		return Snapshot{}, fmt.Errorf("%w: no width or height given", domain.ErrInvalidDimensions)
	}

	var w, h int
	for _, f := range []struct {
		raw *float64
		dst *int
	}{{width, &w}, {height, &h}} {
		if f.raw == nil {
			continue
		}
		v, err := valueobject.ParseDimension(*f.raw)
		if err != nil {
			s.fail(err, entity.OpResize)
			return Snapshot{}, err
		}
		*f.dst = v
	}

	return s.editDimensions(ctx, func(p *entity.ResizeParams) error {
		if width != nil {
			if err := p.SetWidth(w); err != nil {
				return err
			}
		}
		if height != nil {
			return p.SetHeight(h)
		}
		return nil
	})
}

func (s *Service) SetAspectLock(ctx context.Context, locked bool) (Snapshot, error) {
	return s.editDimensions(ctx, func(p *entity.ResizeParams) error {
		return p.SetLocked(locked)
	})
}

// editDimensions applies edit to a copy of the resize fields and keeps the
// copy only when the whole edit succeeds.
func (s *Service) editDimensions(ctx context.Context, edit func(p *entity.ResizeParams) error) (Snapshot, error) {
	s.mu.Lock()
	next := s.resize
	if err := edit(&next); err != nil {
		s.lastErr = domain.Message(err, string(entity.OpResize))
		s.mu.Unlock()
		return Snapshot{}, err
	}
	s.resize = next
	width, height := s.resize.Width(), s.resize.Height()
	run := s.opts.AutoApply && s.source != nil && s.tool == entity.ToolResize
	s.mu.Unlock()

	if run {
		if _, err := s.Resize(ctx, width, height); err != nil {
			return Snapshot{}, err
		}
	}
	return s.Snapshot(), nil
}

func (s *Service) Compress(ctx context.Context, quality int) (*entity.DerivedArtifact, error) {
	if _, err := valueobject.NewQuality(quality); err != nil {
		s.fail(err, entity.OpCompress)
		return nil, err
	}

	s.mu.Lock()
	src := s.source
	if src == nil {
		s.lastErr = domain.Message(domain.ErrNoSource, "")
		s.mu.Unlock()
		return nil, domain.ErrNoSource
	}
	s.quality = quality
	seq := s.begin()
	s.mu.Unlock()

	return s.run(ctx, seq, src, entity.OpCompress, func(ctx context.Context) (*engine.Result, error) {
		return s.compressor.Compress(ctx, src, quality)
	})
}

// Resize treats width and height as final; aspect-lock reconciliation happens
// before this is called. Out-of-range sizes are rejected before they take a
// sequence number, so they never supersede a run in flight.
func (s *Service) Resize(ctx context.Context, width, height int) (*entity.DerivedArtifact, error) {
	if !valueobject.NewDimensions(width, height).Within(s.opts.MaxEdge) {
		err := fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, width, height)
		s.fail(err, entity.OpResize)
		return nil, err
	}

	s.mu.Lock()
	src := s.source
	if src == nil {
		s.lastErr = domain.Message(domain.ErrNoSource, "")
		s.mu.Unlock()
		return nil, domain.ErrNoSource
	}
	seq := s.begin()
	s.mu.Unlock()

	return s.run(ctx, seq, src, entity.OpResize, func(ctx context.Context) (*engine.Result, error) {
		return s.resizer.Resize(ctx, src, width, height)
	})
}

// Download saves the live derived artifact through d and returns the file
// name it was offered under.
func (s *Service) Download(ctx context.Context, d storage.Downloader) (string, error) {
	s.mu.Lock()
	derived := s.derived
	s.mu.Unlock()

	if derived == nil {
		return "", domain.ErrNoArtifact
	}

	name := derived.FileName()
	if err := s.artifacts.Download(ctx, derived.Handle, name, d); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Service) run(
	ctx context.Context,
	seq uint64,
	src *entity.SourceImage,
	op entity.Operation,
	fn func(ctx context.Context) (*engine.Result, error),
) (*entity.DerivedArtifact, error) {
	defer s.finish()

	if err := s.runs.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for %s run: %w", op, err)
	}
	defer s.runs.Release(1)

	if s.isStale(seq, src) {
		s.recorder.ObserveRun(string(op), OutcomeSuperseded, 0)
		return nil, domain.ErrSuperseded
	}

	start := time.Now()
	res, err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		s.recorder.ObserveRun(string(op), OutcomeError, elapsed)
		s.logger.Warn("engine run failed",
			zap.String("engine", string(op)),
			zap.Uint64("seq", seq),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		s.mu.Lock()
		if seq == s.seq {
			s.lastErr = domain.Message(err, string(op))
		}
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || s.source != src {
		s.recorder.ObserveRun(string(op), OutcomeSuperseded, elapsed)
		s.logger.Debug("discarding stale result", zap.String("engine", string(op)), zap.Uint64("seq", seq), zap.Uint64("latest", s.seq))
		return nil, domain.ErrSuperseded
	}

	handle, err := s.artifacts.Install(ctx, entity.RoleDerived, res.Data, res.MimeType)
	if err != nil {
		s.recorder.ObserveRun(string(op), OutcomeError, elapsed)
		s.lastErr = domain.Message(err, string(op))
		return nil, err
	}

	s.derived = &entity.DerivedArtifact{
		Data:      res.Data,
		MimeType:  res.MimeType,
		ByteSize:  int64(len(res.Data)),
		Width:     res.Width,
		Height:    res.Height,
		Handle:    handle,
		Source:    src,
		Operation: op,
		Quality:   res.Quality,
		Seq:       seq,
		CreatedAt: time.Now().UTC(),
	}
	s.lastErr = ""

	s.recorder.ObserveRun(string(op), OutcomeSuccess, elapsed)
	s.recorder.ObserveArtifact(string(op), len(res.Data))
	s.logger.Info("engine run completed",
		zap.String("engine", string(op)),
		zap.Uint64("seq", seq),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Int("quality", res.Quality),
		zap.Int64("bytes", s.derived.ByteSize),
		zap.Float64("ratio", entity.CompressionRatio(src, s.derived)),
		zap.Duration("duration", elapsed),
	)

	return s.derived, nil
}

// begin must be called with mu held.
func (s *Service) begin() uint64 {
	s.seq++
	s.pending++
	return s.seq
}

func (s *Service) finish() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

func (s *Service) isStale(seq uint64, src *entity.SourceImage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq != s.seq || s.source != src
}

func (s *Service) fail(err error, op entity.Operation) {
	s.mu.Lock()
	s.lastErr = domain.Message(err, string(op))
	s.mu.Unlock()
}

func (s *Service) reset(ctx context.Context, tool entity.Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts.ReleaseAll(ctx)
	s.tool = tool
	s.source = nil
	s.derived = nil
	s.quality = s.opts.DefaultQuality
	s.resize = entity.NewResizeParams(s.opts.AspectLocked, s.opts.MaxEdge)
	s.seq++
	s.epoch++
	s.lastErr = ""
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(string, string, time.Duration) {}
func (nopRecorder) ObserveArtifact(string, int)              {}
