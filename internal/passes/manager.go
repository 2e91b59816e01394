package passes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

// DocumentStore is the document access the manager needs.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
}

// PassStore owns pass rows. CreateQueued must allocate the per-document
// pass_number atomically: contiguous from 1, race-free under concurrent
// creation, never reused.
type PassStore interface {
	CreateQueued(ctx context.Context, documentID uuid.UUID, method string, cfg entity.PassConfig) (*entity.ExtractionPass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionPass, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionPass, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	MarkCompleted(ctx context.Context, id uuid.UUID, itemsExtracted int, avgConfidence float64, elapsed time.Duration) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string, elapsed time.Duration) error
}

// ItemStore is the append-only raw item record.
type ItemStore interface {
	Append(ctx context.Context, passID uuid.UUID, c *entity.Candidate) (*entity.ExtractedItem, error)
	ListByPass(ctx context.Context, passID uuid.UUID) ([]*entity.ExtractedItem, error)
	ListCompletedItems(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error)
}

// Consolidator recomputes a document's consolidated set.
type Consolidator interface {
	Recompute(ctx context.Context, documentID uuid.UUID) (int, error)
}

// Scheduler hands a queued pass to an execution worker.
type Scheduler interface {
	Enqueue(ctx context.Context, job Job) error
}

// Manager drives the lifecycle of extraction passes: synchronous creation
// and validation, asynchronous execution, terminal consolidation.
type Manager struct {
	docs         DocumentStore
	passes       PassStore
	items        ItemStore
	registry     *extract.Registry
	presets      extract.Presets
	consolidator Consolidator
	sched        Scheduler
	defaultDPI   int
	logger       *slog.Logger
}

func NewManager(
	docs DocumentStore,
	passes PassStore,
	items ItemStore,
	registry *extract.Registry,
	presets extract.Presets,
	consolidator Consolidator,
	sched Scheduler,
	defaultDPI int,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if presets == nil {
		presets = extract.Presets{}
	}
	if defaultDPI <= 0 {
		defaultDPI = 300
	}
	return &Manager{
		docs:         docs,
		passes:       passes,
		items:        items,
		registry:     registry,
		presets:      presets,
		consolidator: consolidator,
		sched:        sched,
		defaultDPI:   defaultDPI,
		logger:       logger,
	}
}

// CreatePass validates the request, allocates the pass row in QUEUED, and
// schedules execution. It returns as soon as the row exists; callers poll
// for progress.
func (m *Manager) CreatePass(ctx context.Context, documentID uuid.UUID, method string, cfg entity.PassConfig) (*entity.ExtractionPass, error) {
	doc, err := m.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if _, err := m.registry.Lookup(method); err != nil {
		return nil, err
	}

	cfg = m.presets.Apply(method, cfg)
	if cfg.DPI == 0 {
		cfg.DPI = m.defaultDPI
	}
	if err := validateConfig(cfg, doc.PageCount); err != nil {
		return nil, err
	}

	p, err := m.passes.CreateQueued(ctx, documentID, method, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pass: %w", err)
	}

	if err := m.sched.Enqueue(ctx, Job{PassID: p.ID, DocumentID: documentID}); err != nil {
		return nil, fmt.Errorf("schedule pass: %w", err)
	}

	m.logger.Info("pass.created",
		"document_id", documentID,
		"pass_id", p.ID,
		"pass_number", p.PassNumber,
		"method", method,
	)
	return p, nil
}

func validateConfig(cfg entity.PassConfig, pageCount int) error {
	if cfg.StartPage < 0 || cfg.StartPage >= pageCount {
		return fmt.Errorf("start_page %d outside document (%d pages): %w", cfg.StartPage, pageCount, common.ErrInvalidConfiguration)
	}
	if cfg.EndPage != 0 && (cfg.EndPage <= cfg.StartPage || cfg.EndPage > pageCount) {
		return fmt.Errorf("end_page %d outside (%d, %d]: %w", cfg.EndPage, cfg.StartPage, pageCount, common.ErrInvalidConfiguration)
	}
	if cfg.MinConfidence < 0 || cfg.MinConfidence > 100 {
		return fmt.Errorf("min_confidence %v outside [0, 100]: %w", cfg.MinConfidence, common.ErrInvalidConfiguration)
	}
	for _, p := range cfg.Pages {
		if p < 1 || p > pageCount {
			return fmt.Errorf("page %d outside document (%d pages): %w", p, pageCount, common.ErrInvalidConfiguration)
		}
	}
	return nil
}

// ExecutePass runs one queued pass to a terminal status. Adapter failures
// are recorded on the pass, never returned: a failed pass keeps every item
// it persisted and does not disturb sibling passes. Consolidation runs as
// the terminal action regardless of outcome.
func (m *Manager) ExecutePass(ctx context.Context, passID uuid.UUID) error {
	p, err := m.passes.GetByID(ctx, passID)
	if err != nil {
		return err
	}
	if p.Status != string(constants.PassStatusQueued) {
		m.logger.Warn("pass.execute.skipped", "pass_id", passID, "status", p.Status)
		return nil
	}
	doc, err := m.docs.GetByID(ctx, p.DocumentID)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.passes.MarkProcessing(ctx, passID, start); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	extractor, err := m.registry.Lookup(p.Method)
	if err != nil {
		return m.failPass(ctx, p, err, start)
	}

	src := extract.Source{Path: doc.SourcePath, PageCount: doc.PageCount}
	stream, err := extractor.Extract(ctx, src, p.Config)
	if err != nil {
		return m.failPass(ctx, p, fmt.Errorf("%w: %v", common.ErrAdapterFailure, err), start)
	}

	// Stream items straight into the store: one insert per candidate, in
	// yield order, nothing buffered.
	count := 0
	confSum := 0.0
	for {
		c, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return m.failPass(ctx, p, fmt.Errorf("%w: %v", common.ErrAdapterFailure, err), start)
		}
		if _, err := m.items.Append(ctx, p.ID, c); err != nil {
			return m.failPass(ctx, p, fmt.Errorf("persist item: %w", err), start)
		}
		count++
		confSum += c.Confidence
	}

	avg := 0.0
	if count > 0 {
		avg = confSum / float64(count)
	}
	elapsed := time.Since(start)
	if err := m.passes.MarkCompleted(context.WithoutCancel(ctx), passID, count, avg, elapsed); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	m.logger.Info("pass.completed",
		"pass_id", passID,
		"document_id", p.DocumentID,
		"items", count,
		"avg_confidence", avg,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	m.recompute(ctx, p.DocumentID)
	return nil
}

// failPass records a terminal failure and still triggers consolidation, so
// consumers see the latest achievable view. The adapter error stays local
// to the pass. The terminal write runs detached from the pass context:
// when the pass itself timed out, the FAILED row must still land, or the
// pass would sit in PROCESSING forever.
func (m *Manager) failPass(ctx context.Context, p *entity.ExtractionPass, cause error, start time.Time) error {
	elapsed := time.Since(start)
	if err := m.passes.MarkFailed(context.WithoutCancel(ctx), p.ID, cause.Error(), elapsed); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	m.logger.Warn("pass.failed",
		"pass_id", p.ID,
		"document_id", p.DocumentID,
		"error", cause,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	m.recompute(ctx, p.DocumentID)
	return nil
}

// recompute triggers consolidation even when the pass context already
// expired: the terminal action must not be lost to a pass timeout.
func (m *Manager) recompute(ctx context.Context, documentID uuid.UUID) {
	if _, err := m.consolidator.Recompute(context.WithoutCancel(ctx), documentID); err != nil {
		m.logger.Error("consolidate.failed", "document_id", documentID, "error", err)
	}
}

// GetPass returns the current snapshot of one pass.
func (m *Manager) GetPass(ctx context.Context, passID uuid.UUID) (*entity.ExtractionPass, error) {
	return m.passes.GetByID(ctx, passID)
}

// ListPasses returns the current snapshot of a document's passes.
func (m *Manager) ListPasses(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionPass, error) {
	if _, err := m.docs.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return m.passes.ListByDocument(ctx, documentID)
}

// DocumentStatus is the aggregate consumers poll.
func (m *Manager) DocumentStatus(ctx context.Context, documentID uuid.UUID) (*entity.DocumentStatus, error) {
	doc, err := m.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	list, err := m.passes.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return &entity.DocumentStatus{Document: doc, Passes: list}, nil
}
