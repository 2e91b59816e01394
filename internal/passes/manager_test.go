package passes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

// --- fakes ---

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) add(pageCount int) *entity.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := &entity.Document{ID: uuid.New(), Filename: "catalog.pdf", SourcePath: "/tmp/catalog.pdf", PageCount: pageCount}
	f.docs[d.ID] = d
	return d
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return d, nil
}

type fakePasses struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]*entity.ExtractionPass
	nextNo map[uuid.UUID]int
}

func newFakePasses() *fakePasses {
	return &fakePasses{
		rows:   make(map[uuid.UUID]*entity.ExtractionPass),
		nextNo: make(map[uuid.UUID]int),
	}
}

func (f *fakePasses) CreateQueued(_ context.Context, documentID uuid.UUID, method string, cfg entity.PassConfig) (*entity.ExtractionPass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextNo[documentID]++
	p := &entity.ExtractionPass{
		ID:         uuid.New(),
		DocumentID: documentID,
		PassNumber: f.nextNo[documentID],
		Method:     method,
		Config:     cfg,
		Status:     string(constants.PassStatusQueued),
		CreatedAt:  time.Now(),
	}
	f.rows[p.ID] = p
	return clonePass(p), nil
}

func (f *fakePasses) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractionPass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("pass %s: %w", id, common.ErrNotFound)
	}
	return clonePass(p), nil
}

func (f *fakePasses) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.ExtractionPass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ExtractionPass
	for _, p := range f.rows {
		if p.DocumentID == documentID {
			out = append(out, clonePass(p))
		}
	}
	return out, nil
}

func (f *fakePasses) MarkProcessing(_ context.Context, id uuid.UUID, startedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = string(constants.PassStatusProcessing)
	f.rows[id].StartedAt = &startedAt
	return nil
}

func (f *fakePasses) MarkCompleted(_ context.Context, id uuid.UUID, itemsExtracted int, avgConfidence float64, elapsed time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.rows[id]
	p.Status = string(constants.PassStatusCompleted)
	p.ItemsExtracted = itemsExtracted
	p.AvgConfidence = &avgConfidence
	secs := elapsed.Seconds()
	p.ProcessingTime = &secs
	now := time.Now()
	p.FinishedAt = &now
	return nil
}

func (f *fakePasses) MarkFailed(_ context.Context, id uuid.UUID, message string, elapsed time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.rows[id]
	p.Status = string(constants.PassStatusFailed)
	p.ErrorMessage = &message
	secs := elapsed.Seconds()
	p.ProcessingTime = &secs
	now := time.Now()
	p.FinishedAt = &now
	return nil
}

func clonePass(p *entity.ExtractionPass) *entity.ExtractionPass {
	cp := *p
	return &cp
}

type fakeItems struct {
	mu     sync.Mutex
	byPass map[uuid.UUID][]*entity.ExtractedItem
	passes *fakePasses
}

func newFakeItems(passes *fakePasses) *fakeItems {
	return &fakeItems{byPass: make(map[uuid.UUID][]*entity.ExtractedItem), passes: passes}
}

func (f *fakeItems) Append(_ context.Context, passID uuid.UUID, c *entity.Candidate) (*entity.ExtractedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := &entity.ExtractedItem{
		ID:         uuid.New(),
		PassID:     passID,
		Page:       c.Page,
		BrandCode:  c.BrandCode,
		PartNumber: c.PartNumber,
		PriceType:  c.PriceType,
		PriceValue: c.PriceValue,
		Currency:   c.Currency,
		Confidence: c.Confidence,
		RawText:    c.RawText,
		CreatedAt:  time.Now(),
	}
	f.byPass[passID] = append(f.byPass[passID], it)
	return it, nil
}

func (f *fakeItems) ListByPass(_ context.Context, passID uuid.UUID) ([]*entity.ExtractedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.ExtractedItem(nil), f.byPass[passID]...), nil
}

func (f *fakeItems) ListCompletedItems(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error) {
	list, err := f.passes.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ExtractedItem
	for _, p := range list {
		if p.Status != string(constants.PassStatusCompleted) {
			continue
		}
		for _, it := range f.byPass[p.ID] {
			cp := *it
			cp.PassNumber = p.PassNumber
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeConsolidator struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (f *fakeConsolidator) Recompute(_ context.Context, documentID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, documentID)
	return 0, nil
}

func (f *fakeConsolidator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type captureScheduler struct {
	mu   sync.Mutex
	jobs []Job
}

func (s *captureScheduler) Enqueue(_ context.Context, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return nil
}

type fakeExtractor struct {
	fn func(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error)
}

func (f *fakeExtractor) Extract(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
	return f.fn(ctx, src, cfg)
}

// failAfterStream yields the given candidates, then fails.
type failAfterStream struct {
	items []entity.Candidate
	next  int
}

func (s *failAfterStream) Next(_ context.Context) (*entity.Candidate, error) {
	if s.next >= len(s.items) {
		return nil, errors.New("ocr backend crashed")
	}
	c := s.items[s.next]
	s.next++
	return &c, nil
}

func candidates(n int, page int, conf float64) []entity.Candidate {
	out := make([]entity.Candidate, n)
	for i := range out {
		out[i] = entity.Candidate{
			Page:       page,
			PartNumber: fmt.Sprintf("AB-%03d", i),
			Currency:   "USD",
			Confidence: conf,
			RawText:    fmt.Sprintf("AB-%03d $9.99", i),
		}
	}
	return out
}

type fixture struct {
	docs   *fakeDocs
	passes *fakePasses
	items  *fakeItems
	cons   *fakeConsolidator
	sched  *captureScheduler
	reg    *extract.Registry
	mgr    *Manager
}

func newFixture(t *testing.T, ex extract.Extractor) *fixture {
	t.Helper()
	docs := newFakeDocs()
	passStore := newFakePasses()
	items := newFakeItems(passStore)
	cons := &fakeConsolidator{}
	sched := &captureScheduler{}

	reg := extract.NewRegistry()
	for _, m := range []string{"text_direct", "ocr_table", "ocr_plain", "ocr_aggressive", "hybrid"} {
		if err := reg.Register(m, ex); err != nil {
			t.Fatalf("register %s: %v", m, err)
		}
	}

	mgr := NewManager(docs, passStore, items, reg, nil, cons, sched, 300, nil)
	return &fixture{docs: docs, passes: passStore, items: items, cons: cons, sched: sched, reg: reg, mgr: mgr}
}

func sliceExtractor(items []entity.Candidate) extract.Extractor {
	return &fakeExtractor{fn: func(context.Context, extract.Source, entity.PassConfig) (extract.Stream, error) {
		return extract.SliceStream(items), nil
	}}
}

// --- tests ---

func TestCreatePassValidation(t *testing.T) {
	fx := newFixture(t, sliceExtractor(nil))
	doc := fx.docs.add(10)
	ctx := context.Background()

	cases := []struct {
		name   string
		method string
		cfg    entity.PassConfig
	}{
		{"unknown method", "not_a_method", entity.PassConfig{}},
		{"unregistered method", "claude_vision", entity.PassConfig{}},
		{"start page past end", "ocr_table", entity.PassConfig{StartPage: 10}},
		{"negative start page", "ocr_table", entity.PassConfig{StartPage: -1}},
		{"end before start", "ocr_table", entity.PassConfig{StartPage: 5, EndPage: 5}},
		{"end past document", "ocr_table", entity.PassConfig{EndPage: 11}},
		{"min confidence too high", "ocr_table", entity.PassConfig{MinConfidence: 101}},
		{"explicit page out of range", "ocr_table", entity.PassConfig{Pages: []int{1, 11}}},
		{"explicit page zero", "ocr_table", entity.PassConfig{Pages: []int{0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.mgr.CreatePass(ctx, doc.ID, tc.method, tc.cfg)
			if !errors.Is(err, common.ErrInvalidConfiguration) {
				t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}

	if len(fx.sched.jobs) != 0 {
		t.Errorf("invalid configs must not reach the queue, got %d jobs", len(fx.sched.jobs))
	}
}

func TestCreatePassUnknownDocument(t *testing.T) {
	fx := newFixture(t, sliceExtractor(nil))
	_, err := fx.mgr.CreatePass(context.Background(), uuid.New(), "ocr_table", entity.PassConfig{})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreatePassQueuesAndNumbers(t *testing.T) {
	fx := newFixture(t, sliceExtractor(nil))
	doc := fx.docs.add(20)
	ctx := context.Background()

	p, err := fx.mgr.CreatePass(ctx, doc.ID, "ocr_table", entity.PassConfig{StartPage: 2, EndPage: 10, DPI: 0})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.PassNumber != 1 {
		t.Errorf("pass_number = %d, want 1", p.PassNumber)
	}
	if p.Status != string(constants.PassStatusQueued) {
		t.Errorf("status = %s, want QUEUED", p.Status)
	}
	if p.Config.DPI != 300 {
		t.Errorf("default dpi not applied: %d", p.Config.DPI)
	}
	if len(fx.sched.jobs) != 1 || fx.sched.jobs[0].PassID != p.ID {
		t.Fatalf("pass not enqueued: %+v", fx.sched.jobs)
	}
}

func TestConcurrentCreatesGetUniqueContiguousNumbers(t *testing.T) {
	fx := newFixture(t, sliceExtractor(nil))
	doc := fx.docs.add(5)
	ctx := context.Background()

	const n = 5
	numbers := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := fx.mgr.CreatePass(ctx, doc.ID, "ocr_table", entity.PassConfig{})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			numbers <- p.PassNumber
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int]bool)
	for num := range numbers {
		if seen[num] {
			t.Fatalf("pass number %d allocated twice", num)
		}
		seen[num] = true
	}
	for want := 1; want <= n; want++ {
		if !seen[want] {
			t.Errorf("missing pass number %d", want)
		}
	}
}

func TestExecutePassCompletes(t *testing.T) {
	items := candidates(4, 1, 80)
	fx := newFixture(t, sliceExtractor(items))
	doc := fx.docs.add(3)
	ctx := context.Background()

	p, err := fx.mgr.CreatePass(ctx, doc.ID, "text_direct", entity.PassConfig{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got, _ := fx.mgr.GetPass(ctx, p.ID)
	if got.Status != string(constants.PassStatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.ItemsExtracted != 4 {
		t.Errorf("items_extracted = %d, want 4", got.ItemsExtracted)
	}
	if got.AvgConfidence == nil || *got.AvgConfidence != 80 {
		t.Errorf("avg_confidence = %v, want 80", got.AvgConfidence)
	}
	if got.StartedAt == nil || got.FinishedAt == nil {
		t.Error("timestamps not recorded")
	}

	persisted, _ := fx.items.ListByPass(ctx, p.ID)
	if len(persisted) != 4 {
		t.Fatalf("persisted items = %d, want 4", len(persisted))
	}
	for i, it := range persisted {
		if it.PartNumber != items[i].PartNumber {
			t.Fatalf("item %d out of yield order: %s", i, it.PartNumber)
		}
	}

	if fx.cons.count() != 1 {
		t.Errorf("consolidation runs = %d, want 1", fx.cons.count())
	}
}

func TestExecutePassFailureKeepsPartialItems(t *testing.T) {
	yielded := candidates(3, 2, 55)
	ex := &fakeExtractor{fn: func(context.Context, extract.Source, entity.PassConfig) (extract.Stream, error) {
		return &failAfterStream{items: yielded}, nil
	}}
	fx := newFixture(t, ex)
	doc := fx.docs.add(5)
	ctx := context.Background()

	p, _ := fx.mgr.CreatePass(ctx, doc.ID, "ocr_aggressive", entity.PassConfig{})

	// adapter failure is terminal for the pass but not an error for the worker
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute returned %v, adapter failures must stay on the pass", err)
	}

	got, _ := fx.mgr.GetPass(ctx, p.ID)
	if got.Status != string(constants.PassStatusFailed) {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage == "" {
		t.Error("error message not recorded")
	}

	persisted, _ := fx.items.ListByPass(ctx, p.ID)
	if len(persisted) != 3 {
		t.Fatalf("persisted items = %d, want 3 (partial yields kept)", len(persisted))
	}

	if fx.cons.count() != 1 {
		t.Errorf("failed pass must still trigger consolidation, runs = %d", fx.cons.count())
	}
}

// ctxPasses refuses writes on an expired context, the way a real database
// store does.
type ctxPasses struct {
	*fakePasses
}

func (c ctxPasses) MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakePasses.MarkProcessing(ctx, id, startedAt)
}

func (c ctxPasses) MarkCompleted(ctx context.Context, id uuid.UUID, itemsExtracted int, avgConfidence float64, elapsed time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakePasses.MarkCompleted(ctx, id, itemsExtracted, avgConfidence, elapsed)
}

func (c ctxPasses) MarkFailed(ctx context.Context, id uuid.UUID, message string, elapsed time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakePasses.MarkFailed(ctx, id, message, elapsed)
}

// blockingStream hangs until the pass context expires.
type blockingStream struct{}

func (blockingStream) Next(ctx context.Context) (*entity.Candidate, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestExecutePassTimeoutStillReachesFailed(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(3)
	base := newFakePasses()
	items := newFakeItems(base)
	cons := &fakeConsolidator{}
	sched := &captureScheduler{}

	reg := extract.NewRegistry()
	ex := &fakeExtractor{fn: func(context.Context, extract.Source, entity.PassConfig) (extract.Stream, error) {
		return blockingStream{}, nil
	}}
	if err := reg.Register("ocr_table", ex); err != nil {
		t.Fatalf("register: %v", err)
	}
	mgr := NewManager(docs, ctxPasses{base}, items, reg, nil, cons, sched, 300, nil)

	p, err := mgr.CreatePass(context.Background(), doc.ID, "ocr_table", entity.PassConfig{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute returned %v, timeout must land on the pass", err)
	}

	got, _ := mgr.GetPass(context.Background(), p.ID)
	if got.Status != string(constants.PassStatusFailed) {
		t.Fatalf("status after timeout = %s, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage == "" {
		t.Error("timeout not recorded on the pass")
	}
	if cons.count() != 1 {
		t.Errorf("consolidation runs = %d, want 1", cons.count())
	}
}

func TestExecutePassSkipsNonQueued(t *testing.T) {
	fx := newFixture(t, sliceExtractor(candidates(2, 1, 70)))
	doc := fx.docs.add(3)
	ctx := context.Background()

	p, _ := fx.mgr.CreatePass(ctx, doc.ID, "text_direct", entity.PassConfig{})
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("second execute: %v", err)
	}

	persisted, _ := fx.items.ListByPass(ctx, p.ID)
	if len(persisted) != 2 {
		t.Fatalf("re-execution duplicated items: %d", len(persisted))
	}
	if fx.cons.count() != 1 {
		t.Errorf("consolidation runs = %d, want 1", fx.cons.count())
	}
}

func TestExecutePassPersistsBelowMinConfidence(t *testing.T) {
	// min_confidence travels to the adapter; whatever the adapter yields is
	// stored, nothing is filtered after the fact.
	var gotCfg entity.PassConfig
	low := candidates(2, 1, 10)
	ex := &fakeExtractor{fn: func(_ context.Context, _ extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
		gotCfg = cfg
		return extract.SliceStream(low), nil
	}}
	fx := newFixture(t, ex)
	doc := fx.docs.add(2)
	ctx := context.Background()

	p, _ := fx.mgr.CreatePass(ctx, doc.ID, "ocr_plain", entity.PassConfig{MinConfidence: 90})
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if gotCfg.MinConfidence != 90 {
		t.Errorf("min_confidence not passed to adapter: %v", gotCfg.MinConfidence)
	}
	persisted, _ := fx.items.ListByPass(ctx, p.ID)
	if len(persisted) != 2 {
		t.Fatalf("low-confidence yields were dropped: %d of 2 stored", len(persisted))
	}
}

func TestPassStats(t *testing.T) {
	items := append(candidates(4, 1, 80), candidates(2, 2, 50)...)
	fx := newFixture(t, sliceExtractor(items))
	doc := fx.docs.add(3)
	ctx := context.Background()

	p, _ := fx.mgr.CreatePass(ctx, doc.ID, "text_direct", entity.PassConfig{})
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute: %v", err)
	}

	stats, err := fx.mgr.PassStats(ctx, p.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalItems != 6 {
		t.Errorf("total_items = %d, want 6", stats.TotalItems)
	}
	if stats.PagesWithItems != 2 {
		t.Errorf("pages_with_items = %d, want 2", stats.PagesWithItems)
	}
	if stats.ItemsPerPage != 3 {
		t.Errorf("items_per_page = %v, want 3", stats.ItemsPerPage)
	}
	wantAvg := (4*80.0 + 2*50.0) / 6
	if stats.AvgConfidence != wantAvg {
		t.Errorf("avg_confidence = %v, want %v", stats.AvgConfidence, wantAvg)
	}
}

func TestLowConfidencePages(t *testing.T) {
	items := append(candidates(2, 1, 90), candidates(3, 4, 30)...)
	fx := newFixture(t, sliceExtractor(items))
	doc := fx.docs.add(5)
	ctx := context.Background()

	p, _ := fx.mgr.CreatePass(ctx, doc.ID, "text_direct", entity.PassConfig{})
	if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
		t.Fatalf("execute: %v", err)
	}

	pages, err := fx.mgr.LowConfidencePages(ctx, doc.ID)
	if err != nil {
		t.Fatalf("low confidence pages: %v", err)
	}
	if len(pages) != 1 || pages[0] != 4 {
		t.Fatalf("pages = %v, want [4]", pages)
	}
}

func TestAutoMultiPassCreatesLadder(t *testing.T) {
	fx := newFixture(t, sliceExtractor(candidates(1, 1, 90)))
	doc := fx.docs.add(8)
	ctx := context.Background()

	created, err := fx.mgr.AutoMultiPass(ctx, doc.ID, entity.PassConfig{})
	if err != nil {
		t.Fatalf("auto multi pass: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d passes, want 2", len(created))
	}
	if created[0].Method != string(constants.MethodOCRTable) {
		t.Errorf("pass 1 method = %s, want ocr_table", created[0].Method)
	}
	if created[1].Method != string(constants.MethodOCRAggressive) {
		t.Errorf("pass 2 method = %s, want ocr_aggressive", created[1].Method)
	}
	if created[1].Config.DPI != 400 {
		t.Errorf("pass 2 dpi = %d, want 400", created[1].Config.DPI)
	}
	if !created[0].Config.ForceOCR || !created[1].Config.ForceOCR {
		t.Error("ladder passes must force OCR")
	}
	if len(fx.sched.jobs) != 2 {
		t.Fatalf("jobs queued = %d, want 2", len(fx.sched.jobs))
	}
}

func TestAutoMultiPassFollowUpTargetsWeakPages(t *testing.T) {
	// pages 1-2 read fine, page 3 stays weak across both ladder passes
	items := append(candidates(2, 1, 85), candidates(2, 3, 20)...)
	fx := newFixture(t, sliceExtractor(items))
	doc := fx.docs.add(4)
	ctx := context.Background()

	created, err := fx.mgr.AutoMultiPass(ctx, doc.ID, entity.PassConfig{})
	if err != nil {
		t.Fatalf("auto multi pass: %v", err)
	}
	for _, p := range created {
		if err := fx.mgr.ExecutePass(ctx, p.ID); err != nil {
			t.Fatalf("execute %s: %v", p.ID, err)
		}
	}

	// the follow-up goroutine polls once a second
	deadline := time.Now().Add(5 * time.Second)
	for {
		list, _ := fx.mgr.ListPasses(ctx, doc.ID)
		if len(list) == 3 {
			for _, p := range list {
				if p.PassNumber != 3 {
					continue
				}
				if p.Method != string(constants.MethodOCRPlain) {
					t.Errorf("follow-up method = %s, want ocr_plain", p.Method)
				}
				if p.Config.DPI != 450 {
					t.Errorf("follow-up dpi = %d, want 450", p.Config.DPI)
				}
				if len(p.Config.Pages) != 1 || p.Config.Pages[0] != 3 {
					t.Errorf("follow-up pages = %v, want [3]", p.Config.Pages)
				}
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("follow-up pass never created")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestDocumentStatus(t *testing.T) {
	fx := newFixture(t, sliceExtractor(nil))
	doc := fx.docs.add(2)
	ctx := context.Background()

	if _, err := fx.mgr.CreatePass(ctx, doc.ID, "ocr_table", entity.PassConfig{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	st, err := fx.mgr.DocumentStatus(ctx, doc.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Document.ID != doc.ID || len(st.Passes) != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}

	if _, err := fx.mgr.DocumentStatus(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
