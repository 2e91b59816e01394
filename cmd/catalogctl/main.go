// catalogctl runs the extraction pipeline locally, without the daemon: it
// registers PDFs, executes passes against an embedded or remote database,
// and writes the consolidated export. Useful for one-off catalogs and for
// smoke-testing method configurations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/consolidate"
	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/export"
	"github.com/catalogkit/extractor/internal/extract"
	"github.com/catalogkit/extractor/internal/extract/hybrid"
	"github.com/catalogkit/extractor/internal/extract/ocrtext"
	"github.com/catalogkit/extractor/internal/extract/pdftext"
	"github.com/catalogkit/extractor/internal/extract/vision"
	"github.com/catalogkit/extractor/internal/ingest"
	"github.com/catalogkit/extractor/internal/passes"
	repo "github.com/catalogkit/extractor/internal/repository"
)

var (
	flagDB     string
	flagInmem  bool
	flagUpload string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Run catalog extraction locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagDB, "db", os.Getenv("DB_URL"), "database DSN (postgres URL or sqlite file)")
	root.PersistentFlags().BoolVar(&flagInmem, "inmem", false, "use an in-memory SQLite database")
	root.PersistentFlags().StringVar(&flagUpload, "upload-dir", "./uploads", "directory for stored document copies")

	root.AddCommand(newMethodsCmd())
	root.AddCommand(newProcessCmd(logger))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List known extraction methods",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, m := range constants.Methods() {
				fmt.Println(m)
			}
		},
	}
}

func newProcessCmd(logger *slog.Logger) *cobra.Command {
	var (
		dir     string
		method  string
		auto    bool
		out     string
		format  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Register PDFs, run extraction passes, and export the consolidated items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				return fmt.Errorf("--dir is required")
			}
			if auto && method != "" {
				return fmt.Errorf("--auto and --method are mutually exclusive")
			}
			if !auto && method == "" {
				method = string(constants.MethodHybrid)
			}
			return runProcess(cmd.Context(), logger, dir, method, auto, out, format, timeout)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory of PDFs to process (required)")
	cmd.Flags().StringVar(&method, "method", "", "extraction method for the single pass (default hybrid)")
	cmd.Flags().BoolVar(&auto, "auto", false, "run the automatic multi-pass ladder instead of a single method")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default <dir>/../catalog.<format>)")
	cmd.Flags().StringVar(&format, "format", "csv", "export format: csv or xlsx")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "how long to wait for passes to settle")
	return cmd
}

func runProcess(ctx context.Context, logger *slog.Logger, dir, method string, auto bool, out, format string, timeout time.Duration) error {
	switch format {
	case "csv", "xlsx":
	default:
		return fmt.Errorf("format must be csv or xlsx, got %q", format)
	}
	if out == "" {
		out = filepath.Join(filepath.Dir(dir), "catalog."+format)
	}

	dbr, err := repo.InitDatabase(ctx, flagDB, flagInmem, logger)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer dbr.Cleanup()
	entc := dbr.Client

	docsRepo := repo.NewDocumentRepository(entc, logger)
	passRepo := repo.NewPassRepository(entc, logger)
	itemRepo := repo.NewItemRepository(entc, logger)
	consolidatedRepo := repo.NewConsolidatedItemRepository(entc, logger)

	engine := consolidate.NewEngine(itemRepo, consolidatedRepo, logger)
	registry, err := buildRegistry(logger)
	if err != nil {
		return fmt.Errorf("build adapter registry: %w", err)
	}

	queue := passes.NewQueue(logger, passes.WithWorkers(4), passes.WithPassTimeout(timeout))
	manager := passes.NewManager(docsRepo, passRepo, itemRepo, registry, nil, engine, queue, 300, logger)
	queue.Start(manager)
	defer queue.Shutdown(context.Background())

	ingestor := ingest.NewService(docsRepo, flagUpload, logger)

	// Register every PDF in the directory, a few at a time.
	pdfs, err := collectPDFs(dir)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDF files under %s", dir)
	}
	logger.Info("registering documents", "dir", dir, "files", len(pdfs))

	docIDs := make([]uuid.UUID, len(pdfs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range pdfs {
		g.Go(func() error {
			res, err := ingestor.Register(gctx, path)
			if err != nil {
				return fmt.Errorf("register %s: %w", path, err)
			}
			docIDs[i] = res.Document.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Queue passes.
	for _, id := range docIDs {
		if auto {
			if _, err := manager.AutoMultiPass(ctx, id, entity.PassConfig{}); err != nil {
				return fmt.Errorf("auto multi pass %s: %w", id, err)
			}
		} else {
			if _, err := manager.CreatePass(ctx, id, method, entity.PassConfig{}); err != nil {
				return fmt.Errorf("create pass %s: %w", id, err)
			}
		}
	}

	// Wait for every document's passes to settle.
	deadline := time.Now().Add(timeout)
	for _, id := range docIDs {
		if err := waitForDocument(ctx, manager, id, deadline); err != nil {
			return err
		}
	}

	// Export per document.
	exporter := export.NewService(consolidatedRepo, logger)
	for i, id := range docIDs {
		data, rows, err := exporter.Export(ctx, id, export.Format(format))
		if err != nil {
			return fmt.Errorf("export %s: %w", id, err)
		}
		target := out
		if len(docIDs) > 1 {
			base := strings.TrimSuffix(filepath.Base(pdfs[i]), filepath.Ext(pdfs[i]))
			target = filepath.Join(filepath.Dir(out), base+"."+format)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		fmt.Printf("%s: %d items -> %s\n", filepath.Base(pdfs[i]), rows, target)
	}
	return nil
}

func collectPDFs(dir string) ([]string, error) {
	var pdfs []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			pdfs = append(pdfs, path)
		}
		return nil
	})
	return pdfs, err
}

func waitForDocument(ctx context.Context, manager *passes.Manager, id uuid.UUID, deadline time.Time) error {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		list, err := manager.ListPasses(ctx, id)
		if err != nil {
			return err
		}
		settled := len(list) > 0
		for _, p := range list {
			if !constants.PassStatus(p.Status).IsTerminal() {
				settled = false
				break
			}
		}
		if settled {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("document %s: passes did not settle in time", id)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// buildRegistry mirrors the daemon's adapter wiring.
func buildRegistry(logger *slog.Logger) (*extract.Registry, error) {
	registry := extract.NewRegistry()

	text := pdftext.New(logger)
	ocrTable := ocrtext.New(ocrtext.Config{PSM: 6, BaseConfidence: 60}, logger)
	ocrPlain := ocrtext.New(ocrtext.Config{PSM: 4, BaseConfidence: 55}, logger)
	ocrAggressive := ocrtext.New(ocrtext.Config{PSM: 11, OEM: 1, BaseConfidence: 50}, logger)

	for name, e := range map[string]extract.Extractor{
		"text_direct":    text,
		"ocr_table":      ocrTable,
		"ocr_plain":      ocrPlain,
		"ocr_aggressive": ocrAggressive,
		"hybrid":         hybrid.New(text, ocrTable, logger),
	} {
		if err := registry.Register(name, e); err != nil {
			return nil, err
		}
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		client := vision.NewClient(vision.Config{}, logger)
		if err := registry.Register("claude_vision", vision.New(client, logger)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
