package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"planwell/internal/config"
	"planwell/internal/ingest"
	"planwell/internal/normalizer"
	"planwell/internal/storage"
)

var (
	flagDir   string
	flagDB    string
	flagWatch bool
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Import source documents into the content store",
	Long: `Ingest scans a directory of source documents (.md, .html, .txt),
normalizes each one into a content record, and stores it in the
database. With --watch it keeps running and re-imports files as
they change.`,
	RunE: runIngest,
}

func init() {
	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "content directory to import (defaults to CONTENT_DIR)")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "database path (defaults to DB_PATH)")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "keep running and re-import files on change")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	dir := flagDir
	if dir == "" {
		dir = cfg.ContentDir
	}
	if dir == "" {
		return fmt.Errorf("no content directory: pass --dir or set CONTENT_DIR")
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	db, err := storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	importer := ingest.NewImporter(storage.NewContentRepo(db), normalizer.New(), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := importer.Run(ctx, dir)
	if err != nil {
		return fmt.Errorf("import %s: %w", dir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d, failed %d\n", summary.Imported, summary.Failed)

	if !flagWatch {
		return nil
	}

	if err := importer.Watch(ctx, dir); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
