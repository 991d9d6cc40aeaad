// Package ingest loads source documents from disk, normalizes them into
// content records, and stores them. It backs the ingest CLI's one-shot and
// watch modes.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"planwell/internal/normalizer"
	"planwell/internal/storage"
)

// Importer normalizes and stores source documents.
type Importer struct {
	store      storage.ContentStore
	normalizer *normalizer.Normalizer
	logger     *slog.Logger
}

// NewImporter creates an Importer writing through the given store.
func NewImporter(store storage.ContentStore, n *normalizer.Normalizer, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, normalizer: n, logger: logger}
}

// Summary reports the outcome of one import run.
type Summary struct {
	Imported int
	Failed   int
}

// Run scans the content root once and imports every supported file. A file
// that fails to import is counted and logged, not fatal; the run only errors
// when the scan itself fails.
func (imp *Importer) Run(ctx context.Context, root string) (Summary, error) {
	files, err := Scan(ctx, root)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, f := range files {
		if err := imp.ImportFile(ctx, f.AbsPath); err != nil {
			imp.logger.ErrorContext(ctx, "import failed", "path", f.RelPath, "error", err)
			summary.Failed++
			continue
		}
		summary.Imported++
	}

	imp.logger.InfoContext(ctx, "import run complete",
		"root", root,
		"imported", summary.Imported,
		"failed", summary.Failed,
	)
	return summary, nil
}

// ImportFile normalizes one source file and upserts the resulting record.
func (imp *Importer) ImportFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rec := imp.normalizer.Normalize(normalizer.RawInput{
		Filename: filepath.Base(path),
		Data:     data,
	})

	if err := imp.store.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("store %s: %w", rec.Slug, err)
	}

	imp.logger.InfoContext(ctx, "imported",
		"path", filepath.Base(path),
		"slug", rec.Slug,
		"type", rec.ContentType,
	)
	return nil
}

// Watch blocks, re-importing files as they are created or modified under the
// content root, until the context is cancelled.
func (imp *Importer) Watch(ctx context.Context, root string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the root and every existing subdirectory.
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch content root %s: %w", root, err)
	}

	imp.logger.InfoContext(ctx, "watching for changes", "root", root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				// New subdirectory: start watching it too.
				_ = watcher.Add(event.Name)
				continue
			}
			if !supported[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			if err := imp.ImportFile(ctx, event.Name); err != nil {
				imp.logger.ErrorContext(ctx, "import failed", "path", event.Name, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			imp.logger.WarnContext(ctx, "watcher error", "error", err)
		}
	}
}
