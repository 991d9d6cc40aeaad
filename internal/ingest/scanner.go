package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScannedFile represents a source document found during a content scan.
type ScannedFile struct {
	RelPath string // Relative path from the content root
	AbsPath string // Absolute file path
}

// supported maps the source file extensions the normalizer understands.
var supported = map[string]bool{
	".md":   true,
	".html": true,
	".txt":  true,
}

// Scan walks the content root and returns every supported source file.
// Hidden directories are skipped.
func Scan(ctx context.Context, root string) ([]ScannedFile, error) {
	var scanned []ScannedFile

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !supported[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		scanned = append(scanned, ScannedFile{
			RelPath: filepath.ToSlash(relPath),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return scanned, fmt.Errorf("failed to scan content root %s: %w", root, err)
	}

	return scanned, nil
}
