package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"builtins/internal/port"
)

// ExtractUseCase turns a set of paths into a populated BuiltinsCollection.
type ExtractUseCase struct {
	framework string
	walker    port.FileWalker
	reader    port.FileReader
	store     port.ObjectStore // nil disables caching
	logger    *slog.Logger
}

// NewExtractUseCase creates a new extract use case.
func NewExtractUseCase(
	framework string,
	walker port.FileWalker,
	reader port.FileReader,
	store port.ObjectStore,
	logger *slog.Logger,
) *ExtractUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExtractUseCase{
		framework: framework,
		walker:    walker,
		reader:    reader,
		store:     store,
		logger:    logger,
	}
}

// ExtractResult contains the results of an extraction run.
type ExtractResult struct {
	FilesParsed int
	FilesCached int
	FilesPruned int
	Functions   int
}

// ProgressFunc is called after each file is processed.
type ProgressFunc func(processed, total int, currentFile string)

// Extract parses every builtins file named by paths. Directories are walked;
// files are taken as given. The first error aborts the run.
func (u *ExtractUseCase) Extract(paths []string, progress ProgressFunc) (*BuiltinsCollection, *ExtractResult, error) {
	collection, err := NewBuiltinsCollection(u.framework, WithLogger(u.logger))
	if err != nil {
		return nil, nil, err
	}

	files, roots, err := u.expand(paths)
	if err != nil {
		return nil, nil, err
	}

	result := &ExtractResult{}
	for i, file := range files {
		cached, err := u.extractFile(collection, file)
		if err != nil {
			return nil, nil, err
		}
		if cached {
			result.FilesCached++
		} else {
			result.FilesParsed++
		}
		if progress != nil {
			progress(i+1, len(files), file)
		}
	}

	pruned, err := u.prune(roots, files)
	if err != nil {
		return nil, nil, err
	}
	result.FilesPruned = pruned

	for _, obj := range collection.Objects() {
		result.Functions += len(obj.Functions)
	}

	return collection, result, nil
}

// expand resolves paths into absolute file paths, in argument order.
// Walked directories are returned as roots for cache pruning.
func (u *ExtractUseCase) expand(paths []string) ([]string, []string, error) {
	var files, roots []string
	seen := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, nil, fmt.Errorf("path does not exist: %w", err)
		}

		if !info.IsDir() {
			if !seen[abs] {
				seen[abs] = true
				files = append(files, abs)
			}
			continue
		}

		roots = append(roots, abs)
		found, err := u.walker.Walk(abs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to walk directory: %w", err)
		}
		for _, f := range found {
			if !seen[f.Path] {
				seen[f.Path] = true
				files = append(files, f.Path)
			}
		}
	}

	return files, roots, nil
}

// extractFile adds one file to the collection, from the cache when its
// content is unchanged. It reports whether the cache was used.
func (u *ExtractUseCase) extractFile(collection *BuiltinsCollection, path string) (bool, error) {
	content, err := u.reader.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	hash := contentHash(content)

	if u.store != nil {
		entry, ok, err := u.store.GetObject(path)
		if err != nil {
			return false, err
		}
		if ok && entry.ContentHash == hash && entry.Framework == u.framework {
			u.logger.Debug("using cached extraction", "file", path)
			collection.AddObject(entry.Object, entry.CopyrightLines)
			return true, nil
		}
	}

	// Parse into a scratch collection so the cache entry holds exactly
	// this file's copyright lines.
	single, err := NewBuiltinsCollection(u.framework, WithLogger(u.logger))
	if err != nil {
		return false, err
	}
	if err := single.ParseBuiltinsFile(path, content); err != nil {
		return false, err
	}
	if err := collection.Merge(single); err != nil {
		return false, err
	}

	if u.store != nil {
		entry := port.CachedObject{
			ContentHash:    hash,
			Framework:      u.framework,
			Object:         single.Objects()[0],
			CopyrightLines: single.CopyrightLines(),
		}
		if err := u.store.PutObject(path, entry); err != nil {
			return false, fmt.Errorf("failed to cache %s: %w", path, err)
		}
	}
	return false, nil
}

// prune drops cache entries under the walked roots whose files are gone.
func (u *ExtractUseCase) prune(roots, files []string) (int, error) {
	if u.store == nil || len(roots) == 0 {
		return 0, nil
	}

	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	cachedPaths, err := u.store.ListPaths()
	if err != nil {
		return 0, fmt.Errorf("failed to list cache: %w", err)
	}

	pruned := 0
	for _, path := range cachedPaths {
		if present[path] || !underAny(path, roots) {
			continue
		}
		if err := u.store.DeleteObject(path); err != nil {
			return pruned, fmt.Errorf("failed to delete %s from cache: %w", path, err)
		}
		u.logger.Debug("pruned cache entry", "file", path)
		pruned++
	}
	return pruned, nil
}

func underAny(path string, roots []string) bool {
	for _, root := range roots {
		if strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func contentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
