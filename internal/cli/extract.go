package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"builtins/config"
	"builtins/internal/adapter/emitter"
	"builtins/internal/adapter/fs"
	"builtins/internal/adapter/store"
	"builtins/internal/domain"
	"builtins/internal/port"
	"builtins/internal/usecase"
)

var (
	extractFormat  string
	extractOutput  string
	extractPackage string
	extractNoCache bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [paths...]",
	Short: "Extract builtin metadata and emit a manifest",
	Long: `Parse builtins files and write a manifest of every object, function
and merged copyright line. Directories are searched with the configured
include/exclude globs; files are parsed as given.

Examples:
  builtins extract .                            # JSON to stdout
  builtins extract -f WebCore --format go -o gen/builtins.go js/`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "output format: json, go, text (default from config)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default stdout)")
	extractCmd.Flags().StringVar(&extractPackage, "package", "", "package name for the go format (default from config)")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "parse every file, ignoring the extraction cache")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	format := cfg.Output.Format
	if extractFormat != "" {
		format = extractFormat
	}
	pkg := cfg.Output.PackageName
	if extractPackage != "" {
		pkg = extractPackage
	}
	out := cfg.Output.Path
	if extractOutput != "" {
		out = extractOutput
	}

	em, err := emitter.New(format, pkg)
	if err != nil {
		return err
	}

	collection, result, err := extract(args, !extractNoCache, true)
	if err != nil {
		return err
	}

	logger.Info("extraction complete",
		"parsed", result.FilesParsed,
		"cached", result.FilesCached,
		"pruned", result.FilesPruned,
		"functions", result.Functions)

	return writeManifest(em, collection, out)
}

// extract runs the extraction use case over args, or the root directory
// when no paths are given.
func extract(args []string, useCache, showProgress bool) (*usecase.BuiltinsCollection, *usecase.ExtractResult, error) {
	cfg := GetConfig()

	// Reject the framework before the cache is opened; a changed name would
	// otherwise invalidate it.
	if _, err := domain.LookupFramework(cfg.Extract.Framework); err != nil {
		return nil, nil, err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{GetRootDir()}
	}

	var st port.ObjectStore
	if useCache && cfg.Cache.Enabled {
		bolt, err := openCache(cfg)
		if err != nil {
			return nil, nil, err
		}
		defer bolt.Close()
		st = bolt
	}

	walker := fs.NewWalker(cfg.Extract.Includes, cfg.Extract.Excludes)
	extractUC := usecase.NewExtractUseCase(cfg.Extract.Framework, walker, fs.Reader{}, st, logger)

	var progress usecase.ProgressFunc
	if showProgress {
		progress = newProgress()
	}

	collection, result, err := extractUC.Extract(paths, progress)
	if err != nil {
		return nil, nil, fmt.Errorf("extraction failed: %w", err)
	}
	return collection, result, nil
}

func openCache(cfg *config.Config) (*store.BoltStore, error) {
	dir := GetRootDir()
	if err := config.EnsureBuiltinsDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .builtins directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CacheDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open extraction cache: %w", err)
	}

	reason, err := st.Prepare(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to prepare extraction cache: %w", err)
	}
	if reason != "" {
		logger.Debug("extraction cache updated", "reason", reason)
	}
	return st, nil
}

// newProgress draws a bar on stderr once more than one file is processed.
func newProgress() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(processed, total int, currentFile string) {
		if total < 2 {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Extracting[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		bar.Describe(fmt.Sprintf("[cyan]Extracting[reset] %s", filepath.Base(currentFile)))
		bar.Set(processed)
	}
}

func writeManifest(em port.Emitter, collection *usecase.BuiltinsCollection, out string) error {
	manifest := collection.Manifest()

	if out == "" {
		return em.Emit(os.Stdout, manifest)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := em.Emit(f, manifest); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s manifest: %w", em.Format(), err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("manifest written", "path", out, "format", em.Format())
	return nil
}
