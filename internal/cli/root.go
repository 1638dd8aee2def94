package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"builtins/config"
	"builtins/internal/domain"
)

var (
	cfgFile       string
	cfg           *config.Config
	rootDir       string
	frameworkName string
	logLevel      string
	logger        *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Builtins extractor - collect builtin function metadata for code generation",
	Long: `builtins scans JavaScript builtins files, extracts every function and
constructor declaration with its parameters, merges the license copyright
lines, and emits a manifest for the code generator.

Example usage:
  builtins extract builtins/ -f JavaScriptCore   # JSON manifest on stdout
  builtins extract --format go -o builtins.go .  # Go table of builtins
  builtins functions ArrayPrototype.js           # List parsed signatures
  builtins copyrights .                          # Merged copyright lines`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if frameworkName != "" {
			cfg.Extract.Framework = frameworkName
		}
		if _, err := domain.LookupFramework(cfg.Extract.Framework); err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = newLogger(cfg.Logging.Level)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./builtins.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVarP(&frameworkName, "framework", "f", "",
		fmt.Sprintf("framework the builtins belong to (%s)", strings.Join(domain.Frameworks(), ", ")))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func newLogger(level string) (*slog.Logger, error) {
	lvl := slog.LevelInfo
	if level == "" {
		level = lvl.String()
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
