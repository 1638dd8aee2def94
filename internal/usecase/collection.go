package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"builtins/internal/adapter/analyzer"
	"builtins/internal/domain"
)

// BuiltinsCollection accumulates the builtin objects and copyright lines of
// one framework over a generation run. It is not safe for concurrent use;
// parallel callers should build one collection each and Merge them.
type BuiltinsCollection struct {
	framework      domain.Framework
	objects        []domain.BuiltinObject
	copyrightLines map[string]struct{}

	scanner    *analyzer.FunctionScanner
	signatures *analyzer.SignatureParser
	copyrights *analyzer.CopyrightExtractor
	logger     *slog.Logger
}

// CollectionOption configures a BuiltinsCollection.
type CollectionOption func(*BuiltinsCollection)

// WithLogger routes parse diagnostics to logger.
func WithLogger(logger *slog.Logger) CollectionOption {
	return func(c *BuiltinsCollection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewBuiltinsCollection creates an empty collection for the named framework.
// Unknown names return a *domain.UnknownFrameworkError and no collection.
func NewBuiltinsCollection(frameworkName string, opts ...CollectionOption) (*BuiltinsCollection, error) {
	fw, err := domain.LookupFramework(frameworkName)
	if err != nil {
		return nil, err
	}

	c := &BuiltinsCollection{
		framework:      fw,
		copyrightLines: make(map[string]struct{}),
		scanner:        analyzer.NewFunctionScanner(),
		signatures:     analyzer.NewSignatureParser(),
		copyrights:     analyzer.NewCopyrightExtractor(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("created builtins collection", "framework", fw.Name())
	return c, nil
}

func (c *BuiltinsCollection) Framework() domain.Framework {
	return c.framework
}

// ParseBuiltinsFile parses one builtins file and appends it as an object
// named after the file's base name. On error the collection is unchanged.
func (c *BuiltinsCollection) ParseBuiltinsFile(filename, text string) error {
	c.logger.Debug("parsing builtins file", "file", filename)

	lines, err := c.copyrights.Extract(text)
	if err != nil {
		return withFile(err, filename)
	}

	objectName := ObjectName(filename)
	functions, err := c.parseFunctions(text)
	if err != nil {
		return withFile(err, filename)
	}

	obj := domain.NewBuiltinObject(objectName, functions)
	c.AddObject(obj, lines)

	for _, fn := range obj.Functions {
		c.logger.Debug("parsed function", "object", objectName, "function", fn.String())
	}
	return nil
}

func (c *BuiltinsCollection) parseFunctions(text string) ([]domain.BuiltinFunction, error) {
	fragments, err := c.scanner.ScanFragments(text)
	if err != nil {
		return nil, err
	}

	functions := make([]domain.BuiltinFunction, 0, len(fragments))
	for _, fragment := range fragments {
		fn, err := c.signatures.Parse(fragment)
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return functions, nil
}

// AddObject appends an already parsed object and merges its copyright lines.
func (c *BuiltinsCollection) AddObject(obj domain.BuiltinObject, copyrightLines []string) {
	c.objects = append(c.objects, domain.NewBuiltinObject(obj.Name, obj.Functions))
	for _, line := range copyrightLines {
		if _, ok := c.copyrightLines[line]; !ok {
			c.logger.Debug("found copyright line", "line", line)
		}
		c.copyrightLines[line] = struct{}{}
	}
}

// Merge folds other into c: copyright sets are unioned and objects appended.
func (c *BuiltinsCollection) Merge(other *BuiltinsCollection) error {
	if other.framework.Name() != c.framework.Name() {
		return fmt.Errorf("cannot merge %s builtins into %s collection",
			other.framework.Name(), c.framework.Name())
	}
	c.objects = append(c.objects, other.objects...)
	for line := range other.copyrightLines {
		c.copyrightLines[line] = struct{}{}
	}
	return nil
}

// Objects returns the parsed objects in insertion order.
func (c *BuiltinsCollection) Objects() []domain.BuiltinObject {
	out := make([]domain.BuiltinObject, len(c.objects))
	copy(out, c.objects)
	return out
}

// AllFunctions returns every function of every object, sorted by
// domain.BuiltinFunction.Less.
func (c *BuiltinsCollection) AllFunctions() []domain.BuiltinFunction {
	result := []domain.BuiltinFunction{}
	for _, obj := range c.objects {
		result = append(result, obj.Functions...)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}

// CopyrightLines returns the deduplicated raw copyright lines, sorted.
func (c *BuiltinsCollection) CopyrightLines() []string {
	lines := make([]string, 0, len(c.copyrightLines))
	for line := range c.copyrightLines {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines
}

// Copyrights returns one "years owner" line per copyright owner.
func (c *BuiltinsCollection) Copyrights() []string {
	entries := analyzer.MergeCopyrights(c.CopyrightLines())
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		c.logger.Debug("merged copyright", "owner", entry.Owner, "years", entry.Years)
		result = append(result, entry.String())
	}
	return result
}

// Manifest snapshots the collection for emitters.
func (c *BuiltinsCollection) Manifest() domain.Manifest {
	return domain.Manifest{
		Framework:   c.framework.Name(),
		Namespace:   c.framework.Namespace(),
		MacroPrefix: c.framework.MacroPrefix(),
		Copyrights:  c.Copyrights(),
		Objects:     c.Objects(),
		Functions:   c.AllFunctions(),
	}
}

// ObjectName derives an object name from a file name: base name, no extension.
func ObjectName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func withFile(err error, filename string) error {
	if pe, ok := err.(*domain.ParseError); ok {
		annotated := *pe
		annotated.File = filename
		return &annotated
	}
	return fmt.Errorf("%s: %w", filename, err)
}
