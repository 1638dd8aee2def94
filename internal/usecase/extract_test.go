package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builtins/config"
	"builtins/internal/adapter/fs"
	"builtins/internal/adapter/store"
	"builtins/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func setupBuiltinsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ArrayPrototype.js"), arrayPrototypeJS)
	writeFile(t, filepath.Join(dir, "string", "StringPrototype.js"), stringPrototypeJS)
	writeFile(t, filepath.Join(dir, "README.md"), "# not a builtins file\n")
	writeFile(t, filepath.Join(dir, "node_modules", "dep.js"), "garbage {")
	return dir
}

func openStore(t *testing.T, dir string) *store.BoltStore {
	t.Helper()
	st, err := store.NewBoltStore(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newExtractUseCase(st *store.BoltStore) *ExtractUseCase {
	cfg := config.DefaultConfig()
	walker := fs.NewWalker(cfg.Extract.Includes, cfg.Extract.Excludes)
	if st == nil {
		return NewExtractUseCase("JavaScriptCore", walker, fs.Reader{}, nil, nil)
	}
	return NewExtractUseCase("JavaScriptCore", walker, fs.Reader{}, st, nil)
}

func TestExtract_WalksDirectory(t *testing.T) {
	dir := setupBuiltinsDir(t)

	var calls int
	collection, result, err := newExtractUseCase(nil).Extract([]string{dir}, func(processed, total int, _ string) {
		calls++
		assert.Equal(t, 2, total)
		assert.Equal(t, calls, processed)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, result.FilesParsed)
	assert.Equal(t, 0, result.FilesCached)
	assert.Equal(t, 4, result.Functions)

	objects := collection.Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, "ArrayPrototype", objects[0].Name)
	assert.Equal(t, "StringPrototype", objects[1].Name)
}

func TestExtract_ExplicitFiles(t *testing.T) {
	dir := setupBuiltinsDir(t)
	file := filepath.Join(dir, "string", "StringPrototype.js")

	collection, result, err := newExtractUseCase(nil).Extract([]string{file, file}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesParsed)
	assert.Len(t, collection.AllFunctions(), 2)
}

func TestExtract_UsesCache(t *testing.T) {
	dir := setupBuiltinsDir(t)
	st := openStore(t, t.TempDir())
	uc := newExtractUseCase(st)

	first, result, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesParsed)

	second, result, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesParsed)
	assert.Equal(t, 2, result.FilesCached)

	assert.Equal(t, first.AllFunctions(), second.AllFunctions())
	assert.Equal(t, first.Copyrights(), second.Copyrights())
}

func TestExtract_ReparsesChangedFiles(t *testing.T) {
	dir := setupBuiltinsDir(t)
	st := openStore(t, t.TempDir())
	uc := newExtractUseCase(st)

	_, _, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "ArrayPrototype.js"),
		"/* Copyright (C) 2016 Apple Inc. All rights reserved. */\nfunction only(a) { }\n")

	collection, result, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesParsed)
	assert.Equal(t, 1, result.FilesCached)
	assert.Equal(t, 3, result.Functions)
	assert.Contains(t, collection.Copyrights(), "2015, 2016 Apple Inc. All rights reserved.")
}

func TestExtract_PrunesDeletedFiles(t *testing.T) {
	dir := setupBuiltinsDir(t)
	st := openStore(t, t.TempDir())
	uc := newExtractUseCase(st)

	_, _, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "string", "StringPrototype.js")))

	_, result, err := uc.Extract([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesPruned)

	paths, err := st.ListPaths()
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestExtract_ParseErrorAborts(t *testing.T) {
	dir := setupBuiltinsDir(t)
	writeFile(t, filepath.Join(dir, "Broken.js"), "/* Copyright 2016 X */\nfunction broken() {\n")

	collection, _, err := newExtractUseCase(nil).Extract([]string{dir}, nil)

	assert.Nil(t, collection)
	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, filepath.Join(dir, "Broken.js"), pe.File)
}

func TestExtract_UnknownFramework(t *testing.T) {
	walker := fs.NewWalker(nil, nil)
	uc := NewExtractUseCase("SpiderMonkey", walker, fs.Reader{}, nil, nil)

	_, _, err := uc.Extract([]string{t.TempDir()}, nil)

	var ufe *domain.UnknownFrameworkError
	assert.True(t, errors.As(err, &ufe))
}

func TestExtract_MissingPath(t *testing.T) {
	_, _, err := newExtractUseCase(nil).Extract([]string{filepath.Join(t.TempDir(), "missing")}, nil)
	assert.Error(t, err)
}
