package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builtins/config"
	"builtins/internal/adapter/store"
	"builtins/internal/domain"
)

const everyJS = `/*
 * Copyright (C) 2015 Apple Inc. All rights reserved.
 */

function every(callback /*, thisArg */)
{
    return true;
}
`

const someJS = `/*
 * Copyright (C) 2016 Apple Inc. All rights reserved.
 */

function some(callback) { return false; }
`

// setupCommand points the package-level command state at a fresh directory.
func setupCommand(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ArrayEvery.js"), []byte(everyJS), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ArraySome.js"), []byte(someJS), 0644))

	prevCfg, prevRoot, prevLogger := cfg, rootDir, logger
	t.Cleanup(func() { cfg, rootDir, logger = prevCfg, prevRoot, prevLogger })

	cfg = config.DefaultConfig()
	rootDir = dir
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return dir
}

func cachedPaths(t *testing.T, dir string) []string {
	t.Helper()
	st, err := store.NewBoltStore(config.CacheDBPath(dir))
	require.NoError(t, err)
	defer st.Close()

	paths, err := st.ListPaths()
	require.NoError(t, err)
	return paths
}

func TestExtract_PopulatesCache(t *testing.T) {
	dir := setupCommand(t)

	collection, result, err := extract(nil, true, false)

	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesParsed)
	assert.Len(t, collection.AllFunctions(), 2)
	assert.Len(t, cachedPaths(t, dir), 2)
}

func TestExtract_UnknownFrameworkKeepsCache(t *testing.T) {
	dir := setupCommand(t)

	_, _, err := extract(nil, true, false)
	require.NoError(t, err)
	require.Len(t, cachedPaths(t, dir), 2)

	cfg.Extract.Framework = "Bogus"
	_, _, err = extract(nil, true, false)

	var ufe *domain.UnknownFrameworkError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "Bogus", ufe.Name)
	assert.Len(t, cachedPaths(t, dir), 2)

	// The original framework still hits the cache.
	cfg.Extract.Framework = "JavaScriptCore"
	_, result, err := extract(nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesCached)
}

func TestExtract_UnknownFrameworkCreatesNoCache(t *testing.T) {
	dir := setupCommand(t)
	cfg.Extract.Framework = "Bogus"

	_, _, err := extract(nil, true, false)

	var ufe *domain.UnknownFrameworkError
	require.True(t, errors.As(err, &ufe))
	_, statErr := os.Stat(config.CacheDBPath(dir))
	assert.True(t, os.IsNotExist(statErr))
}
