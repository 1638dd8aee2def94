package port

import "builtins/internal/domain"

// ObjectStore caches per-file extraction results between runs.
type ObjectStore interface {
	GetObject(path string) (CachedObject, bool, error)

	PutObject(path string, obj CachedObject) error

	DeleteObject(path string) error

	ListPaths() ([]string, error)

	Close() error
}

// CachedObject is the extraction result of one file, valid while the file's
// content hash and the framework are unchanged.
type CachedObject struct {
	ContentHash    string               `json:"content_hash"`
	Framework      string               `json:"framework"`
	Object         domain.BuiltinObject `json:"object"`
	CopyrightLines []string             `json:"copyright_lines"`
}
