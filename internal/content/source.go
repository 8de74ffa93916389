// Package content fetches raw Markdown files and directory listings from a
// repository of content, either on GitHub or on a local directory tree.
package content

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// EntryType distinguishes files from directories in a listing.
type EntryType string

const (
	TypeFile EntryType = "file"
	TypeDir  EntryType = "dir"
)

// Entry is a single item of a directory listing. Path is relative to the
// repository root.
type Entry struct {
	Name string
	Path string
	Type EntryType
}

// Source reads files and listings. Listings keep the order the backing store
// returns.
type Source interface {
	File(ctx context.Context, path string) ([]byte, error)
	List(ctx context.Context, dir string) ([]Entry, error)
}

const (
	codeNotFound     = "CONTENT_NOT_FOUND"
	codeFetchFailed  = "CONTENT_FETCH_FAILED"
	codeDecodeFailed = "CONTENT_DECODE_FAILED"
)

// ErrNotFound reports a file or directory that does not exist in the source.
var ErrNotFound = errors.New("content not found")

// IsNotFound reports whether err stems from a missing file or directory.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrNotFound) || goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

func notFoundError(path string) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s", ErrNotFound, path), goerrors.CategoryNotFound, "content not found").
		WithTextCode(codeNotFound)
}

func fetchError(err error, path string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsWrapped(err) {
		return err
	}

	return goerrors.Wrap(fmt.Errorf("fetch %s: %w", path, err), goerrors.CategoryExternal, "content fetch failed").
		WithTextCode(codeFetchFailed)
}

func decodeError(err error, path string) error {
	return goerrors.Wrap(fmt.Errorf("decode %s: %w", path, err), goerrors.CategoryExternal, "content decode failed").
		WithTextCode(codeDecodeFailed)
}
