package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// DirSource reads content from a file system tree.
type DirSource struct {
	fsys fs.FS
}

var _ Source = (*DirSource)(nil)

// NewDirSource serves content from fsys.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// NewLocalSource serves content from the directory root on disk.
func NewLocalSource(root string) *DirSource {
	return NewDirSource(os.DirFS(root))
}

// File reads name relative to the source root.
func (s *DirSource) File(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError(err, name)
	}

	clean, ok := cleanPath(name)
	if !ok {
		return nil, notFoundError(name)
	}

	data, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		return nil, dirError(err, name)
	}

	return data, nil
}

// List returns the entries of dir sorted by name.
func (s *DirSource) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError(err, dir)
	}

	clean, ok := cleanPath(dir)
	if !ok {
		return nil, notFoundError(dir)
	}

	items, err := fs.ReadDir(s.fsys, clean)
	if err != nil {
		return nil, dirError(err, dir)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entryType := TypeFile
		if item.IsDir() {
			entryType = TypeDir
		}

		entryPath := item.Name()
		if clean != "." {
			entryPath = path.Join(clean, item.Name())
		}

		entries = append(entries, Entry{Name: item.Name(), Path: entryPath, Type: entryType})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

func cleanPath(name string) (string, bool) {
	name = strings.Trim(name, "/")
	if name == "" {
		return ".", true
	}

	clean := path.Clean(name)
	if !fs.ValidPath(clean) {
		return "", false
	}

	return clean, true
}

func dirError(err error, name string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return notFoundError(name)
	}

	return fetchError(err, name)
}
