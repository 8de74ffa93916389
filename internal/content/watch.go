package content

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ChangeFunc receives the slash separated path, relative to the watched
// root, of a file that was written, created, removed or renamed.
type ChangeFunc func(path string)

// ErrorFunc receives errors reported by the watcher.
type ErrorFunc func(err error)

// Watch reports changes below root until ctx is done. Directories created
// after the call are watched as well.
func Watch(ctx context.Context, root string, onChange ChangeFunc, onError ErrorFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := addRecursive(watcher, root); err != nil {
		_ = watcher.Close()

		return err
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				handleEvent(watcher, root, event, onChange, onError)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				if onError != nil {
					onError(werr)
				}
			}
		}
	}()

	return nil
}

func handleEvent(watcher *fsnotify.Watcher, root string, event fsnotify.Event, onChange ChangeFunc, onError ErrorFunc) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if event.Has(fsnotify.Create) {
		if err := addRecursive(watcher, event.Name); err != nil && onError != nil {
			onError(err)
		}
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		if onError != nil {
			onError(err)
		}

		return
	}

	if onChange != nil {
		onChange(filepath.ToSlash(rel))
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}
