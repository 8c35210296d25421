package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// sceneWatcher reports changes to a single scene file. It watches the
// file's directory, so that saves which rename a new file over the old one
// are seen too.
type sceneWatcher struct {
	name    string
	watcher *fsnotify.Watcher
}

func newSceneWatcher(path string) (*sceneWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &sceneWatcher{name: filepath.Clean(path), watcher: w}, nil
}

func (sw *sceneWatcher) Close() error {
	return sw.watcher.Close()
}

// run calls changed for every write to or creation of the scene file, until
// ctx is done. Errors returned by changed are logged and do not stop the
// watch.
func (sw *sceneWatcher) run(ctx context.Context, logger *slog.Logger, changed func() error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != sw.name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("scene changed", "scene", sw.name, "op", ev.Op.String())
			if err := changed(); err != nil {
				logger.Error("render failed", "scene", sw.name, "err", err)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
