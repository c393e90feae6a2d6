package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// Watch monitors path and invokes onChange whenever the file is written or
// recreated. It returns a stop function that releases the watcher. Editors
// that replace files via rename are handled by watching the parent
// directory and filtering on the file name.
func Watch(path string, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	log := logging.Get(logging.CategoryBoot)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					log.Debug("config file changed, reloading")
					onChange()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
