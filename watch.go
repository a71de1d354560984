package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// sourceExt is the extension of HTMLisp source files; write events on other
// files are ignored in watch mode.
const sourceExt = ".htmlisp"

// debounceDelay is how long a file has to stay quiet before it is
// recompiled. Editors often fire several write events per save.
const debounceDelay = 250 * time.Millisecond

// A debouncer delays a callback per path until the path has been quiet for
// the configured delay, so a burst of write events ends in a single call.
type debouncer struct {
	delay time.Duration
	fn    func(path string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration, fn func(path string)) *debouncer {
	return &debouncer{delay: delay, fn: fn, timers: make(map[string]*time.Timer)}
}

// trigger notes one event for path, restarting its quiet period.
func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Reset(d.delay)
		return
	}
	d.timers[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.fn(path)
	})
}

// watch monitors cfg.WatchDir recursively and recompiles every written
// .htmlisp file into a mirrored path under cfg.OutputDir with the extension
// swapped to .html. A failure on one file is reported and the loop keeps
// running; it only returns on a watcher error.
func watch(cfg *Config, sugar *zap.SugaredLogger) error {
	info, err := os.Stat(cfg.WatchDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", cfg.WatchDir)
	}
	watchDir, err := filepath.Abs(cfg.WatchDir)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// fsnotify does not watch recursively, so add every directory in the
	// tree. Directories created later are added when their create event
	// arrives.
	err = filepath.WalkDir(watchDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	reportInfo("Watching for write events in %s...", cfg.WatchDir)
	return watchLoop(watcher, watchDir, cfg, sugar)
}

// watchLoop consumes watcher events until the watcher is closed: it adds
// newly created directories to the watch set and debounces write events on
// .htmlisp files into compiles.
func watchLoop(watcher *fsnotify.Watcher, watchDir string, cfg *Config, sugar *zap.SugaredLogger) error {
	pending := newDebouncer(debounceDelay, func(path string) {
		compileEvent(watchDir, path, cfg, sugar)
	})

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			sugar.Debugw("event", "op", event.Op.String(), "path", event.Name)

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						sugar.Warnw("could not watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != sourceExt {
				continue
			}
			pending.trigger(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// compileEvent handles one debounced write event. Errors are reported, not
// returned: one malformed file must not stop the watch loop.
func compileEvent(watchDir, path string, cfg *Config, sugar *zap.SugaredLogger) {
	rel, out, err := outputPath(watchDir, path, cfg.OutputDir)
	if err != nil {
		reportError(err)
		return
	}

	reportInfo("Compiling due to write event...")
	if err := compile(path, out, cfg, sugar); err != nil {
		reportError(fmt.Errorf("%w: %s", err, rel))
		return
	}
	reportSuccess(rel, out)
}

// outputPath mirrors a written source file into the output root: the path
// relative to the watched directory is kept and the extension becomes
// .html. It returns the relative source path and the destination path.
func outputPath(watchDir, path, outputDir string) (rel, out string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}
	rel, err = filepath.Rel(watchDir, abs)
	if err != nil {
		return "", "", fmt.Errorf("couldn't determine output path for %s: %w", path, err)
	}
	return rel, filepath.Join(outputDir, replaceExt(rel, ".html")), nil
}
