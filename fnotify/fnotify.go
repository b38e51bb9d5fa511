// Package fnotify reports changes to a set of files, coalescing bursts of
// events into a single notification per file.
package fnotify

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 250 * time.Millisecond

// A Notifier watches files for changes.
type Notifier struct {
	name     string
	Debounce time.Duration
}

// New creates a Notifier; name identifies it in log messages.
func New(name string) *Notifier {
	return &Notifier{
		name:     name,
		Debounce: DefaultDebounce,
	}
}

// Notify sends the path of each changed file on res until ctx is done or
// the watcher fails. The directories holding the files are watched rather
// than the files themselves, so files replaced by rename (as most editors
// save) keep being tracked.
func (n *Notifier) Notify(ctx context.Context, files []string, res chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	pendingChanges := map[string]bool{}
	throttler := time.NewTimer(n.Debounce)
	defer throttler.Stop()
	throttleChan := func() <-chan time.Time {
		if len(pendingChanges) == 0 {
			return nil
		}
		return throttler.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !watched[name] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !throttler.Stop() {
				select {
				case <-throttler.C:
				default:
				}
			}
			throttler.Reset(n.Debounce)
			pendingChanges[name] = true
		case <-throttleChan():
			for file := range pendingChanges {
				delete(pendingChanges, file)
				log.Println("watcher", n.name, "firing change for", file)
				select {
				case res <- file:
				case <-ctx.Done():
					return nil
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watcher", n.name, "error:", err)
		case <-ctx.Done():
			return nil
		}
	}
}
