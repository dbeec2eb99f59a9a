package content

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/blazemetrics/bmdocs/pkg/debounce"
)

// Watcher reloads a content directory whenever a markdown file changes.
// Bursts of events (editors write several times per save) are coalesced
// into one reload.
type Watcher struct {
	dir      string
	fsw      *fsnotify.Watcher
	debounce *debounce.Debouncer[string]
	onReload func(*Library, error)

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Watch starts watching dir. onReload runs on a background goroutine with
// the freshly loaded library or the load error.
func Watch(dir string, onReload func(*Library, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		fsw:      fsw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	w.debounce = debounce.New(debounce.DefaultWindow, func(string) {
		lib, err := LoadDir(w.dir)
		w.onReload(lib, err)
	})

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			w.debounce.Push(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: content watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), ".md") {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// Close stops watching and drops any pending reload.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debounce.Cancel()
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
