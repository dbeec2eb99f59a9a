package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed pages/*.md
var embedded embed.FS

// ErrNoPages is returned when a content source holds no pages.
var ErrNoPages = errors.New("no pages found")

// Library is the set of pages keyed by route path.
type Library struct {
	pages map[string]*Page
}

// NewLibrary indexes pages by path. Later pages with a duplicate path win.
func NewLibrary(pages []*Page) *Library {
	lib := &Library{pages: make(map[string]*Page, len(pages))}
	for _, p := range pages {
		lib.pages[p.Path] = p
	}
	return lib
}

// Default loads the pages compiled into the binary.
func Default() (*Library, error) {
	return LoadFS(embedded, "pages")
}

// LoadDir loads every *.md file under dir.
func LoadDir(dir string) (*Library, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("content directory %s does not exist", dir)
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every *.md file under root in fsys. Malformed pages are
// skipped with a warning so one bad file does not hide the rest.
func LoadFS(fsys fs.FS, root string) (*Library, error) {
	var pages []*Page
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		page, err := Parse(path.Base(p), data)
		if err != nil {
			log.Printf("Warning: skipping page: %v", err)
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return NewLibrary(pages), nil
}

// Page returns the page at route path.
func (l *Library) Page(route string) (*Page, bool) {
	p, ok := l.pages[route]
	return p, ok
}

// Paths returns all route paths, sorted.
func (l *Library) Paths() []string {
	out := make([]string, 0, len(l.pages))
	for p := range l.pages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of pages.
func (l *Library) Len() int { return len(l.pages) }

// Bodies returns the plain text of every page keyed by path, for indexing.
func (l *Library) Bodies() map[string]string {
	out := make(map[string]string, len(l.pages))
	for route, p := range l.pages {
		out[route] = p.PlainText()
	}
	return out
}
