package navigation

import (
	"fmt"
	"strings"
)

// NotFoundPath is the route shown for unknown paths.
const NotFoundPath = "/404"

// Router keeps the current path and a back stack. Navigating to a path that
// is not in the index lands on NotFoundPath and reports ErrNotFound.
type Router struct {
	index   *Index
	current string
	back    []string
	maxBack int
}

// NewRouter starts at start (or "/" when empty).
func NewRouter(index *Index, start string) *Router {
	r := &Router{index: index, current: "/", maxBack: 50}
	if start != "" {
		r.current = normalizePath(start)
		if _, ok := index.PageInfo(r.current); !ok {
			r.current = NotFoundPath
		}
	}
	return r
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// Current returns the current path.
func (r *Router) Current() string { return r.current }

// Navigate moves to path, pushing the previous path on the back stack.
// Navigating to the current path is a no-op.
func (r *Router) Navigate(path string) error {
	path = normalizePath(path)
	if path == r.current {
		return nil
	}

	r.back = append(r.back, r.current)
	if len(r.back) > r.maxBack {
		r.back = r.back[len(r.back)-r.maxBack:]
	}

	if _, ok := r.index.PageInfo(path); !ok {
		r.current = NotFoundPath
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	r.current = path
	return nil
}

// Back returns to the previous path. It reports false when there is none.
func (r *Router) Back() bool {
	if len(r.back) == 0 {
		return false
	}
	r.current = r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	return true
}

// CanGoBack reports whether Back would move.
func (r *Router) CanGoBack() bool { return len(r.back) > 0 }

// Breadcrumbs returns the trail of the current path.
func (r *Router) Breadcrumbs() []Breadcrumb {
	return r.index.Breadcrumbs(r.current)
}

// Related returns the related content of the current path.
func (r *Router) Related() []Item {
	return r.index.Related(r.current)
}
