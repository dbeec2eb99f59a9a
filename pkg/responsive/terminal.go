package responsive

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalSource reports the size of a terminal file descriptor and delivers
// a notification whenever the terminal is resized.
// Without a terminal (pipes, CI) the size is {0,0}.
type TerminalSource struct {
	fd int
}

// NewTerminalSource watches f, usually os.Stdout.
func NewTerminalSource(f *os.File) *TerminalSource {
	return &TerminalSource{fd: int(f.Fd())}
}

// Size implements Source.
func (s *TerminalSource) Size() Size {
	if !term.IsTerminal(s.fd) {
		return Size{}
	}
	w, h, err := term.GetSize(s.fd)
	if err != nil {
		return Size{}
	}
	return clampSize(Size{Width: w, Height: h})
}

// Subscribe implements Source. Each registration owns its own signal channel
// and goroutine, both released by the returned func.
func (s *TerminalSource) Subscribe(fn func(Size)) func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	notifyResize(ch)

	go func() {
		for {
			select {
			case <-ch:
				fn(s.Size())
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopResize(ch)
			close(done)
		})
	}
}
