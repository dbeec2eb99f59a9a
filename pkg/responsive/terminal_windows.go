//go:build windows

package responsive

import "os"

// Windows consoles have no resize signal; the TUI still receives
// window size messages from bubbletea, so only the initial size is served here.
func notifyResize(ch chan os.Signal) {}

func stopResize(ch chan os.Signal) {}
