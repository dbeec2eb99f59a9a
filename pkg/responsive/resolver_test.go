package responsive

import "testing"

func TestResolver_ZeroSizeResolvesToFloor(t *testing.T) {
	r := NewResolver(DefaultTable)
	if got := r.Current(); got != SM {
		t.Errorf("Current() = %s, want sm", got)
	}
	if !r.IsMobile() {
		t.Error("zero width should be mobile")
	}
}

func TestResolver_TabletBelowLG(t *testing.T) {
	r := NewResolver(DefaultTable)
	r.Resize(Size{Width: 1000, Height: 800})

	if got := r.Current(); got != MD {
		t.Errorf("Current() = %s, want md", got)
	}
	if !r.IsTablet() || r.IsDesktop() {
		t.Error("expected tablet, not desktop, at width 1000")
	}
	if !r.IsAtLeast(MD) || r.IsAtLeast(LG) {
		t.Error("IsAtLeast mismatch at width 1000")
	}
}

func TestResolver_DesktopScenario(t *testing.T) {
	r := NewResolver(DefaultTable)
	r.Resize(Size{Width: 1024, Height: 800})

	if got := r.Current(); got != LG {
		t.Errorf("Current() = %s, want lg", got)
	}
	if !r.IsDesktop() {
		t.Error("expected desktop at width 1024")
	}
	if r.IsTablet() {
		t.Error("did not expect tablet at width 1024")
	}
	if !r.IsAtLeast(MD) || r.IsAtLeast(XL) {
		t.Error("IsAtLeast mismatch at width 1024")
	}
}

func TestResolver_ActivateCapturesSizeSynchronously(t *testing.T) {
	src := NewBroadcaster(Size{Width: 900, Height: 40})
	r := NewResolver(DefaultTable)

	r.Activate(src)
	defer r.Deactivate()

	if got := r.Size(); got.Width != 900 || got.Height != 40 {
		t.Errorf("Size() = %+v, want {900 40}", got)
	}
	if got := r.Current(); got != MD {
		t.Errorf("Current() = %s, want md", got)
	}
}

func TestResolver_FollowsResizeNotifications(t *testing.T) {
	src := NewBroadcaster(Size{})
	r := NewResolver(DefaultTable)
	r.Activate(src)

	var seen []Breakpoint
	r.OnChange(func(s State) { seen = append(seen, s.Breakpoint) })

	src.Publish(Size{Width: 1300, Height: 700})
	src.Publish(Size{Width: 1300, Height: 700}) // unchanged, no callback
	src.Publish(Size{Width: 500, Height: 700})

	if len(seen) != 2 || seen[0] != XL || seen[1] != SM {
		t.Errorf("OnChange breakpoints = %v, want [xl sm]", seen)
	}

	r.Deactivate()
	src.Publish(Size{Width: 2000, Height: 700})
	if got := r.Current(); got != SM {
		t.Errorf("after Deactivate, Current() = %s, want sm (no further updates)", got)
	}
}

func TestResolver_SingleSubscription(t *testing.T) {
	src := NewBroadcaster(Size{Width: 800})
	r := NewResolver(TerminalTable)

	for i := 0; i < 5; i++ {
		r.Activate(src)
	}
	if n := src.Subscribers(); n != 1 {
		t.Errorf("Subscribers() = %d after repeated Activate, want 1", n)
	}

	r.Deactivate()
	r.Deactivate()
	if n := src.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d after Deactivate, want 0", n)
	}
	if r.Active() {
		t.Error("resolver should not be active after Deactivate")
	}
}

func TestResolver_MountUnmountCyclesDoNotLeak(t *testing.T) {
	src := NewBroadcaster(Size{Width: 120})
	for i := 0; i < 10; i++ {
		r := NewResolver(TerminalTable)
		r.Activate(src)
		r.Deactivate()
	}
	if n := src.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
}

func TestResolver_NegativeSizeClamps(t *testing.T) {
	r := NewResolver(DefaultTable)
	r.Resize(Size{Width: -10, Height: -1})
	if got := r.Size(); got != (Size{}) {
		t.Errorf("Size() = %+v, want zero", got)
	}
}

func TestTerminalSource_NoTerminal(t *testing.T) {
	f := mustTempFile(t)
	src := NewTerminalSource(f)
	if got := src.Size(); got != (Size{}) {
		t.Errorf("Size() of a regular file = %+v, want zero", got)
	}

	r := NewResolver(TerminalTable)
	r.Activate(src)
	if got := r.Current(); got != SM {
		t.Errorf("Current() = %s, want sm without a terminal", got)
	}
	r.Deactivate()
}
