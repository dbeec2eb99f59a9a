package responsive

import (
	"os"
	"path/filepath"
	"testing"
)

func mustTempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func resolverAt(width int) *Resolver {
	r := NewResolver(DefaultTable)
	r.Resize(Size{Width: width, Height: 600})
	return r
}

func TestValue_OnlyMD(t *testing.T) {
	values := Values[string]{MD: "X"}
	for _, w := range []int{0, 500, 767} {
		if got := Value(resolverAt(w), values, "Y"); got != "Y" {
			t.Errorf("width %d: got %q, want fallback Y", w, got)
		}
	}
	for _, w := range []int{768, 1000, 1400, 3000} {
		if got := Value(resolverAt(w), values, "Y"); got != "X" {
			t.Errorf("width %d: got %q, want X", w, got)
		}
	}
}

func TestValue_EmptyMapYieldsFallback(t *testing.T) {
	for w := 0; w <= 2000; w += 50 {
		if got := Value(resolverAt(w), Values[int]{}, 42); got != 42 {
			t.Fatalf("width %d: got %d, want 42", w, got)
		}
		if got := Value[int](resolverAt(w), nil, 7); got != 7 {
			t.Fatalf("width %d: nil map got %d, want 7", w, got)
		}
	}
}

func TestValue_OnlySMAppliesEverywhere(t *testing.T) {
	for w := 0; w <= 2000; w += 100 {
		if got := Value(resolverAt(w), Values[int]{SM: 5}, 0); got != 5 {
			t.Fatalf("width %d: got %d, want 5", w, got)
		}
	}
}

func TestValue_FallsThroughToSmaller(t *testing.T) {
	// {sm:1, lg:3} at md resolves to sm's value.
	values := Values[int]{SM: 1, LG: 3}
	if got := Select(DefaultTable, MD, values, 2); got != 1 {
		t.Errorf("Select at md = %d, want 1", got)
	}
	if got := Value(resolverAt(800), values, 2); got != 1 {
		t.Errorf("Value at 800 = %d, want 1", got)
	}
	if got := Value(resolverAt(1100), values, 2); got != 3 {
		t.Errorf("Value at 1100 = %d, want 3", got)
	}
	if got := Value(resolverAt(1600), values, 2); got != 3 {
		t.Errorf("Value at 1600 = %d, want 3 (lg applies upward)", got)
	}
}

func TestSelect_UnknownBreakpoint(t *testing.T) {
	if got := Select(DefaultTable, "huge", Values[int]{SM: 1}, 9); got != 9 {
		t.Errorf("Select unknown = %d, want fallback 9", got)
	}
}

func TestColumns(t *testing.T) {
	cols := Values[int]{MD: 2, LG: 3}
	if got := Columns(resolverAt(500), cols); got != 1 {
		t.Errorf("Columns at 500 = %d, want default 1", got)
	}
	if got := Columns(resolverAt(900), cols); got != 2 {
		t.Errorf("Columns at 900 = %d, want 2", got)
	}
	if got := ColumnsOr(resolverAt(500), cols, 4); got != 4 {
		t.Errorf("ColumnsOr at 500 = %d, want 4", got)
	}
}
