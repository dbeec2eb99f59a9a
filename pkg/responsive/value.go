package responsive

// Values maps a subset of breakpoints to values.
type Values[T any] map[Breakpoint]T

// Select resolves values at breakpoint bp of table.
//
// Starting at bp and walking down toward the floor, the first present entry
// wins, so a value set at md applies from md upward until a larger override.
// If nothing is set at or below bp, fallback is returned. A breakpoint unknown
// to the table also yields fallback.
func Select[T any](table Table, bp Breakpoint, values Values[T], fallback T) T {
	rank, ok := table.Rank(bp)
	if !ok {
		return fallback
	}
	for i := rank; i >= 0; i-- {
		if v, ok := values[table.entries[i].Name]; ok {
			return v
		}
	}
	return fallback
}

// Value resolves values at the resolver's current breakpoint.
func Value[T any](r *Resolver, values Values[T], fallback T) T {
	return Select(r.table, r.Current(), values, fallback)
}

// Columns resolves a per-breakpoint column count with a fallback of 1.
func Columns(r *Resolver, columns Values[int]) int {
	return ColumnsOr(r, columns, 1)
}

// ColumnsOr resolves a per-breakpoint column count with an explicit fallback.
func ColumnsOr(r *Resolver, columns Values[int], fallback int) int {
	return Value(r, columns, fallback)
}
