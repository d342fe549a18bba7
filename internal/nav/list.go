// Package nav provides the pure navigation primitives shared by every menu:
// wraparound list stepping, two-axis grid movement, incremental typeahead
// search, and the announcement formatter. Nothing in this package performs
// side effects; callers own re-announcing and syncing any external selection.
package nav

// Next returns the index following index, wrapping past the end.
// An empty list always yields 0.
func Next(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalize(index, count) + 1) % count
}

// Prev returns the index preceding index, wrapping past the start.
// An empty list always yields 0.
func Prev(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalize(index, count) - 1 + count) % count
}

// First returns the index of the first item.
func First() int {
	return 0
}

// Last returns the index of the final item, or 0 for an empty list.
func Last(count int) int {
	if count <= 0 {
		return 0
	}
	return count - 1
}

// Clamp forces index into [0, count), collapsing to 0 for an empty list.
func Clamp(index, count int) int {
	return normalize(index, count)
}

func normalize(index, count int) int {
	if count <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
