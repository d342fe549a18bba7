package nav

import "testing"

func TestNextPrevWrapAround(t *testing.T) {
	if got := Next(0, 3); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Next(2, 3); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := Prev(0, 3); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	if got := Prev(2, 3); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestNextPrevAreInverses(t *testing.T) {
	for count := 1; count <= 7; count++ {
		for index := 0; index < count; index++ {
			if got := Prev(Next(index, count), count); got != index {
				t.Fatalf("prev(next(%d)) with count %d: expected %d, got %d", index, count, index, got)
			}
			if got := Next(Prev(index, count), count); got != index {
				t.Fatalf("next(prev(%d)) with count %d: expected %d, got %d", index, count, index, got)
			}
		}
	}
}

func TestEmptyListIsSentinelNoOp(t *testing.T) {
	for name, got := range map[string]int{
		"next":  Next(4, 0),
		"prev":  Prev(-2, 0),
		"first": First(),
		"last":  Last(0),
		"clamp": Clamp(9, 0),
	} {
		if got != 0 {
			t.Fatalf("%s on empty list: expected 0, got %d", name, got)
		}
	}
}

func TestFirstLast(t *testing.T) {
	if got := First(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Last(5); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestClampForcesRange(t *testing.T) {
	cases := []struct {
		index, count, want int
	}{
		{-1, 3, 0},
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{10, 3, 2},
	}
	for _, tc := range cases {
		if got := Clamp(tc.index, tc.count); got != tc.want {
			t.Fatalf("clamp(%d, %d): expected %d, got %d", tc.index, tc.count, tc.want, got)
		}
	}
}
