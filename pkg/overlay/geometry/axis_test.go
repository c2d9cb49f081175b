package geometry

import (
	"testing"

	"celloverlay/pkg/overlay/models"
)

func TestWindowCumulativeOffsets(t *testing.T) {
	sizes := []int{20, 25, 30}
	table := Window(sizes, 20, 0, 3)

	want := models.AxisTable{
		0: {Start: 0, End: 20},
		1: {Start: 20, End: 45},
		2: {Start: 45, End: 75},
	}
	if len(table) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(table))
	}
	for i, span := range want {
		if table[i] != span {
			t.Errorf("index %d: span = %+v, expected %+v", i, table[i], span)
		}
	}
}

func TestWindowScrolledStartsAtZero(t *testing.T) {
	sizes := []int{20, 25, 30, 35}
	table := Window(sizes, 20, 2, 2)

	if span := table[2]; span.Start != 0 || span.End != 30 {
		t.Errorf("first visible index: span = %+v, expected [0,30)", span)
	}
	if span := table[3]; span.Start != 30 || span.End != 65 {
		t.Errorf("second visible index: span = %+v, expected [30,65)", span)
	}
	if _, ok := table[0]; ok {
		t.Error("scrolled-out index 0 must be absent from the table")
	}
}

func TestWindowDefaultsBeyondExplicitSizes(t *testing.T) {
	table := Window([]int{10}, 20, 0, 3)

	if span := table[1]; span.End-span.Start != 20 {
		t.Errorf("index 1 should use the default size, got %+v", span)
	}
	if span := table[2]; span.Start != 30 || span.End != 50 {
		t.Errorf("index 2: span = %+v, expected [30,50)", span)
	}
}

func TestWindowMonotonic(t *testing.T) {
	sizes := []int{5, 0, 12, 3, 0, 9}
	table := Window(sizes, 8, 0, len(sizes))

	prev := 0
	for i := 0; i < len(sizes); i++ {
		span, ok := table[i]
		if !ok {
			t.Fatalf("index %d missing", i)
		}
		if span.Start < prev || span.End < span.Start {
			t.Errorf("index %d: span %+v breaks monotonicity", i, span)
		}
		prev = span.End
	}
}

func TestWindowDegenerateArgs(t *testing.T) {
	if got := Window(nil, 20, -1, 5); len(got) != 0 {
		t.Errorf("negative first: expected empty table, got %d entries", len(got))
	}
	if got := Window(nil, 20, 0, 0); len(got) != 0 {
		t.Errorf("zero count: expected empty table, got %d entries", len(got))
	}
}

func TestEdges(t *testing.T) {
	table := models.AxisTable{
		3: {Start: 0, End: 20},
		4: {Start: 20, End: 45},
	}

	start, end, ok := edges(table, 3, 4)
	if !ok || start != 0 || end != 45 {
		t.Errorf("edges(3,4) = (%d,%d,%v), expected (0,45,true)", start, end, ok)
	}
	if _, _, ok := edges(table, 2, 4); ok {
		t.Error("expected miss when the leading index is absent")
	}
	if _, _, ok := edges(table, 3, 5); ok {
		t.Error("expected miss when the trailing index is absent")
	}
}
