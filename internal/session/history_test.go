package session

import (
	"fmt"
	"reflect"
	"testing"
)

func TestHistoryMostRecentFirst(t *testing.T) {
	h := NewHistory(5)
	h.Record("first")
	h.Record("second")
	h.Record("third")

	want := []string{"third", "second", "first"}
	if got := h.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items: got %v, want %v", got, want)
	}
}

func TestHistoryNeverExceedsBound(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 20; i++ {
		h.Record(fmt.Sprintf("question %d", i))
	}

	items := h.Items()
	if len(items) != 5 {
		t.Fatalf("len: got %d, want 5", len(items))
	}
	if items[0] != "question 19" {
		t.Errorf("newest entry: got %q", items[0])
	}
	if items[4] != "question 15" {
		t.Errorf("oldest kept entry: got %q", items[4])
	}
}

func TestHistoryDuplicateIsNoOp(t *testing.T) {
	h := NewHistory(5)
	h.Record("alpha")
	h.Record("beta")
	h.Record("alpha") // already present: content and order unchanged

	want := []string{"beta", "alpha"}
	if got := h.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items: got %v, want %v", got, want)
	}
}

func TestHistoryComparisonIsCaseSensitive(t *testing.T) {
	h := NewHistory(5)
	h.Record("What is COP?")
	h.Record("what is cop?")

	if len(h.Items()) != 2 {
		t.Errorf("case-variant questions are distinct entries, got %v", h.Items())
	}
}

func TestHistoryDefaultBound(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 10; i++ {
		h.Record(fmt.Sprintf("q%d", i))
	}
	if len(h.Items()) != DefaultHistorySize {
		t.Errorf("len: got %d, want %d", len(h.Items()), DefaultHistorySize)
	}
}

func TestHistoryItemsIsACopy(t *testing.T) {
	h := NewHistory(5)
	h.Record("original")

	items := h.Items()
	items[0] = "mutated"

	if h.Items()[0] != "original" {
		t.Error("Items must return a copy, not the backing slice")
	}
}
