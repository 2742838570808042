package carousel

import (
	"reflect"
	"testing"
	"time"
)

func TestDuplicate_AppendsCopiesInOrder(t *testing.T) {
	h := newHarness(t, nil)

	if got := h.strip.Len(); got != 15 {
		t.Fatalf("Len = %d, want 15", got)
	}
	want := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	if !reflect.DeepEqual(h.strip.items, want) {
		t.Fatalf("items = %v, want %v", h.strip.items, want)
	}
}

func TestDuplicate_RunsOnce(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Copies = 4 })
	h.c.duplicate()
	if got := h.strip.Len(); got != 20 {
		t.Fatalf("Len after second duplicate = %d, want 20", got)
	}
}

func TestDuplicate_EmptyStripNeverLoops(t *testing.T) {
	h := newHarnessWithStrip(t, newFakeStrip(0, 0, 0), nil)
	if !h.logged("no items found in strip") {
		t.Fatalf("log = %q, want empty strip warning", h.logs.String())
	}

	h.start()
	if _, ok := h.c.ResetPosition(); ok {
		t.Fatalf("ResetPosition ok = true for empty strip, want false")
	}
	h.steps(20, 100*time.Millisecond)
	if got := h.c.Position(); !approx(got, -100) {
		t.Fatalf("Position = %v, want -100 (unbounded scroll)", got)
	}
	if h.hooks.count("reset") != 0 {
		t.Fatalf("position reset fired without a measured set")
	}
}
