package menu

import (
	"fmt"
	"testing"
)

func TestVisibleRange(t *testing.T) {
	t.Run("TenRowsPlusOverscan", func(t *testing.T) {
		// 400px viewport over 40px rows shows 10, overscan 2 each side,
		// clamped at the top of the list
		start, end := VisibleRange(100, 40, 0, 400, 2)
		if start != 0 || end != 12 {
			t.Errorf("expected [0,12], got [%d,%d]", start, end)
		}
	})

	t.Run("MidScroll", func(t *testing.T) {
		start, end := VisibleRange(100, 40, 400, 400, 2)
		if start != 8 || end != 22 {
			t.Errorf("expected [8,22], got [%d,%d]", start, end)
		}
	})

	t.Run("ClampsAtListEnd", func(t *testing.T) {
		start, end := VisibleRange(100, 40, 3800, 400, 2)
		if start != 93 || end != 99 {
			t.Errorf("expected [93,99], got [%d,%d]", start, end)
		}
	})

	t.Run("PartialRowRoundsOutward", func(t *testing.T) {
		// scroll 30 straddles row 0; ceil pulls one extra row at the bottom
		start, end := VisibleRange(100, 40, 30, 400, 0)
		if start != 0 || end != 10 {
			t.Errorf("expected [0,10], got [%d,%d]", start, end)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		start, end := VisibleRange(0, 40, 0, 400, 2)
		if start != 0 || end != -1 {
			t.Errorf("expected empty range, got [%d,%d]", start, end)
		}
	})
}

func TestWindowThreshold(t *testing.T) {
	bigTree := func(n int) []Item {
		items := make([]Item, n)
		for i := range items {
			items[i] = Item{ID: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("Item %d", i)}
		}
		return items
	}

	t.Run("BelowThresholdCoversEverything", func(t *testing.T) {
		eng := newEngine(t, bigTree(50), Config{VirtualScroll: true, VirtualThreshold: 100})
		eng.SetScroll(800, 400)
		w := eng.Window()
		if w.Active {
			t.Error("windowing should be inactive below threshold")
		}
		if w.Start != 0 || w.End != 49 || w.Offset != 0 {
			t.Errorf("expected full range with zero offset, got %+v", w)
		}
	})

	t.Run("AboveThresholdWindows", func(t *testing.T) {
		eng := newEngine(t, bigTree(500), Config{VirtualScroll: true, VirtualThreshold: 100, ItemHeight: 40, Overscan: 2})
		eng.SetScroll(400, 400)
		w := eng.Window()
		if !w.Active {
			t.Fatal("windowing should be active")
		}
		if w.Start != 8 || w.End != 22 {
			t.Errorf("expected [8,22], got [%d,%d]", w.Start, w.End)
		}
		if w.Offset != 320 {
			t.Errorf("expected offset start*itemHeight = 320, got %v", w.Offset)
		}
	})

	t.Run("DisabledWithoutFlag", func(t *testing.T) {
		eng := newEngine(t, bigTree(500), Config{})
		eng.SetScroll(400, 400)
		if w := eng.Window(); w.Active {
			t.Error("windowing must stay off without VirtualScroll")
		}
	})

	t.Run("LayoutRestrictsToWindow", func(t *testing.T) {
		eng := newEngine(t, bigTree(500), Config{VirtualScroll: true, VirtualThreshold: 100, ItemHeight: 40, Overscan: 2})
		eng.SetScroll(400, 400)
		layout := eng.Layout()
		if len(layout.Items) != 15 {
			t.Errorf("expected 15 windowed items, got %d", len(layout.Items))
		}
		if layout.Items[0].ID != "i8" {
			t.Errorf("expected window to start at i8, got %s", layout.Items[0].ID)
		}
		// total keeps full extent for scrollbar fidelity
		if layout.Total.Height != 500*40 {
			t.Errorf("expected full total height, got %v", layout.Total.Height)
		}
		// positions stay absolute
		if got := layout.Positions["i8"]; got.Y != 320 {
			t.Errorf("expected absolute y 320, got %v", got.Y)
		}
	})
}
