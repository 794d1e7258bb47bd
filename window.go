package menu

import "math"

// Window is the inclusive index range of items a consumer should render,
// plus the translation offset that keeps the rendered block aligned with the
// scroll position. When windowing is inactive the range covers everything
// and Offset is zero.
type Window struct {
	Start, End int
	Offset     float64 // translate rendered block by this many pixels
	Active     bool
}

// Len returns the number of items inside the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// VisibleRange computes the inclusive item index range for a fixed-height
// list given a scroll snapshot. Overscan rows are added on both ends to mask
// pop-in during fast scrolls; the result is clamped to list bounds.
func VisibleRange(count int, itemHeight, scrollOffset, viewportExtent float64, overscan int) (start, end int) {
	if count <= 0 || itemHeight <= 0 {
		return 0, -1
	}
	start = int(math.Floor(scrollOffset/itemHeight)) - overscan
	if start < 0 {
		start = 0
	}
	if start > count-1 {
		start = count - 1 // scrolled past the content
	}
	end = int(math.Ceil((scrollOffset+viewportExtent)/itemHeight)) + overscan
	if end > count-1 {
		end = count - 1
	}
	return start, end
}

// computeWindow applies the threshold gate: below cfg.VirtualThreshold the
// full list is "visible" so no translation applies.
func computeWindow(count int, cfg Config, scrollOffset, viewportExtent float64) Window {
	if !cfg.VirtualScroll || count < cfg.VirtualThreshold {
		return Window{Start: 0, End: count - 1}
	}
	start, end := VisibleRange(count, cfg.ItemHeight, scrollOffset, viewportExtent, cfg.Overscan)
	return Window{
		Start:  start,
		End:    end,
		Offset: float64(start) * cfg.ItemHeight,
		Active: true,
	}
}
