package menu

// LayoutResult holds one layout pass: the visible flat items in document
// order, their top-left positions keyed by id, and the aggregate size of the
// laid-out menu. Positions are recomputed wholesale on every pass, never
// incrementally patched.
type LayoutResult struct {
	Items     []FlatItem
	Positions map[string]Point
	Total     Size
}

// Partition is the result of responsive overflow splitting: top-level items
// that fit the container, and the rest relegated to a "more" bucket.
type Partition struct {
	Visible  []FlatItem
	Overflow []FlatItem
}

// estimatedCharWidth approximates average glyph width for label sizing. The
// engine performs no text measurement pass, so horizontal and responsive
// layout work from len(label)*estimatedCharWidth + 2*indent. Labels far from
// average glyph width (CJK, long ligatures) will be over- or under-estimated
// by roughly a factor of two in the worst case.
const estimatedCharWidth = 8.0

// moreAffordanceWidth is the space reserved for the overflow "more" button
// during responsive partitioning.
const moreAffordanceWidth = 48.0

// estimatedWidth returns the heuristic pixel width of one item.
func estimatedWidth(label string, indent float64) float64 {
	return float64(len(label))*estimatedCharWidth + 2*indent
}

// visibleFlat returns the flat items currently presentable: not hidden, with
// every ancestor expanded and no ancestor hidden. Pruning a node prunes its
// whole subtree, so one document-order pass suffices.
func visibleFlat(index *treeIndex, expanded map[string]struct{}) []FlatItem {
	pruned := make(map[string]bool)
	out := make([]FlatItem, 0, len(index.flat))
	for _, it := range index.flat {
		show := !it.Hidden
		if show && it.ParentID != "" {
			if _, open := expanded[it.ParentID]; !open || pruned[it.ParentID] {
				show = false
			}
		}
		if !show {
			pruned[it.ID] = true
			continue
		}
		out = append(out, it)
	}
	return out
}

// computeLayout positions the given visible items for the configured mode.
//
// Vertical: one O(n) walk in document order, y accumulating the fixed item
// height and x = level*indent.
//
// Horizontal: only top-level items participate — children are presented via
// flyouts, not inline — and x accumulates each item's estimated width.
func computeLayout(visible []FlatItem, cfg Config) LayoutResult {
	res := LayoutResult{Positions: make(map[string]Point, len(visible))}

	switch cfg.Mode {
	case Horizontal:
		x := 0.0
		for _, it := range visible {
			if it.Level != 0 {
				continue
			}
			res.Items = append(res.Items, it)
			res.Positions[it.ID] = Point{X: x, Y: 0}
			x += estimatedWidth(it.Label, cfg.Indent)
		}
		res.Total = Size{Width: x, Height: cfg.ItemHeight}

	default: // Vertical
		y := 0.0
		maxRight := 0.0
		for _, it := range visible {
			res.Items = append(res.Items, it)
			x := float64(it.Level) * cfg.Indent
			res.Positions[it.ID] = Point{X: x, Y: y}
			if right := x + estimatedWidth(it.Label, cfg.Indent); right > maxRight {
				maxRight = right
			}
			y += cfg.ItemHeight
		}
		res.Total = Size{Width: maxRight, Height: y}
	}
	return res
}

// responsiveSplit greedily partitions top-level items left to right into
// visible and overflow buckets. Accumulation stops at the first item that
// would exceed the container width minus the reserved "more" affordance;
// every item from that point on overflows. Items are never re-ordered and
// the split is not globally optimal.
func responsiveSplit(topLevel []FlatItem, cfg Config, containerWidth float64) Partition {
	if !cfg.Responsive || containerWidth >= cfg.Breakpoint {
		return Partition{Visible: topLevel}
	}

	budget := containerWidth - moreAffordanceWidth
	var p Partition
	used := 0.0
	overflowing := false
	for _, it := range topLevel {
		if !overflowing {
			w := estimatedWidth(it.Label, cfg.Indent)
			if used+w > budget {
				overflowing = true
			} else {
				used += w
				p.Visible = append(p.Visible, it)
				continue
			}
		}
		p.Overflow = append(p.Overflow, it)
	}
	return p
}
