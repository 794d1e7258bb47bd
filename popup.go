package menu

// Placement names one of the 12 flyout positions: a side of the trigger plus
// an alignment along that side.
type Placement uint8

const (
	TopStart Placement = iota
	Top
	TopEnd
	BottomStart
	Bottom
	BottomEnd
	LeftStart
	Left
	LeftEnd
	RightStart
	Right
	RightEnd
)

// Side is the trigger edge a placement attaches to.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Align is the cross-axis alignment of a placement.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Side returns the trigger edge for p.
func (p Placement) Side() Side {
	switch {
	case p <= TopEnd:
		return SideTop
	case p <= BottomEnd:
		return SideBottom
	case p <= LeftEnd:
		return SideLeft
	default:
		return SideRight
	}
}

// Align returns the cross-axis alignment for p.
func (p Placement) Align() Align {
	return Align(p % 3)
}

// Mirror returns the placement flipped to the opposite side, keeping the
// alignment.
func (p Placement) Mirror() Placement {
	switch p.Side() {
	case SideTop:
		return p + 3
	case SideBottom:
		return p - 3
	case SideLeft:
		return p + 3
	default:
		return p - 3
	}
}

func (p Placement) String() string {
	sides := [...]string{"top", "bottom", "left", "right"}
	aligns := [...]string{"-start", "", "-end"}
	return sides[p.Side()] + aligns[p.Align()]
}

// edgeMargin keeps a resolved popup at least this far from every viewport
// edge, even when no placement fits.
const edgeMargin = 4.0

// Resolved is the outcome of one placement computation. Flipped tells the
// caller the mirror placement was substituted, so visual affordances (arrow
// direction classes) can follow.
type Resolved struct {
	Placement Placement
	Pos       Point
	Flipped   bool
}

// ResolvePlacement computes where a popup of the given size should sit
// relative to trigger, inside viewport. It is a pure function of the
// geometry snapshots passed in:
//
//  1. compute the closed-form candidate for the requested placement,
//  2. if the candidate overflows the viewport on the placement's own side
//     and the opposite side has room, substitute the mirrored placement
//     (one flip at most, never a second axis),
//  3. clamp the result into [edgeMargin, viewport-popup-edgeMargin] on both
//     axes so the popup never sits flush against or past an edge.
func ResolvePlacement(trigger Rect, popup Size, viewport Size, placement Placement, offset float64) Resolved {
	pos := candidate(trigger, popup, placement, offset)
	res := Resolved{Placement: placement, Pos: pos}

	if primaryOverflow(pos, popup, viewport, placement.Side()) {
		mirrored := placement.Mirror()
		flipped := candidate(trigger, popup, mirrored, offset)
		if !primaryOverflow(flipped, popup, viewport, mirrored.Side()) {
			res = Resolved{Placement: mirrored, Pos: flipped, Flipped: true}
		}
	}

	res.Pos.X = clamp(res.Pos.X, edgeMargin, viewport.Width-popup.Width-edgeMargin)
	res.Pos.Y = clamp(res.Pos.Y, edgeMargin, viewport.Height-popup.Height-edgeMargin)
	return res
}

// candidate computes the unclamped position for one placement.
func candidate(trigger Rect, popup Size, placement Placement, offset float64) Point {
	var p Point
	switch placement.Side() {
	case SideTop:
		p.Y = trigger.Top - popup.Height - offset
		p.X = crossAxis(trigger.Left, trigger.Width, popup.Width, placement.Align())
	case SideBottom:
		p.Y = trigger.Bottom() + offset
		p.X = crossAxis(trigger.Left, trigger.Width, popup.Width, placement.Align())
	case SideLeft:
		p.X = trigger.Left - popup.Width - offset
		p.Y = crossAxis(trigger.Top, trigger.Height, popup.Height, placement.Align())
	case SideRight:
		p.X = trigger.Right() + offset
		p.Y = crossAxis(trigger.Top, trigger.Height, popup.Height, placement.Align())
	}
	return p
}

// crossAxis aligns the popup along the trigger edge.
func crossAxis(edgeStart, edgeLen, popupLen float64, a Align) float64 {
	switch a {
	case AlignCenter:
		return edgeStart + (edgeLen-popupLen)/2
	case AlignEnd:
		return edgeStart + edgeLen - popupLen
	default:
		return edgeStart
	}
}

// primaryOverflow reports whether pos overflows the viewport on the side the
// placement extends toward.
func primaryOverflow(pos Point, popup Size, viewport Size, side Side) bool {
	switch side {
	case SideTop:
		return pos.Y < 0
	case SideBottom:
		return pos.Y+popup.Height > viewport.Height
	case SideLeft:
		return pos.X < 0
	default:
		return pos.X+popup.Width > viewport.Width
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PopupRecord tracks one open flyout. Registry insertion order doubles as
// the z-index tiebreak and the Escape-close LIFO order.
type PopupRecord struct {
	ID        string
	Element   Element
	Trigger   Element
	Requested Placement
	Resolved  Resolved

	onClose func()
	closed  bool
}

// popupSet is the per-engine registry of open flyouts. Multiple popups may
// be open at once (nested flyouts); closing one never implicitly closes its
// ancestors.
type popupSet struct {
	records map[string]*PopupRecord
	order   []string // insertion order, oldest first
}

func newPopupSet() *popupSet {
	return &popupSet{records: make(map[string]*PopupRecord)}
}

// add inserts a record. The id must not already be live: replacement is the
// engine's job, which closes the old popup with full destroy semantics
// before re-adding.
func (s *popupSet) add(r *PopupRecord) {
	s.records[r.ID] = r
	s.order = append(s.order, r.ID)
}

// removeID detaches a record from the registry and fires its close callback
// exactly once. Returns the record, or nil if unknown.
func (s *popupSet) removeID(id string) *PopupRecord {
	r, ok := s.records[id]
	if !ok {
		return nil
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if !r.closed {
		r.closed = true
		if r.onClose != nil {
			r.onClose()
		}
	}
	return r
}

// top returns the most recently opened record.
func (s *popupSet) top() *PopupRecord {
	if len(s.order) == 0 {
		return nil
	}
	return s.records[s.order[len(s.order)-1]]
}

// all returns records oldest-first.
func (s *popupSet) all() []*PopupRecord {
	out := make([]*PopupRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *popupSet) len() int {
	return len(s.records)
}
