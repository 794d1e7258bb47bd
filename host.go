package menu

// Element is an opaque handle to a host visual element. Handles must be
// comparable (pointers are) since the engine keys registries by them; the
// engine never inspects a handle beyond passing it back to the host.
type Element = any

// Geometry lets the engine read layout snapshots from the host. All values
// are taken at call time; the engine never observes geometry changes itself
// and must be re-triggered on scroll/resize.
type Geometry interface {
	// BoundsOf returns the bounding rectangle of el in viewport coordinates.
	BoundsOf(el Element) Rect
	// Viewport returns the current viewport size.
	Viewport() Size
	// ScrollOffset returns the current scroll position.
	ScrollOffset() Point
}

// Surface lets the engine insert, place and remove visual elements.
type Surface interface {
	// Insert mounts el under parent, initially hidden. Returns false when
	// the parent does not exist — the engine treats that as fatal.
	Insert(el, parent Element) bool
	// Remove unmounts el.
	Remove(el Element)
	// Move places el at the given viewport position.
	Move(el Element, p Point)
}

// Animator applies interpolated visual frames. Hosts map Frame fields onto
// whatever styling primitive they have (CSS transforms, cell attributes).
type Animator interface {
	ApplyFrame(el Element, f Frame)
	// ClearFrame removes inline overrides applied by frames, in particular
	// height overrides after a completed height transition.
	ClearFrame(el Element)
}

// GlobalEvent identifies a window-level input the engine subscribes to for
// its shared popup dismissal policy.
type GlobalEvent uint8

const (
	// GlobalPointerDown is a capture-phase pointer press; the Point carries
	// the press position.
	GlobalPointerDown GlobalEvent = iota
	// GlobalEscape is an Escape key press.
	GlobalEscape
	// GlobalScroll is any scroll of the viewport or an ancestor.
	GlobalScroll
	// GlobalResize is a viewport resize.
	GlobalResize
)

// Host is the full collaborator surface an adapter implements. Listen
// registers a window-level handler and returns the remover for exactly that
// registration — the engine retains removers so teardown never depends on
// re-deriving function identity.
type Host interface {
	Geometry
	Surface
	Animator

	// NextFrame schedules fn after the next rendering frame, giving newly
	// inserted elements a chance to acquire geometry before measurement.
	NextFrame(fn func())

	// Listen subscribes to a global event. The returned func removes this
	// subscription and is safe to call once.
	Listen(ev GlobalEvent, fn func(at Point)) (remove func())
}
