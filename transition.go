package menu

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind names a visual enter/exit effect.
type TransitionKind uint8

const (
	TransitionUnset TransitionKind = iota
	// TransitionNone applies the end state immediately.
	TransitionNone
	TransitionFade
	// TransitionSlide shifts the element in from the trigger side; the
	// direction is inferred from the submenu placement when applicable.
	TransitionSlide
	TransitionZoom
	// TransitionHeightExpand and TransitionHeightCollapse animate the
	// element's height between zero and its natural content height. The
	// natural height is captured once, before animating, to avoid layout
	// thrash; the inline height override is cleared on successful
	// completion so static styling regains control.
	TransitionHeightExpand
	TransitionHeightCollapse
)

// slideDistance is how far a sliding element starts from its final position.
const slideDistance = 8.0

// Frame is one interpolated visual state pushed to the host Animator.
type Frame struct {
	Opacity   float64
	Offset    Point
	Scale     float64
	Height    float64
	HasHeight bool
}

// TransitionSpec describes one transition start.
type TransitionSpec struct {
	Kind     TransitionKind
	Enter    bool // true for enter/reveal, false for exit/hide
	Duration time.Duration
	Easing   ease.TweenFunc
	From     Side // slide origin, usually the resolved popup side
}

// Transition is one in-flight (or finished) animation on a single element.
// Callers may await Done; a closed channel with Canceled()==true means the
// intended end state was not necessarily reached — that is not an error.
type Transition struct {
	el   Element
	spec TransitionSpec

	tween         *gween.Tween // progress 0..1
	naturalHeight float64

	done     chan struct{}
	canceled bool
	onDone   func(canceled bool)
}

// Done is closed when the transition completes or is canceled.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Canceled reports whether the transition was canceled before completing.
func (t *Transition) Canceled() bool {
	return t.canceled
}

// Transitions coordinates animations across elements. Per element the state
// machine is idle → animating → idle, with cancel available at any time; at
// most one transition is active per element — starting a new one
// unconditionally cancels any in-flight transition on the same element
// first. The registry maps opaque element identity to the active handle and
// entries are removed on completion or cancellation, never left dangling.
type Transitions struct {
	anim   Animator
	geo    Geometry
	active map[Element]*Transition
}

// NewTransitions creates a controller pushing frames through anim. geo is
// consulted only to capture natural heights for the height kinds; it may be
// nil if those kinds are never used.
func NewTransitions(anim Animator, geo Geometry) *Transitions {
	return &Transitions{
		anim:   anim,
		geo:    geo,
		active: make(map[Element]*Transition),
	}
}

// Start begins a transition on el, canceling any in-flight transition on the
// same element. TransitionNone (or a non-positive duration) applies the end
// state synchronously and returns an already-completed handle. The initial
// frame is applied before Start returns.
func (ts *Transitions) Start(el Element, spec TransitionSpec) *Transition {
	ts.Cancel(el)

	if spec.Easing == nil {
		spec.Easing = ease.OutQuad
	}
	t := &Transition{
		el:   el,
		spec: spec,
		done: make(chan struct{}),
	}
	if el == nil {
		close(t.done)
		return t
	}

	if spec.Kind == TransitionHeightExpand || spec.Kind == TransitionHeightCollapse {
		if ts.geo != nil {
			t.naturalHeight = ts.geo.BoundsOf(el).Height
		}
	}

	if spec.Kind == TransitionNone || spec.Kind == TransitionUnset || spec.Duration <= 0 {
		ts.anim.ApplyFrame(el, t.frameAt(1))
		close(t.done)
		return t
	}

	t.tween = gween.New(0, 1, float32(spec.Duration.Seconds()), spec.Easing)
	ts.active[el] = t
	ts.anim.ApplyFrame(el, t.frameAt(0))
	return t
}

// Cancel synchronously stops any active transition on el. Safe to call when
// none is active. The last applied frame is left in place: cancellation
// means the intended end state was not necessarily reached.
func (ts *Transitions) Cancel(el Element) {
	t, ok := ts.active[el]
	if !ok {
		return
	}
	delete(ts.active, el)
	t.canceled = true
	close(t.done)
	if t.onDone != nil {
		t.onDone(true)
	}
}

// CancelAll cancels every active transition.
func (ts *Transitions) CancelAll() {
	for el := range ts.active {
		ts.Cancel(el)
	}
}

// Active returns the number of in-flight transitions.
func (ts *Transitions) Active() int {
	return len(ts.active)
}

// Step advances every active transition by dt and applies the resulting
// frames. The host calls this once per rendering frame. Returns the number
// of transitions still running.
func (ts *Transitions) Step(dt time.Duration) int {
	for el, t := range ts.active {
		v, finished := t.tween.Update(float32(dt.Seconds()))
		ts.anim.ApplyFrame(el, t.frameAt(float64(v)))
		if finished {
			delete(ts.active, el)
			if t.spec.Kind == TransitionHeightExpand || t.spec.Kind == TransitionHeightCollapse {
				ts.anim.ClearFrame(el)
			}
			close(t.done)
			if t.onDone != nil {
				t.onDone(false)
			}
		}
	}
	return len(ts.active)
}

// frameAt computes the visual state at eased progress p in [0,1].
func (t *Transition) frameAt(p float64) Frame {
	f := Frame{Opacity: 1, Scale: 1}
	fade := p
	if !t.spec.Enter {
		fade = 1 - p
	}

	switch t.spec.Kind {
	case TransitionFade:
		f.Opacity = fade

	case TransitionZoom:
		f.Opacity = fade
		if t.spec.Enter {
			f.Scale = 0.9 + 0.1*p
		} else {
			f.Scale = 1 - 0.1*p
		}

	case TransitionSlide:
		f.Opacity = fade
		remaining := 1 - p
		if !t.spec.Enter {
			remaining = p
		}
		switch t.spec.From {
		case SideTop:
			f.Offset.Y = slideDistance * remaining
		case SideBottom:
			f.Offset.Y = -slideDistance * remaining
		case SideLeft:
			f.Offset.X = slideDistance * remaining
		case SideRight:
			f.Offset.X = -slideDistance * remaining
		}

	case TransitionHeightExpand:
		f.HasHeight = true
		f.Height = p * t.naturalHeight

	case TransitionHeightCollapse:
		f.HasHeight = true
		f.Height = (1 - p) * t.naturalHeight

	default: // TransitionNone: end state only
		f.Opacity = boolFade(t.spec.Enter)
	}
	return f
}

func boolFade(enter bool) float64 {
	if enter {
		return 1
	}
	return 0
}
