package menu

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

// recordingAnimator captures applied frames per element.
type recordingAnimator struct {
	frames  map[Element][]Frame
	cleared map[Element]int
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{
		frames:  make(map[Element][]Frame),
		cleared: make(map[Element]int),
	}
}

func (a *recordingAnimator) ApplyFrame(el Element, f Frame) {
	a.frames[el] = append(a.frames[el], f)
}

func (a *recordingAnimator) ClearFrame(el Element) {
	a.cleared[el]++
}

func (a *recordingAnimator) last(el Element) Frame {
	fs := a.frames[el]
	return fs[len(fs)-1]
}

// fixedGeometry reports one rect for every element.
type fixedGeometry struct {
	rect Rect
}

func (g fixedGeometry) BoundsOf(Element) Rect { return g.rect }
func (g fixedGeometry) Viewport() Size        { return Size{Width: 1000, Height: 800} }
func (g fixedGeometry) ScrollOffset() Point   { return Point{} }

type elem struct{ name string }

func TestTransitionLifecycle(t *testing.T) {
	t.Run("FadeEnterRunsToCompletion", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"popup"}

		tr := ts.Start(el, TransitionSpec{Kind: TransitionFade, Enter: true, Duration: 100 * time.Millisecond, Easing: ease.Linear})
		if ts.Active() != 1 {
			t.Fatalf("expected 1 active, got %d", ts.Active())
		}
		if first := anim.frames[el][0]; first.Opacity != 0 {
			t.Errorf("enter should start transparent, got %v", first.Opacity)
		}

		ts.Step(50 * time.Millisecond)
		if mid := anim.last(el); mid.Opacity <= 0 || mid.Opacity >= 1 {
			t.Errorf("expected mid-fade opacity, got %v", mid.Opacity)
		}

		ts.Step(60 * time.Millisecond)
		if ts.Active() != 0 {
			t.Errorf("expected idle after completion, got %d active", ts.Active())
		}
		if final := anim.last(el); final.Opacity != 1 {
			t.Errorf("expected final opacity 1, got %v", final.Opacity)
		}

		select {
		case <-tr.Done():
		default:
			t.Error("done channel should be closed")
		}
		if tr.Canceled() {
			t.Error("completed transition reported canceled")
		}
	})

	t.Run("CancelIsSynchronousAndSafe", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"popup"}

		ts.Cancel(el) // nothing active: must not panic

		tr := ts.Start(el, TransitionSpec{Kind: TransitionFade, Enter: true, Duration: time.Second})
		ts.Cancel(el)
		if ts.Active() != 0 {
			t.Error("cancel left transition registered")
		}
		if !tr.Canceled() {
			t.Error("canceled flag not set")
		}
		select {
		case <-tr.Done():
		default:
			t.Error("done channel should close on cancel")
		}
	})

	t.Run("NewStartCancelsInFlight", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"popup"}

		first := ts.Start(el, TransitionSpec{Kind: TransitionFade, Enter: true, Duration: time.Second})
		second := ts.Start(el, TransitionSpec{Kind: TransitionFade, Enter: false, Duration: time.Second})

		if !first.Canceled() {
			t.Error("in-flight transition should be canceled by the new start")
		}
		if second.Canceled() {
			t.Error("replacement transition should be live")
		}
		if ts.Active() != 1 {
			t.Errorf("expected exactly one active per element, got %d", ts.Active())
		}
	})

	t.Run("NoneAppliesEndStateImmediately", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"popup"}

		tr := ts.Start(el, TransitionSpec{Kind: TransitionNone, Enter: true})
		select {
		case <-tr.Done():
		default:
			t.Fatal("no-op transition should complete synchronously")
		}
		if got := anim.last(el); got.Opacity != 1 {
			t.Errorf("expected end state applied, got %+v", got)
		}
		if ts.Active() != 0 {
			t.Error("no-op transition should not register")
		}
	})
}

func TestHeightTransitions(t *testing.T) {
	t.Run("CapturesNaturalHeightOnce", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, fixedGeometry{rect: Rect{Width: 200, Height: 120}})
		el := &elem{"submenu"}

		ts.Start(el, TransitionSpec{Kind: TransitionHeightExpand, Enter: true, Duration: 100 * time.Millisecond, Easing: ease.Linear})
		if first := anim.frames[el][0]; !first.HasHeight || first.Height != 0 {
			t.Errorf("expand should start at height 0, got %+v", first)
		}

		ts.Step(50 * time.Millisecond)
		if mid := anim.last(el); mid.Height <= 0 || mid.Height >= 120 {
			t.Errorf("expected partial height, got %v", mid.Height)
		}
	})

	t.Run("ClearsOverrideOnCompletion", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, fixedGeometry{rect: Rect{Height: 120}})
		el := &elem{"submenu"}

		ts.Start(el, TransitionSpec{Kind: TransitionHeightExpand, Enter: true, Duration: 50 * time.Millisecond})
		ts.Step(100 * time.Millisecond)
		if anim.cleared[el] != 1 {
			t.Errorf("expected one ClearFrame on completion, got %d", anim.cleared[el])
		}
	})

	t.Run("CancelLeavesOverrideInPlace", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, fixedGeometry{rect: Rect{Height: 120}})
		el := &elem{"submenu"}

		ts.Start(el, TransitionSpec{Kind: TransitionHeightCollapse, Duration: time.Second})
		ts.Step(100 * time.Millisecond)
		ts.Cancel(el)
		if anim.cleared[el] != 0 {
			t.Errorf("cancel must not clear overrides, got %d clears", anim.cleared[el])
		}
	})
}

func TestSlideAndZoomFrames(t *testing.T) {
	t.Run("SlideDirectionFollowsSide", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"flyout"}

		ts.Start(el, TransitionSpec{Kind: TransitionSlide, Enter: true, Duration: time.Second, From: SideBottom})
		if first := anim.frames[el][0]; first.Offset.Y != -slideDistance {
			t.Errorf("bottom flyout should slide up into place, got offset %v", first.Offset)
		}

		el2 := &elem{"flyout2"}
		ts.Start(el2, TransitionSpec{Kind: TransitionSlide, Enter: true, Duration: time.Second, From: SideRight})
		if first := anim.frames[el2][0]; first.Offset.X != -slideDistance {
			t.Errorf("right flyout should slide left into place, got offset %v", first.Offset)
		}
	})

	t.Run("ZoomScalesWithFade", func(t *testing.T) {
		anim := newRecordingAnimator()
		ts := NewTransitions(anim, nil)
		el := &elem{"flyout"}

		ts.Start(el, TransitionSpec{Kind: TransitionZoom, Enter: true, Duration: 100 * time.Millisecond, Easing: ease.Linear})
		if first := anim.frames[el][0]; first.Scale != 0.9 || first.Opacity != 0 {
			t.Errorf("zoom enter should start small and transparent, got %+v", first)
		}
		ts.Step(200 * time.Millisecond)
		if final := anim.last(el); final.Scale != 1 || final.Opacity != 1 {
			t.Errorf("zoom enter should finish at full scale, got %+v", final)
		}
	})
}
