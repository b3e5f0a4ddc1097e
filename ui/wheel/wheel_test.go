package wheel

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// ---------------------------------------------------------------------------
// Test view implementation
// ---------------------------------------------------------------------------

type testView struct {
	id  int
	row int
}

func (v *testView) Render(width, height int) string { return fmt.Sprintf("row-%d", v.row) }

// refurbisher hands out views the way a typical delegate does: reuse what the
// pool offers, allocate otherwise.
type refurbisher struct {
	next    int
	offered []View
}

func (r *refurbisher) content(row int, reusing View) View {
	r.offered = append(r.offered, reusing)
	if v, ok := reusing.(*testView); ok {
		v.row = row
		return v
	}
	r.next++
	return &testView{id: r.next, row: row}
}

func settleRecorder(got *[]int) Option {
	return WithOnSettle(func(row int) { *got = append(*got, row) })
}

func assertContiguous(t interface {
	Helper()
	Fatalf(string, ...any)
}, w *Wheel) {
	t.Helper()
	first, last, ok := w.Window()
	slots := w.Slots()
	if !ok {
		if len(slots) != 0 {
			t.Fatalf("want no slots without a window, got %d", len(slots))
		}
		return
	}
	if len(slots) != last-first+1 {
		t.Fatalf("window [%d,%d] wants %d slots, got %d", first, last, last-first+1, len(slots))
	}
	for i, s := range slots {
		if s.Display != first+i {
			t.Fatalf("slot %d: want display %d, got %d", i, first+i, s.Display)
		}
		if s.Row != LogicalIndex(s.Display, w.Rows()) {
			t.Fatalf("slot %d: display %d should map to row %d, got %d",
				i, s.Display, LogicalIndex(s.Display, w.Rows()), s.Row)
		}
	}
}

// ---------------------------------------------------------------------------
// Index mapping
// ---------------------------------------------------------------------------

func TestLogicalIndex_ModularForAllOffsets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 500).Draw(t, "rows")
		k := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "k")
		extent := rapid.SampledFrom([]float64{1, 2, 3, 44, 0.5}).Draw(t, "extent")

		display := DisplayIndex(float64(k)*extent, extent)
		if display != k {
			t.Fatalf("DisplayIndex(%d*%v) = %d", k, extent, display)
		}
		got := LogicalIndex(display, rows)
		if got < 0 || got >= rows {
			t.Fatalf("logical index %d outside [0,%d)", got, rows)
		}
		if (got-k)%rows != 0 {
			t.Fatalf("logical index %d not congruent to %d mod %d", got, k, rows)
		}
	})
}

func TestLogicalIndex_Negative(t *testing.T) {
	cases := []struct{ display, rows, want int }{
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{7, 5, 2},
		{0, 1, 0},
		{-3, 1, 0},
	}
	for _, c := range cases {
		if got := LogicalIndex(c.display, c.rows); got != c.want {
			t.Errorf("LogicalIndex(%d,%d): want %d, got %d", c.display, c.rows, c.want, got)
		}
	}
}

func TestDisplayIndex_FloorsInsideRow(t *testing.T) {
	if got := DisplayIndex(43.9, 44); got != 0 {
		t.Errorf("want 0, got %d", got)
	}
	if got := DisplayIndex(-0.1, 44); got != -1 {
		t.Errorf("want -1, got %d", got)
	}
}

func TestNearestDisplay_ShortestPath(t *testing.T) {
	cases := []struct {
		name   string
		offset float64
		row    int
		want   int
	}{
		{"backward one", 0, 9, -1},
		{"forward one", 0, 1, 1},
		{"tie goes forward", 0, 5, 5},
		{"already there", 30, 0, 30},
		{"wraps from far out", 27, 1, 31},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NearestDisplay(c.offset, 1, c.row, 10); got != c.want {
				t.Errorf("want %d, got %d", c.want, got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

func TestSelectRow_NonAnimatedIsExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 200).Draw(t, "rows")
		start := rapid.Float64Range(-5000, 5000).Draw(t, "start")
		row := rapid.IntRange(0, rows-1).Draw(t, "row")

		w := New(rows, 3, WithViewport(9))
		w.BeginDrag()
		w.DragBy(start, 0)
		if err := w.SelectRow(row, false); err != nil {
			t.Fatalf("SelectRow: %v", err)
		}
		if got := w.SelectedRow(); got != row {
			t.Fatalf("want selected %d, got %d", row, got)
		}
		if w.State() != StateIdle {
			t.Fatalf("want idle, got %s", w.State())
		}
		if w.Committed() != row {
			t.Fatalf("want committed %d, got %d", row, w.Committed())
		}
		if w.Offset() < 0 || w.Offset() >= w.Period() {
			t.Fatalf("offset %v should be folded into [0,%v)", w.Offset(), w.Period())
		}
	})
}

func TestSelectRow_OutOfRange(t *testing.T) {
	w := New(5, 1)
	for _, row := range []int{-1, 5, 100} {
		if err := w.SelectRow(row, false); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("row %d: want ErrRowOutOfRange, got %v", row, err)
		}
	}
	if w.SelectedRow() != 0 {
		t.Errorf("failed selection must not move the wheel, got row %d", w.SelectedRow())
	}
}

func TestSelectRow_NonAnimatedDoesNotFireSettle(t *testing.T) {
	var got []int
	w := New(10, 1, settleRecorder(&got))
	if err := w.SelectRow(4, false); err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no settle callbacks, got %v", got)
	}
}

func TestEmptyWheel(t *testing.T) {
	w := New(0, 2, WithViewport(5))
	if w.SelectedRow() != -1 {
		t.Errorf("want -1, got %d", w.SelectedRow())
	}
	w.BeginDrag()
	if w.State() != StateIdle {
		t.Errorf("empty wheel must not start dragging, got %s", w.State())
	}
	w.DragBy(10, time.Millisecond)
	if w.Offset() != 0 {
		t.Errorf("empty wheel must not scroll, offset %v", w.Offset())
	}
	if len(w.Slots()) != 0 {
		t.Errorf("want no slots, got %d", len(w.Slots()))
	}
	if err := w.SelectRow(0, true); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("want ErrRowOutOfRange, got %v", err)
	}
	if v := w.ViewForRow(0); v != nil {
		t.Errorf("want nil view, got %v", v)
	}
}

func TestSingleRowWheel_ScrollsButStaysOnRowZero(t *testing.T) {
	w := New(1, 2, WithViewport(6))
	w.BeginDrag()
	w.DragBy(7.3, 0)
	if w.Offset() != 7.3 {
		t.Errorf("offset should still advance, got %v", w.Offset())
	}
	if w.SelectedRow() != 0 {
		t.Errorf("want 0 while dragging, got %d", w.SelectedRow())
	}
	w.EndDrag()
	if w.SelectedRow() != 0 || w.State() != StateIdle {
		t.Errorf("want row 0 idle, got %d %s", w.SelectedRow(), w.State())
	}
	if w.Offset() != 0 {
		t.Errorf("want offset folded to 0, got %v", w.Offset())
	}
}

// ---------------------------------------------------------------------------
// Settling
// ---------------------------------------------------------------------------

func TestContinuousScroll_FiveTurnsPlusOneRow(t *testing.T) {
	var got []int
	w := New(5, 44, WithViewport(132), settleRecorder(&got))

	w.BeginDrag()
	w.DragBy(5*5*44+44, 0)
	w.EndDrag()

	if w.SelectedRow() != 1 {
		t.Fatalf("want row 1, got %d", w.SelectedRow())
	}
	if w.Offset() != 44 {
		t.Errorf("want offset folded to 44, got %v", w.Offset())
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("want one settle for row 1, got %v", got)
	}
}

func TestSettle_RoundsToNearestBoundary(t *testing.T) {
	cases := []struct {
		drag float64
		want int
	}{
		{226, 0},  // 5.14 rows -> display 5
		{250, 1},  // 5.68 rows -> display 6
		{22, 1},   // exactly half: away from zero
		{-22, 4},  // exactly half below zero: display -1
		{-21, 0},  // just under half
	}
	for _, c := range cases {
		w := New(5, 44, WithViewport(132))
		w.BeginDrag()
		w.DragBy(c.drag, 0)
		w.EndDrag()
		if got := w.SelectedRow(); got != c.want {
			t.Errorf("drag %v: want row %d, got %d", c.drag, c.want, got)
		}
		if math.Mod(w.Offset(), 44) != 0 {
			t.Errorf("drag %v: offset %v not on a boundary", c.drag, w.Offset())
		}
	}
}

func TestSettle_OnlyFiresOnChange(t *testing.T) {
	var got []int
	w := New(5, 1, WithViewport(5), settleRecorder(&got))
	w.BeginDrag()
	w.DragBy(0.3, 0)
	w.EndDrag()
	if len(got) != 0 {
		t.Errorf("settling back on row 0 must not fire, got %v", got)
	}
	w.BeginDrag()
	w.DragBy(2, 0)
	w.EndDrag()
	w.BeginDrag()
	w.DragBy(5, 0) // a full turn lands on the same row
	w.EndDrag()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("want exactly [2], got %v", got)
	}
}

func TestDeceleration_CoastsAndSnaps(t *testing.T) {
	var got []int
	w := New(12, 1, WithViewport(7), settleRecorder(&got))
	w.Fling(30)
	if w.State() != StateDecelerating {
		t.Fatalf("want decelerating, got %s", w.State())
	}
	frames := 0
	for w.Tick(16 * time.Millisecond) {
		frames++
		if frames > 10_000 {
			t.Fatal("wheel never stopped")
		}
		assertContiguous(t, w)
	}
	if w.State() != StateIdle {
		t.Fatalf("want idle, got %s", w.State())
	}
	if w.Offset() != math.Trunc(w.Offset()) {
		t.Errorf("want offset on a boundary, got %v", w.Offset())
	}
	if len(got) != 1 || got[0] != w.SelectedRow() {
		t.Errorf("want single settle for %d, got %v", w.SelectedRow(), got)
	}
}

func TestEndDrag_SlowReleaseSettlesImmediately(t *testing.T) {
	w := New(8, 1, WithViewport(5))
	w.BeginDrag()
	w.DragBy(0.1, time.Second)
	w.EndDrag()
	if w.State() != StateIdle {
		t.Errorf("want idle, got %s", w.State())
	}
}

// ---------------------------------------------------------------------------
// Animation
// ---------------------------------------------------------------------------

func TestAnimatedSelect_ReachesTarget(t *testing.T) {
	var got []int
	w := New(10, 1, WithViewport(5), WithAnimationDuration(200*time.Millisecond), settleRecorder(&got))
	if err := w.SelectRow(3, true); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateAnimating {
		t.Fatalf("want animating, got %s", w.State())
	}
	if w.TargetRow() != 3 {
		t.Errorf("want target 3, got %d", w.TargetRow())
	}
	if !w.Tick(100 * time.Millisecond) {
		t.Fatal("want still moving halfway through")
	}
	if off := w.Offset(); off <= 0 || off >= 3 {
		t.Errorf("halfway offset should be between 0 and 3, got %v", off)
	}
	if w.Tick(100 * time.Millisecond) {
		t.Fatal("want stopped at the end")
	}
	if w.SelectedRow() != 3 || w.Offset() != 3 {
		t.Errorf("want row 3 at offset 3, got row %d offset %v", w.SelectedRow(), w.Offset())
	}
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("want settle [3], got %v", got)
	}
}

func TestAnimatedSelect_TakesShortWayAround(t *testing.T) {
	w := New(10, 1, WithViewport(5), WithAnimationDuration(100*time.Millisecond))
	if err := w.SelectRow(8, true); err != nil {
		t.Fatal(err)
	}
	w.Tick(50 * time.Millisecond)
	if w.Offset() >= 0 {
		t.Errorf("row 8 from row 0 should spin backward, offset %v", w.Offset())
	}
	w.Tick(50 * time.Millisecond)
	if w.SelectedRow() != 8 {
		t.Errorf("want 8, got %d", w.SelectedRow())
	}
}

func TestAnimatedSelect_PreemptedByDrag(t *testing.T) {
	w := New(10, 1, WithViewport(5))
	_ = w.SelectRow(5, true)
	w.Tick(50 * time.Millisecond)
	w.BeginDrag()
	if w.State() != StateDragging {
		t.Fatalf("want dragging, got %s", w.State())
	}
	if w.Velocity() != 0 {
		t.Errorf("want no residual velocity, got %v", w.Velocity())
	}
	before := w.Offset()
	if w.Tick(50 * time.Millisecond) {
		t.Error("a dragging wheel does not need ticks")
	}
	if w.Offset() != before {
		t.Errorf("animation kept running after preemption: %v -> %v", before, w.Offset())
	}
}

func TestAnimatedSelect_PreemptedBySelect(t *testing.T) {
	w := New(10, 1, WithViewport(5), WithAnimationDuration(100*time.Millisecond))
	_ = w.SelectRow(5, true)
	w.Tick(30 * time.Millisecond)
	_ = w.SelectRow(2, true)
	for w.Tick(20 * time.Millisecond) {
	}
	if w.SelectedRow() != 2 {
		t.Errorf("want 2, got %d", w.SelectedRow())
	}
}

func TestNonAnimatedSelect_CancelsDeceleration(t *testing.T) {
	w := New(10, 1, WithViewport(5))
	w.Fling(50)
	_ = w.SelectRow(7, false)
	if w.State() != StateIdle || w.Velocity() != 0 {
		t.Errorf("want idle at rest, got %s v=%v", w.State(), w.Velocity())
	}
	if w.Tick(16 * time.Millisecond) {
		t.Error("idle wheel should not move")
	}
	if w.SelectedRow() != 7 {
		t.Errorf("want 7, got %d", w.SelectedRow())
	}
}

// ---------------------------------------------------------------------------
// Window & recycling
// ---------------------------------------------------------------------------

func TestWindow_CoversViewportPlusOverscan(t *testing.T) {
	w := New(20, 1, WithViewport(3), WithOverscan(0))
	first, last, ok := w.Window()
	if !ok || first != -1 || last != 2 {
		t.Fatalf("want [-1,2], got [%d,%d] ok=%v", first, last, ok)
	}
	w2 := New(20, 1, WithViewport(3))
	first, last, _ = w2.Window()
	if first != -2 || last != 3 {
		t.Errorf("want overscan 1 -> [-2,3], got [%d,%d]", first, last)
	}
}

func TestSlots_StayContiguousUnderMotion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 30).Draw(t, "rows")
		extent := float64(rapid.IntRange(1, 4).Draw(t, "extent"))
		viewport := rapid.IntRange(1, 25).Draw(t, "viewport")
		r := &refurbisher{}
		w := New(rows, extent, WithViewport(viewport), WithContent(r.content))
		assertContiguous(t, w)

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				w.BeginDrag()
				w.DragBy(rapid.Float64Range(-50, 50).Draw(t, "delta"), 16*time.Millisecond)
			case 1:
				w.EndDrag()
			case 2:
				w.Tick(16 * time.Millisecond)
			case 3:
				_ = w.SelectRow(rapid.IntRange(0, rows-1).Draw(t, "row"), rapid.Bool().Draw(t, "animated"))
			}
			assertContiguous(t, w)
			if sel := w.SelectedRow(); sel < 0 || sel >= rows {
				t.Fatalf("selection %d outside [0,%d)", sel, rows)
			}
		}
	})
}

func TestScroll_ReusesReleasedView(t *testing.T) {
	r := &refurbisher{}
	w := New(20, 1, WithViewport(3), WithOverscan(0), WithContent(r.content))
	leaving, _ := w.SlotAt(-1)

	w.BeginDrag()
	w.DragBy(1, 0)

	entered, ok := w.SlotAt(3)
	if !ok {
		t.Fatal("display 3 should have entered the window")
	}
	if entered.View != leaving.View {
		t.Errorf("want the released view reused, got a different instance")
	}
	if tv := entered.View.(*testView); tv.row != 3 {
		t.Errorf("reused view should be refurbished for row 3, got %d", tv.row)
	}
}

func TestScroll_DeclinedViewIsNotReleasedAgain(t *testing.T) {
	pool := NewPool()
	fresh := 0
	content := func(row int, reusing View) View {
		fresh++
		return &testView{id: fresh, row: row}
	}
	w := New(20, 1, WithViewport(3), WithOverscan(0), WithPool(pool), WithContent(content))
	w.BeginDrag()
	w.DragBy(1, 0) // one slot leaves, one enters and declines the offer
	if pool.Len(0) != 0 {
		t.Errorf("declined view must be dropped, pool holds %d", pool.Len(0))
	}
}

func TestReload_Idempotent(t *testing.T) {
	r := &refurbisher{}
	w := New(7, 2, WithViewport(9), WithContent(r.content))
	w.BeginDrag()
	w.DragBy(9, 0)
	w.EndDrag()

	w.Reload(7, 2)
	first := w.Slots()
	sel := w.SelectedRow()
	w.Reload(7, 2)
	second := w.Slots()

	if sel != 0 || w.SelectedRow() != 0 {
		t.Errorf("reload resets to row 0, got %d then %d", sel, w.SelectedRow())
	}
	if len(first) != len(second) {
		t.Fatalf("slot count changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Display != second[i].Display || first[i].Row != second[i].Row {
			t.Errorf("slot %d differs: %+v vs %+v", i, first[i], second[i])
		}
		if first[i].View != second[i].View {
			t.Errorf("slot %d: want the same view instance after reload", i)
		}
	}
}

func TestTeardown_ReleasesEverySlot(t *testing.T) {
	pool := NewPool()
	r := &refurbisher{}
	w := New(9, 1, WithViewport(5), WithPool(pool), WithComponent(3), WithContent(r.content))
	n := len(w.Slots())
	w.Teardown()
	if pool.Len(3) != n {
		t.Errorf("want %d pooled views, got %d", n, pool.Len(3))
	}
	if len(w.Slots()) != 0 {
		t.Errorf("want no slots after teardown, got %d", len(w.Slots()))
	}
}

func TestViewForRow_PrefersSlotNearestSelection(t *testing.T) {
	r := &refurbisher{}
	// Two rows on a tall viewport: every row is visible several times.
	w := New(2, 1, WithViewport(7), WithContent(r.content))
	v := w.ViewForRow(0)
	s, _ := w.SlotAt(0)
	if v == nil || v != s.View {
		t.Errorf("want the view at display 0, got %v", v)
	}
	if w.ViewForRow(2) != nil {
		t.Error("out of range row must give nil")
	}
}

func TestRecenter_KeepsOffsetBounded(t *testing.T) {
	w := New(6, 2, WithViewport(8))
	for i := 0; i < 50; i++ {
		w.BeginDrag()
		w.DragBy(1000.5, 0)
		w.EndDrag()
		if w.Offset() < 0 || w.Offset() >= w.Period() {
			t.Fatalf("offset %v escaped [0,%v)", w.Offset(), w.Period())
		}
		assertContiguous(t, w)
	}
}
