package booking

import (
	"math"
	"testing"
	"time"

	"github.com/vochicuongg/mrleetravel/internal/domain"
)

// dialPoint converts (angle clockwise from 12 o'clock, radius) into SVG
// coordinates so drag tests can press where a numeral sits.
func dialPoint(angle, radius float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return dialCX + radius*math.Sin(rad), dialCY - radius*math.Cos(rad)
}

func todayPtr(now time.Time) *time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &d
}

func TestHourMaskingToday(t *testing.T) {
	now := time.Date(2026, time.September, 1, 14, 37, 0, 0, time.Local)
	sel := todayPtr(now)
	k := NewClock(domain.CategoryScooter)

	for h := 6; h <= 13; h++ {
		if !k.HourDisabled(h, now, sel) {
			t.Errorf("hour %d should be disabled at 14:37", h)
		}
	}
	for h := 14; h <= 21; h++ {
		if k.HourDisabled(h, now, sel) {
			t.Errorf("hour %d should be selectable at 14:37", h)
		}
	}

	// A future day lifts the mask entirely.
	future := sel.AddDate(0, 0, 1)
	if k.HourDisabled(6, now, &future) {
		t.Errorf("hour 6 should be selectable on a future day")
	}
}

func TestMinuteMaskingCurrentHour(t *testing.T) {
	now := time.Date(2026, time.September, 1, 14, 37, 0, 0, time.Local)
	sel := todayPtr(now)
	k := NewClock(domain.CategoryScooter)
	k.Hour = 14

	for m := 5; m <= 35; m += 5 {
		if !k.MinuteDisabled(m, now, sel) {
			t.Errorf("minute %d should be disabled at 14:37", m)
		}
	}
	for m := 40; m <= 55; m += 5 {
		if k.MinuteDisabled(m, now, sel) {
			t.Errorf("minute %d should be selectable at 14:37", m)
		}
	}
	// :00 wraps to the next hour; it only goes dark once 55 has elapsed.
	if k.MinuteDisabled(0, now, sel) {
		t.Errorf(":00 should still be selectable at 14:37")
	}

	late := time.Date(2026, time.September, 1, 14, 55, 0, 0, time.Local)
	if !k.MinuteDisabled(0, late, sel) {
		t.Errorf(":00 should be disabled once the hour reaches :55")
	}

	// A later selected hour is not masked at all.
	k.Hour = 16
	if k.MinuteDisabled(5, now, sel) {
		t.Errorf("minute 5 of hour 16 should be selectable at 14:37")
	}
}

func TestClampHourForward(t *testing.T) {
	now := time.Date(2026, time.September, 1, 20, 0, 0, 0, time.Local)
	sel := todayPtr(now)

	k := NewClock(domain.CategoryScooter)
	k.ClampHourForward(now, sel)
	if k.Hour != 21 {
		t.Errorf("hour=%d, want 21 (next allowed after 20:00)", k.Hour)
	}
	if k.Confirmed {
		t.Errorf("clamping must not confirm the selection")
	}

	// Tomorrow keeps the default untouched.
	k = NewClock(domain.CategoryScooter)
	future := sel.AddDate(0, 0, 1)
	k.ClampHourForward(now, &future)
	if k.Hour != defaultHour {
		t.Errorf("hour=%d, want default %d for a future day", k.Hour, defaultHour)
	}
}

func TestTerminalHourSkipsMinutePhase(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	sel := todayPtr(now)

	k := NewClock(domain.CategoryScooter)
	k.Minute = 30
	k.Tap(21, now, sel)
	if k.Hour != 21 || k.Minute != 0 {
		t.Errorf("got %d:%02d, want 21:00", k.Hour, k.Minute)
	}
	if !k.Confirmed {
		t.Errorf("terminal hour must auto-confirm")
	}
	if k.Mode != ModeHour {
		t.Errorf("mode=%s, terminal hour must not enter the minute phase", k.Mode)
	}

	// Non-terminal hours advance to the minute phase as usual.
	k = NewClock(domain.CategoryScooter)
	k.Tap(9, now, sel)
	if k.Mode != ModeMinute {
		t.Errorf("mode=%s, want minute phase after picking hour 9", k.Mode)
	}

	// Hour 21 on the 24h transfer dial is an ordinary hour.
	k = NewClock(domain.CategoryTransfer)
	k.Tap(21, now, sel)
	if k.Mode != ModeMinute {
		t.Errorf("mode=%s, transfer dial has no terminal hour", k.Mode)
	}
}

func TestDragStartHitTest(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	k := NewClock(domain.CategoryScooter)

	if k.DragStart(250, 100, now, nil) {
		t.Errorf("press outside the dial must fall through")
	}
	x, y := dialPoint(0, outerRingRadius)
	if !k.DragStart(x, y, now, nil) {
		t.Errorf("press on the ring must capture the gesture")
	}
}

func TestScooterDragSnapsToRing(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	k := NewClock(domain.CategoryScooter)

	// Index 4 of the daytime ring (hour 10) sits at 90 degrees.
	x, y := dialPoint(90, outerRingRadius)
	if !k.DragStart(x, y, now, nil) {
		t.Fatalf("drag did not start")
	}
	if k.Hour != 10 {
		t.Errorf("hour=%d, want 10", k.Hour)
	}

	// A point between numerals snaps to the nearest one.
	x, y = dialPoint(99, outerRingRadius)
	k.DragMove(x, y, now, nil)
	if k.Hour != 10 {
		t.Errorf("hour=%d, want nearest numeral 10", k.Hour)
	}

	k.DragEnd()
	if !k.Confirmed || k.Mode != ModeMinute {
		t.Errorf("release must confirm and advance: confirmed=%v mode=%s", k.Confirmed, k.Mode)
	}
}

func TestDragRejectsMaskedValues(t *testing.T) {
	now := time.Date(2026, time.September, 1, 14, 37, 0, 0, time.Local)
	sel := todayPtr(now)
	k := NewClock(domain.CategoryScooter)
	k.Hour = 14

	// Hour 10 (90 degrees) is in the past; the hand must not move.
	x, y := dialPoint(90, outerRingRadius)
	if !k.DragStart(x, y, now, sel) {
		t.Fatalf("drag did not start")
	}
	if k.Hour != 14 {
		t.Errorf("hour=%d, want unchanged 14", k.Hour)
	}
	k.DragEnd()

	// Same for a masked minute.
	k.SwitchMode(ModeMinute)
	k.Minute = 45
	k.Tap(20, now, sel)
	if k.Minute != 45 {
		t.Errorf("minute=%d, want unchanged 45", k.Minute)
	}
}

func TestTransferDualRingSnap(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 30, 0, 0, time.Local)
	k := NewClock(domain.CategoryTransfer)

	// 90 degrees on the outer ring is hour 3.
	x, y := dialPoint(90, outerRingRadius)
	if !k.DragStart(x, y, now, nil) {
		t.Fatalf("drag did not start")
	}
	if k.Hour != 3 {
		t.Errorf("hour=%d, want 3 on the outer ring", k.Hour)
	}

	// Same angle inside the split radius reads the inner ring: hour 15.
	x, y = dialPoint(90, innerRingRadius)
	k.DragMove(x, y, now, nil)
	if k.Hour != 15 {
		t.Errorf("hour=%d, want 15 on the inner ring", k.Hour)
	}

	// Straight up on the outer ring is midnight.
	x, y = dialPoint(0, outerRingRadius)
	k.DragMove(x, y, now, nil)
	if k.Hour != 0 {
		t.Errorf("hour=%d, want 0", k.Hour)
	}
	k.DragEnd()
	if k.Mode != ModeMinute {
		t.Errorf("mode=%s, want minute phase", k.Mode)
	}
}

func TestTransferHandShortensOnInnerRing(t *testing.T) {
	now := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.Local)
	k := NewClock(domain.CategoryTransfer)

	k.Hour = 7
	if got := k.Face(now, nil).Hand.Length; got != handLength {
		t.Errorf("outer hand length=%v, want %v", got, handLength)
	}

	k.Hour = 19
	want := handLength * innerRingRadius / outerRingRadius
	if got := k.Face(now, nil).Hand.Length; got != want {
		t.Errorf("inner hand length=%v, want %v", got, want)
	}
	if got := k.Face(now, nil).Hand.Angle; got != 7*clockStep12 {
		t.Errorf("hand angle=%v, want %v", got, 7*clockStep12)
	}
}

func TestMinuteFaceLayout(t *testing.T) {
	now := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.Local)
	k := NewClock(domain.CategoryScooter)
	k.Hour = 9
	k.Minute = 35
	k.SwitchMode(ModeMinute)

	face := k.Face(now, nil)
	if len(face.Positions) != 12 {
		t.Fatalf("got %d minute positions, want 12", len(face.Positions))
	}
	for _, p := range face.Positions {
		if want := float64(p.Value) * 6; p.Angle != want {
			t.Errorf("minute %d at angle %v, want %v", p.Value, p.Angle, want)
		}
		if p.Active != (p.Value == 35) {
			t.Errorf("minute %d active=%v", p.Value, p.Active)
		}
	}
	if face.Hand.Angle != 35*6 {
		t.Errorf("hand angle=%v, want 210", face.Hand.Angle)
	}
}

func TestTapReadout(t *testing.T) {
	k := NewClock(domain.CategoryScooter)
	k.TapReadout(ModeMinute)
	if k.Mode != ModeMinute || !k.Confirmed {
		t.Errorf("readout tap must switch phase and confirm: mode=%s confirmed=%v", k.Mode, k.Confirmed)
	}
}
