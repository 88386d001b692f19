package booking

import (
	"math"
	"time"

	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// ClockMode is the active phase of the two-phase picker.
type ClockMode string

const (
	ModeHour   ClockMode = "hour"
	ModeMinute ClockMode = "minute"
)

// Dial geometry in the storefront's 200x200 SVG space.
const (
	dialCX    = 100.0
	dialCY    = 100.0
	dialLimit = 100.0 // gestures starting outside fall through to scrolling

	outerRingRadius = 66.0
	innerRingRadius = 44.0
	ringSplitRadius = 55.0 // radial threshold between the 24h rings
	handLength      = 70.0
)

const (
	scooterHourStep = 22.5
	clockStep12     = 30.0
	terminalHour    = 21 // last pickup hour of the scooter window
	defaultHour     = 8
)

// scooterHours is the single-ring daytime window, index 0 at 12 o'clock.
var scooterHours = []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}

// minuteValues in ring order; value i sits at angle (i+1)*30, so :00 is
// at 12 o'clock and :05 at 1 o'clock.
var minuteValues = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 0}

// ClockPosition is one selectable numeral on the dial snapshot.
type ClockPosition struct {
	Value    int     `json:"value"`
	Angle    float64 `json:"angle"`
	Radius   float64 `json:"radius"`
	Disabled bool    `json:"disabled"`
	Active   bool    `json:"active"`
}

// ClockHand describes the rendered hand; length reflects which ring is
// active on the dual-ring layout.
type ClockHand struct {
	Angle  float64 `json:"angle"`
	Length float64 `json:"length"`
}

// ClockFace is the full re-derivable dial snapshot handed to the UI.
type ClockFace struct {
	Mode      ClockMode       `json:"mode"`
	Positions []ClockPosition `json:"positions"`
	Hand      ClockHand       `json:"hand"`
	Hour      int             `json:"hour"`
	Minute    int             `json:"minute"`
	Confirmed bool            `json:"confirmed"`
}

// Clock is the two-phase (or dual-ring) time selector. All masking is
// derived fresh from (now, selected date); nothing disabled is cached.
type Clock struct {
	Category  domain.Category
	Mode      ClockMode
	Hour      int
	Minute    int
	Confirmed bool

	dragging bool
}

// NewClock returns the picker in its post-reset state. The programmatic
// default does not count as a confirmed time.
func NewClock(category domain.Category) Clock {
	return Clock{Category: category, Mode: ModeHour, Hour: defaultHour, Minute: 0}
}

// HourValues returns the selectable hours for the category's layout.
func (k Clock) HourValues() []int {
	if k.Category == domain.CategoryTransfer {
		vals := make([]int, 24)
		for i := range vals {
			vals[i] = i
		}
		return vals
	}
	return scooterHours
}

// HourDisabled reports whether an hour is masked: with today selected,
// any hour strictly before the current one is not selectable.
func (k Clock) HourDisabled(hour int, now time.Time, selected *time.Time) bool {
	if selected == nil || !utils.SameDay(*selected, now) {
		return false
	}
	return hour < now.Hour()
}

// MinuteDisabled reports whether a minute is masked inside the current
// hour. :00 denotes the next hour, so it is past only once the elapsed
// minute threshold has reached 55.
func (k Clock) MinuteDisabled(minute int, now time.Time, selected *time.Time) bool {
	if selected == nil || !utils.SameDay(*selected, now) || k.Hour != now.Hour() {
		return false
	}
	if minute == 0 {
		return now.Minute() >= 55
	}
	return minute <= now.Minute()
}

// ClampHourForward advances the chosen hour to the next allowed ring
// value strictly greater than the current hour, when the previously
// chosen hour has already elapsed today.
func (k *Clock) ClampHourForward(now time.Time, selected *time.Time) {
	if selected == nil || !utils.SameDay(*selected, now) || k.Hour >= now.Hour() {
		return
	}
	for _, h := range k.HourValues() {
		if h > now.Hour() {
			k.Hour = h
			return
		}
	}
}

// SwitchMode changes the active phase without confirming anything.
func (k *Clock) SwitchMode(mode ClockMode) {
	k.Mode = mode
}

// TapReadout is the user tapping the digital HH or MM display.
func (k *Clock) TapReadout(mode ClockMode) {
	k.Mode = mode
	k.Confirmed = true
}

// DragStart captures a gesture only when the press lands within the
// dial's circular bounds; presses outside fall through to page scroll.
func (k *Clock) DragStart(x, y float64, now time.Time, selected *time.Time) bool {
	if pointerRadius(x, y) > dialLimit {
		return false
	}
	k.dragging = true
	k.DragMove(x, y, now, selected)
	return true
}

// DragMove snaps the pointer to the nearest ring value. Masked values
// reject the move silently, leaving the current value in place.
func (k *Clock) DragMove(x, y float64, now time.Time, selected *time.Time) {
	if !k.dragging {
		return
	}
	angle := pointerAngle(x, y)
	if k.Mode == ModeHour {
		h := k.snapHour(angle, pointerRadius(x, y))
		if k.HourDisabled(h, now, selected) {
			return
		}
		k.Hour = h
		return
	}
	m := snapMinute(angle)
	if k.MinuteDisabled(m, now, selected) {
		return
	}
	k.Minute = m
}

// DragEnd releases the gesture, confirming the selection. Releasing in
// hour mode advances to the minute phase, unless the terminal scooter
// hour short-circuits it.
func (k *Clock) DragEnd() {
	if !k.dragging {
		return
	}
	k.dragging = false
	k.Confirmed = true
	if k.Mode == ModeHour {
		k.commitHour()
	}
}

// Tap selects a numeral in the active phase. Disabled numerals reject
// the tap silently.
func (k *Clock) Tap(value int, now time.Time, selected *time.Time) {
	if k.Mode == ModeHour {
		if !k.hourOnRing(value) || k.HourDisabled(value, now, selected) {
			return
		}
		k.Hour = value
		k.Confirmed = true
		k.commitHour()
		return
	}
	if value < 0 || value > 55 || value%5 != 0 || k.MinuteDisabled(value, now, selected) {
		return
	}
	k.Minute = value
	k.Confirmed = true
}

// commitHour applies the after-hour-selection rule: the scooter window's
// terminal hour skips the minute phase and forces :00.
func (k *Clock) commitHour() {
	if k.Category != domain.CategoryTransfer && k.Hour == terminalHour {
		k.Minute = 0
		k.Confirmed = true
		return
	}
	k.Mode = ModeMinute
}

func (k Clock) hourOnRing(hour int) bool {
	for _, h := range k.HourValues() {
		if h == hour {
			return true
		}
	}
	return false
}

func (k Clock) snapHour(angle, radius float64) int {
	if k.Category == domain.CategoryTransfer {
		idx := snapIndex(angle, clockStep12, 12)
		if radius >= ringSplitRadius {
			return idx // outer ring: 0-11
		}
		return idx + 12 // inner ring: 12-23
	}
	return scooterHours[snapIndex(angle, scooterHourStep, len(scooterHours))]
}

func snapMinute(angle float64) int {
	return snapIndex(angle, clockStep12, 12) * 5
}

// snapIndex converts a raw pointer angle to the nearest discrete ring
// index, wrapping modulo the ring size.
func snapIndex(angle, step float64, size int) int {
	idx := int(math.Round(angle/step)) % size
	if idx < 0 {
		idx += size
	}
	return idx
}

// pointerAngle measures degrees clockwise from 12 o'clock.
func pointerAngle(x, y float64) float64 {
	angle := math.Atan2(y-dialCY, x-dialCX)*180/math.Pi + 90
	if angle < 0 {
		angle += 360
	}
	return angle
}

func pointerRadius(x, y float64) float64 {
	return math.Hypot(x-dialCX, y-dialCY)
}

// hourAngle returns the dial angle of an hour in the active layout.
func (k Clock) hourAngle(hour int) float64 {
	if k.Category == domain.CategoryTransfer {
		return float64(hour%12) * clockStep12
	}
	for i, h := range scooterHours {
		if h == hour {
			return float64(i) * scooterHourStep
		}
	}
	return 0
}

// Face renders the dial snapshot for the active phase.
func (k Clock) Face(now time.Time, selected *time.Time) ClockFace {
	face := ClockFace{
		Mode:      k.Mode,
		Hour:      k.Hour,
		Minute:    k.Minute,
		Confirmed: k.Confirmed,
	}

	if k.Mode == ModeHour {
		for i, h := range k.HourValues() {
			pos := ClockPosition{
				Value:    h,
				Disabled: k.HourDisabled(h, now, selected),
				Active:   h == k.Hour,
				Radius:   outerRingRadius,
			}
			if k.Category == domain.CategoryTransfer {
				pos.Angle = float64(h%12) * clockStep12
				if h >= 12 {
					pos.Radius = innerRingRadius
				}
			} else {
				pos.Angle = float64(i) * scooterHourStep
			}
			face.Positions = append(face.Positions, pos)
		}
		face.Hand = ClockHand{Angle: k.hourAngle(k.Hour), Length: handLength}
		if k.Category == domain.CategoryTransfer && k.Hour >= 12 {
			face.Hand.Length = handLength * innerRingRadius / outerRingRadius
		}
		return face
	}

	for i, m := range minuteValues {
		face.Positions = append(face.Positions, ClockPosition{
			Value:    m,
			Angle:    math.Mod(float64(i+1)*clockStep12, 360),
			Radius:   outerRingRadius,
			Disabled: k.MinuteDisabled(m, now, selected),
			Active:   m == k.Minute,
		})
	}
	face.Hand = ClockHand{Angle: float64(k.Minute) * 6, Length: handLength}
	return face
}
