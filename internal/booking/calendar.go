package booking

import (
	"time"

	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// CellState tags one cell of the month grid.
type CellState string

const (
	CellEmpty    CellState = "empty"
	CellPast     CellState = "past"
	CellToday    CellState = "today"
	CellNormal   CellState = "normal"
	CellSelected CellState = "selected"
)

// CalendarCell is one of the 42 cells of a rendered month. Day is zero
// for empty cells.
type CalendarCell struct {
	Day   int       `json:"day,omitempty"`
	State CellState `json:"state"`
}

const calendarCells = 42 // 6 rows x 7 cols, Monday-first

// Calendar tracks the visible month of the date picker. The selected
// date itself lives on the session; the calendar only renders and rolls.
type Calendar struct {
	Year  int
	Month time.Month
}

// NewCalendar opens the calendar on the month containing now.
func NewCalendar(now time.Time) Calendar {
	return Calendar{Year: now.Year(), Month: now.Month()}
}

// Advance rolls the visible month by delta, carrying into the year in
// either direction. The selected date is not touched.
func (c *Calendar) Advance(delta int) {
	m := int(c.Month) - 1 + delta
	c.Year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		c.Year--
	}
	c.Month = time.Month(m + 1)
}

// DaysIn returns the number of days in the visible month.
func (c Calendar) DaysIn() int {
	return time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// ClampDay clamps an out-of-range day request to the nearest valid day
// of the visible month. No error conditions: bad input degrades.
func (c Calendar) ClampDay(day int) int {
	if day < 1 {
		return 1
	}
	if last := c.DaysIn(); day > last {
		return last
	}
	return day
}

// DateOf resolves a day number in the visible month to a local date.
func (c Calendar) DateOf(day int) time.Time {
	return time.Date(c.Year, c.Month, c.ClampDay(day), 0, 0, 0, 0, time.Local)
}

// Grid renders the visible month as a fixed 42-cell Monday-first grid.
// A cell is past iff its date is strictly before the start of today.
// The grid is re-derived on every call; nothing is cached.
func (c Calendar) Grid(now time.Time, selected *time.Time) []CalendarCell {
	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.Local)
	lead := (int(first.Weekday()) + 6) % 7 // Monday = 0
	last := c.DaysIn()
	today := utils.StartOfDay(now)

	cells := make([]CalendarCell, calendarCells)
	for i := range cells {
		cells[i].State = CellEmpty
	}
	for d := 1; d <= last; d++ {
		date := time.Date(c.Year, c.Month, d, 0, 0, 0, 0, time.Local)
		state := CellNormal
		switch {
		case selected != nil && utils.SameDay(*selected, date):
			state = CellSelected
		case date.Before(today):
			state = CellPast
		case date.Equal(today):
			state = CellToday
		}
		cells[lead+d-1] = CalendarCell{Day: d, State: state}
	}
	return cells
}

// pastDay reports whether the given day of the visible month has already
// elapsed relative to now.
func (c Calendar) pastDay(day int, now time.Time) bool {
	return c.DateOf(day).Before(utils.StartOfDay(now))
}
