package booking

import (
	"time"

	"github.com/vochicuongg/mrleetravel/internal/utils"
)

const holidayMultiplier = 1.25

// HolidayRange is one inclusive surcharge window. Ranges are ordered but
// may touch or overlap; lookup short-circuits on the first match.
type HolidayRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	Name string    `json:"name"`
}

// Contains reports whether the date falls inside the range, boundaries
// included.
func (h HolidayRange) Contains(date time.Time) bool {
	d := utils.StartOfDay(date)
	return !d.Before(utils.StartOfDay(h.From)) && !d.After(utils.StartOfDay(h.To))
}

// HolidayCalendar answers the surcharge multiplier for a booking date.
type HolidayCalendar struct {
	Ranges []HolidayRange
}

// Multiplier returns 1.25 when the date falls inside any range, else 1.0.
func (c *HolidayCalendar) Multiplier(date time.Time) float64 {
	for _, r := range c.Ranges {
		if r.Contains(date) {
			return holidayMultiplier
		}
	}
	return 1.0
}

// HolidayName returns the name of the first matching range, if any.
func (c *HolidayCalendar) HolidayName(date time.Time) (string, bool) {
	for _, r := range c.Ranges {
		if r.Contains(date) {
			return r.Name, true
		}
	}
	return "", false
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DefaultHolidays seeds the Vietnamese public-holiday windows the
// storefront surcharges. Replaced from the DB when one is configured.
func DefaultHolidays() *HolidayCalendar {
	return &HolidayCalendar{Ranges: []HolidayRange{
		{From: day(2025, time.December, 31), To: day(2026, time.January, 2), Name: "Tết Dương lịch"},
		{From: day(2026, time.February, 14), To: day(2026, time.February, 22), Name: "Tết Nguyên Đán"},
		{From: day(2026, time.April, 25), To: day(2026, time.April, 26), Name: "Giỗ Tổ Hùng Vương"},
		{From: day(2026, time.April, 30), To: day(2026, time.May, 3), Name: "Lễ 30/4 - 1/5"},
		{From: day(2026, time.September, 1), To: day(2026, time.September, 2), Name: "Quốc Khánh"},
	}}
}
