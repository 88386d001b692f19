package booking

import (
	"strconv"
	"time"

	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

type TourType string

const (
	TourPrivate TourType = "private"
	TourGroup   TourType = "group"
)

// TourTime is the jeep tour slot; excursions run on fixed itineraries
// rather than the clock picker.
type TourTime string

const (
	TourSunrise TourTime = "sunrise"
	TourSunset  TourTime = "sunset"
	TourCustom  TourTime = "custom"
)

type DeliveryMethod string

const (
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryDeliver DeliveryMethod = "delivery"
)

const (
	minRentalDays = 1
	maxRentalDays = 90
	minGroupSize  = 1
	maxGroupSize  = 20
)

// Session is the single mutable aggregate for one in-progress booking.
// It is created fully reset when the user opens a booking for a vehicle
// and discarded on close or successful submit; exactly one is live at a
// time. Every state transition happens synchronously on a UI event.
type Session struct {
	Vehicle      domain.Vehicle
	Calendar     Calendar
	SelectedDate *time.Time
	Clock        Clock
	Route        RouteFilter
	Holidays     *HolidayCalendar

	TourType   TourType
	TourTime   TourTime
	GroupSize  int
	RentalDays int

	Delivery     DeliveryMethod
	HotelName    string
	HotelAddress string

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Open starts a fresh session for a vehicle. Re-opening for a different
// vehicle discards everything; no prior selection carries over.
func Open(v domain.Vehicle, holidays *HolidayCalendar) *Session {
	if holidays == nil {
		holidays = DefaultHolidays()
	}
	s := &Session{
		Vehicle:    v,
		Clock:      NewClock(v.Category),
		Holidays:   holidays,
		TourType:   TourPrivate,
		GroupSize:  minGroupSize,
		RentalDays: minRentalDays,
		Delivery:   DeliveryPickup,
	}
	s.Calendar = NewCalendar(s.now())
	return s
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SelectDay picks a day of the visible month. Past cells reject as a
// no-op. On success the default hour is clamped forward when the new
// date is today and the chosen hour has already elapsed; the clock mask
// and price are re-derived by the next snapshot call.
func (s *Session) SelectDay(day int) bool {
	now := s.now()
	day = s.Calendar.ClampDay(day)
	if s.Calendar.pastDay(day, now) {
		return false
	}
	date := s.Calendar.DateOf(day)
	s.SelectedDate = &date
	s.Clock.ClampHourForward(now, s.SelectedDate)
	return true
}

// AdvanceMonth rolls the visible month without touching the selection.
func (s *Session) AdvanceMonth(delta int) {
	s.Calendar.Advance(delta)
}

// CalendarGrid snapshots the visible month for the UI.
func (s *Session) CalendarGrid() []CalendarCell {
	return s.Calendar.Grid(s.now(), s.SelectedDate)
}

// ClockFace snapshots the dial with masking derived from now.
func (s *Session) ClockFace() ClockFace {
	return s.Clock.Face(s.now(), s.SelectedDate)
}

// Clock gesture passthroughs; masking context comes from the session.

func (s *Session) ClockDragStart(x, y float64) bool {
	return s.Clock.DragStart(x, y, s.now(), s.SelectedDate)
}

func (s *Session) ClockDragMove(x, y float64) {
	s.Clock.DragMove(x, y, s.now(), s.SelectedDate)
}

func (s *Session) ClockDragEnd() {
	s.Clock.DragEnd()
}

func (s *Session) ClockTap(value int) {
	s.Clock.Tap(value, s.now(), s.SelectedDate)
}

func (s *Session) ClockTapReadout(mode ClockMode) {
	s.Clock.TapReadout(mode)
}

// SetRentalDays clamps to the 1..90 rental window.
func (s *Session) SetRentalDays(days int) {
	if days < minRentalDays {
		days = minRentalDays
	}
	if days > maxRentalDays {
		days = maxRentalDays
	}
	s.RentalDays = days
}

// AdjustDays nudges the rental duration by delta, clamped.
func (s *Session) AdjustDays(delta int) {
	s.SetRentalDays(s.RentalDays + delta)
}

// SetGroupSize clamps to the 1..20 headcount window.
func (s *Session) SetGroupSize(size int) {
	if size < minGroupSize {
		size = minGroupSize
	}
	if size > maxGroupSize {
		size = maxGroupSize
	}
	s.GroupSize = size
}

func (s *Session) SetTourType(t TourType) {
	if t == TourPrivate || t == TourGroup {
		s.TourType = t
	}
}

func (s *Session) SelectTourTime(t TourTime) {
	switch t {
	case TourSunrise, TourSunset, TourCustom:
		s.TourTime = t
	}
}

func (s *Session) SetDeliveryMethod(m DeliveryMethod) {
	if m == DeliveryPickup || m == DeliveryDeliver {
		s.Delivery = m
	}
}

func (s *Session) SetHotel(name, address string) {
	s.HotelName = name
	s.HotelAddress = address
}

func (s *Session) SetPickup(p Place)  { s.Route.SetPickup(p) }
func (s *Session) SetDropoff(p Place) { s.Route.SetDropoff(p) }
func (s *Session) SwapRoute() error   { return s.Route.Swap() }

// Multiplier resolves the holiday surcharge for the selected date.
func (s *Session) Multiplier() float64 {
	if s.SelectedDate == nil {
		return 1.0
	}
	return s.Holidays.Multiplier(*s.SelectedDate)
}

// needsClock reports whether this category books a precise pickup time.
func (s *Session) needsClock() bool {
	return s.Vehicle.Category != domain.CategoryTour
}

// Quote derives the current price breakdown. A price is never produced
// while the date is missing, nor (for scooters and transfers) before
// the user has explicitly confirmed a time.
func (s *Session) Quote() (Quote, error) {
	if s.SelectedDate == nil {
		return Quote{}, domain.ValidationError{Field: "date", Msg: "chưa chọn ngày"}
	}
	if s.needsClock() && !s.Clock.Confirmed {
		return Quote{}, domain.ValidationError{Field: "time", Msg: "chưa chọn giờ"}
	}
	return ComputePrice(s.Vehicle, s, s.Multiplier()), nil
}

// Customer is the contact block entered on the booking form.
type Customer struct {
	Name  string
	Phone string
	Notes string
}

// Payload is the flat booking summary handed to the notification
// sender. It is internally consistent with the last computed quote.
type Payload struct {
	CustomerName  string          `json:"name"`
	CustomerPhone string          `json:"phone"`
	VehicleID     string          `json:"vehicleId"`
	VehicleLabel  string          `json:"vehicle"`
	Category      domain.Category `json:"category"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	ReturnDate    string          `json:"returnDate,omitempty"`
	RentalDays    int             `json:"rentalDays,omitempty"`
	TourType      TourType        `json:"tourType,omitempty"`
	GroupSize     int             `json:"groupSize,omitempty"`
	Pickup        Place           `json:"pickup,omitempty"`
	Dropoff       Place           `json:"dropoff,omitempty"`
	Delivery      DeliveryMethod  `json:"delivery,omitempty"`
	HotelName     string          `json:"hotelName,omitempty"`
	HotelAddress  string          `json:"hotelAddress,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PriceLine     string          `json:"price"`
	Quote         Quote           `json:"quote"`
}

// CanSubmit reports whether Submit would accept the session as-is,
// ignoring the customer fields entered at the last step.
func (s *Session) CanSubmit() bool {
	return s.validateSelections() == nil
}

func (s *Session) validateSelections() error {
	if s.SelectedDate == nil {
		return domain.ValidationError{Field: "date", Msg: "chưa chọn ngày"}
	}
	switch s.Vehicle.Category {
	case domain.CategoryTour:
		if s.TourTime == "" {
			return domain.ValidationError{Field: "tour_time", Msg: "chưa chọn giờ tour"}
		}
	case domain.CategoryTransfer:
		if !s.Clock.Confirmed {
			return domain.ValidationError{Field: "time", Msg: "chưa chọn giờ đón"}
		}
		if s.Route.Pickup == "" {
			return domain.ValidationError{Field: "pickup", Msg: "chưa chọn điểm đón"}
		}
		if s.Route.Dropoff == "" {
			return domain.ValidationError{Field: "dropoff", Msg: "chưa chọn điểm đến"}
		}
		if s.Route.Pickup != PlaceAirport && s.HotelName == "" {
			return domain.ValidationError{Field: "hotel", Msg: "chưa nhập tên khách sạn đón"}
		}
	default:
		if !s.Clock.Confirmed {
			return domain.ValidationError{Field: "time", Msg: "chưa chọn giờ nhận xe"}
		}
	}
	return nil
}

// Submit validates the whole booking and produces the notification
// payload. A rejected submit surfaces a ValidationError naming the
// offending field and leaves the session untouched for correction.
func (s *Session) Submit(c Customer) (Payload, error) {
	if c.Name == "" {
		return Payload{}, domain.ValidationError{Field: "name", Msg: "chưa nhập tên"}
	}
	if err := ValidatePhone(c.Phone); err != nil {
		return Payload{}, err
	}
	if err := s.validateSelections(); err != nil {
		return Payload{}, err
	}

	quote, err := s.Quote()
	if err != nil {
		return Payload{}, err
	}

	p := Payload{
		CustomerName:  c.Name,
		CustomerPhone: c.Phone,
		VehicleID:     s.Vehicle.ID,
		VehicleLabel:  s.Vehicle.Name,
		Category:      s.Vehicle.Category,
		Date:          utils.FormatDisplayDate(*s.SelectedDate),
		Notes:         c.Notes,
		Quote:         quote,
		PriceLine:     priceLine(quote),
	}

	switch s.Vehicle.Category {
	case domain.CategoryScooter:
		p.Time = utils.FormatClock(s.Clock.Hour, s.Clock.Minute)
		p.RentalDays = s.RentalDays
		p.Delivery = s.Delivery
		if s.Delivery == DeliveryDeliver {
			p.HotelName = s.HotelName
			p.HotelAddress = s.HotelAddress
		}
		if quote.ReturnDate != nil {
			p.ReturnDate = utils.FormatDisplayDate(*quote.ReturnDate)
		}
	case domain.CategoryTour:
		p.Time = "tour_" + string(s.TourTime)
		p.TourType = s.TourType
		if s.TourType == TourGroup {
			p.GroupSize = s.GroupSize
		}
		p.HotelName = s.HotelName
		p.HotelAddress = s.HotelAddress
	case domain.CategoryTransfer:
		p.Time = utils.FormatClock(s.Clock.Hour, s.Clock.Minute)
		p.Pickup = s.Route.Pickup
		p.Dropoff = s.Route.Dropoff
		p.HotelName = s.HotelName
		p.HotelAddress = s.HotelAddress
	}
	return p, nil
}

// priceLine renders the human-readable price string of the summary,
// e.g. "130K x 5 = 650K" or "1,690K".
func priceLine(q Quote) string {
	if q.Quantity > 1 {
		return utils.FormatVND(q.UnitPrice) + " x " +
			strconv.Itoa(q.Quantity) + " = " + utils.FormatVND(q.Total)
	}
	return utils.FormatVND(q.Total)
}
