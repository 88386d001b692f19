package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/docs"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/http/middleware"
	"github.com/vochicuongg/mrleetravel/internal/i18n"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// bookingRequest is the flat selection state the storefront posts. The
// widget keeps its state client-side; every call rebuilds the session
// and revalidates against the server clock.
type bookingRequest struct {
	VehicleID    string `json:"vehicle_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Hour         *int   `json:"hour"`
	Minute       int    `json:"minute"`
	RentalDays   int    `json:"rental_days"`
	TourType     string `json:"tour_type"`
	TourTime     string `json:"tour_time"`
	GroupSize    int    `json:"group_size"`
	Pickup       string `json:"pickup"`
	Dropoff      string `json:"dropoff"`
	Delivery     string `json:"delivery"`
	HotelName    string `json:"hotel_name"`
	HotelAddress string `json:"hotel_address"`
}

type submitRequest struct {
	bookingRequest
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// buildSession replays the posted selections through the engine so
// past masking, route legality and clamps are enforced server-side too.
func (a API) buildSession(req bookingRequest) (*booking.Session, error) {
	v, err := a.Catalog.ByID(req.VehicleID)
	if err != nil {
		return nil, err
	}
	s := booking.Open(v, a.Holidays.Calendar())

	if req.Date != "" {
		date, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, domain.ValidationError{Field: "date", Msg: "ngày không hợp lệ", Err: err}
		}
		s.Calendar = booking.Calendar{Year: date.Year(), Month: date.Month()}
		if !s.SelectDay(date.Day()) {
			return nil, domain.ValidationError{Field: "date", Msg: "ngày đã qua"}
		}
	}

	if req.RentalDays > 0 {
		s.SetRentalDays(req.RentalDays)
	}
	s.SetTourType(booking.TourType(req.TourType))
	s.SelectTourTime(booking.TourTime(req.TourTime))
	if req.GroupSize > 0 {
		s.SetGroupSize(req.GroupSize)
	}
	s.SetDeliveryMethod(booking.DeliveryMethod(req.Delivery))
	s.SetHotel(req.HotelName, req.HotelAddress)
	s.SetPickup(booking.Place(req.Pickup))
	s.SetDropoff(booking.Place(req.Dropoff))

	if req.Hour != nil {
		s.ClockTap(*req.Hour)
		// a rejected hour tap leaves the picker in the hour phase
		if !s.Clock.Confirmed && s.Clock.Mode == booking.ModeHour {
			return nil, domain.ValidationError{Field: "hour", Msg: "giờ không hợp lệ hoặc đã qua"}
		}
		if s.Clock.Mode == booking.ModeMinute {
			if req.Minute < 0 || req.Minute > 55 || req.Minute%5 != 0 ||
				s.Clock.MinuteDisabled(req.Minute, time.Now(), s.SelectedDate) {
				return nil, domain.ValidationError{Field: "minute", Msg: "phút không hợp lệ hoặc đã qua"}
			}
			s.ClockTap(req.Minute)
		}
	}
	return s, nil
}

// POST /api/bookings/quote
func (a API) QuoteBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	s, err := a.buildSession(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	quote, err := s.Quote()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	l := lang(c)
	resp := gin.H{
		"quote":      quote,
		"priceLabel": utils.FormatVND(quote.Total),
		"unitLabel":  i18n.T(l, quote.Unit),
		"promoTiers": booking.PromoTiers(s.Vehicle),
	}
	if s.SelectedDate != nil {
		if name, ok := s.Holidays.HolidayName(*s.SelectedDate); ok {
			resp["holiday"] = name
		}
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/bookings/submit
func (a API) SubmitBooking(c *gin.Context) {
	var req submitRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	s, err := a.buildSession(req.bookingRequest)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	payload, err := s.Submit(booking.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rid := middleware.GetRequestID(c)
	utils.LogEvent(rid, "booking", "submit", payload.VehicleID+" "+payload.Date+" "+payload.Time)
	a.Notifier.SendAsync(rid, payload)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": i18n.T(lang(c), "toast_success"),
		"booking": payload,
	})
}

// POST /api/bookings/voucher
// Validates like submit and streams the PDF voucher back.
func (a API) BookingVoucher(c *gin.Context) {
	var req submitRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	s, err := a.buildSession(req.bookingRequest)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	payload, err := s.Submit(booking.Customer{Name: req.Name, Phone: req.Phone, Notes: req.Notes})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	data, filename, err := docs.BuildVoucherPDF(payload)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "không tạo được voucher", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/bookings/calendar?year=&month=&selected=YYYY-MM-DD
// Returns the 42-cell month grid the date picker renders.
func (a API) CalendarGrid(c *gin.Context) {
	now := time.Now()
	cal := booking.NewCalendar(now)
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
			cal = booking.Calendar{Year: y, Month: time.Month(m)}
		}
	}

	var selected *time.Time
	if q := c.Query("selected"); q != "" {
		if d, err := utils.ParseDate(q); err == nil {
			selected = &d
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  cal.Year,
		"month": int(cal.Month),
		"cells": cal.Grid(now, selected),
	})
}

// GET /api/bookings/clock?vehicle_id=&date=YYYY-MM-DD&mode=&hour=&minute=
// Returns the dial snapshot with masking derived from the server clock.
func (a API) ClockFace(c *gin.Context) {
	v, err := a.Catalog.ByID(c.Query("vehicle_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	k := booking.NewClock(v.Category)
	if h, err := strconv.Atoi(c.Query("hour")); err == nil {
		k.Hour = h
	}
	if m, err := strconv.Atoi(c.Query("minute")); err == nil {
		k.Minute = m
	}
	if mode := c.Query("mode"); mode == string(booking.ModeMinute) {
		k.SwitchMode(booking.ModeMinute)
	}

	now := time.Now()
	var selected *time.Time
	if q := c.Query("date"); q != "" {
		if d, err := utils.ParseDate(q); err == nil {
			selected = &d
			k.ClampHourForward(now, selected)
		}
	}

	c.JSON(http.StatusOK, k.Face(now, selected))
}
