package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/vochicuongg/mrleetravel/internal/domain"
)

func tourJeep() domain.Vehicle {
	return domain.Vehicle{
		ID:        "jeep-sunrise",
		Name:      "Jeep Tour Đồi Cát",
		Category:  domain.CategoryTour,
		BasePrice: 650_000,
	}
}

func transferVan() domain.Vehicle {
	return domain.Vehicle{
		ID:        "van-16",
		Name:      "Xe 16 chỗ",
		Category:  domain.CategoryTransfer,
		BasePrice: 1_750_000,
	}
}

func TestOpenResetsEverything(t *testing.T) {
	now := fixedNow(2026, time.September, 1, 9, 0)
	s := openAt(standardScooter(150_000), now)
	s.SetRentalDays(7)
	s.SelectDay(10)
	s.ClockTap(14)

	s = openAt(tourJeep(), now)
	if s.SelectedDate != nil {
		t.Errorf("date must not carry over between vehicles")
	}
	if s.RentalDays != 1 || s.GroupSize != 1 {
		t.Errorf("counters not reset: days=%d group=%d", s.RentalDays, s.GroupSize)
	}
	if s.TourType != TourPrivate || s.Delivery != DeliveryPickup {
		t.Errorf("defaults not restored: tour=%s delivery=%s", s.TourType, s.Delivery)
	}
	if s.Clock.Confirmed || s.Clock.Hour != defaultHour {
		t.Errorf("clock not reset: %+v", s.Clock)
	}
}

func TestSelectDayRejectsPast(t *testing.T) {
	s := openAt(standardScooter(150_000), fixedNow(2026, time.September, 10, 9, 0))
	if s.SelectDay(9) {
		t.Errorf("past day must reject")
	}
	if s.SelectedDate != nil {
		t.Errorf("rejected selection must not stick")
	}
	if !s.SelectDay(10) {
		t.Errorf("today must be selectable")
	}
}

func TestSelectTodayLateClampsToLastHour(t *testing.T) {
	// At 20:00 the default hour 8 has long elapsed; selecting today must
	// advance it to 21, the only remaining pickup hour.
	s := openAt(standardScooter(150_000), fixedNow(2026, time.September, 1, 20, 0))
	if !s.SelectDay(1) {
		t.Fatalf("today must be selectable")
	}
	if s.Clock.Hour != 21 {
		t.Errorf("hour=%d, want 21", s.Clock.Hour)
	}
	if s.Clock.Confirmed {
		t.Errorf("silent clamp must not count as a confirmed time")
	}
}

func TestQuoteGating(t *testing.T) {
	s := openAt(standardScooter(150_000), fixedNow(2026, time.September, 1, 9, 0))

	if _, err := s.Quote(); !domain.IsValidation(err) {
		t.Errorf("quote without a date: err=%v, want validation", err)
	}

	s.SelectDay(5)
	if _, err := s.Quote(); !domain.IsValidation(err) {
		t.Errorf("quote without a confirmed time: err=%v, want validation", err)
	}

	s.ClockTap(10) // hour
	s.ClockTap(30) // minute, confirms
	if _, err := s.Quote(); err != nil {
		t.Errorf("quote after confirmation: %v", err)
	}

	// Tours price without the clock.
	s = openAt(tourJeep(), fixedNow(2026, time.September, 1, 9, 0))
	s.SelectDay(5)
	if _, err := s.Quote(); err != nil {
		t.Errorf("tour quote must not need the clock: %v", err)
	}
}

func TestSubmitScooter(t *testing.T) {
	s := openAt(standardScooter(150_000), fixedNow(2026, time.September, 1, 9, 0))
	s.SetRentalDays(5)
	s.SelectDay(10)
	s.ClockTap(9)
	s.ClockTap(30)

	p, err := s.Submit(Customer{Name: "Nguyễn Văn A", Phone: "0913690974"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if p.Date != "10/9/2026" {
		t.Errorf("date=%q, want 10/9/2026", p.Date)
	}
	if p.Time != "09:30" {
		t.Errorf("time=%q, want 09:30", p.Time)
	}
	if p.ReturnDate != "15/9/2026" {
		t.Errorf("return=%q, want 15/9/2026", p.ReturnDate)
	}
	if p.PriceLine != "130K x 5 = 650K" {
		t.Errorf("price=%q, want 130K x 5 = 650K", p.PriceLine)
	}
	if p.RentalDays != 5 || p.Delivery != DeliveryPickup {
		t.Errorf("payload = %+v", p)
	}
}

func TestSubmitGroupTour(t *testing.T) {
	s := openAt(tourJeep(), fixedNow(2026, time.September, 1, 9, 0))
	s.SelectDay(10)
	s.SetTourType(TourGroup)
	s.SetGroupSize(3)
	s.SelectTourTime(TourSunrise)
	s.SetHotel("Khách sạn Biển Xanh", "12 Nguyễn Đình Chiểu")

	p, err := s.Submit(Customer{Name: "Trần B", Phone: "0913690974"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if p.Time != "tour_sunrise" {
		t.Errorf("time=%q, want tour_sunrise", p.Time)
	}
	if p.GroupSize != 3 {
		t.Errorf("groupSize=%d, want 3", p.GroupSize)
	}
	if p.PriceLine != "180K x 3 = 540K" {
		t.Errorf("price=%q, want 180K x 3 = 540K", p.PriceLine)
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	s := openAt(transferVan(), fixedNow(2026, time.September, 1, 9, 0))

	field := func(err error) string {
		var ve domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error %T, want validation", err)
		}
		return ve.Field
	}

	_, err := s.Submit(Customer{})
	if got := field(err); got != "name" {
		t.Errorf("field=%q, want name first", got)
	}

	_, err = s.Submit(Customer{Name: "C", Phone: "123"})
	if got := field(err); got != "phone" {
		t.Errorf("field=%q, want phone second", got)
	}

	c := Customer{Name: "C", Phone: "0913690974"}
	_, err = s.Submit(c)
	if got := field(err); got != "date" {
		t.Errorf("field=%q, want date", got)
	}

	s.SelectDay(10)
	_, err = s.Submit(c)
	if got := field(err); got != "time" {
		t.Errorf("field=%q, want time", got)
	}

	s.ClockTap(15)
	s.ClockTap(30)
	_, err = s.Submit(c)
	if got := field(err); got != "pickup" {
		t.Errorf("field=%q, want pickup", got)
	}

	s.SetPickup(PlaceMuiNe)
	_, err = s.Submit(c)
	if got := field(err); got != "dropoff" {
		t.Errorf("field=%q, want dropoff", got)
	}

	s.SetDropoff(PlaceDaLat)
	_, err = s.Submit(c)
	if got := field(err); got != "hotel" {
		t.Errorf("field=%q, want hotel for a non-airport pickup", got)
	}

	s.SetHotel("Khách sạn Biển Xanh", "")
	p, err := s.Submit(c)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if p.Pickup != PlaceMuiNe || p.Dropoff != PlaceDaLat {
		t.Errorf("route = %s->%s", p.Pickup, p.Dropoff)
	}
	if p.PriceLine != "1,750K" {
		t.Errorf("price=%q, want 1,750K", p.PriceLine)
	}
}

func TestAirportPickupNeedsNoHotel(t *testing.T) {
	s := openAt(transferVan(), fixedNow(2026, time.September, 1, 9, 0))
	s.SelectDay(10)
	s.ClockTap(15)
	s.ClockTap(30)
	s.SetPickup(PlaceAirport)
	s.SetDropoff(PlaceMuiNe)

	if !s.CanSubmit() {
		t.Errorf("airport pickup should not require a hotel")
	}
}

func TestCounterClamps(t *testing.T) {
	s := openAt(standardScooter(150_000), fixedNow(2026, time.September, 1, 9, 0))

	s.SetRentalDays(200)
	if s.RentalDays != 90 {
		t.Errorf("days=%d, want clamp to 90", s.RentalDays)
	}
	s.SetRentalDays(0)
	if s.RentalDays != 1 {
		t.Errorf("days=%d, want clamp to 1", s.RentalDays)
	}
	s.AdjustDays(-5)
	if s.RentalDays != 1 {
		t.Errorf("days=%d, want floor 1", s.RentalDays)
	}

	s.SetGroupSize(50)
	if s.GroupSize != 20 {
		t.Errorf("group=%d, want clamp to 20", s.GroupSize)
	}
	s.SetGroupSize(-1)
	if s.GroupSize != 1 {
		t.Errorf("group=%d, want clamp to 1", s.GroupSize)
	}
}
