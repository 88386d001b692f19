package booking

import (
	"github.com/vochicuongg/mrleetravel/internal/domain"
)

// Place is one of the fixed transfer stops.
type Place string

const (
	PlaceAirport   Place = "airport"   // Phan Thiet airport stop
	PlaceMuiNe     Place = "muine"     // coastal hub
	PlacePhanThiet Place = "phanthiet" // city center
	PlaceDaLat     Place = "dalat"
	PlaceSandDunes Place = "sanddunes" // excursion-only destination
)

// pickupOrigins are the stops a transfer may legally start from.
// Excursion stops are destinations only.
var pickupOrigins = []Place{PlaceAirport, PlaceMuiNe, PlacePhanThiet, PlaceDaLat}

// excursionOnly destinations are hidden from the dropoff list when the
// pickup is the airport or the coastal hub.
var excursionOnly = map[Place]bool{
	PlaceSandDunes: true,
}

var noExcursionFrom = map[Place]bool{
	PlaceAirport: true,
	PlaceMuiNe:   true,
}

// routeFares is keyed by the ordered (pickup, dropoff) pair. Keys are
// directional on purpose: A->B and B->A are independent entries even
// where both happen to be populated. Missing pairs fall back to the
// vehicle's base price.
var routeFares = map[[2]Place]int64{
	{PlaceAirport, PlaceMuiNe}:       1_690_000,
	{PlaceMuiNe, PlaceAirport}:       1_690_000,
	{PlaceAirport, PlacePhanThiet}:   1_500_000,
	{PlacePhanThiet, PlaceAirport}:   1_500_000,
	{PlaceMuiNe, PlacePhanThiet}:     600_000,
	{PlacePhanThiet, PlaceMuiNe}:     600_000,
	{PlaceMuiNe, PlaceDaLat}:         1_750_000,
	{PlacePhanThiet, PlaceDaLat}:     1_900_000,
	{PlacePhanThiet, PlaceSandDunes}: 950_000,
	{PlaceDaLat, PlaceSandDunes}:     2_100_000,
}

// Places lists every stop in display order.
func Places() []Place {
	return []Place{PlaceAirport, PlaceMuiNe, PlacePhanThiet, PlaceDaLat, PlaceSandDunes}
}

// LegalPickup reports whether a stop may be used as a transfer origin.
func LegalPickup(p Place) bool {
	for _, o := range pickupOrigins {
		if o == p {
			return true
		}
	}
	return false
}

// LegalDropoff reports whether dropoff is reachable from pickup.
func LegalDropoff(pickup, dropoff Place) bool {
	if dropoff == "" || dropoff == pickup {
		return false
	}
	if excursionOnly[dropoff] && noExcursionFrom[pickup] {
		return false
	}
	return true
}

// RouteFare resolves the fixed trip price of the ordered pair, falling
// back to base for pairs the table does not carry.
func RouteFare(pickup, dropoff Place, base int64) int64 {
	if fare, ok := routeFares[[2]Place{pickup, dropoff}]; ok {
		return fare
	}
	return base
}

// RouteFilter maintains a valid, non-degenerate pickup/dropoff pair for
// transfer bookings.
type RouteFilter struct {
	Pickup  Place
	Dropoff Place
}

// DropoffOptions lists the legal destinations for the current pickup.
func (r RouteFilter) DropoffOptions() []Place {
	var out []Place
	for _, p := range Places() {
		if LegalDropoff(r.Pickup, p) {
			out = append(out, p)
		}
	}
	return out
}

// SetPickup changes the origin. A collision with the current dropoff
// rotates the dropoff to the previous pickup when that stop remains
// legal under the new restriction set, otherwise clears it.
func (r *RouteFilter) SetPickup(p Place) {
	if !LegalPickup(p) {
		return
	}
	prev := r.Pickup
	r.Pickup = p
	if r.Dropoff == p {
		if prev != "" && LegalDropoff(p, prev) {
			r.Dropoff = prev
		} else {
			r.Dropoff = ""
		}
	}
	if r.Dropoff != "" && !LegalDropoff(r.Pickup, r.Dropoff) {
		r.Dropoff = ""
	}
}

// SetDropoff changes the destination, with the symmetric rotation rule.
// Selecting the current pickup is the collision case, so it bypasses the
// legality guard and rotates instead.
func (r *RouteFilter) SetDropoff(p Place) {
	if p != r.Pickup && r.Pickup != "" && !LegalDropoff(r.Pickup, p) {
		return
	}
	prev := r.Dropoff
	r.Dropoff = p
	if r.Pickup == p {
		if prev != "" && LegalPickup(prev) && LegalDropoff(prev, p) {
			r.Pickup = prev
		} else {
			r.Pickup = ""
		}
	}
}

// Swap exchanges pickup and dropoff atomically. It rejects, leaving the
// pair untouched, when the current dropoff cannot serve as an origin.
func (r *RouteFilter) Swap() error {
	if r.Pickup == "" || r.Dropoff == "" {
		return domain.ConflictError{Resource: "route", Msg: "chưa chọn đủ điểm đón và điểm đến"}
	}
	if !LegalPickup(r.Dropoff) {
		return domain.ConflictError{Resource: "route", Msg: "điểm đến không thể dùng làm điểm đón"}
	}
	if !LegalDropoff(r.Dropoff, r.Pickup) {
		return domain.ConflictError{Resource: "route", Msg: "chiều ngược lại không khả dụng"}
	}
	r.Pickup, r.Dropoff = r.Dropoff, r.Pickup
	return nil
}

// Complete reports whether both ends of the route are set.
func (r RouteFilter) Complete() bool {
	return r.Pickup != "" && r.Dropoff != ""
}
