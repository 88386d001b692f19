package booking

import (
	"time"

	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// Rental discount tiers and the fixed per-person group tour price, VND.
const (
	longTermDays         = 25
	longTermPremiumUnit  = 150_000 // 150cc displacement class
	longTermStandardUnit = 100_000
	midTermDays          = 5
	midTermStandardUnit  = 130_000 // "standard" sub-class only

	GroupPricePerPerson = 180_000
)

// Vehicle sub-class tags consulted by the discount table.
const (
	TagStandard = "standard"
	TagPremium  = "150cc"
)

// Quote is the price breakdown handed to the UI and the submission
// payload. It carries enough to reconstruct Total without re-running
// the engine: Total == UnitPrice x Quantity, with Multiplier already
// rounded into UnitPrice.
type Quote struct {
	Category   domain.Category `json:"category"`
	BasePrice  int64           `json:"basePrice"`
	UnitPrice  int64           `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	Unit       string          `json:"unit"` // i18n key: per_day / per_person / per_tour / per_trip
	Multiplier float64         `json:"multiplier"`
	Total      int64           `json:"total"`
	Discounted bool            `json:"discounted"`
	ReturnDate *time.Time      `json:"returnDate,omitempty"`
}

// PromoTier is one advertised long-rental discount.
type PromoTier struct {
	MinDays   int   `json:"minDays"`
	UnitPrice int64 `json:"unitPrice"`
	Saving    int64 `json:"saving"`
}

// DiscountedUnitPrice resolves the tiered per-day price of a scooter
// rental. A tier applies only when it is strictly cheaper than the base
// price; a tier that would not save money is suppressed.
func DiscountedUnitPrice(v domain.Vehicle, days int) int64 {
	if v.Category != domain.CategoryScooter {
		return v.BasePrice
	}
	if days >= longTermDays {
		tier := int64(longTermStandardUnit)
		if v.HasTag(TagPremium) {
			tier = longTermPremiumUnit
		}
		if tier < v.BasePrice {
			return tier
		}
	} else if days >= midTermDays && v.HasTag(TagStandard) {
		if midTermStandardUnit < v.BasePrice {
			return midTermStandardUnit
		}
	}
	return v.BasePrice
}

// PromoTiers lists the discounts worth advertising for a vehicle. Tiers
// that would not beat the base price are left out entirely.
func PromoTiers(v domain.Vehicle) []PromoTier {
	if v.Category != domain.CategoryScooter {
		return nil
	}
	var tiers []PromoTier
	if v.HasTag(TagStandard) {
		tiers = append(tiers, PromoTier{MinDays: midTermDays, UnitPrice: midTermStandardUnit})
	}
	long := PromoTier{MinDays: longTermDays, UnitPrice: longTermStandardUnit}
	if v.HasTag(TagPremium) {
		long.UnitPrice = longTermPremiumUnit
	}
	tiers = append(tiers, long)

	out := tiers[:0]
	for _, t := range tiers {
		if t.UnitPrice < v.BasePrice {
			t.Saving = v.BasePrice - t.UnitPrice
			out = append(out, t)
		}
	}
	return out
}

// ComputePrice derives the final price for the session's category. The
// holiday multiplier is applied to the unit price and rounded half-up
// BEFORE multiplying by quantity; displayed subtotals depend on that
// order, so it must not be reordered.
func ComputePrice(v domain.Vehicle, s *Session, multiplier float64) Quote {
	switch v.Category {
	case domain.CategoryScooter:
		return priceScooter(v, s, multiplier)
	case domain.CategoryTour:
		return priceTour(v, s, multiplier)
	default:
		return priceTransfer(v, s, multiplier)
	}
}

func priceScooter(v domain.Vehicle, s *Session, multiplier float64) Quote {
	days := s.RentalDays
	unit := utils.RoundMoney(float64(DiscountedUnitPrice(v, days)) * multiplier)
	q := Quote{
		Category:   v.Category,
		BasePrice:  v.BasePrice,
		UnitPrice:  unit,
		Quantity:   days,
		Unit:       "per_day",
		Multiplier: multiplier,
		Total:      unit * int64(days),
		Discounted: DiscountedUnitPrice(v, days) < v.BasePrice,
	}
	if s.SelectedDate != nil {
		ret := s.SelectedDate.AddDate(0, 0, days)
		q.ReturnDate = &ret
	}
	return q
}

func priceTour(v domain.Vehicle, s *Session, multiplier float64) Quote {
	if s.TourType == TourGroup {
		unit := utils.RoundMoney(GroupPricePerPerson * multiplier)
		return Quote{
			Category:   v.Category,
			BasePrice:  GroupPricePerPerson,
			UnitPrice:  unit,
			Quantity:   s.GroupSize,
			Unit:       "per_person",
			Multiplier: multiplier,
			Total:      unit * int64(s.GroupSize),
		}
	}
	unit := utils.RoundMoney(float64(v.BasePrice) * multiplier)
	return Quote{
		Category:   v.Category,
		BasePrice:  v.BasePrice,
		UnitPrice:  unit,
		Quantity:   1,
		Unit:       "per_tour",
		Multiplier: multiplier,
		Total:      unit,
	}
}

func priceTransfer(v domain.Vehicle, s *Session, multiplier float64) Quote {
	fare := RouteFare(s.Route.Pickup, s.Route.Dropoff, v.BasePrice)
	unit := utils.RoundMoney(float64(fare) * multiplier)
	return Quote{
		Category:   v.Category,
		BasePrice:  v.BasePrice,
		UnitPrice:  unit,
		Quantity:   1,
		Unit:       "per_trip",
		Multiplier: multiplier,
		Total:      unit,
	}
}
