package catalog

import (
	"github.com/vochicuongg/mrleetravel/internal/domain"
)

// seedVehicles is the built-in fleet, served verbatim when no database
// is configured. IDs are stable: they appear in notification payloads.
var seedVehicles = []domain.Vehicle{
	{
		ID: "bike-1", Name: "Honda Air Blade 125",
		Category: domain.CategoryScooter, BasePrice: 150_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "125cc", "standard", "helmet", "delivery"},
	},
	{
		ID: "bike-2", Name: "Honda Vision 2026",
		Category: domain.CategoryScooter, BasePrice: 150_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "125cc", "standard", "helmet", "delivery"},
	},
	{
		ID: "bike-3", Name: "Honda Lead ABS",
		Category: domain.CategoryScooter, BasePrice: 150_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "125cc", "standard", "helmet", "delivery"},
	},
	{
		ID: "bike-4", Name: "Yamaha Nouvo 5",
		Category: domain.CategoryScooter, BasePrice: 130_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "125cc", "standard", "helmet", "delivery"},
	},
	{
		ID: "bike-5", Name: "Honda PCX 150",
		Category: domain.CategoryScooter, BasePrice: 180_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "150cc", "helmet", "delivery"},
	},
	{
		ID: "bike-6", Name: "Yamaha NVX 155",
		Category: domain.CategoryScooter, BasePrice: 180_000,
		PriceUnit: "per_day", Currency: "VND",
		Tags: []string{"automatic", "150cc", "helmet", "delivery"},
	},

	{
		ID: "jeep-1", Name: "Jeep Vàng",
		Category: domain.CategoryTour, BasePrice: 650_000,
		PriceUnit: "per_tour", Currency: "VND", Capacity: 4,
		Tags: []string{"private", "guide", "sunrise_sunset"},
	},
	{
		ID: "jeep-2", Name: "Jeep Hồng",
		Category: domain.CategoryTour, BasePrice: 650_000,
		PriceUnit: "per_tour", Currency: "VND", Capacity: 4,
		Tags: []string{"private", "guide", "sunrise_sunset"},
	},
	{
		ID: "jeep-3", Name: "Jeep Xanh Lục",
		Category: domain.CategoryTour, BasePrice: 650_000,
		PriceUnit: "per_tour", Currency: "VND", Capacity: 4,
		Tags: []string{"private", "guide", "sunrise_sunset"},
	},
	{
		ID: "jeep-4", Name: "Jeep Xanh Dương",
		Category: domain.CategoryTour, BasePrice: 650_000,
		PriceUnit: "per_tour", Currency: "VND", Capacity: 4,
		Tags: []string{"private", "guide", "sunrise_sunset"},
	},
	{
		ID: "jeep-5", Name: "Jeep Trắng",
		Category: domain.CategoryTour, BasePrice: 650_000,
		PriceUnit: "per_tour", Currency: "VND", Capacity: 4,
		Tags: []string{"private", "guide", "sunrise_sunset"},
	},

	{
		ID: "van-1", Name: "Ford Transit",
		Category: domain.CategoryTransfer, BasePrice: 2_600_000,
		PriceUnit: "per_trip", Currency: "VND", Capacity: 16,
		Tags: []string{"airport", "ac", "luggage"},
	},
	{
		ID: "van-2", Name: "Hyundai Solati",
		Category: domain.CategoryTransfer, BasePrice: 2_600_000,
		PriceUnit: "per_trip", Currency: "VND", Capacity: 16,
		Tags: []string{"ac", "luggage"},
	},
	{
		ID: "van-3", Name: "Toyota Fortuner",
		Category: domain.CategoryTransfer, BasePrice: 1_690_000,
		PriceUnit: "per_trip", Currency: "VND", Capacity: 7,
		Tags: []string{"private", "ac", "luggage"},
	},
}

// SeedVehicles returns a copy of the built-in fleet.
func SeedVehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, len(seedVehicles))
	copy(out, seedVehicles)
	return out
}
