package catalog

import (
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// Catalog serves the bookable fleet. With a database configured the
// fleet comes from the vehicles table; otherwise the built-in seed is
// served. Loader is the test hook.
type Catalog struct {
	Store  *VehicleStore
	Loader func() ([]domain.Vehicle, error)
}

func (c Catalog) load() []domain.Vehicle {
	if c.Loader != nil {
		if list, err := c.Loader(); err == nil && len(list) > 0 {
			return list
		}
	}
	if c.Store != nil {
		list, err := c.Store.ListVehicles()
		if err != nil {
			utils.LogEvent("", "catalog", "load", "fallback dữ liệu tĩnh: "+err.Error())
		} else if len(list) > 0 {
			return list
		}
	}
	return SeedVehicles()
}

// All lists every vehicle in display order.
func (c Catalog) All() []domain.Vehicle {
	return c.load()
}

// ByCategory filters the fleet to one storefront tab.
func (c Catalog) ByCategory(cat domain.Category) ([]domain.Vehicle, error) {
	if !cat.Valid() {
		return nil, domain.ValidationError{Field: "category", Msg: "loại xe không hợp lệ"}
	}
	var out []domain.Vehicle
	for _, v := range c.load() {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out, nil
}

// ByID resolves one vehicle for the booking dialog.
func (c Catalog) ByID(id string) (domain.Vehicle, error) {
	for _, v := range c.load() {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
}
