package catalog

import (
	"database/sql"
	"strings"

	"github.com/vochicuongg/mrleetravel/internal/config"
	"github.com/vochicuongg/mrleetravel/internal/domain"
)

// VehicleStore reads the fleet from MySQL. A nil DB falls back to the
// shared connection from config; callers degrade to the seed when both
// are absent.
type VehicleStore struct {
	DB *sql.DB
}

func (s VehicleStore) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return config.DB
}

// ListVehicles loads the fleet in display order. Tags are stored as a
// comma-joined column.
func (s VehicleStore) ListVehicles() ([]domain.Vehicle, error) {
	db := s.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "chưa cấu hình database"}
	}

	rows, err := db.Query(`
		SELECT id, name, category, base_price, price_unit, currency,
		       COALESCE(capacity, 0), COALESCE(tags, '')
		FROM vehicles
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "không đọc được danh sách xe", Err: err}
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var cat, tags string
		if err := rows.Scan(&v.ID, &v.Name, &cat, &v.BasePrice,
			&v.PriceUnit, &v.Currency, &v.Capacity, &tags); err != nil {
			return nil, domain.InternalError{Msg: "dòng xe không hợp lệ", Err: err}
		}
		v.Category = domain.Category(cat)
		if tags != "" {
			v.Tags = strings.Split(tags, ",")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
