package catalog

import (
	"database/sql"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/config"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// StoredHoliday is one surcharge window row of the holidays table.
type StoredHoliday struct {
	ID int64 `json:"id"`
	booking.HolidayRange
}

// HolidayStore persists the surcharge windows managed from the admin
// surface. Like the fleet, it is optional: without a DB the built-in
// holiday list applies and writes are rejected.
type HolidayStore struct {
	DB *sql.DB
}

func (s HolidayStore) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return config.DB
}

// Calendar assembles the effective holiday calendar. DB rows replace
// the built-in list entirely when any exist.
func (s HolidayStore) Calendar() *booking.HolidayCalendar {
	rows, err := s.List()
	if err != nil || len(rows) == 0 {
		return booking.DefaultHolidays()
	}
	cal := &booking.HolidayCalendar{}
	for _, r := range rows {
		cal.Ranges = append(cal.Ranges, r.HolidayRange)
	}
	return cal
}

// List loads every stored window ordered by start date.
func (s HolidayStore) List() ([]StoredHoliday, error) {
	db := s.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "chưa cấu hình database"}
	}

	rows, err := db.Query(`
		SELECT id, name, date_from, date_to
		FROM holidays
		ORDER BY date_from, id
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "không đọc được danh sách ngày lễ", Err: err}
	}
	defer rows.Close()

	var out []StoredHoliday
	for rows.Next() {
		var h StoredHoliday
		var from, to string
		if err := rows.Scan(&h.ID, &h.Name, &from, &to); err != nil {
			return nil, domain.InternalError{Msg: "dòng ngày lễ không hợp lệ", Err: err}
		}
		if h.From, err = utils.ParseDate(from); err != nil {
			return nil, domain.ValidationError{Field: "date_from", Msg: "ngày không hợp lệ", Err: err}
		}
		if h.To, err = utils.ParseDate(to); err != nil {
			return nil, domain.ValidationError{Field: "date_to", Msg: "ngày không hợp lệ", Err: err}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Add inserts a new surcharge window.
func (s HolidayStore) Add(h booking.HolidayRange) (int64, error) {
	if h.Name == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "chưa nhập tên ngày lễ"}
	}
	if h.To.Before(h.From) {
		return 0, domain.ValidationError{Field: "date_to", Msg: "ngày kết thúc trước ngày bắt đầu"}
	}
	db := s.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "chưa cấu hình database"}
	}

	res, err := db.Exec(
		`INSERT INTO holidays (name, date_from, date_to) VALUES (?, ?, ?)`,
		h.Name, utils.FormatDate(h.From), utils.FormatDate(h.To),
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "không lưu được ngày lễ", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// Delete removes a stored window by id.
func (s HolidayStore) Delete(id int64) error {
	db := s.db()
	if db == nil {
		return domain.InternalError{Msg: "chưa cấu hình database"}
	}

	res, err := db.Exec(`DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "không xoá được ngày lễ", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "holiday"}
	}
	return nil
}
