package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/http/middleware"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// GET /api/holidays
// Public: the storefront shows the surcharge windows on the calendar.
func (a API) ListHolidays(c *gin.Context) {
	rows, err := a.Holidays.List()
	if err != nil {
		// no DB configured: expose the built-in list read-only
		cal := booking.DefaultHolidays()
		c.JSON(http.StatusOK, gin.H{"holidays": cal.Ranges, "readonly": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": rows})
}

type holidayRequest struct {
	Name     string `json:"name"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// POST /api/admin/holidays
func (a API) CreateHoliday(c *gin.Context) {
	var req holidayRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	from, err := utils.ParseDate(req.DateFrom)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "date_from", Msg: "ngày không hợp lệ", Err: err})
		return
	}
	to, err := utils.ParseDate(req.DateTo)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "date_to", Msg: "ngày không hợp lệ", Err: err})
		return
	}

	id, err := a.Holidays.Add(booking.HolidayRange{Name: req.Name, From: from, To: to})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "holidays", "create", req.Name)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/admin/holidays/:id
func (a API) DeleteHoliday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "id không hợp lệ"})
		return
	}
	if err := a.Holidays.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "holidays", "delete", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
