package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/catalog"
	"github.com/vochicuongg/mrleetravel/internal/http/middleware"
	"github.com/vochicuongg/mrleetravel/internal/notify"
)

// API bundles the wired dependencies of every endpoint.
type API struct {
	Catalog   catalog.Catalog
	Holidays  catalog.HolidayStore
	Notifier  notify.TelegramSender
	JWTSecret []byte
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "thiếu nội dung", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload không hợp lệ", err)
		return false
	}
	return true
}
