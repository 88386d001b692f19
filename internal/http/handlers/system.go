package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "booking engine đang chạy"})
}

func DBCheck(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusOK, gin.H{"message": "không dùng database, dữ liệu tĩnh"})
		return
	}
	var count int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM vehicles").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "không query được database: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kết nối database OK", "vehicles_in_db": count})
}
