package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/places"
)

// GET /api/hotels?q=&with_address=1
// Backs the hotel-name autocomplete of the delivery and pickup forms.
func (a API) SearchHotels(c *gin.Context) {
	withAddress := c.Query("with_address") == "1"
	c.JSON(http.StatusOK, gin.H{
		"hotels": places.Search(c.Query("q"), withAddress),
	})
}
