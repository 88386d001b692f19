package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/catalog"
	"github.com/vochicuongg/mrleetravel/internal/config"
	h "github.com/vochicuongg/mrleetravel/internal/http/handlers"
	"github.com/vochicuongg/mrleetravel/internal/http/middleware"
	"github.com/vochicuongg/mrleetravel/internal/notify"
)

func NewRouter(env config.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "không tìm thấy route",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	app := h.API{
		Catalog:  catalog.Catalog{Store: &catalog.VehicleStore{}},
		Holidays: catalog.HolidayStore{},
		Notifier: notify.TelegramSender{
			BotToken: env.TelegramToken,
			ChatID:   env.TelegramChatID,
		},
		JWTSecret: []byte(env.JWTSecret),
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/vehicles", app.ListVehicles)
		api.GET("/vehicles/:id", app.GetVehicle)
		api.GET("/hotels", app.SearchHotels)
		api.GET("/holidays", app.ListHolidays)

		bookings := api.Group("/bookings")
		bookings.GET("/calendar", app.CalendarGrid)
		bookings.GET("/clock", app.ClockFace)
		bookings.POST("/quote", app.QuoteBooking)
		bookings.POST("/submit", app.SubmitBooking)
		bookings.POST("/voucher", app.BookingVoucher)

		auth := api.Group("/auth")
		auth.POST("/login", app.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(app.JWTSecret))
		admin.POST("/holidays", app.CreateHoliday)
		admin.DELETE("/holidays/:id", app.DeleteHoliday)
	}

	return r
}
