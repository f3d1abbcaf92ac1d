// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"andrewstaxi/internal/ai"
	"andrewstaxi/internal/http/handlers"
	"andrewstaxi/internal/http/middleware"
	"andrewstaxi/internal/modules/booking"
	"andrewstaxi/internal/modules/chatquota"
)

type RouterDeps struct {
	Booking      *booking.Service
	Places       handlers.PlaceResolver
	Assistant    ai.Assistant
	ChatQuota    *chatquota.Service
	Logger       *zap.Logger
	AllowOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS(deps.AllowOrigins))

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.POST("/api/bookings", bookingHandler.Open)
	r.GET("/api/bookings/:id", bookingHandler.Get)
	r.POST("/api/bookings/:id/advance", bookingHandler.Advance)
	r.POST("/api/bookings/:id/back", bookingHandler.Back)
	r.POST("/api/bookings/:id/edit", bookingHandler.Edit)
	r.POST("/api/bookings/:id/finalize", bookingHandler.Finalize)
	r.DELETE("/api/bookings/:id", bookingHandler.Close)
	r.POST("/api/custom-requests", bookingHandler.Custom)

	estimateHandler := handlers.NewEstimateHandler(deps.Booking)
	r.POST("/api/estimates", estimateHandler.Create)

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	r.POST("/api/places/search", placesHandler.Search)
	r.POST("/api/places/reverse", placesHandler.Reverse)

	chatHandler := handlers.NewChatHandler(deps.Assistant, deps.ChatQuota)
	r.POST("/api/support/chat", chatHandler.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
