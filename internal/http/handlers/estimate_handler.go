// README: One-shot fare estimate handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"andrewstaxi/internal/modules/booking"
	"andrewstaxi/internal/modules/pricing"
)

type EstimateHandler struct {
	booking *booking.Service
}

func NewEstimateHandler(svc *booking.Service) *EstimateHandler {
	return &EstimateHandler{booking: svc}
}

type estimateReq struct {
	Pickup      locationInputReq `json:"pickup"`
	Dropoff     locationInputReq `json:"dropoff"`
	TripType    string           `json:"trip_type"`
	WaitMinutes int              `json:"wait_minutes"`
	When        string           `json:"when"`
}

// Create handles POST /api/estimates.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	quote, err := h.booking.Quote(c.Request.Context(), booking.QuoteCommand{
		Pickup:      *req.Pickup.toInput(),
		Dropoff:     *req.Dropoff.toInput(),
		TripType:    pricing.TripType(req.TripType),
		WaitMinutes: req.WaitMinutes,
		When:        req.When,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quote)
}
