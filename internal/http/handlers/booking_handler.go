// README: Booking wizard handlers (session lifecycle, step commands, hand-off).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"andrewstaxi/internal/modules/booking"
	"andrewstaxi/internal/modules/pricing"
	"andrewstaxi/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

// Open handles POST /api/bookings.
func (h *BookingHandler) Open(c *gin.Context) {
	id, view := h.booking.Open()
	writeJSON(c, http.StatusCreated, gin.H{
		"session_id": id,
		"state":      view,
		"quick_tags": booking.QuickTags,
	})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.booking.Get(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"state": view})
}

type locationInputReq struct {
	Text    string  `json:"text"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Pinned  bool    `json:"pinned"`
	PlaceID string  `json:"place_id"`
	Address string  `json:"address"`
}

func (r *locationInputReq) toInput() *booking.LocationInput {
	in := &booking.LocationInput{
		Text:    r.Text,
		PlaceID: r.PlaceID,
		Address: r.Address,
	}
	if r.Pinned {
		in.Pin = &types.Point{Lat: r.Lat, Lng: r.Lng}
	}
	return in
}

type advanceReq struct {
	Location    *locationInputReq `json:"location"`
	TripType    string            `json:"trip_type"`
	WaitMinutes int               `json:"wait_minutes"`
	ScheduledAt string            `json:"scheduled_at"`
	Preset      string            `json:"preset"`
	Tags        []string          `json:"tags"`
	Note        string            `json:"note"`
	Name        string            `json:"name"`
}

// Advance handles POST /api/bookings/:id/advance.
func (h *BookingHandler) Advance(c *gin.Context) {
	var req advanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	cmd := booking.AdvanceCommand{
		SessionID:   c.Param("id"),
		TripType:    pricing.TripType(req.TripType),
		WaitMinutes: req.WaitMinutes,
		Preset:      req.Preset,
		Tags:        req.Tags,
		Note:        req.Note,
		Name:        req.Name,
	}
	if req.Location != nil {
		cmd.Location = req.Location.toInput()
	}
	if req.ScheduledAt != "" {
		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid scheduled_at",
				"Send the pickup time as an RFC 3339 timestamp, or use a preset.")
			return
		}
		cmd.ScheduledAt = at
	}

	res, err := h.booking.Advance(c.Request.Context(), cmd)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	out := gin.H{"state": res.View}
	if res.WaitAdvisory != "" {
		out["wait_advisory"] = res.WaitAdvisory
	}
	writeJSON(c, http.StatusOK, out)
}

// Back handles POST /api/bookings/:id/back.
func (h *BookingHandler) Back(c *gin.Context) {
	res, err := h.booking.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

type editReq struct {
	Step string `json:"step"`
}

// Edit handles POST /api/bookings/:id/edit.
func (h *BookingHandler) Edit(c *gin.Context) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	view, err := h.booking.Edit(c.Request.Context(), c.Param("id"), booking.Step(req.Step))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"state": view})
}

// Finalize handles POST /api/bookings/:id/finalize.
func (h *BookingHandler) Finalize(c *gin.Context) {
	handoff, err := h.booking.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, handoff)
}

// Close handles DELETE /api/bookings/:id.
func (h *BookingHandler) Close(c *gin.Context) {
	h.booking.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Custom handles POST /api/custom-requests.
func (h *BookingHandler) Custom(c *gin.Context) {
	var req booking.CustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	writeJSON(c, http.StatusOK, h.booking.Custom(req))
}
