// README: Base handler utilities (JSON helpers, error-to-status mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"andrewstaxi/internal/maps"
	"andrewstaxi/internal/modules/booking"
	"andrewstaxi/internal/modules/chatquota"
)

// errorResponse always carries a hint: every failure the widget surfaces
// must tell the customer what to do next.
type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg, hint string) {
	writeJSON(c, status, errorResponse{Error: msg, Hint: hint})
}

// writeBookingError maps booking and maps sentinels to statuses and hints.
// Service errors arrive wrapped, so matching is errors.Is over the chain.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, "booking session not found",
			"Your session may have expired. Reopen the booking widget to start again.")
	case errors.Is(err, booking.ErrLocationUnresolved), errors.Is(err, maps.ErrLocationNotFound):
		writeError(c, http.StatusUnprocessableEntity, "location not recognized",
			"Try a more specific place name, or drop a pin on the map.")
	case errors.Is(err, booking.ErrSameLocation):
		writeError(c, http.StatusUnprocessableEntity, "pickup and drop-off are the same place",
			"Choose a different drop-off location.")
	case errors.Is(err, booking.ErrInvalidDateTime), errors.Is(err, booking.ErrPastDateTime):
		writeError(c, http.StatusUnprocessableEntity, "pickup time missing or in the past",
			"Pick a time in the future, or choose ASAP.")
	case errors.Is(err, booking.ErrNameRequired):
		writeError(c, http.StatusUnprocessableEntity, "name required",
			"Enter the name the driver should ask for.")
	case errors.Is(err, booking.ErrDraftIncomplete):
		writeError(c, http.StatusConflict, "booking not complete",
			"Fill in the remaining steps before sending.")
	case errors.Is(err, booking.ErrInvalidStep):
		writeError(c, http.StatusConflict, "action not available at this step",
			"Refresh the booking widget and continue from its current step.")
	case errors.Is(err, booking.ErrAlreadySent):
		writeError(c, http.StatusConflict, "booking already sent",
			"This request is already on its way to WhatsApp. Start a new booking for another ride.")
	case errors.Is(err, maps.ErrRouteUnavailable):
		writeError(c, http.StatusUnprocessableEntity, "no driving route found",
			"We could not find a driving route between those places. Double-check both locations.")
	case errors.Is(err, maps.ErrServiceUnavailable):
		writeError(c, http.StatusServiceUnavailable, "location service unavailable",
			"Please try again in a moment, or contact us directly on WhatsApp.")
	case errors.Is(err, chatquota.ErrQuotaExceeded):
		writeError(c, http.StatusTooManyRequests, "daily chat limit reached",
			"You have used today's assistant messages. Reach us on WhatsApp for anything urgent.")
	default:
		writeError(c, http.StatusInternalServerError, "internal error",
			"Something went wrong on our side. Please try again or contact us on WhatsApp.")
	}
}
