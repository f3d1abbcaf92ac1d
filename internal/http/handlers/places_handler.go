// README: Place search and reverse-geocode handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"andrewstaxi/internal/maps"
	"andrewstaxi/internal/types"
)

// PlaceResolver is the slice of the maps adapter these handlers need.
type PlaceResolver interface {
	ResolveFreeText(ctx context.Context, text string) (types.PlaceRef, string, error)
	ResolveCoordinate(ctx context.Context, p types.Point) (string, types.PlaceRef)
}

type PlacesHandler struct {
	resolver PlaceResolver
}

func NewPlacesHandler(resolver PlaceResolver) *PlacesHandler {
	return &PlacesHandler{resolver: resolver}
}

type placeSearchReq struct {
	Query string `json:"query"`
}

// Search handles POST /api/places/search.
func (h *PlacesHandler) Search(c *gin.Context) {
	var req placeSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query", "Type a place name to search for.")
		return
	}

	ref, address, err := h.resolver.ResolveFreeText(c.Request.Context(), query)
	if err != nil {
		// A search that finds nothing is 404, not a draft validation error.
		if errors.Is(err, maps.ErrLocationNotFound) {
			writeError(c, http.StatusNotFound, "no matching place",
				"Try a more specific place name, or drop a pin on the map.")
			return
		}
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"address": address, "ref": ref})
}

type placeReverseReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Reverse handles POST /api/places/reverse.
func (h *PlacesHandler) Reverse(c *gin.Context) {
	var req placeReverseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		writeError(c, http.StatusBadRequest, "coordinates out of range", "Drop the pin again.")
		return
	}

	address, ref := h.resolver.ResolveCoordinate(c.Request.Context(), types.Point{Lat: req.Lat, Lng: req.Lng})
	writeJSON(c, http.StatusOK, gin.H{"address": address, "ref": ref})
}
