// README: Free-text and coordinate place resolution via Google Geocoding.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"andrewstaxi/internal/types"
)

// PlacesService resolves free-text and pinned-coordinate input against the
// Google Geocoding API. A service built without an API key stays in the
// not-ready state: free-text resolution fails with ErrServiceUnavailable and
// reverse resolution falls back to a synthetic pinned address.
type PlacesService struct {
	client *maps.Client
	region string
}

// NewPlacesService creates a PlacesService with the given API key. An empty
// key yields a not-ready service rather than an error, so the rest of the
// API can keep serving with a manual-contact fallback.
func NewPlacesService(apiKey, region string) (*PlacesService, error) {
	if apiKey == "" {
		return &PlacesService{region: region}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, region: region}, nil
}

// Ready reports whether the underlying client was initialized.
func (s *PlacesService) Ready() bool {
	return s.client != nil
}

// ResolveFreeText geocodes user-typed text to the best-match place.
// Transport failures and empty results both collapse into ErrLocationNotFound
// from the caller's point of view; a missing client is the one condition
// reported separately so the UI can disable location steps outright.
func (s *PlacesService) ResolveFreeText(ctx context.Context, text string) (types.PlaceRef, string, error) {
	if s.client == nil {
		return types.PlaceRef{}, "", ErrServiceUnavailable
	}

	r := &maps.GeocodingRequest{
		Address: text,
		Region:  s.region,
	}
	results, err := s.client.Geocode(ctx, r)
	if err != nil || len(results) == 0 {
		return types.PlaceRef{}, "", ErrLocationNotFound
	}

	best := results[0]
	addr := best.FormattedAddress
	if addr == "" {
		addr = text
	}
	return types.RefFromPlaceID(best.PlaceID), addr, nil
}

// ResolveCoordinate reverse-geocodes a pinned point to a display address.
// It never fails: when the lookup cannot produce an address the raw
// coordinates are embedded in a synthetic one.
func (s *PlacesService) ResolveCoordinate(ctx context.Context, p types.Point) (string, types.PlaceRef) {
	ref := types.RefFromPin(p)
	if s.client == nil {
		return pinnedAddress(p), ref
	}

	r := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
	}
	results, err := s.client.ReverseGeocode(ctx, r)
	if err != nil || len(results) == 0 || results[0].FormattedAddress == "" {
		return pinnedAddress(p), ref
	}
	return results[0].FormattedAddress, ref
}

func pinnedAddress(p types.Point) string {
	return fmt.Sprintf("Pinned location (%s)", p)
}
