// README: Driving distance lookups via Google Distance Matrix.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"andrewstaxi/internal/types"
)

// RouteService computes driving distances via the Distance Matrix API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a RouteService with the given API key. As with
// PlacesService, an empty key yields a not-ready service.
func NewRouteService(apiKey string) (*RouteService, error) {
	if apiKey == "" {
		return &RouteService{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

func (s *RouteService) Ready() bool {
	return s.client != nil
}

// DistanceKm returns the driving distance in kilometers between two place
// references. It assumes driving mode; same-reference input is the caller's
// validation problem, not handled here.
func (s *RouteService) DistanceKm(ctx context.Context, origin, dest types.PlaceRef) (float64, error) {
	if s.client == nil {
		return 0, ErrServiceUnavailable
	}

	r := &maps.DistanceMatrixRequest{
		Origins:      []string{waypoint(origin)},
		Destinations: []string{waypoint(dest)},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}
	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("distance matrix: %w", ErrRouteUnavailable)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, ErrRouteUnavailable
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" || el.Distance.Meters <= 0 {
		return 0, ErrRouteUnavailable
	}
	return float64(el.Distance.Meters) / 1000.0, nil
}

// waypoint renders a PlaceRef in Distance Matrix waypoint syntax.
func waypoint(r types.PlaceRef) string {
	if r.PlaceID != "" {
		return "place_id:" + r.PlaceID
	}
	if r.Pin != nil {
		return fmt.Sprintf("%f,%f", r.Pin.Lat, r.Pin.Lng)
	}
	return ""
}
