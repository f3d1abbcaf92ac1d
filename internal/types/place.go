// README: Geographic point and the two-variant place reference.
package types

import "fmt"

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) String() string {
	return fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lng)
}

// PlaceRef identifies a location either by a resolved place ID or by a
// free-standing pinned coordinate. Exactly one variant is set at a time.
type PlaceRef struct {
	PlaceID string `json:"place_id,omitempty"`
	Pin     *Point `json:"pin,omitempty"`
}

// RefFromPlaceID builds a place-ID reference, clearing any pin.
func RefFromPlaceID(id string) PlaceRef {
	return PlaceRef{PlaceID: id}
}

// RefFromPin builds a pinned-coordinate reference, clearing any place ID.
func RefFromPin(p Point) PlaceRef {
	return PlaceRef{Pin: &p}
}

func (r PlaceRef) IsZero() bool {
	return r.PlaceID == "" && r.Pin == nil
}

// Equal compares references by active variant.
func (r PlaceRef) Equal(o PlaceRef) bool {
	if r.PlaceID != "" || o.PlaceID != "" {
		return r.PlaceID == o.PlaceID
	}
	if r.Pin == nil || o.Pin == nil {
		return r.Pin == o.Pin
	}
	return *r.Pin == *o.Pin
}
