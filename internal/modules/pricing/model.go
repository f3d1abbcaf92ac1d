// README: Pricing configuration and fare estimate types.
package pricing

import "andrewstaxi/internal/types"

type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

// Config is the fixed pricing record, loaded once at process start.
type Config struct {
	BaseFare          float64
	PerKmRate         float64
	MinFare           float64
	RoundTripDiscount float64
	EstimateVariance  float64
	Currency          string
}

// Estimate is a fare range for a trip. Low and High are whole currency
// units; DistanceKm is the one-way driving distance rounded to 0.1 km.
type Estimate struct {
	Low        types.Money `json:"low"`
	High       types.Money `json:"high"`
	DistanceKm float64     `json:"distance_km"`
}

// FreeWaitMinutes is the round-trip waiting allowance included in the fare.
// Waiting beyond it never changes the computed estimate; it only produces
// advisory text, so the calculator can never silently inflate a price.
const FreeWaitMinutes = 50
