// README: Pricing service computes fare estimate ranges.
package pricing

import (
	"fmt"
	"math"

	"andrewstaxi/internal/types"
)

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Config() Config {
	return s.cfg
}

// Estimate maps a driving distance and trip type to a fare range.
// Round trips double the distance and apply the per-km discount to the
// distance portion only; the point estimate is floored at the minimum fare
// and spread by ±EstimateVariance, each bound rounded to a whole currency
// unit. Inputs are pre-validated by the caller (distance >= 0).
func (s *Service) Estimate(distanceKm float64, trip TripType) Estimate {
	cfg := s.cfg

	kmCost := distanceKm * cfg.PerKmRate
	if trip == TripRoundTrip {
		effective := distanceKm * 2
		kmCost = effective * cfg.PerKmRate * (1 - cfg.RoundTripDiscount)
	}

	point := math.Max(cfg.BaseFare+kmCost, cfg.MinFare)

	low := math.Round(point * (1 - cfg.EstimateVariance))
	high := math.Round(point * (1 + cfg.EstimateVariance))

	return Estimate{
		Low:        types.Money{AmountCents: int64(low) * 100, Currency: cfg.Currency},
		High:       types.Money{AmountCents: int64(high) * 100, Currency: cfg.Currency},
		DistanceKm: math.Round(distanceKm*10) / 10,
	}
}

// WaitAdvisory returns advisory text when the requested waiting time exceeds
// the free allowance, and "" otherwise.
func WaitAdvisory(waitMinutes int) string {
	if waitMinutes <= FreeWaitMinutes {
		return ""
	}
	return fmt.Sprintf("The first %d minutes of waiting are free; extra waiting time is agreed on WhatsApp.", FreeWaitMinutes)
}
