// README: Hand-off message templates (booking, quote, custom request).
package booking

import (
	"fmt"
	"strings"
	"time"

	"andrewstaxi/internal/modules/pricing"
)

// timeLayout is the short human style used in every hand-off message.
// Raw machine timestamps never reach the customer.
const timeLayout = "Mon 2, 3:04 PM"

// FormatBooking renders a finalized draft as the WhatsApp hand-off text.
// The template is deterministic and line-oriented; the Preferences line is
// present only when tags or note are set.
func FormatBooking(d *Draft, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("*Andrew's Taxi Booking Request*\n\n")
	fmt.Fprintf(&b, "Pickup: %s\n", d.PickupAddress)
	fmt.Fprintf(&b, "Dropoff: %s\n", d.DropoffAddress)
	if prefs := BuildPreferences(d.PreferenceTags, d.PreferenceNote); prefs != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", prefs)
	}
	fmt.Fprintf(&b, "Time: %s\n", d.ScheduledAt.In(loc).Format(timeLayout))
	fmt.Fprintf(&b, "Estimated Fare: %s–%s\n\n", d.Fare.Low, d.Fare.High)
	fmt.Fprintf(&b, "Customer Name: %s", d.TravellerName)
	return b.String()
}

// FormatQuote renders the fare-estimator hand-off: an estimate the customer
// wants to confirm, without the full wizard data.
func FormatQuote(pickup, dropoff string, trip pricing.TripType, est pricing.Estimate, when string) string {
	tripLabel := "One-way"
	if trip == pricing.TripRoundTrip {
		tripLabel = "Round trip"
	}
	if when = strings.TrimSpace(when); when == "" {
		when = "Not specified"
	}
	var b strings.Builder
	b.WriteString("Hi Andrew's Taxi, I want to book a ride.\n")
	fmt.Fprintf(&b, "Pickup: %s\n", pickup)
	fmt.Fprintf(&b, "Drop-off: %s\n", dropoff)
	fmt.Fprintf(&b, "Trip: %s\n", tripLabel)
	fmt.Fprintf(&b, "Distance: %.1f km\n", est.DistanceKm)
	fmt.Fprintf(&b, "Estimate: %s–%s\n", est.Low, est.High)
	fmt.Fprintf(&b, "When: %s", when)
	return b.String()
}

// CustomRequest is the ad-hoc "multiple cars / SUV" request outside the
// wizard. Every field is optional.
type CustomRequest struct {
	VehicleType string `json:"vehicle_type"`
	Passengers  string `json:"passengers"`
	Cars        int    `json:"cars"`
	When        string `json:"when"`
	Name        string `json:"name"`
}

// FormatCustomRequest renders a custom request in the booking style. Unset
// fields render as "Not provided" instead of dropping the line, so the
// business sees exactly which details are still missing.
func FormatCustomRequest(r CustomRequest) string {
	var b strings.Builder
	b.WriteString("*Andrew's Taxi Custom Request*\n\n")
	fmt.Fprintf(&b, "Vehicle: %s\n", orNotProvided(r.VehicleType))
	fmt.Fprintf(&b, "Passengers: %s\n", orNotProvided(r.Passengers))
	cars := ""
	if r.Cars > 0 {
		cars = fmt.Sprintf("%d", r.Cars)
	}
	fmt.Fprintf(&b, "Cars: %s\n", orNotProvided(cars))
	fmt.Fprintf(&b, "Time: %s\n\n", orNotProvided(r.When))
	fmt.Fprintf(&b, "Customer Name: %s", orNotProvided(r.Name))
	return b.String()
}

func orNotProvided(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "Not provided"
	}
	return v
}
