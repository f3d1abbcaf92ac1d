// README: Hand-off template and WhatsApp link tests.
package booking

import (
	"strings"
	"testing"
	"time"

	"andrewstaxi/internal/modules/pricing"
	"andrewstaxi/internal/types"
)

func TestFormatBooking(t *testing.T) {
	d := &Draft{
		PickupAddress:  "Beirut Airport",
		DropoffAddress: "Jounieh",
		ScheduledAt:    time.Date(2026, 3, 16, 14, 45, 0, 0, time.UTC),
		PreferenceTags: []string{"Lots of luggage"},
		TravellerName:  "Jad",
		Fare: &pricing.Estimate{
			Low:  types.USD(2000),
			High: types.USD(2500),
		},
	}

	got := FormatBooking(d, time.UTC)
	want := "*Andrew's Taxi Booking Request*\n\n" +
		"Pickup: Beirut Airport\n" +
		"Dropoff: Jounieh\n" +
		"Preferences: Tags: Lots of luggage\n" +
		"Time: Mon 16, 2:45 PM\n" +
		"Estimated Fare: $20–$25\n\n" +
		"Customer Name: Jad"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatBookingOmitsEmptyPreferences(t *testing.T) {
	d := &Draft{
		PickupAddress:  "Beirut Airport",
		DropoffAddress: "Jounieh",
		ScheduledAt:    time.Date(2026, 3, 16, 14, 45, 0, 0, time.UTC),
		TravellerName:  "Jad",
		Fare:           &pricing.Estimate{Low: types.USD(2000), High: types.USD(2500)},
	}
	if strings.Contains(FormatBooking(d, time.UTC), "Preferences:") {
		t.Error("empty preferences should drop the line, not leave it blank")
	}
}

func TestFormatQuote(t *testing.T) {
	est := pricing.Estimate{Low: types.USD(2000), High: types.USD(2500), DistanceKm: 18.4}

	got := FormatQuote("Beirut Airport", "Jounieh", pricing.TripRoundTrip, est, "")
	want := "Hi Andrew's Taxi, I want to book a ride.\n" +
		"Pickup: Beirut Airport\n" +
		"Drop-off: Jounieh\n" +
		"Trip: Round trip\n" +
		"Distance: 18.4 km\n" +
		"Estimate: $20–$25\n" +
		"When: Not specified"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	if !strings.Contains(FormatQuote("A", "B", pricing.TripOneWay, est, "Friday noon"), "When: Friday noon") {
		t.Error("specified time not carried into the message")
	}
}

func TestFormatCustomRequest(t *testing.T) {
	got := FormatCustomRequest(CustomRequest{VehicleType: "SUV", Cars: 2, Name: "Rita"})
	want := "*Andrew's Taxi Custom Request*\n\n" +
		"Vehicle: SUV\n" +
		"Passengers: Not provided\n" +
		"Cars: 2\n" +
		"Time: Not provided\n\n" +
		"Customer Name: Rita"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDispatcherLink(t *testing.T) {
	link := NewDispatcher("96176301019").Link("Pickup: Beirut Airport & gate 3")

	if !strings.HasPrefix(link, "https://wa.me/96176301019?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	// wa.me decodes %20, not +, so spaces must be percent-encoded.
	if strings.Contains(link, "+") {
		t.Errorf("link uses + for spaces: %s", link)
	}
	if !strings.Contains(link, "Pickup%3A%20Beirut%20Airport%20%26%20gate%203") {
		t.Errorf("link not percent-encoded as expected: %s", link)
	}
}
