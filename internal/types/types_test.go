// README: Value object tests (money rendering, place reference variants).
package types

import "testing"

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{600, "$6"},
		{650, "$6.50"},
		{2000, "$20"},
		{5, "$0.05"},
		{0, "$0"},
	}
	for _, tc := range cases {
		if got := USD(tc.cents).String(); got != tc.want {
			t.Errorf("USD(%d).String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestPlaceRefEqual(t *testing.T) {
	pin := Point{Lat: 33.82083, Lng: 35.48833}

	if !RefFromPlaceID("P1").Equal(RefFromPlaceID("P1")) {
		t.Error("same place IDs not equal")
	}
	if RefFromPlaceID("P1").Equal(RefFromPlaceID("P2")) {
		t.Error("different place IDs equal")
	}
	if !RefFromPin(pin).Equal(RefFromPin(pin)) {
		t.Error("same pins not equal")
	}
	if RefFromPin(pin).Equal(RefFromPlaceID("P1")) {
		t.Error("pin equal to place ID")
	}
	if RefFromPin(pin).Equal(RefFromPin(Point{Lat: 34, Lng: 35})) {
		t.Error("different pins equal")
	}
	if !(PlaceRef{}).IsZero() || RefFromPin(pin).IsZero() {
		t.Error("IsZero misreports variant state")
	}
}
