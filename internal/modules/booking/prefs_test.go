// README: Preference serialization round-trip tests.
package booking

import (
	"reflect"
	"testing"
)

func TestBuildPreferences(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		note string
		want string
	}{
		{"empty", nil, "", ""},
		{"tags only", []string{"Quiet ride", "Lots of luggage"}, "", "Tags: Quiet ride, Lots of luggage"},
		{"note only", nil, "Two child seats", "Notes: Two child seats"},
		{"both", []string{"4+ passengers"}, "Meet at gate 3", "Tags: 4+ passengers; Notes: Meet at gate 3"},
		{"blank tags dropped", []string{"  ", "Help with bags", ""}, "", "Tags: Help with bags"},
		{"note trimmed", nil, "  airport run  ", "Notes: airport run"},
	}
	for _, tc := range cases {
		if got := BuildPreferences(tc.tags, tc.note); got != tc.want {
			t.Errorf("%s: BuildPreferences = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParsePreferencesRoundTrip(t *testing.T) {
	cases := []struct {
		tags []string
		note string
	}{
		{nil, ""},
		{[]string{"Quiet ride"}, ""},
		{[]string{"Quiet ride", "Need rest/sleep"}, ""},
		{nil, "call on arrival"},
		{[]string{"Lots of luggage", "4+ passengers"}, "pickup at terminal 2"},
		// The note may contain the serialization's own separators.
		{[]string{"Quiet ride"}, "gate 3; Notes: say it twice"},
		{nil, "first, second, third"},
	}
	for _, tc := range cases {
		s := BuildPreferences(tc.tags, tc.note)
		tags, note := ParsePreferences(s)
		if !reflect.DeepEqual(tags, tc.tags) || note != tc.note {
			t.Errorf("round trip of (%v, %q) via %q = (%v, %q)", tc.tags, tc.note, s, tags, note)
		}
	}
}

// TestBuildPreferencesSanitizesTags verifies that a tag carrying the
// serialization's separators cannot break the clause structure.
func TestBuildPreferencesSanitizesTags(t *testing.T) {
	s := BuildPreferences([]string{"luggage, many bags", "gate 3; Notes: fake"}, "real note")
	tags, note := ParsePreferences(s)
	if note != "real note" {
		t.Fatalf("note = %q after tag sanitization, want %q", note, "real note")
	}
	want := []string{"luggage many bags", "gate 3 fake"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestParsePreferencesFreeText(t *testing.T) {
	// Text not produced by BuildPreferences is carried whole as a note.
	tags, note := ParsePreferences("whatever the customer typed")
	if tags != nil || note != "whatever the customer typed" {
		t.Errorf("free text parsed as (%v, %q)", tags, note)
	}
}
