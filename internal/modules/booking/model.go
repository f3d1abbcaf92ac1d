// README: Booking draft aggregate, wizard steps, and transition tables.
package booking

import (
	"errors"
	"sync"
	"time"

	"andrewstaxi/internal/modules/pricing"
	"andrewstaxi/internal/types"
)

type Step string

const (
	StepPickup      Step = "pickup"
	StepDropoff     Step = "dropoff"
	StepDateTime    Step = "datetime"
	StepPreferences Step = "preferences"
	StepName        Step = "name"
	StepConfirm     Step = "confirm"
)

// stepOrder is the forward wizard sequence as code.
var stepOrder = []Step{StepPickup, StepDropoff, StepDateTime, StepPreferences, StepName, StepConfirm}

// prevStep maps each step to its fixed predecessor. Pickup has none:
// going back there is cancel intent, handled by the engine.
var prevStep = map[Step]Step{
	StepDropoff:     StepPickup,
	StepDateTime:    StepDropoff,
	StepPreferences: StepDateTime,
	StepName:        StepPreferences,
	StepConfirm:     StepName,
}

func nextStep(s Step) Step {
	for i, cur := range stepOrder {
		if cur == s && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return s
}

// editableStep reports whether a step holds a user-editable field, i.e. is a
// valid target for the confirm-screen edit menu.
func editableStep(s Step) bool {
	return s == StepPickup || s == StepDropoff || s == StepDateTime || s == StepPreferences || s == StepName
}

// Draft is the single mutable record accumulated across the conversation.
// It lives in memory for one widget session and is discarded on close or
// after a successful hand-off.
type Draft struct {
	PickupAddress  string
	PickupRef      types.PlaceRef
	DropoffAddress string
	DropoffRef     types.PlaceRef
	TripType       pricing.TripType
	WaitMinutes    int
	ScheduledAt    time.Time
	PreferenceTags []string
	PreferenceNote string
	TravellerName  string
	Fare           *pricing.Estimate

	Step Step

	// reachedConfirm flips once the wizard first arrives at Confirm; from
	// then on any completed step returns straight to Confirm.
	reachedConfirm bool
	// dispatched blocks a second hand-off for the same draft.
	dispatched bool

	// Commands on the same draft are sequential by contract (one widget
	// instance); the lock covers the HTTP server's inherent concurrency.
	mu sync.Mutex
}

func newDraft() *Draft {
	return &Draft{Step: StepPickup, TripType: pricing.TripOneWay}
}

var (
	ErrDraftIncomplete = errors.New("draft not ready for hand-off")
	ErrPastDateTime    = errors.New("pickup time is in the past")
)

// finalizeGrace keeps a draft sendable while the customer finishes the
// remaining steps. An "asap" pickup is a few minutes old by the time the
// name is typed and the confirm screen is read; that is still a valid
// immediate booking, not a past one.
const finalizeGrace = 10 * time.Minute

// readyToFinalize checks the finalization invariants: both locations have an
// address and a place reference, the pickup time is set and not past (within
// finalizeGrace), and the traveller name is non-empty.
func (d *Draft) readyToFinalize(now time.Time) error {
	if d.PickupAddress == "" || d.PickupRef.IsZero() {
		return ErrDraftIncomplete
	}
	if d.DropoffAddress == "" || d.DropoffRef.IsZero() {
		return ErrDraftIncomplete
	}
	if d.TravellerName == "" {
		return ErrDraftIncomplete
	}
	if d.ScheduledAt.IsZero() {
		return ErrDraftIncomplete
	}
	if d.ScheduledAt.Before(now.Add(-finalizeGrace)) {
		return ErrPastDateTime
	}
	return nil
}

// View is a copy of the draft safe to hand to the HTTP layer.
type View struct {
	Step           Step              `json:"step"`
	PickupAddress  string            `json:"pickup_address,omitempty"`
	PickupRef      types.PlaceRef    `json:"pickup_ref,omitempty"`
	DropoffAddress string            `json:"dropoff_address,omitempty"`
	DropoffRef     types.PlaceRef    `json:"dropoff_ref,omitempty"`
	TripType       pricing.TripType  `json:"trip_type"`
	WaitMinutes    int               `json:"wait_minutes,omitempty"`
	ScheduledAt    *time.Time        `json:"scheduled_at,omitempty"`
	PreferenceTags []string          `json:"preference_tags,omitempty"`
	PreferenceNote string            `json:"preference_note,omitempty"`
	TravellerName  string            `json:"traveller_name,omitempty"`
	Fare           *pricing.Estimate `json:"fare,omitempty"`
	ReachedConfirm bool              `json:"reached_confirm"`
	Dispatched     bool              `json:"dispatched"`
}

func (d *Draft) view() View {
	v := View{
		Step:           d.Step,
		PickupAddress:  d.PickupAddress,
		PickupRef:      d.PickupRef,
		DropoffAddress: d.DropoffAddress,
		DropoffRef:     d.DropoffRef,
		TripType:       d.TripType,
		WaitMinutes:    d.WaitMinutes,
		PreferenceNote: d.PreferenceNote,
		TravellerName:  d.TravellerName,
		ReachedConfirm: d.reachedConfirm,
		Dispatched:     d.dispatched,
	}
	if !d.ScheduledAt.IsZero() {
		at := d.ScheduledAt
		v.ScheduledAt = &at
	}
	if len(d.PreferenceTags) > 0 {
		v.PreferenceTags = append([]string(nil), d.PreferenceTags...)
	}
	if d.Fare != nil {
		fare := *d.Fare
		v.Fare = &fare
	}
	return v
}

// QuickTags are the preference shortcuts offered by the wizard UI.
var QuickTags = []string{
	"4+ passengers",
	"Lots of luggage",
	"Quiet ride",
	"No conversation",
	"Need rest/sleep",
	"Help with bags",
}

// SchedulePreset maps a UI quick preset to a concrete time.
func SchedulePreset(name string, now time.Time) (time.Time, bool) {
	switch name {
	case "asap":
		return now, true
	case "+15min":
		return now.Add(15 * time.Minute), true
	case "+30min":
		return now.Add(30 * time.Minute), true
	case "+1hr":
		return now.Add(time.Hour), true
	}
	return time.Time{}, false
}
