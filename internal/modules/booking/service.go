// README: Booking conversation engine (step validation, transitions, hand-off).
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"andrewstaxi/internal/modules/pricing"
	"andrewstaxi/internal/types"
)

// Resolver is the place-resolution contract the engine depends on. Free-text
// failures collapse into a single not-found error; coordinate resolution
// never fails.
type Resolver interface {
	ResolveFreeText(ctx context.Context, text string) (types.PlaceRef, string, error)
	ResolveCoordinate(ctx context.Context, p types.Point) (string, types.PlaceRef)
	DistanceKm(ctx context.Context, origin, dest types.PlaceRef) (float64, error)
}

type Estimator interface {
	Estimate(distanceKm float64, trip pricing.TripType) pricing.Estimate
}

type Service struct {
	sessions *SessionStore
	resolver Resolver
	pricing  Estimator
	dispatch *Dispatcher
	loc      *time.Location
	now      func() time.Time
}

func NewService(sessions *SessionStore, resolver Resolver, estimator Estimator, dispatch *Dispatcher, loc *time.Location) *Service {
	return &Service{
		sessions: sessions,
		resolver: resolver,
		pricing:  estimator,
		dispatch: dispatch,
		loc:      loc,
		now:      time.Now,
	}
}

var (
	ErrSessionNotFound    = errors.New("booking session not found")
	ErrLocationUnresolved = errors.New("location input not resolved")
	ErrSameLocation       = errors.New("pickup and drop-off cannot be the same")
	ErrInvalidDateTime    = errors.New("pickup time missing or in the past")
	ErrNameRequired       = errors.New("name required")
	ErrInvalidStep        = errors.New("operation not allowed at this step")
	ErrAlreadySent        = errors.New("booking already handed off")
)

// LocationInput carries one of three ways to fix a location: free text to
// resolve, a pinned coordinate to reverse-geocode, or a place already
// resolved by client-side autocomplete.
type LocationInput struct {
	Text    string       `json:"text,omitempty"`
	Pin     *types.Point `json:"pin,omitempty"`
	PlaceID string       `json:"place_id,omitempty"`
	Address string       `json:"address,omitempty"`
}

// AdvanceCommand carries the input for whichever step the draft is on; the
// engine reads only the fields that step needs.
type AdvanceCommand struct {
	SessionID   string
	Location    *LocationInput
	TripType    pricing.TripType
	WaitMinutes int
	ScheduledAt time.Time
	Preset      string
	Tags        []string
	Note        string
	Name        string
}

type AdvanceResult struct {
	View         View
	WaitAdvisory string
}

// Open creates a fresh draft session.
func (s *Service) Open() (string, View) {
	id, d := s.sessions.Open()
	return id, d.view()
}

// Get returns the current state of a session's draft.
func (s *Service) Get(sessionID string) (View, error) {
	d, err := s.sessions.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(), nil
}

// Close discards the session and its draft.
func (s *Service) Close(sessionID string) {
	s.sessions.Close(sessionID)
}

// Advance validates the current step's input, mutates the draft, and moves
// to the next step. On any validation or adapter failure the draft is left
// untouched and the step does not change. Once the draft has reached the
// confirmation screen, completing any step returns straight to it.
func (s *Service) Advance(ctx context.Context, cmd AdvanceCommand) (AdvanceResult, error) {
	d, err := s.sessions.Get(cmd.SessionID)
	if err != nil {
		return AdvanceResult{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	var advisory string

	switch d.Step {
	case StepPickup:
		addr, ref, err := s.resolveLocation(ctx, cmd.Location)
		if err != nil {
			return AdvanceResult{View: d.view()}, err
		}
		if !d.DropoffRef.IsZero() {
			if ref.Equal(d.DropoffRef) {
				return AdvanceResult{View: d.view()}, ErrSameLocation
			}
			fare, err := s.fare(ctx, ref, d.DropoffRef, d.TripType)
			if err != nil {
				return AdvanceResult{View: d.view()}, err
			}
			d.Fare = fare
		}
		d.PickupAddress, d.PickupRef = addr, ref

	case StepDropoff:
		addr, ref, err := s.resolveLocation(ctx, cmd.Location)
		if err != nil {
			return AdvanceResult{View: d.view()}, err
		}
		trip := d.TripType
		if cmd.TripType != "" {
			trip = cmd.TripType
		}
		if !d.PickupRef.IsZero() {
			if ref.Equal(d.PickupRef) {
				return AdvanceResult{View: d.view()}, ErrSameLocation
			}
			fare, err := s.fare(ctx, d.PickupRef, ref, trip)
			if err != nil {
				return AdvanceResult{View: d.view()}, err
			}
			d.Fare = fare
		}
		d.DropoffAddress, d.DropoffRef = addr, ref
		d.TripType = trip
		d.WaitMinutes = cmd.WaitMinutes
		advisory = pricing.WaitAdvisory(d.WaitMinutes)

	case StepDateTime:
		// One clock reading for the whole command, so "asap" (= now) can
		// never be behind its own validity check.
		now := s.now()
		at := cmd.ScheduledAt
		if cmd.Preset != "" {
			preset, ok := SchedulePreset(cmd.Preset, now)
			if !ok {
				return AdvanceResult{View: d.view()}, ErrInvalidDateTime
			}
			at = preset
		}
		if at.IsZero() || at.Before(now) {
			return AdvanceResult{View: d.view()}, ErrInvalidDateTime
		}
		d.ScheduledAt = at

	case StepPreferences:
		// Tags and note are both optional; this step cannot fail.
		d.PreferenceTags = cleanTags(cmd.Tags)
		d.PreferenceNote = strings.TrimSpace(cmd.Note)

	case StepName:
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			return AdvanceResult{View: d.view()}, ErrNameRequired
		}
		d.TravellerName = name

	default:
		return AdvanceResult{View: d.view()}, ErrInvalidStep
	}

	if d.reachedConfirm {
		d.Step = StepConfirm
	} else {
		d.Step = nextStep(d.Step)
		if d.Step == StepConfirm {
			d.reachedConfirm = true
		}
	}
	return AdvanceResult{View: d.view(), WaitAdvisory: advisory}, nil
}

type BackResult struct {
	Step      Step `json:"step"`
	Cancelled bool `json:"cancelled"`
}

// Back moves to the step's fixed predecessor. At Pickup there is none:
// the result signals cancel intent and the draft is untouched.
func (s *Service) Back(ctx context.Context, sessionID string) (BackResult, error) {
	d, err := s.sessions.Get(sessionID)
	if err != nil {
		return BackResult{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Step == StepPickup {
		return BackResult{Step: StepPickup, Cancelled: true}, nil
	}
	d.Step = prevStep[d.Step]
	return BackResult{Step: d.Step}, nil
}

// Edit jumps from the confirmation screen to a single field step. The step
// keeps its current value; completing it returns directly to Confirm.
func (s *Service) Edit(ctx context.Context, sessionID string, target Step) (View, error) {
	d, err := s.sessions.Get(sessionID)
	if err != nil {
		return View{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Step != StepConfirm || !editableStep(target) {
		return d.view(), ErrInvalidStep
	}
	d.Step = target
	return d.view(), nil
}

type HandOff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Finalize renders the draft into the hand-off message and link. It is only
// callable from Confirm, requires the full finalization invariants, and
// refuses a second hand-off for the same draft.
func (s *Service) Finalize(ctx context.Context, sessionID string) (HandOff, error) {
	d, err := s.sessions.Get(sessionID)
	if err != nil {
		return HandOff{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Step != StepConfirm {
		return HandOff{}, ErrInvalidStep
	}
	if d.dispatched {
		return HandOff{}, ErrAlreadySent
	}
	if err := d.readyToFinalize(s.now()); err != nil {
		return HandOff{}, err
	}

	msg := FormatBooking(d, s.loc)
	d.dispatched = true
	return HandOff{Message: msg, Link: s.dispatch.Link(msg)}, nil
}

// QuoteCommand is the one-shot fare-estimator request: both locations in a
// single call, no session.
type QuoteCommand struct {
	Pickup      LocationInput
	Dropoff     LocationInput
	TripType    pricing.TripType
	WaitMinutes int
	When        string
}

type Quote struct {
	PickupAddress  string           `json:"pickup_address"`
	DropoffAddress string           `json:"dropoff_address"`
	Estimate       pricing.Estimate `json:"estimate"`
	WaitAdvisory   string           `json:"wait_advisory,omitempty"`
	Message        string           `json:"message"`
	Link           string           `json:"link"`
}

// Quote resolves both locations, prices the trip, and builds the estimator
// hand-off message.
func (s *Service) Quote(ctx context.Context, cmd QuoteCommand) (Quote, error) {
	pickupAddr, pickupRef, err := s.resolveLocation(ctx, &cmd.Pickup)
	if err != nil {
		return Quote{}, fmt.Errorf("pickup: %w", err)
	}
	dropoffAddr, dropoffRef, err := s.resolveLocation(ctx, &cmd.Dropoff)
	if err != nil {
		return Quote{}, fmt.Errorf("dropoff: %w", err)
	}
	if pickupRef.Equal(dropoffRef) {
		return Quote{}, ErrSameLocation
	}

	trip := cmd.TripType
	if trip == "" {
		trip = pricing.TripOneWay
	}
	fare, err := s.fare(ctx, pickupRef, dropoffRef, trip)
	if err != nil {
		return Quote{}, err
	}

	msg := FormatQuote(pickupAddr, dropoffAddr, trip, *fare, cmd.When)
	return Quote{
		PickupAddress:  pickupAddr,
		DropoffAddress: dropoffAddr,
		Estimate:       *fare,
		WaitAdvisory:   pricing.WaitAdvisory(cmd.WaitMinutes),
		Message:        msg,
		Link:           s.dispatch.Link(msg),
	}, nil
}

// Custom renders an ad-hoc request outside the wizard. All fields are
// optional, so there is nothing to validate.
func (s *Service) Custom(req CustomRequest) HandOff {
	msg := FormatCustomRequest(req)
	return HandOff{Message: msg, Link: s.dispatch.Link(msg)}
}

func (s *Service) resolveLocation(ctx context.Context, in *LocationInput) (string, types.PlaceRef, error) {
	switch {
	case in == nil:
		return "", types.PlaceRef{}, ErrLocationUnresolved
	case in.PlaceID != "":
		addr := strings.TrimSpace(in.Address)
		if addr == "" {
			return "", types.PlaceRef{}, ErrLocationUnresolved
		}
		return addr, types.RefFromPlaceID(in.PlaceID), nil
	case in.Pin != nil:
		addr, ref := s.resolver.ResolveCoordinate(ctx, *in.Pin)
		return addr, ref, nil
	case strings.TrimSpace(in.Text) != "":
		ref, addr, err := s.resolver.ResolveFreeText(ctx, strings.TrimSpace(in.Text))
		if err != nil {
			return "", types.PlaceRef{}, fmt.Errorf("resolve text: %w", err)
		}
		return addr, ref, nil
	default:
		return "", types.PlaceRef{}, ErrLocationUnresolved
	}
}

func (s *Service) fare(ctx context.Context, origin, dest types.PlaceRef, trip pricing.TripType) (*pricing.Estimate, error) {
	km, err := s.resolver.DistanceKm(ctx, origin, dest)
	if err != nil {
		return nil, fmt.Errorf("route distance: %w", err)
	}
	est := s.pricing.Estimate(km, trip)
	return &est, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
