// README: Maps adapter sentinel errors.
package maps

import "errors"

var (
	// ErrLocationNotFound means free text did not resolve to any place.
	ErrLocationNotFound = errors.New("location not found")
	// ErrRouteUnavailable means no driving route exists between two resolved places.
	ErrRouteUnavailable = errors.New("route unavailable")
	// ErrServiceUnavailable covers transport failures and a missing API key.
	ErrServiceUnavailable = errors.New("maps service unavailable")
)
