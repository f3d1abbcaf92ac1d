// README: WhatsApp deep-link dispatcher.
package booking

import (
	"net/url"
	"strings"
)

// Dispatcher builds wa.me deep links for a fixed recipient number. Opening
// the link is the client's job; nothing is awaited and nothing is retried.
type Dispatcher struct {
	number string
}

func NewDispatcher(number string) *Dispatcher {
	return &Dispatcher{number: number}
}

// Link URL-encodes the message into a pre-filled chat link.
func (d *Dispatcher) Link(message string) string {
	// %20 rather than + so WhatsApp renders spaces correctly.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + d.number + "?text=" + encoded
}
