// README: Structured support-assistant reply types and action validation.
package ai

// NavAction is a UI navigation the assistant asks the page to perform
// alongside its text reply.
type NavAction string

const (
	ActionNone                NavAction = ""
	ActionOpenBooking         NavAction = "open_booking"
	ActionScrollFareEstimator NavAction = "scroll_fare_estimator"
	ActionScrollCustomRequest NavAction = "scroll_custom_request"
	ActionScrollServices      NavAction = "scroll_services"
	ActionScrollReviews       NavAction = "scroll_reviews"
	ActionOpenWhatsApp        NavAction = "open_whatsapp"
)

// NormalizeAction maps a model-emitted action string to a known NavAction.
// Anything unrecognized collapses to ActionNone so the page never executes
// an action the model invented.
func NormalizeAction(s string) NavAction {
	switch NavAction(s) {
	case ActionOpenBooking, ActionScrollFareEstimator, ActionScrollCustomRequest,
		ActionScrollServices, ActionScrollReviews, ActionOpenWhatsApp:
		return NavAction(s)
	}
	return ActionNone
}

// Reply is the structured output of one assistant turn: text for the chat
// transcript plus an optional page action.
type Reply struct {
	Text   string    `json:"text"`
	Action NavAction `json:"action,omitempty"`
}

// Message is one prior turn of the conversation, passed back so the model
// keeps context. Role is "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
