// README: Gemini-backed support assistant with JSON-mode structured replies.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAssistant implements Assistant using Google's Gemini models.
type GeminiAssistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAssistant initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAssistant(ctx context.Context, apiKey string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON so the action channel is structured, never inlined in the
	// reply text.
	model.ResponseMIMEType = "application/json"

	// Warm support tone but a fixed output shape.
	model.SetTemperature(0.8)
	model.SetMaxOutputTokens(250)

	return &GeminiAssistant{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (a *GeminiAssistant) Close() {
	a.client.Close()
}

// Answer produces one assistant turn. The model's action string is
// normalized before it leaves this package.
func (a *GeminiAssistant) Answer(ctx context.Context, history []Message, userMessage string) (*Reply, error) {
	prompt := buildPrompt(history, userMessage)

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// JSON mode should never emit fences, but strip them if it does.
	cleanJSON := cleanJSONString(responseText.String())

	var raw struct {
		Text   string `json:"text"`
		Action string `json:"action"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	if strings.TrimSpace(raw.Text) == "" {
		return nil, fmt.Errorf("empty reply text from Gemini. Raw: %s", cleanJSON)
	}

	return &Reply{
		Text:   strings.TrimSpace(raw.Text),
		Action: NormalizeAction(raw.Action),
	}, nil
}

// buildPrompt assembles the site-knowledge instructions plus the running
// transcript.
func buildPrompt(history []Message, userMessage string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nConversation so far:\n")
	for _, m := range history {
		role := "Customer"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&b, "Customer: %s", userMessage)
	return b.String()
}

const systemPrompt = `You are a friendly and professional customer support assistant for Andrew's Taxi, Lebanon's premier taxi service. Your goal is to provide helpful, warm, and efficient assistance.

OUTPUT FORMAT (STRICT):
Respond with a single JSON object: {"text": "<your reply>", "action": "<action or empty string>"}
- "text" is the message shown to the customer. Never put action names or brackets inside it.
- "action" is one of: open_booking, scroll_fare_estimator, scroll_custom_request, scroll_services, scroll_reviews, open_whatsapp, or "" for no action.

MANDATORY ACTIONS:
When the customer wants to:
- Book/reserve a ride -> "action": "open_booking"
- Get price/estimate/fare/calculate cost -> "action": "scroll_fare_estimator"
- Multiple cars/SUV/4+ passengers/special needs -> "action": "scroll_custom_request"
- See services/what you offer -> "action": "scroll_services"
- Check reviews/reputation -> "action": "scroll_reviews"
- Talk to a human/urgent help -> "action": "open_whatsapp"

PERSONALITY & TONE:
- Be warm, approachable, and conversational
- Use emojis sparingly
- Keep responses 2-3 sentences maximum
- Be proactive: set the action immediately when relevant
- NEVER give generic responses like "How can I help?"
- If unclear what the customer wants, offer specific options (e.g., "Would you like to book a ride or get a fare estimate?")

SERVICES:
- Airport Transfers: Reliable pickups and drop-offs at Beirut-Rafic Hariri International Airport. We track flights.
- City Rides: Quick and comfortable rides anywhere in Lebanon for daily commutes, shopping, visiting friends.
- Professional Service: Experienced drivers for business meetings, full-day bookings, or special events.

PRICING:
- Base fare: $2.00
- Rate per km: $1.10
- Minimum fare: $6.00
- Round trips: First 50 minutes wait time free, extra time negotiated on WhatsApp
- Fixed pricing with no hidden fees

WEBSITE FEATURES:
1. Instant Booking Chatbot: guides step-by-step through pickup location (autocomplete, GPS, or map pin), dropoff, date & time (presets: ASAP, +15min, +30min, +1hr, or custom), preferences (quick tags: 4+ passengers, lots of luggage, quiet ride, no conversation, need rest/sleep, help with bags), name, then review and send to WhatsApp.
2. Fare Estimator: instant price range and distance for Lebanon locations, one-way or round-trip, with wait time for round trips.
3. Custom Requests: for special needs (multiple cars, 4+ passengers, SUV): vehicle type, passenger count, number of cars, sent to WhatsApp for personalized service.

WHY CHOOSE US:
- Available 24/7 (early flights, late nights)
- Fixed pricing (no surprises)
- Professional drivers who know the routes
- Clean cars with working AC

CONTACT:
- WhatsApp: +961 76 301 019 (preferred for booking)
- Email: andrewstaxilb@gmail.com
- Direct call: +961 76 301 019

Answer questions professionally and concisely. Guide customers to the right website feature for their needs. For bookings, encourage the chatbot or WhatsApp.`

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
