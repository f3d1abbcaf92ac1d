// README: Support chat handler (quota-guarded assistant turns).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"andrewstaxi/internal/ai"
	"andrewstaxi/internal/modules/chatquota"
)

type ChatHandler struct {
	assistant ai.Assistant
	quota     *chatquota.Service
}

// NewChatHandler wires the assistant backend and quota guard. assistant may
// be nil when no API key is configured; the endpoint then degrades to 503.
func NewChatHandler(assistant ai.Assistant, quota *chatquota.Service) *ChatHandler {
	return &ChatHandler{assistant: assistant, quota: quota}
}

type chatReq struct {
	VisitorID string       `json:"visitor_id"`
	Message   string       `json:"message"`
	History   []ai.Message `json:"history"`
}

// Chat handles POST /api/support/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	req.VisitorID = strings.TrimSpace(req.VisitorID)
	req.Message = strings.TrimSpace(req.Message)
	if req.VisitorID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing visitor_id or message", "")
		return
	}

	if h.assistant == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant unavailable",
			"AI chat is currently unavailable. Please use the quick actions or contact us on WhatsApp.")
		return
	}

	remaining, err := h.quota.Use(c.Request.Context(), req.VisitorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply, err := h.assistant.Answer(ctx, req.History, req.Message)
	if err != nil {
		// The visitor got no answer, so the message should not count
		// against today's allowance.
		_ = h.quota.Refund(c.Request.Context(), req.VisitorID)
		writeError(c, http.StatusBadGateway, "assistant error",
			"The assistant could not answer right now. Please try again or reach us on WhatsApp.")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"text":      reply.Text,
		"action":    reply.Action,
		"remaining": remaining,
	})
}
