// README: Chat handlers (message, classify, welcome, languages).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"travelsathi/internal/ai"
	"travelsathi/internal/service"
)

// chatTimeout covers the slowest path: a lookup plus a translation call.
const chatTimeout = 30 * time.Second

type ChatHandler struct {
	assistant *service.Assistant
}

func NewChatHandler(assistant *service.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

type chatReq struct {
	Message   string `json:"message"`
	Online    *bool  `json:"online"`
	Language  string `json:"language"`
	SessionID string `json:"sessionId"`
}

type classifyReq struct {
	Message string `json:"message"`
}

type welcomeResp struct {
	Reply        service.Reply `json:"reply"`
	QuickReplies []string      `json:"quickReplies"`
}

func validMessage(c *gin.Context, msg string) (string, bool) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return "", false
	}
	if utf8.RuneCountInString(msg) > maxMessageRunes {
		writeError(c, http.StatusBadRequest, "message too long")
		return "", false
	}
	return msg, true
}

// Chat handles POST /api/chat. online defaults to true when omitted.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	msg, ok := validMessage(c, req.Message)
	if !ok {
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if !isValidSessionID(req.SessionID) {
		writeError(c, http.StatusBadRequest, "invalid sessionId")
		return
	}

	online := true
	if req.Online != nil {
		online = *req.Online
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply, err := h.assistant.Respond(ctx, service.Request{
		Text:      msg,
		Online:    online,
		Language:  req.Language,
		SessionID: req.SessionID,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, reply)
}

// Classify handles POST /api/classify.
func (h *ChatHandler) Classify(c *gin.Context) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	msg, ok := validMessage(c, req.Message)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, h.assistant.Classify(msg))
}

// Welcome handles GET /api/welcome?lang=xx.
func (h *ChatHandler) Welcome(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()
	writeJSON(c, http.StatusOK, welcomeResp{
		Reply:        h.assistant.Welcome(ctx, c.Query("lang")),
		QuickReplies: service.QuickReplies,
	})
}

// Languages handles GET /api/languages.
func (h *ChatHandler) Languages(c *gin.Context) {
	writeJSON(c, http.StatusOK, ai.Languages())
}
