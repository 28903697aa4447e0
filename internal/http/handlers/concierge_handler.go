// README: Concierge chat handler (token-guarded AI booking assistant).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/concierge"
)

type ConciergeHandler struct {
	concierge *concierge.Service
}

func NewConciergeHandler(svc *concierge.Service) *ConciergeHandler {
	return &ConciergeHandler{concierge: svc}
}

type conciergeChatReq struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}

// Chat handles POST /api/concierge/chat.
func (h *ConciergeHandler) Chat(c *gin.Context) {
	var req conciergeChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	uid := callerUID(c, strings.TrimSpace(req.UID))
	if uid == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing uid or message")
		return
	}
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply, err := h.concierge.Chat(ctx, uid, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, concierge.ErrInsufficientTokens):
			writeError(c, http.StatusTooManyRequests, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}
