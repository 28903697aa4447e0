// README: Ticket issue and history handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citypass/internal/http/middleware"
	"citypass/internal/modules/ticket"
	"citypass/internal/types"
)

type TicketHandler struct {
	tickets *ticket.Service
}

func NewTicketHandler(tickets *ticket.Service) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

type issueTicketReq struct {
	UID      string `json:"uid"`
	From     string `json:"from"`
	To       string `json:"to"`
	TripType string `json:"trip_type"`
}

// callerUID prefers the authenticated uid and falls back to the request body
// when the route is mounted without auth (local development).
func callerUID(c *gin.Context, bodyUID string) string {
	if uid := middleware.CallerUID(c); uid != "" {
		return uid
	}
	return bodyUID
}

// Issue handles POST /api/tickets.
func (h *TicketHandler) Issue(c *gin.Context) {
	var req issueTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := callerUID(c, req.UID)
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(c, http.StatusBadRequest, "missing from or to")
		return
	}
	roundTrip := req.TripType == string(ticket.TripTwoWay)

	tk, err := h.tickets.Issue(c.Request.Context(), types.ID(uid), types.ID(req.From), types.ID(req.To), roundTrip)
	if err != nil {
		writeFareError(c, err)
		return
	}
	ticketsIssued.Inc()
	writeJSON(c, http.StatusCreated, tk)
}

// History handles GET /api/tickets/history. Returns at most the five most
// recent tickets, newest first.
func (h *TicketHandler) History(c *gin.Context) {
	uid := callerUID(c, c.Query("uid"))
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	list, err := h.tickets.RecentTickets(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []ticket.Ticket{}
	}
	writeJSON(c, http.StatusOK, gin.H{"tickets": list})
}
