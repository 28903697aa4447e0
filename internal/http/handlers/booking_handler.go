// README: Booking handlers for create/get/list and the four-step lifecycle.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"citypass/internal/http/middleware"
	"citypass/internal/modules/booking"
	"citypass/internal/modules/cart"
	"citypass/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	UID             string          `json:"uid"`
	Items           []cart.LineItem `json:"items"`
	ConsultationFee int64           `json:"consultation_fee"`
	ScheduledAt     *time.Time      `json:"scheduled_at"`
}

type cancelBookingReq struct {
	Reason string `json:"reason"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := callerUID(c, req.UID)
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	id, err := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		UserID:          types.ID(uid),
		Items:           req.Items,
		ConsultationFee: req.ConsultationFee,
		ScheduledAt:     req.ScheduledAt,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	bookingsCreated.Inc()
	writeJSON(c, http.StatusCreated, gin.H{"booking_id": id, "status": booking.StatusRequested})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	b, err := h.bookings.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	uid := callerUID(c, c.Query("uid"))
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	list, err := h.bookings.ListByUser(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if list == nil {
		list = []booking.Booking{}
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": list})
}

// Confirm handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.applyTransition(c, booking.StatusConfirmed)
}

// Start handles POST /api/bookings/:id/start.
func (h *BookingHandler) Start(c *gin.Context) {
	h.applyTransition(c, booking.StatusInProgress)
}

// Complete handles POST /api/bookings/:id/complete.
func (h *BookingHandler) Complete(c *gin.Context) {
	h.applyTransition(c, booking.StatusCompleted)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	var req cancelBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// Reason is optional; an empty body cancels with a default reason.
		req.Reason = ""
	}
	if req.Reason == "" {
		req.Reason = "user_cancel"
	}
	actor := "customer"
	if middleware.CallerRole(c) == "provider" {
		actor = "provider"
	}
	err := h.bookings.Cancel(c.Request.Context(), booking.CancelCommand{
		BookingID: types.ID(id),
		ActorType: actor,
		Reason:    req.Reason,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusCancelled})
}

func (h *BookingHandler) applyTransition(c *gin.Context, to booking.Status) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	var err error
	switch to {
	case booking.StatusConfirmed:
		err = h.bookings.Confirm(c.Request.Context(), booking.ConfirmCommand{BookingID: types.ID(id)})
	case booking.StatusInProgress:
		err = h.bookings.Start(c.Request.Context(), booking.StartCommand{BookingID: types.ID(id)})
	case booking.StatusCompleted:
		err = h.bookings.Complete(c.Request.Context(), booking.CompleteCommand{BookingID: types.ID(id)})
	}
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": to})
}
