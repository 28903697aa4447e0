// README: Payment checkout handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/payment"
	"citypass/internal/types"
)

type PaymentHandler struct {
	payments *payment.Service
}

func NewPaymentHandler(payments *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type checkoutReq struct {
	BookingID string `json:"booking_id"`
	Method    string `json:"method"`
}

// Checkout handles POST /api/payments/checkout.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.payments.Checkout(c.Request.Context(), payment.CheckoutCommand{
		BookingID: types.ID(req.BookingID),
		Method:    payment.Method(req.Method),
	})
	if err != nil {
		writePaymentError(c, err)
		return
	}
	paymentsRecorded.Inc()
	writeJSON(c, http.StatusCreated, p)
}

// GetByBooking handles GET /api/payments/:booking_id.
func (h *PaymentHandler) GetByBooking(c *gin.Context) {
	id := c.Param("booking_id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	p, err := h.payments.GetByBooking(c.Request.Context(), types.ID(id))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}
