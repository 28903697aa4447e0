// README: Cart handlers (load, replace, clear, priced summary).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/cart"
	"citypass/internal/types"
)

type CartHandler struct {
	carts *cart.Service
}

func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type putCartReq struct {
	UID   string          `json:"uid"`
	Items []cart.LineItem `json:"items"`
}

// Get handles GET /api/cart. The response includes the priced summary so
// clients never re-implement fee rules.
func (h *CartHandler) Get(c *gin.Context) {
	uid := callerUID(c, c.Query("uid"))
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	items, err := h.carts.Get(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeCart(c, items)
}

// Put handles PUT /api/cart, replacing the user's selection wholesale.
func (h *CartHandler) Put(c *gin.Context) {
	var req putCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := callerUID(c, req.UID)
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if err := h.carts.Replace(c.Request.Context(), types.ID(uid), req.Items); err != nil {
		writeCartError(c, err)
		return
	}
	writeCart(c, req.Items)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	uid := callerUID(c, c.Query("uid"))
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if err := h.carts.Clear(c.Request.Context(), types.ID(uid)); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"cleared": true})
}

// writeCart renders items plus totals. The convenience fee applies only when
// the cart holds at least one item.
func writeCart(c *gin.Context, items []cart.LineItem) {
	if items == nil {
		items = []cart.LineItem{}
	}
	var fees []int64
	if len(items) > 0 {
		fees = []int64{cart.DefaultConvenienceFee}
	}
	totals := cart.ComputeTotal(items, fees)
	writeJSON(c, http.StatusOK, gin.H{
		"items":    items,
		"subtotal": totals.Subtotal,
		"total":    totals.Total,
	})
}
