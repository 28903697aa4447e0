// README: Fare quote handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/fare"
	"citypass/internal/types"
)

type FareHandler struct {
	fares *fare.Service
}

func NewFareHandler(fares *fare.Service) *FareHandler {
	return &FareHandler{fares: fares}
}

// Quote handles GET /api/fare?from=<id>&to=<id>&round_trip=<bool>.
func (h *FareHandler) Quote(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing from or to")
		return
	}
	roundTrip := c.Query("round_trip") == "true"

	q, err := h.fares.Quote(c.Request.Context(), types.ID(from), types.ID(to), roundTrip)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}
