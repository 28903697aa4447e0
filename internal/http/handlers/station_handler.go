// README: Station catalog handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/station"
)

type StationHandler struct {
	catalog *station.Catalog
}

func NewStationHandler(catalog *station.Catalog) *StationHandler {
	return &StationHandler{catalog: catalog}
}

// List handles GET /api/stations. Order matters to clients: consecutive
// entries are adjacent stops.
func (h *StationHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"stations": h.catalog.All()})
}
