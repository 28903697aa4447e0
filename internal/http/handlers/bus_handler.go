// README: Bus tracking handlers (position ingest, nearby lookup).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"citypass/internal/modules/bus"
	"citypass/internal/types"
)

type BusHandler struct {
	buses           *bus.Service
	defaultRadiusKm float64
}

// NewBusHandler builds the bus routes. defaultRadiusKm is used when the
// nearby query omits radius_km; non-positive values fall back to 2 km.
func NewBusHandler(buses *bus.Service, defaultRadiusKm float64) *BusHandler {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = 2.0
	}
	return &BusHandler{buses: buses, defaultRadiusKm: defaultRadiusKm}
}

type busUpdateReq struct {
	BusID string  `json:"bus_id"`
	Route string  `json:"route"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Update handles POST /api/bus/location.
func (h *BusHandler) Update(c *gin.Context) {
	var req busUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.buses.Update(c.Request.Context(), bus.PositionUpdate{
		BusID:    types.ID(req.BusID),
		Route:    req.Route,
		Position: types.Point{Lat: req.Lat, Lng: req.Lng},
	})
	if err != nil {
		if err == bus.ErrBadUpdate {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true})
}

// Nearby handles GET /api/bus/nearby?lat=&lng=&radius_km=.
func (h *BusHandler) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		writeError(c, http.StatusBadRequest, "invalid lat or lng")
		return
	}
	radiusKm := h.defaultRadiusKm
	if v := c.Query("radius_km"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			writeError(c, http.StatusBadRequest, "invalid radius_km")
			return
		}
		radiusKm = r
	}

	buses, err := h.buses.Nearby(c.Request.Context(), types.Point{Lat: lat, Lng: lng}, radiusKm)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if buses == nil {
		buses = []bus.NearbyBus{}
	}
	writeJSON(c, http.StatusOK, gin.H{"buses": buses})
}
