// README: HTTP tests for the bus tracking routes.
package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"citypass/internal/http/handlers"
	"citypass/internal/modules/bus"
	"citypass/internal/types"
)

// captureBusStore records the radius passed down to the nearby query.
type captureBusStore struct {
	radiusKm float64
}

func (c *captureBusStore) SetGeo(context.Context, types.ID, types.Point) error { return nil }
func (c *captureBusStore) Remove(context.Context, types.ID) error              { return nil }
func (c *captureBusStore) AppendSnapshot(context.Context, bus.Snapshot) error  { return nil }

func (c *captureBusStore) Nearby(_ context.Context, _ types.Point, radiusKm float64) ([]bus.NearbyBus, error) {
	c.radiusKm = radiusKm
	return []bus.NearbyBus{}, nil
}

func newBusRouter(store bus.Store, defaultRadiusKm float64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewBusHandler(bus.NewService(store), defaultRadiusKm)
	r.GET("/api/bus/nearby", h.Nearby)
	return r
}

func getNearby(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/bus/nearby?"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestNearby_ConfiguredDefaultRadius checks the handler's configured radius
// is what reaches the store when the query omits radius_km.
func TestNearby_ConfiguredDefaultRadius(t *testing.T) {
	store := &captureBusStore{}
	r := newBusRouter(store, 3.5)

	w := getNearby(t, r, "lat=17.4375&lng=78.4483")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if store.radiusKm != 3.5 {
		t.Errorf("radius = %v, want configured 3.5", store.radiusKm)
	}
}

// TestNearby_QueryRadiusOverridesDefault checks an explicit radius_km wins.
func TestNearby_QueryRadiusOverridesDefault(t *testing.T) {
	store := &captureBusStore{}
	r := newBusRouter(store, 3.5)

	w := getNearby(t, r, "lat=17.4375&lng=78.4483&radius_km=1.2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.radiusKm != 1.2 {
		t.Errorf("radius = %v, want 1.2", store.radiusKm)
	}
}

// TestNearby_ZeroConfigFallsBack checks an unset radius config still yields
// a sane 2 km default.
func TestNearby_ZeroConfigFallsBack(t *testing.T) {
	store := &captureBusStore{}
	r := newBusRouter(store, 0)

	w := getNearby(t, r, "lat=17.4375&lng=78.4483")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.radiusKm != 2.0 {
		t.Errorf("radius = %v, want fallback 2.0", store.radiusKm)
	}
}
