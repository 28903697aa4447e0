// README: HTTP tests for ticket issue and history routes.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"citypass/internal/http/handlers"
	httpmiddleware "citypass/internal/http/middleware"
	"citypass/internal/infra"
	"citypass/internal/modules/fare"
	"citypass/internal/modules/station"
	"citypass/internal/modules/ticket"
	"citypass/internal/types"
)

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct {
	claims *infra.AuthClaims
	err    error
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.AuthClaims, error) {
	return s.claims, s.err
}

// memHistory keeps ticket history in memory so no Redis is needed.
type memHistory struct {
	byUser map[types.ID][]ticket.Ticket
}

func (m *memHistory) Load(_ context.Context, userID types.ID) ([]ticket.Ticket, error) {
	return m.byUser[userID], nil
}

func (m *memHistory) Save(_ context.Context, userID types.ID, tickets []ticket.Ticket) error {
	if m.byUser == nil {
		m.byUser = make(map[types.ID][]ticket.Ticket)
	}
	m.byUser[userID] = tickets
	return nil
}

// buildTestRouter wires a minimal Gin engine with the auth middleware and the ticket handler.
func buildTestRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fares := fare.NewService(station.DefaultNetwork(), nil)
	tickets := ticket.NewService(fares, &memHistory{})
	r := gin.New()
	r.Use(httpmiddleware.Auth(verifier))
	h := handlers.NewTicketHandler(tickets)
	r.POST("/api/tickets", h.Issue)
	r.GET("/api/tickets/history", h.History)
	return r
}

func makeVerifier(uid string) *stubTokenVerifier {
	return &stubTokenVerifier{claims: &infra.AuthClaims{UID: uid}}
}

func doRequest(r *gin.Engine, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestIssue_Unauthenticated verifies that requests without a valid token are rejected.
func TestIssue_Unauthenticated(t *testing.T) {
	r := buildTestRouter(&stubTokenVerifier{err: errors.New("no token")})
	w := doRequest(r, http.MethodPost, "/api/tickets", map[string]any{
		"from": "miyapur",
		"to":   "kphb",
	}, "Bearer badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// TestIssue_HappyPath issues a ticket and checks the priced response.
func TestIssue_HappyPath(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1"))
	w := doRequest(r, http.MethodPost, "/api/tickets", map[string]any{
		"from": "miyapur",
		"to":   "kphb",
	}, "Bearer sometoken")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var tk ticket.Ticket
	if err := json.Unmarshal(w.Body.Bytes(), &tk); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Miyapur to KPHB is 2 stops: 15 + 2*2 = 19.
	if tk.Fare.Amount != 19 {
		t.Errorf("expected fare 19, got %d", tk.Fare.Amount)
	}
	if !strings.HasPrefix(tk.ID, "TKT-") {
		t.Errorf("unexpected ticket id %q", tk.ID)
	}
	if !strings.HasPrefix(tk.QRPayload, "miyapur-kphb-") {
		t.Errorf("unexpected qr payload %q", tk.QRPayload)
	}
}

// TestIssue_SameStation verifies same origin/destination is a 400.
func TestIssue_SameStation(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1"))
	w := doRequest(r, http.MethodPost, "/api/tickets", map[string]any{
		"from": "ameerpet",
		"to":   "ameerpet",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestIssue_UnknownStation verifies an off-network station is a 400.
func TestIssue_UnknownStation(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1"))
	w := doRequest(r, http.MethodPost, "/api/tickets", map[string]any{
		"from": "atlantis",
		"to":   "kphb",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestHistory_ReturnsIssuedTickets issues two tickets and reads them back newest first.
func TestHistory_ReturnsIssuedTickets(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1"))

	for _, to := range []string{"kphb", "ameerpet"} {
		w := doRequest(r, http.MethodPost, "/api/tickets", map[string]any{
			"from": "miyapur",
			"to":   to,
		}, "Bearer sometoken")
		if w.Code != http.StatusCreated {
			t.Fatalf("issue to %s: expected 201, got %d", to, w.Code)
		}
	}

	w := doRequest(r, http.MethodGet, "/api/tickets/history", nil, "Bearer sometoken")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Tickets []ticket.Ticket `json:"tickets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(resp.Tickets))
	}
	// Newest first: the ameerpet ticket was issued second.
	if resp.Tickets[0].To != "ameerpet" {
		t.Errorf("expected newest ticket first, got %v then %v", resp.Tickets[0].To, resp.Tickets[1].To)
	}
}
