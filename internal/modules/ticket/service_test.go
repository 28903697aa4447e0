// README: Ticket service tests (issuing, history bounding, serialization).
package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"citypass/internal/modules/fare"
	"citypass/internal/modules/station"
	"citypass/internal/types"
)

// memHistory is an in-memory stand-in for the Redis history store.
type memHistory struct {
	data    map[types.ID][]Ticket
	saveErr error
}

func newMemHistory() *memHistory {
	return &memHistory{data: map[types.ID][]Ticket{}}
}

func (m *memHistory) Load(_ context.Context, userID types.ID) ([]Ticket, error) {
	return m.data[userID], nil
}

func (m *memHistory) Save(_ context.Context, userID types.ID, tickets []Ticket) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[userID] = tickets
	return nil
}

func newTestService(history History) *Service {
	fareSvc := fare.NewService(station.DefaultNetwork(), nil)
	return NewService(fareSvc, history)
}

func TestIssue(t *testing.T) {
	hist := newMemHistory()
	svc := newTestService(hist)
	ctx := context.Background()

	tk, err := svc.Issue(ctx, "user1", "miyapur", "kphb", false)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if tk.Fare.Amount != 19 { // 15 + 2*2
		t.Errorf("fare = %d, want 19", tk.Fare.Amount)
	}
	if tk.Type != TripOneWay {
		t.Errorf("type = %s, want %s", tk.Type, TripOneWay)
	}
	if !strings.HasPrefix(tk.ID, "TKT-") {
		t.Errorf("id = %q, want TKT- prefix", tk.ID)
	}
	wantQR := fmt.Sprintf("miyapur-kphb-%d", tk.IssuedAt)
	if tk.QRPayload != wantQR {
		t.Errorf("qr payload = %q, want %q", tk.QRPayload, wantQR)
	}
	if tk.IssuedAt == 0 {
		t.Error("issued_at must be set")
	}

	got, err := svc.RecentTickets(ctx, "user1")
	if err != nil {
		t.Fatalf("RecentTickets: %v", err)
	}
	if len(got) != 1 || got[0].ID != tk.ID {
		t.Errorf("history = %+v, want the issued ticket", got)
	}
}

func TestIssueRoundTrip(t *testing.T) {
	svc := newTestService(newMemHistory())

	tk, err := svc.Issue(context.Background(), "user1", "miyapur", "kphb", true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tk.Fare.Amount != 34 { // round(19 * 1.8)
		t.Errorf("fare = %d, want 34", tk.Fare.Amount)
	}
	if tk.Type != TripTwoWay {
		t.Errorf("type = %s, want %s", tk.Type, TripTwoWay)
	}
}

func TestIssueRejectsSameStation(t *testing.T) {
	svc := newTestService(newMemHistory())

	_, err := svc.Issue(context.Background(), "user1", "ameerpet", "ameerpet", false)
	if !errors.Is(err, ErrSameStation) {
		t.Errorf("Issue(same station) = %v, want ErrSameStation", err)
	}
}

func TestIssueRejectsUnknownStation(t *testing.T) {
	svc := newTestService(newMemHistory())

	_, err := svc.Issue(context.Background(), "user1", "miyapur", "charminar", false)
	if !errors.Is(err, station.ErrUnknownStation) {
		t.Errorf("Issue(unknown) = %v, want ErrUnknownStation", err)
	}
}

// TestHistoryBounded issues seven tickets and expects only the five most
// recent to survive, newest first.
func TestHistoryBounded(t *testing.T) {
	hist := newMemHistory()
	svc := newTestService(hist)
	ctx := context.Background()

	destinations := []types.ID{"jntu", "kphb", "kukatpally", "balanagar", "moosapet", "erragadda", "ameerpet"}
	var issued []Ticket
	for _, dst := range destinations {
		tk, err := svc.Issue(ctx, "user1", "miyapur", dst, false)
		if err != nil {
			t.Fatalf("Issue to %s: %v", dst, err)
		}
		issued = append(issued, tk)
	}

	got, err := svc.RecentTickets(ctx, "user1")
	if err != nil {
		t.Fatalf("RecentTickets: %v", err)
	}
	if len(got) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(got), HistoryLimit)
	}
	// Most recent first: the last five issued, in reverse issue order.
	for i := 0; i < HistoryLimit; i++ {
		want := issued[len(issued)-1-i]
		if got[i].To != want.To {
			t.Errorf("history[%d].To = %s, want %s", i, got[i].To, want.To)
		}
	}
}

// TestIssueSurvivesHistoryFailure checks a failing history write never blocks
// ticket issuance.
func TestIssueSurvivesHistoryFailure(t *testing.T) {
	hist := newMemHistory()
	hist.saveErr = errors.New("redis down")
	svc := newTestService(hist)

	tk, err := svc.Issue(context.Background(), "user1", "miyapur", "jntu", false)
	if err != nil {
		t.Fatalf("Issue must succeed despite history failure, got %v", err)
	}
	if tk.Fare.Amount != 17 {
		t.Errorf("fare = %d, want 17", tk.Fare.Amount)
	}
}

// TestTicketSerializationRoundTrip checks the persisted JSON form restores
// every field.
func TestTicketSerializationRoundTrip(t *testing.T) {
	svc := newTestService(newMemHistory())

	tk, err := svc.Issue(context.Background(), "user1", "jntu", "ameerpet", true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	raw, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Ticket
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != tk {
		t.Errorf("round trip mismatch: %+v vs %+v", back, tk)
	}
}

func TestPushHistory(t *testing.T) {
	var list []Ticket
	for i := 0; i < 7; i++ {
		list = pushHistory(list, Ticket{ID: fmt.Sprintf("TKT-%d", i)})
	}
	if len(list) != HistoryLimit {
		t.Fatalf("length = %d, want %d", len(list), HistoryLimit)
	}
	if list[0].ID != "TKT-6" || list[HistoryLimit-1].ID != "TKT-2" {
		t.Errorf("unexpected order: first=%s last=%s", list[0].ID, list[HistoryLimit-1].ID)
	}
}
