package billing

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	contractx "github.com/siamtel/assistant/agent/contract"
)

type fakeStore struct {
	bills []Bill
	err   error
	calls int
}

func (f *fakeStore) RecentBills(_ context.Context, _ string, _ int) ([]Bill, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bills, nil
}

type fakeResponder struct {
	reply     string
	err       error
	lastInput string
}

func (f *fakeResponder) Respond(_ context.Context, input string) (string, error) {
	f.lastInput = input
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestHandleBuildsPayloadFromBills(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bills: []Bill{
		{CustomerID: "C001", BillingPeriod: "2025-05", Amount: 499.00, Status: "paid"},
		{CustomerID: "C001", BillingPeriod: "2025-04", Amount: 399.00, Status: "paid"},
	}}
	responder := &fakeResponder{reply: "Your May bill went up because of roaming charges."}

	h, err := New(store, responder)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	customer := &contractx.CustomerProfile{CustomerID: "C001", Name: "Asha", PlanID: "P2"}
	out := h.Handle(context.Background(), "why did my bill go up?", customer)

	if out.Failed() {
		t.Fatalf("unexpected failure: %q", out.FailureReason)
	}
	if out.Text != "Your May bill went up because of roaming charges." {
		t.Fatalf("unexpected text %q", out.Text)
	}

	var payload struct {
		Question    string `json:"question"`
		CustomerID  string `json:"customer_id"`
		PlanID      string `json:"plan_id"`
		RecentBills []Bill `json:"recent_bills"`
	}
	if err := json.Unmarshal([]byte(responder.lastInput), &payload); err != nil {
		t.Fatalf("responder input is not json: %v", err)
	}
	if payload.CustomerID != "C001" || payload.PlanID != "P2" {
		t.Fatalf("customer fields missing from payload: %+v", payload)
	}
	if len(payload.RecentBills) != 2 {
		t.Fatalf("expected 2 bills in payload, got %d", len(payload.RecentBills))
	}
}

func TestHandleDegradesOnStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("connection refused")}
	h, err := New(store, &fakeResponder{reply: "unused"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "bill?", nil)

	if !out.Failed() {
		t.Fatalf("expected handled failure")
	}
	if !strings.Contains(out.FailureReason, "connection refused") {
		t.Fatalf("failure reason should carry the cause, got %q", out.FailureReason)
	}
	if strings.Contains(out.Text, "connection refused") {
		t.Fatalf("diagnostic leaked into user text: %q", out.Text)
	}
	if !strings.Contains(out.Text, "198") {
		t.Fatalf("apology should point at customer service: %q", out.Text)
	}
}

func TestHandleDegradesOnModelFailure(t *testing.T) {
	t.Parallel()

	h, err := New(&fakeStore{}, &fakeResponder{err: errors.New("model timeout")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "bill?", nil)
	if !out.Failed() {
		t.Fatalf("expected handled failure")
	}
	if out.Text != failureMessage {
		t.Fatalf("expected templated apology, got %q", out.Text)
	}
}

func TestHandleAnonymousCustomer(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	responder := &fakeResponder{reply: "Please log in so I can look at your account."}
	h, err := New(store, responder)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "what do I owe?", nil)
	if out.Failed() {
		t.Fatalf("unexpected failure: %q", out.FailureReason)
	}
	if !strings.Contains(responder.lastInput, `"customer_id":"unknown"`) {
		t.Fatalf("expected unknown customer id in payload: %s", responder.lastInput)
	}
}
