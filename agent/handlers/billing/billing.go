// Package billing services billing_account queries: it reads the customer's
// recent billing records and has a model explain the charges in plain terms.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	"github.com/siamtel/assistant/agent/llmgraph"
)

const failureMessage = "Sorry, we encountered a billing system issue while processing your request. " +
	"Our billing support team can assist further — please call customer service at 198 " +
	"or try again in a few minutes."

type Handler struct {
	store     Store
	responder llmgraph.Responder
}

var _ contractx.Handler = (*Handler)(nil)

func New(store Store, responder llmgraph.Responder) (*Handler, error) {
	if store == nil {
		return nil, errors.New("billing store is required")
	}
	if responder == nil {
		return nil, errors.New("billing responder is required")
	}
	return &Handler{store: store, responder: responder}, nil
}

// Handle never propagates an internal failure: database or model errors
// degrade to the templated apology with the cause captured separately.
func (h *Handler) Handle(ctx context.Context, query string, customer *contractx.CustomerProfile) contractx.HandlerOutput {
	text, err := h.explain(ctx, query, customer)
	if err != nil {
		log.Error().Err(err).Msg("billing handler failed")
		return contractx.HandlerOutput{Text: failureMessage, FailureReason: err.Error()}
	}
	return contractx.HandlerOutput{Text: text}
}

func (h *Handler) explain(ctx context.Context, query string, customer *contractx.CustomerProfile) (string, error) {
	customerID := "unknown"
	customerName := ""
	planID := ""
	if customer != nil {
		customerID = customer.CustomerID
		customerName = customer.Name
		planID = customer.PlanID
	}

	bills, err := h.store.RecentBills(ctx, customerID, 6)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]any{
		"question":      query,
		"customer_id":   customerID,
		"customer_name": customerName,
		"plan_id":       planID,
		"recent_bills":  bills,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal billing payload: %v", contractx.ErrValidation, err)
	}

	return h.responder.Respond(ctx, string(payload))
}
