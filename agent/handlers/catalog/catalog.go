// Package catalog services service_recommendation queries: the full plan
// catalog is fetched and a model picks the best matches for the stated need.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	"github.com/siamtel/assistant/agent/llmgraph"
)

const failureMessage = "I'm sorry! I couldn't generate a service recommendation due to an internal issue. " +
	"Please try again, or contact customer support at 198 for help choosing a plan."

const responseFooter = "Need help activating a plan? Visit our store or contact customer support at 198."

type Handler struct {
	store     Store
	responder llmgraph.Responder
}

var _ contractx.Handler = (*Handler)(nil)

func New(store Store, responder llmgraph.Responder) (*Handler, error) {
	if store == nil {
		return nil, errors.New("plan store is required")
	}
	if responder == nil {
		return nil, errors.New("catalog responder is required")
	}
	return &Handler{store: store, responder: responder}, nil
}

func (h *Handler) Handle(ctx context.Context, query string, customer *contractx.CustomerProfile) contractx.HandlerOutput {
	text, err := h.recommend(ctx, query, customer)
	if err != nil {
		log.Error().Err(err).Msg("catalog handler failed")
		return contractx.HandlerOutput{Text: failureMessage, FailureReason: err.Error()}
	}
	return contractx.HandlerOutput{Text: text}
}

func (h *Handler) recommend(ctx context.Context, query string, customer *contractx.CustomerProfile) (string, error) {
	plans, err := h.store.AllPlans(ctx)
	if err != nil {
		return "", err
	}
	if len(plans) == 0 {
		return "", fmt.Errorf("%w: plan catalog is empty", contractx.ErrValidation)
	}

	currentPlan := ""
	if customer != nil {
		currentPlan = customer.PlanID
	}

	payload, err := json.Marshal(map[string]any{
		"request":         query,
		"current_plan_id": currentPlan,
		"available_plans": plans,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal catalog payload: %v", contractx.ErrValidation, err)
	}

	recommendation, err := h.responder.Respond(ctx, string(payload))
	if err != nil {
		return "", err
	}

	return recommendation + "\n\n" + responseFooter, nil
}
