// Package network services network_troubleshooting queries with a two-step
// model conversation: a diagnostics pass over live incident and tower data
// plus relevant network documentation, then a solution pass that turns the
// diagnosis into customer-facing steps.
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	"github.com/siamtel/assistant/agent/llmgraph"
	"github.com/siamtel/assistant/vectorstore"
)

const docSearchLimit = 3

const failureMessage = `We encountered an issue while analyzing your network problem.

Here are some general troubleshooting steps you can try immediately:

1. Toggle Airplane Mode on and off
2. Restart your device
3. Check whether mobile data is enabled
4. Remove and reinsert your SIM card
5. Reset APN settings to default
6. Check if other users nearby have issues (possible outage)

If the issue continues, please contact our network support team at 198.`

type Handler struct {
	store    Store
	docs     vectorstore.Searcher
	embedder vectorstore.Embedder
	diagnose llmgraph.Responder
	solve    llmgraph.Responder
}

var _ contractx.Handler = (*Handler)(nil)

func New(
	store Store,
	docs vectorstore.Searcher,
	embedder vectorstore.Embedder,
	diagnose llmgraph.Responder,
	solve llmgraph.Responder,
) (*Handler, error) {
	if store == nil {
		return nil, errors.New("network store is required")
	}
	if docs == nil {
		return nil, errors.New("network docs searcher is required")
	}
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if diagnose == nil || solve == nil {
		return nil, errors.New("diagnose and solve responders are required")
	}
	return &Handler{store: store, docs: docs, embedder: embedder, diagnose: diagnose, solve: solve}, nil
}

func (h *Handler) Handle(ctx context.Context, query string, customer *contractx.CustomerProfile) contractx.HandlerOutput {
	text, err := h.troubleshoot(ctx, query, customer)
	if err != nil {
		log.Error().Err(err).Msg("network handler failed")
		return contractx.HandlerOutput{Text: failureMessage, FailureReason: err.Error()}
	}
	return contractx.HandlerOutput{Text: text}
}

func (h *Handler) troubleshoot(ctx context.Context, query string, customer *contractx.CustomerProfile) (string, error) {
	incidents, err := h.store.OpenIncidents(ctx, 10)
	if err != nil {
		return "", err
	}
	towers, err := h.store.DegradedTowers(ctx, 10)
	if err != nil {
		return "", err
	}

	snippets, err := h.searchDocs(ctx, query)
	if err != nil {
		// Docs enrich the diagnosis but live status alone is enough.
		log.Warn().Err(err).Msg("network doc search failed, diagnosing without documentation")
		snippets = nil
	}

	customerID := ""
	if customer != nil {
		customerID = customer.CustomerID
	}

	diagPayload, err := json.Marshal(map[string]any{
		"problem":         query,
		"customer_id":     customerID,
		"open_incidents":  incidents,
		"degraded_towers": towers,
		"documentation":   snippets,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal diagnostics payload: %v", contractx.ErrValidation, err)
	}

	diagnosis, err := h.diagnose.Respond(ctx, string(diagPayload))
	if err != nil {
		return "", err
	}

	solvePayload, err := json.Marshal(map[string]any{
		"problem":   query,
		"diagnosis": diagnosis,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal solution payload: %v", contractx.ErrValidation, err)
	}

	return h.solve.Respond(ctx, string(solvePayload))
}

func (h *Handler) searchDocs(ctx context.Context, query string) ([]string, error) {
	vector, err := h.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	docs, err := h.docs.Search(ctx, vector, docSearchLimit)
	if err != nil {
		return nil, err
	}

	snippets := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Content != "" {
			snippets = append(snippets, doc.Content)
		}
	}
	return snippets, nil
}
