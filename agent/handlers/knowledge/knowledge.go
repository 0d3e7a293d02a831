// Package knowledge services knowledge_retrieval queries with retrieval-
// augmented answering: the query is embedded, similar documentation chunks
// are fetched from the index, and a model answers using only that context.
package knowledge

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

const retrievalLimit = 5

const failureMessage = "I apologize, but I'm currently unable to access our knowledge base. " +
	"Please try again in a moment, or contact customer support at 198 for immediate assistance."

const noContextMessage = "I apologize, but I couldn't find relevant information in our documentation " +
	"to answer your question. Please contact customer support at 198 for assistance."

type Handler struct {
	index     vectorstore.Searcher
	embedder  vectorstore.Embedder
	responder llmgraph.Responder
}

var _ contractx.Handler = (*Handler)(nil)

func New(index vectorstore.Searcher, embedder vectorstore.Embedder, responder llmgraph.Responder) (*Handler, error) {
	if index == nil {
		return nil, errors.New("document index is required")
	}
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if responder == nil {
		return nil, errors.New("knowledge responder is required")
	}
	return &Handler{index: index, embedder: embedder, responder: responder}, nil
}

func (h *Handler) Handle(ctx context.Context, query string, _ *contractx.CustomerProfile) contractx.HandlerOutput {
	text, err := h.answer(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("knowledge handler failed")
		return contractx.HandlerOutput{Text: failureMessage, FailureReason: err.Error()}
	}
	return contractx.HandlerOutput{Text: text}
}

func (h *Handler) answer(ctx context.Context, query string) (string, error) {
	vector, err := h.embedder.Embed(ctx, query)
	if err != nil {
		return "", err
	}

	docs, err := h.index.Search(ctx, vector, retrievalLimit)
	if err != nil {
		return "", err
	}

	contexts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Content != "" {
			contexts = append(contexts, doc.Content)
		}
	}
	if len(contexts) == 0 {
		// Empty retrieval is an answered request, not a failure.
		return noContextMessage, nil
	}

	payload, err := json.Marshal(map[string]any{
		"question": query,
		"context":  contexts,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal knowledge payload: %v", contractx.ErrValidation, err)
	}

	return h.responder.Respond(ctx, string(payload))
}
