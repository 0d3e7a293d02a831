// Package handlers wires the domain handlers and resolves them by id.
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	contractx "github.com/siamtel/assistant/agent/contract"
	fallbackx "github.com/siamtel/assistant/agent/fallback"
	"github.com/siamtel/assistant/agent/handlers/billing"
	"github.com/siamtel/assistant/agent/handlers/catalog"
	"github.com/siamtel/assistant/agent/handlers/knowledge"
	"github.com/siamtel/assistant/agent/handlers/network"
	llmx "github.com/siamtel/assistant/agent/llm"
	"github.com/siamtel/assistant/agent/llmgraph"
	promptx "github.com/siamtel/assistant/agent/prompt"
	"github.com/siamtel/assistant/vectorstore"
)

// Deps are the backend handles the handlers run on. They are created once at
// bootstrap and reused across sequential requests.
type Deps struct {
	DB             bun.IDB
	KnowledgeIndex vectorstore.Searcher
	NetworkDocs    vectorstore.Searcher
	Embedder       vectorstore.Embedder
}

type registryImpl struct {
	handlers map[contractx.HandlerID]contractx.Handler
	fallback contractx.Handler
}

// Handler resolves id to its handler. Resolution is total: unknown ids get
// the fallback handler.
func (r *registryImpl) Handler(id contractx.HandlerID) contractx.Handler {
	if h, ok := r.handlers[id]; ok {
		return h
	}
	return r.fallback
}

// NewRegistry builds the five handlers with their models and backends.
// Construction fails fast: a missing prompt or unreachable model surfaces
// here, before any request is processed.
func NewRegistry(ctx context.Context, cfg llmx.Config, deps Deps) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.DB == nil {
		return nil, errors.New("database handle is required")
	}
	if deps.KnowledgeIndex == nil || deps.NetworkDocs == nil {
		return nil, errors.New("document indexes are required")
	}
	if deps.Embedder == nil {
		return nil, errors.New("embedder is required")
	}

	prompts := promptx.LoadPromptSet()

	responder := func(component llmx.Component, prompt, graphName string) (llmgraph.Responder, error) {
		modelCfg := cfg.OpenRouterFor(component)
		chatModel, err := modelCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s model: %v", contractx.ErrModelInvoke, component, err)
		}
		return llmgraph.NewResponder(ctx, chatModel, prompt, graphName)
	}

	billingResponder, err := responder(llmx.ComponentBilling, prompts.Billing, "billing.explain_graph")
	if err != nil {
		return nil, err
	}
	billingHandler, err := billing.New(billing.NewStore(deps.DB), billingResponder)
	if err != nil {
		return nil, err
	}

	diagnoseResponder, err := responder(llmx.ComponentNetwork, prompts.NetworkDiagnose, "network.diagnose_graph")
	if err != nil {
		return nil, err
	}
	solveResponder, err := responder(llmx.ComponentNetwork, prompts.NetworkSolve, "network.solve_graph")
	if err != nil {
		return nil, err
	}
	networkHandler, err := network.New(network.NewStore(deps.DB), deps.NetworkDocs, deps.Embedder, diagnoseResponder, solveResponder)
	if err != nil {
		return nil, err
	}

	catalogResponder, err := responder(llmx.ComponentCatalog, prompts.Catalog, "catalog.recommend_graph")
	if err != nil {
		return nil, err
	}
	catalogHandler, err := catalog.New(catalog.NewStore(deps.DB), catalogResponder)
	if err != nil {
		return nil, err
	}

	knowledgeResponder, err := responder(llmx.ComponentKnowledge, prompts.Knowledge, "knowledge.answer_graph")
	if err != nil {
		return nil, err
	}
	knowledgeHandler, err := knowledge.New(deps.KnowledgeIndex, deps.Embedder, knowledgeResponder)
	if err != nil {
		return nil, err
	}

	fallbackHandler := fallbackx.New()

	return &registryImpl{
		handlers: map[contractx.HandlerID]contractx.Handler{
			contractx.HandlerBilling:   billingHandler,
			contractx.HandlerNetwork:   networkHandler,
			contractx.HandlerService:   catalogHandler,
			contractx.HandlerKnowledge: knowledgeHandler,
			contractx.HandlerFallback:  fallbackHandler,
		},
		fallback: fallbackHandler,
	}, nil
}

// NewStaticRegistry builds a registry from pre-constructed handlers. Used by
// tests and by callers that manage handler construction themselves. Missing
// entries resolve to fallback; fallback itself defaults to the keyword
// handler when absent.
func NewStaticRegistry(m map[contractx.HandlerID]contractx.Handler) contractx.Registry {
	fb, ok := m[contractx.HandlerFallback]
	if !ok {
		fb = fallbackx.New()
	}
	return &registryImpl{handlers: m, fallback: fb}
}
