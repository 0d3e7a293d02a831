package pipelinenode

import (
	"context"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// Node names used by the routing graph.
const (
	NodePrepareRequest = "prepare_request"
	NodeLoadHistory    = "load_history"
	NodeClassify       = "classify_query"
	NodeBilling        = "billing_handler"
	NodeNetwork        = "network_handler"
	NodeService        = "service_handler"
	NodeKnowledge      = "knowledge_handler"
	NodeFallback       = "fallback_handler"
	NodeFormulate      = "formulate_response"
	NodeAppendHistory  = "append_history"
)

var handlerByLabel = map[contractx.Label]contractx.HandlerID{
	contractx.LabelBilling:   contractx.HandlerBilling,
	contractx.LabelNetwork:   contractx.HandlerNetwork,
	contractx.LabelService:   contractx.HandlerService,
	contractx.LabelKnowledge: contractx.HandlerKnowledge,
	contractx.LabelOffTopic:  contractx.HandlerFallback,
}

var nodeByHandler = map[contractx.HandlerID]string{
	contractx.HandlerBilling:   NodeBilling,
	contractx.HandlerNetwork:   NodeNetwork,
	contractx.HandlerService:   NodeService,
	contractx.HandlerKnowledge: NodeKnowledge,
	contractx.HandlerFallback:  NodeFallback,
}

// HandlerFor maps a label to its handler identifier. The mapping is total:
// a label outside the closed set (unreachable after coercion) routes to the
// fallback handler.
func HandlerFor(label contractx.Label) contractx.HandlerID {
	if id, ok := handlerByLabel[label]; ok {
		return id
	}
	return contractx.HandlerFallback
}

// HandlerNodes lists the graph node names a dispatch branch may select.
func HandlerNodes() map[string]bool {
	ends := make(map[string]bool, len(nodeByHandler))
	for _, node := range nodeByHandler {
		ends[node] = true
	}
	return ends
}

// Dispatch is the branch condition after classification: it picks the single
// handler node for the assigned label. It is deterministic given the label
// and never fails for a populated state.
func Dispatch(ctx context.Context, in *GraphState) (string, error) {
	if in == nil {
		return "", ErrNilState
	}
	return nodeByHandler[HandlerFor(in.Classification)], nil
}
