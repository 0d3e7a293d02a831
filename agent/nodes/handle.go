package pipelinenode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// InvokeHandler runs the selected handler and records its output in the
// state. A handled failure keeps the handler's apology text as the result and
// captures the diagnostic reason separately; the pipeline continues to the
// formulation stage either way.
func InvokeHandler(ctx context.Context, in *GraphState, id contractx.HandlerID, registry contractx.Registry) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	handler := registry.Handler(id)
	out := handler.Handle(ctx, in.Query, in.Customer)

	if in.HandlerResults == nil {
		in.HandlerResults = make(map[contractx.HandlerID]string, 1)
	}
	in.HandlerResults[id] = out.Text

	if out.Failed() {
		in.FailureReason = out.FailureReason
		log.Warn().
			Str("handler", string(id)).
			Str("reason", out.FailureReason).
			Msg("handler degraded to fallback message")
	}
	return in, nil
}

// NewHandlerNode binds InvokeHandler to a fixed handler id for graph wiring.
func NewHandlerNode(id contractx.HandlerID, registry contractx.Registry) func(context.Context, *GraphState) (*GraphState, error) {
	return func(ctx context.Context, in *GraphState) (*GraphState, error) {
		return InvokeHandler(ctx, in, id, registry)
	}
}
