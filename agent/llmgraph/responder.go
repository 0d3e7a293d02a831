package llmgraph

import (
	"context"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// Responder is the single-call LLM capability handlers depend on. Handlers
// accept this interface so tests can substitute a fake without a model.
type Responder interface {
	Respond(ctx context.Context, input string) (string, error)
}

// GraphResponder implements Responder over a compiled text graph.
type GraphResponder struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

var _ Responder = (*GraphResponder)(nil)

func NewResponder(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	graphName string,
) (*GraphResponder, error) {
	runner, err := CompileTextGraph(ctx, chatModel, systemPrompt, graphName)
	if err != nil {
		return nil, err
	}
	return &GraphResponder{runner: runner}, nil
}

func (r *GraphResponder) Respond(ctx context.Context, input string) (string, error) {
	return InvokeText(ctx, r.runner, input)
}
