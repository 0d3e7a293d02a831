package classifier

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	"github.com/siamtel/assistant/agent/llmgraph"
	nodex "github.com/siamtel/assistant/agent/nodes"
)

// LLMClassifier delegates labeling to a chat model prompted with the label
// definitions and worked examples, then coerces the raw output into the
// closed label set. It is stateless and safe for sequential reuse.
type LLMClassifier struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

func New(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*LLMClassifier, error) {
	runner, err := llmgraph.CompileTextGraph(ctx, chatModel, systemPrompt, "classifier.label_graph")
	if err != nil {
		return nil, fmt.Errorf("compile classifier graph: %w", err)
	}
	return &LLMClassifier{runner: runner}, nil
}

// Classify returns exactly one canonical label for any input, including the
// empty string. Backend failures are recovered locally: the cause is logged
// and the default label is substituted, so classification never aborts a
// request.
func (c *LLMClassifier) Classify(ctx context.Context, query string) (contractx.Label, error) {
	if query == "" {
		// Nothing to classify; treat like a contentless greeting.
		return contractx.LabelOffTopic, nil
	}

	raw, err := llmgraph.InvokeText(ctx, c.runner, query)
	if err != nil {
		log.Warn().Err(err).Msg("classification backend failed, using default label")
		return contractx.DefaultLabel, nil
	}

	return nodex.CoerceLabel(raw), nil
}
