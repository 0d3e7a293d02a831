package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
	nodex "github.com/siamtel/assistant/agent/nodes"
)

// Pipeline runs the routing state machine for one request at a time:
// classify, dispatch to exactly one handler, formulate, done. All stage
// failures degrade to defined fallbacks; Process never returns an error.
type Pipeline struct {
	classifier contractx.Classifier
	registry   contractx.Registry
	history    contractx.HistoryStore

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(
	classifier contractx.Classifier,
	registry contractx.Registry,
	history contractx.HistoryStore,
) (*Pipeline, error) {
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if registry == nil {
		return nil, errors.New("handler registry is required")
	}
	if history == nil {
		history = noopHistoryStore{}
	}

	p := &Pipeline{
		classifier: classifier,
		registry:   registry,
		history:    history,
		now:        time.Now,
	}

	graphRunner, err := p.compileRoutingGraph(context.Background())
	if err != nil {
		return nil, err
	}
	p.graphRunner = graphRunner

	return p, nil
}

// Process executes one full pipeline run. The returned response always has a
// non-empty FinalResponse: even an unexpected graph failure (a programming
// error, not a handler failure) degrades to a generic message rather than
// surfacing to the caller.
func (p *Pipeline) Process(ctx context.Context, req contractx.Request) contractx.Response {
	out, err := p.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: req.SessionID,
		Query:     req.Query,
		Customer:  req.Customer,
	})
	if err != nil {
		log.Error().Err(err).Msg("routing graph failed unexpectedly")
		return contractx.Response{
			FinalResponse:  nodex.EmptyResultPlaceholder,
			Classification: contractx.DefaultLabel,
			FailureReason:  err.Error(),
		}
	}

	return contractx.Response{
		FinalResponse:  out.FinalResponse,
		Classification: out.Classification,
		FailureReason:  out.FailureReason,
	}
}

type noopHistoryStore struct{}

func (noopHistoryStore) Load(context.Context, string) ([]contractx.Turn, error) {
	return nil, nil
}

func (noopHistoryStore) Append(context.Context, string, ...contractx.Turn) error {
	return nil
}

func (noopHistoryStore) Delete(context.Context, string) error {
	return nil
}
