package pipelinenode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/siamtel/assistant/agent/contract"
)

var (
	ErrNilState = errors.New("graph state is nil")
)

// GraphInput is the request surface of the routing graph.
type GraphInput struct {
	SessionID string
	Query     string
	Customer  *contractx.CustomerProfile
}

// GraphOutput is the terminal surface of the routing graph. FinalResponse is
// guaranteed non-empty by the formulation stage.
type GraphOutput struct {
	FinalResponse  string
	Classification contractx.Label
	FailureReason  string
}

// GraphState is the single transient record threaded through the pipeline.
// It is created at request start, owned by one goroutine, and discarded once
// the output is produced.
type GraphState struct {
	SessionID string
	Query     string
	Customer  *contractx.CustomerProfile
	Now       time.Time

	History []contractx.Turn

	// Classification is assigned exactly once, by the classify stage.
	Classification contractx.Label

	// HandlerResults maps handler id to produced text. Exactly one entry is
	// populated per request since only one handler ever runs.
	HandlerResults map[contractx.HandlerID]string

	// FailureReason holds the diagnostic cause of a handled failure. It is
	// logged, never rendered to the user.
	FailureReason string

	FinalResponse string
}

// PrepareRequest builds the initial graph state. Queries are trimmed but an
// empty query is not rejected: classification is total over all string input
// and downstream stages degrade gracefully.
func PrepareRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	return &GraphState{
		SessionID:      strings.TrimSpace(in.SessionID),
		Query:          strings.TrimSpace(in.Query),
		Customer:       in.Customer,
		Now:            nowFn().UTC(),
		HandlerResults: make(map[contractx.HandlerID]string, 1),
	}, nil
}
