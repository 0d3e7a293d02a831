package pipelinenode

import (
	"fmt"
	"strings"
)

// EmptyResultPlaceholder is substituted when no handler produced any text.
// Defensive only: dispatch guarantees exactly one handler runs per request.
const EmptyResultPlaceholder = "I couldn't generate a response."

// Formulate selects the single handler result, appends the visible
// classification tag, and terminates the graph. FinalResponse is never empty.
func Formulate(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	base := ""
	for _, text := range in.HandlerResults {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			base = trimmed
			break
		}
	}
	if base == "" {
		base = EmptyResultPlaceholder
	}

	in.FinalResponse = fmt.Sprintf("%s\n\n*Query Type: %s*", base, in.Classification)
	return in, nil
}

// Output converts the terminal state into the graph's public output.
func Output(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, ErrNilState
	}
	return GraphOutput{
		FinalResponse:  in.FinalResponse,
		Classification: in.Classification,
		FailureReason:  in.FailureReason,
	}, nil
}
