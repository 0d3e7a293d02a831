package pipelinenode

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// Classify assigns exactly one canonical label to the query. Classification
// never aborts the pipeline: a classifier error or an out-of-set label is
// coerced to contractx.DefaultLabel and the cause is logged.
func Classify(ctx context.Context, in *GraphState, classifier contractx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	label, err := classifier.Classify(ctx, in.Query)
	if err != nil {
		log.Warn().Err(err).Msg("classifier failed, substituting default label")
		label = contractx.DefaultLabel
	}

	in.Classification = CoerceLabel(string(label))
	return in, nil
}

// CoerceLabel normalizes raw classifier output into the closed label set.
// Anything unrecognized maps to the default label rather than failing.
func CoerceLabel(raw string) contractx.Label {
	label := contractx.Label(strings.ToLower(strings.TrimSpace(raw)))
	if !label.Valid() {
		if raw != "" {
			log.Debug().Str("raw_label", raw).Msg("unrecognized classifier output coerced to default")
		}
		return contractx.DefaultLabel
	}
	return label
}
