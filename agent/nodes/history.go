package pipelinenode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// LoadHistory fetches prior turns for the session. History is context for
// handlers only; a store failure is logged and the request proceeds with an
// empty history rather than aborting.
func LoadHistory(ctx context.Context, in *GraphState, store contractx.HistoryStore) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}
	if in.SessionID == "" {
		return in, nil
	}

	turns, err := store.Load(ctx, in.SessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("history load failed, continuing without history")
		return in, nil
	}
	in.History = turns
	return in, nil
}

// AppendHistory records the completed turn. Failures are logged and absorbed:
// persistence must never undo an already-formulated response.
func AppendHistory(ctx context.Context, in *GraphState, store contractx.HistoryStore) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}
	if in.SessionID == "" {
		return in, nil
	}

	err := store.Append(ctx, in.SessionID,
		contractx.Turn{Role: "user", Content: in.Query, At: in.Now},
		contractx.Turn{Role: "assistant", Content: in.FinalResponse, At: in.Now},
	)
	if err != nil {
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("history append failed")
	}
	return in, nil
}
