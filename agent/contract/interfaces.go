package contract

import "context"

// Classifier assigns exactly one canonical label to free-text input.
// Implementations must recover from backend failures internally and fall back
// to DefaultLabel; a returned error is treated defensively by the pipeline
// and coerced the same way.
type Classifier interface {
	Classify(ctx context.Context, query string) (Label, error)
}

// Handler fully services one classification label. Handle never propagates an
// internal failure: it degrades to a handled-failure HandlerOutput instead.
type Handler interface {
	Handle(ctx context.Context, query string, customer *CustomerProfile) HandlerOutput
}

// Registry resolves handler identifiers to handlers. Resolution is total:
// an unknown identifier yields the fallback handler.
type Registry interface {
	Handler(id HandlerID) Handler
}

// Directory is the read-only customer lookup used at authentication time.
type Directory interface {
	Authenticate(ctx context.Context, customerID string) (*CustomerProfile, error)
}

// HistoryStore keeps per-session conversation history. It is owned by the
// UI/session layer; the pipeline only appends completed turns.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]Turn, error)
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	Delete(ctx context.Context, sessionID string) error
}
