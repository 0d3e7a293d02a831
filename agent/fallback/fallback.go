package fallback

import (
	"context"
	"strings"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// Handler services off-topic queries with canned redirect messages. It makes
// no external calls and is fully deterministic given the query text and the
// fixed rule table.
type Handler struct{}

var _ contractx.Handler = (*Handler)(nil)

func New() *Handler {
	return &Handler{}
}

func (h *Handler) Handle(ctx context.Context, query string, _ *contractx.CustomerProfile) contractx.HandlerOutput {
	return contractx.HandlerOutput{Text: messageByCategory[Categorize(query)]}
}

// Categorize resolves the coarse intent of an off-topic query by evaluating
// the rule table top to bottom; the first keyword hit wins and the final
// catch-all rule guarantees a result.
func Categorize(query string) Category {
	q := strings.ToLower(query)
	for _, r := range rules {
		if len(r.keywords) == 0 {
			return r.category
		}
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.category
			}
		}
	}
	return CategoryGeneric
}
