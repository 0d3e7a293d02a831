package classifier

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// fakeChatModel answers every generate call with a fixed completion.
type fakeChatModel struct {
	reply string
	err   error
	calls int
}

func (f *fakeChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

const testPrompt = "Classify the user query. Respond ONLY with the category name."

func newTestClassifier(t *testing.T, m einomodel.BaseChatModel) *LLMClassifier {
	t.Helper()
	c, err := New(context.Background(), m, testPrompt)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestClassifyCanonicalLabel(t *testing.T) {
	t.Parallel()

	model := &fakeChatModel{reply: "billing_account"}
	c := newTestClassifier(t, model)

	label, err := c.Classify(context.Background(), "why is my bill so high?")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != contractx.LabelBilling {
		t.Fatalf("unexpected label %q", label)
	}
	if model.calls != 1 {
		t.Fatalf("expected one model call, got %d", model.calls)
	}
}

func TestClassifyNormalizesModelOutput(t *testing.T) {
	t.Parallel()

	c := newTestClassifier(t, &fakeChatModel{reply: "  Network_Troubleshooting \n"})

	label, err := c.Classify(context.Background(), "my 5G is slow")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != contractx.LabelNetwork {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestClassifyCoercesUnknownOutput(t *testing.T) {
	t.Parallel()

	c := newTestClassifier(t, &fakeChatModel{reply: "I think this is about billing, maybe?"})

	label, err := c.Classify(context.Background(), "hmm")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != contractx.DefaultLabel {
		t.Fatalf("expected default label, got %q", label)
	}
}

func TestClassifyRecoversFromBackendFailure(t *testing.T) {
	t.Parallel()

	c := newTestClassifier(t, &fakeChatModel{err: errors.New("rate limited")})

	label, err := c.Classify(context.Background(), "why is my bill so high?")
	if err != nil {
		t.Fatalf("Classify() must not propagate backend errors, got %v", err)
	}
	if label != contractx.DefaultLabel {
		t.Fatalf("expected default label, got %q", label)
	}
}

func TestClassifyEmptyQueryIsOffTopic(t *testing.T) {
	t.Parallel()

	model := &fakeChatModel{reply: "billing_account"}
	c := newTestClassifier(t, model)

	label, err := c.Classify(context.Background(), "")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != contractx.LabelOffTopic {
		t.Fatalf("expected off_topic for empty query, got %q", label)
	}
	if model.calls != 0 {
		t.Fatalf("empty query must not reach the model, got %d calls", model.calls)
	}
}
