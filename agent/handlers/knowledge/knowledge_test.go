package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/siamtel/assistant/vectorstore"
)

type fakeSearcher struct {
	docs []vectorstore.Document
	err  error
}

func (f *fakeSearcher) Search(_ context.Context, _ []float32, _ int) ([]vectorstore.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func (f *fakeSearcher) Close() error { return nil }

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeResponder struct {
	reply     string
	err       error
	lastInput string
}

func (f *fakeResponder) Respond(_ context.Context, input string) (string, error) {
	f.lastInput = input
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestHandleAnswersFromRetrievedContext(t *testing.T) {
	t.Parallel()

	index := &fakeSearcher{docs: []vectorstore.Document{
		{ID: "d1", Content: "VoLTE can be enabled under Settings > Mobile Network.", Score: 0.91},
		{ID: "d2", Content: "VoLTE requires a 4G-capable SIM.", Score: 0.85},
	}}
	responder := &fakeResponder{reply: "Go to Settings > Mobile Network and toggle VoLTE on."}

	h, err := New(index, &fakeEmbedder{}, responder)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "how do I enable VoLTE?", nil)
	if out.Failed() {
		t.Fatalf("unexpected failure: %q", out.FailureReason)
	}
	if out.Text != "Go to Settings > Mobile Network and toggle VoLTE on." {
		t.Fatalf("unexpected text %q", out.Text)
	}
	if !strings.Contains(responder.lastInput, "4G-capable SIM") {
		t.Fatalf("retrieved context missing from payload: %s", responder.lastInput)
	}
}

func TestHandleEmptyRetrievalIsNotAFailure(t *testing.T) {
	t.Parallel()

	h, err := New(&fakeSearcher{}, &fakeEmbedder{}, &fakeResponder{reply: "unused"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "what is the meaning of RCS?", nil)
	if out.Failed() {
		t.Fatalf("empty retrieval must not be a failure: %q", out.FailureReason)
	}
	if out.Text != noContextMessage {
		t.Fatalf("expected no-context message, got %q", out.Text)
	}
}

func TestHandleDegradesOnEmbeddingFailure(t *testing.T) {
	t.Parallel()

	h, err := New(&fakeSearcher{}, &fakeEmbedder{err: errors.New("quota exceeded")}, &fakeResponder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "APN settings?", nil)
	if !out.Failed() {
		t.Fatalf("expected handled failure")
	}
	if out.Text != failureMessage {
		t.Fatalf("expected templated apology, got %q", out.Text)
	}
	if strings.Contains(out.Text, "quota exceeded") {
		t.Fatalf("diagnostic leaked into user text: %q", out.Text)
	}
}

func TestHandleDegradesOnSearchFailure(t *testing.T) {
	t.Parallel()

	h, err := New(&fakeSearcher{err: errors.New("qdrant unavailable")}, &fakeEmbedder{}, &fakeResponder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := h.Handle(context.Background(), "APN settings?", nil)
	if !out.Failed() {
		t.Fatalf("expected handled failure")
	}
	if !strings.Contains(out.FailureReason, "qdrant unavailable") {
		t.Fatalf("failure reason should carry the cause: %q", out.FailureReason)
	}
}
