package handlers

import (
	"context"
	"testing"

	contractx "github.com/siamtel/assistant/agent/contract"
)

type cannedHandler struct {
	text string
}

func (h cannedHandler) Handle(context.Context, string, *contractx.CustomerProfile) contractx.HandlerOutput {
	return contractx.HandlerOutput{Text: h.text}
}

func TestStaticRegistryResolution(t *testing.T) {
	t.Parallel()

	reg := NewStaticRegistry(map[contractx.HandlerID]contractx.Handler{
		contractx.HandlerBilling:  cannedHandler{text: "billing"},
		contractx.HandlerFallback: cannedHandler{text: "fallback"},
	})

	out := reg.Handler(contractx.HandlerBilling).Handle(context.Background(), "q", nil)
	if out.Text != "billing" {
		t.Fatalf("unexpected handler for billing: %q", out.Text)
	}

	// unknown ids and unregistered handlers resolve to fallback
	out = reg.Handler(contractx.HandlerID("bogus")).Handle(context.Background(), "q", nil)
	if out.Text != "fallback" {
		t.Fatalf("unexpected handler for unknown id: %q", out.Text)
	}
	out = reg.Handler(contractx.HandlerNetwork).Handle(context.Background(), "q", nil)
	if out.Text != "fallback" {
		t.Fatalf("unexpected handler for unregistered id: %q", out.Text)
	}
}

func TestStaticRegistryDefaultsFallback(t *testing.T) {
	t.Parallel()

	reg := NewStaticRegistry(map[contractx.HandlerID]contractx.Handler{})
	h := reg.Handler(contractx.HandlerFallback)
	if h == nil {
		t.Fatalf("expected a fallback handler")
	}
	out := h.Handle(context.Background(), "tell me a joke", nil)
	if out.Failed() || out.Text == "" {
		t.Fatalf("fallback handler should produce text, got %+v", out)
	}
}
