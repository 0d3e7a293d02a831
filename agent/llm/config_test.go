package llm

import (
	"errors"
	"testing"

	contractx "github.com/siamtel/assistant/agent/contract"
)

func baseConfig() Config {
	return Config{
		BaseURL:               "https://openrouter.ai/api/v1",
		APIKey:                "sk-test",
		Model:                 "openai/gpt-4o-mini",
		MaxCompletionToken:    2000,
		Temperature:           0.2,
		ClassifierTemperature: 0,
		BillingTemperature:    -1,
		NetworkTemperature:    -1,
		CatalogTemperature:    -1,
		KnowledgeTemperature:  -1,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cfg.APIKey = "  "
	if err := cfg.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for empty api key, got %v", err)
	}

	cfg = baseConfig()
	cfg.Model = ""
	if err := cfg.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for empty model, got %v", err)
	}
}

func TestOpenRouterForDefaults(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	got := cfg.OpenRouterFor(ComponentBilling)

	if got.Model != "openai/gpt-4o-mini" {
		t.Fatalf("unexpected model %q", got.Model)
	}
	if got.Temperature != 0.2 {
		t.Fatalf("unexpected temperature %v", got.Temperature)
	}
}

func TestOpenRouterForClassifierRunsCold(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	got := cfg.OpenRouterFor(ComponentClassifier)

	if got.Temperature != 0 {
		t.Fatalf("classifier should run at temperature 0, got %v", got.Temperature)
	}
}

func TestOpenRouterForOverrides(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.NetworkModel = "qwen/qwen-2.5-72b-instruct"
	cfg.NetworkTemperature = 0.7

	got := cfg.OpenRouterFor(ComponentNetwork)
	if got.Model != "qwen/qwen-2.5-72b-instruct" {
		t.Fatalf("model override not applied: %q", got.Model)
	}
	if got.Temperature != 0.7 {
		t.Fatalf("temperature override not applied: %v", got.Temperature)
	}

	// other components keep the defaults
	other := cfg.OpenRouterFor(ComponentCatalog)
	if other.Model != "openai/gpt-4o-mini" || other.Temperature != 0.2 {
		t.Fatalf("override leaked into another component: %+v", other)
	}
}
