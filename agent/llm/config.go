package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/siamtel/assistant/agent/contract"
	openrouterx "github.com/siamtel/assistant/pkg/openrouter"
)

// Component names one model consumer so each can run on its own model and
// temperature. The classifier defaults to temperature 0 regardless of the
// shared default: label output must be as stable as the backend allows.
type Component string

const (
	ComponentClassifier Component = "classifier"
	ComponentBilling    Component = "billing"
	ComponentNetwork    Component = "network"
	ComponentCatalog    Component = "catalog"
	ComponentKnowledge  Component = "knowledge"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.2"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`

	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" split_words:"true" default:"text-embedding-3-small"`

	ClassifierModel string `envconfig:"CLASSIFIER_MODEL" split_words:"true"`
	BillingModel    string `envconfig:"BILLING_MODEL" split_words:"true"`
	NetworkModel    string `envconfig:"NETWORK_MODEL" split_words:"true"`
	CatalogModel    string `envconfig:"CATALOG_MODEL" split_words:"true"`
	KnowledgeModel  string `envconfig:"KNOWLEDGE_MODEL" split_words:"true"`

	ClassifierTemperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" split_words:"true" default:"0"`
	BillingTemperature    float32 `envconfig:"BILLING_TEMPERATURE" split_words:"true" default:"-1"`
	NetworkTemperature    float32 `envconfig:"NETWORK_TEMPERATURE" split_words:"true" default:"-1"`
	CatalogTemperature    float32 `envconfig:"CATALOG_TEMPERATURE" split_words:"true" default:"-1"`
	KnowledgeTemperature  float32 `envconfig:"KNOWLEDGE_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: llm api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the effective model settings for one component.
func (c Config) OpenRouterFor(component Component) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override := func(model string, temperature float32) {
		if v := strings.TrimSpace(model); v != "" {
			modelName = v
		}
		if temperature >= 0 {
			temp = temperature
		}
	}

	switch component {
	case ComponentClassifier:
		override(c.ClassifierModel, c.ClassifierTemperature)
	case ComponentBilling:
		override(c.BillingModel, c.BillingTemperature)
	case ComponentNetwork:
		override(c.NetworkModel, c.NetworkTemperature)
	case ComponentCatalog:
		override(c.CatalogModel, c.CatalogTemperature)
	case ComponentKnowledge:
		override(c.KnowledgeModel, c.KnowledgeTemperature)
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
	}
}
