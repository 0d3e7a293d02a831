package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	"github.com/siamtel/assistant/vectorstore"
)

// EmbeddingsClient implements vectorstore.Embedder over the OpenAI SDK.
type EmbeddingsClient struct {
	client *openaisdk.Client
	model  string
}

var _ vectorstore.Embedder = (*EmbeddingsClient)(nil)

func NewEmbeddingsClient(client *openaisdk.Client, model string) (*EmbeddingsClient, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("embedding model is required")
	}
	return &EmbeddingsClient{client: client, model: model}, nil
}

// Embed returns the embedding vector for text.
func (c *EmbeddingsClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfString: openaisdk.String(text),
		},
		Model: openaisdk.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding response is empty")
	}

	raw := resp.Data[0].Embedding
	vector := make([]float32, len(raw))
	for i, v := range raw {
		vector[i] = float32(v)
	}
	return vector, nil
}
