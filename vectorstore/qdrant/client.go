// Package qdrant implements vectorstore.Searcher on a Qdrant collection.
package qdrant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"github.com/siamtel/assistant/vectorstore"
)

// Config holds Qdrant connection settings for one collection.
type Config struct {
	URL        string `envconfig:"URL" split_words:"true" required:"true"`
	APIKey     string `envconfig:"API_KEY" split_words:"true"`
	Collection string `envconfig:"COLLECTION" split_words:"true"`
}

// Client implements vectorstore.Searcher for Qdrant.
type Client struct {
	client     *qdrant.Client
	collection string
}

var _ vectorstore.Searcher = (*Client)(nil)

// New connects to the Qdrant server described by cfg and binds the client to
// cfg.Collection.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("qdrant url is required")
	}
	if strings.TrimSpace(cfg.Collection) == "" {
		return nil, fmt.Errorf("qdrant collection is required")
	}

	raw := cfg.URL
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse qdrant url: %w", err)
	}

	port := 6334
	if u.Port() != "" {
		p, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid qdrant port: %w", err)
		}
		port = p
	}

	qc, err := qdrant.NewClient(&qdrant.Config{
		Host:   u.Hostname(),
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}

	return &Client{client: qc, collection: cfg.Collection}, nil
}

// WithCollection returns a client bound to another collection sharing the
// same connection.
func (c *Client) WithCollection(collection string) *Client {
	return &Client{client: c.client, collection: collection}
}

// Search implements vectorstore.Searcher.
func (c *Client) Search(ctx context.Context, vector []float32, limit int) ([]vectorstore.Document, error) {
	if limit <= 0 {
		limit = 5
	}
	limitUint := uint64(limit)

	points, err := c.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: c.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limitUint,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search: %w", err)
	}

	docs := make([]vectorstore.Document, 0, len(points))
	for _, point := range points {
		doc := vectorstore.Document{Score: point.Score}

		if point.Id != nil {
			if uuid := point.Id.GetUuid(); uuid != "" {
				doc.ID = uuid
			} else {
				doc.ID = strconv.FormatUint(point.Id.GetNum(), 10)
			}
		}

		for key, value := range point.Payload {
			switch key {
			case "content", "text":
				if s := value.GetStringValue(); s != "" {
					doc.Content = s
				}
			case "source", "file_name":
				if s := value.GetStringValue(); s != "" {
					doc.Source = s
				}
			}
		}

		docs = append(docs, doc)
	}
	return docs, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.client.Close()
}
