// Package vectorstore defines the similarity-search capability the knowledge
// and network handlers depend on, independent of the backing engine.
package vectorstore

import "context"

// Document is one retrieved chunk of indexed documentation.
type Document struct {
	ID      string
	Score   float32
	Content string
	Source  string
}

// Searcher performs vector similarity search over one document collection.
type Searcher interface {
	Search(ctx context.Context, vector []float32, limit int) ([]Document, error)
	Close() error
}

// Embedder turns query text into the vector space the collections are
// indexed in.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
