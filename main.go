package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/siamtel/assistant/agent/classifier"
	"github.com/siamtel/assistant/agent/handlers"
	llmx "github.com/siamtel/assistant/agent/llm"
	"github.com/siamtel/assistant/agent/pipeline"
	promptx "github.com/siamtel/assistant/agent/prompt"
	"github.com/siamtel/assistant/agent/state"
	"github.com/siamtel/assistant/api"
	"github.com/siamtel/assistant/directory"
	configx "github.com/siamtel/assistant/pkg/config"
	logx "github.com/siamtel/assistant/pkg/logger"
	openrouterx "github.com/siamtel/assistant/pkg/openrouter"
	redisx "github.com/siamtel/assistant/pkg/redis"
	qdrantstore "github.com/siamtel/assistant/vectorstore/qdrant"
)

type AppConfig struct {
	Port        string `split_words:"true" default:"8080"`
	DatabaseURL string `split_words:"true" required:"true"`

	EmbeddingBaseURL string `split_words:"true" default:"https://api.openai.com/v1"`
	EmbeddingAPIKey  string `split_words:"true" required:"true"`

	KnowledgeCollection string `split_words:"true" default:"telecom_docs"`
	NetworkCollection   string `split_words:"true" default:"network_docs"`
}

func main() {
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	appCfg := configx.MustNew[AppConfig]("APP")
	llmCfg := configx.MustNew[llmx.Config]("LLM")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}

	ctx := context.Background()

	// Postgres (customers, billing, network, service plans)
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(appCfg.DatabaseURL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("postgres ping failed")
	}

	// Redis (session history)
	redisCfg := configx.MustNew[redisx.Config]("REDIS")
	rdb := redisCfg.MustNew(ctx)
	defer rdb.Close()
	history := state.NewRedisHistoryStore(rdb)

	// Qdrant (document indexes)
	qdrantCfg := configx.MustNew[qdrantstore.Config]("QDRANT")
	if qdrantCfg.Collection == "" {
		qdrantCfg.Collection = appCfg.KnowledgeCollection
	}
	qdrantClient, err := qdrantstore.New(*qdrantCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("qdrant client failed")
	}
	defer qdrantClient.Close()
	knowledgeIndex := qdrantClient.WithCollection(appCfg.KnowledgeCollection)
	networkDocs := qdrantClient.WithCollection(appCfg.NetworkCollection)

	// Embeddings
	embedSDK := openrouterx.NewClient(openrouterx.Config{
		BaseURL: appCfg.EmbeddingBaseURL,
		APIKey:  appCfg.EmbeddingAPIKey,
	})
	if embedSDK == nil {
		log.Fatal().Msg("embeddings client requires an api key")
	}
	embedder, err := openrouterx.NewEmbeddingsClient(embedSDK, llmCfg.EmbeddingModel)
	if err != nil {
		log.Fatal().Err(err).Msg("embeddings client failed")
	}

	// Classifier
	classifierModelCfg := llmCfg.OpenRouterFor(llmx.ComponentClassifier)
	classifierModel, err := classifierModelCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("classifier model failed")
	}
	prompts := promptx.LoadPromptSet()
	labelClassifier, err := classifier.New(ctx, classifierModel, prompts.Classifier)
	if err != nil {
		log.Fatal().Err(err).Msg("classifier failed")
	}

	// Handlers
	registry, err := handlers.NewRegistry(ctx, *llmCfg, handlers.Deps{
		DB:             db,
		KnowledgeIndex: knowledgeIndex,
		NetworkDocs:    networkDocs,
		Embedder:       embedder,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("handler registry failed")
	}

	// Pipeline
	p, err := pipeline.New(labelClassifier, registry, history)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	// Directory + HTTP
	dir, err := directory.New(db)
	if err != nil {
		log.Fatal().Err(err).Msg("directory failed")
	}

	router := api.NewRouter(api.NewHandler(p, dir, history))

	addr := fmt.Sprintf(":%s", appCfg.Port)
	log.Info().Str("addr", addr).Msg("assistant listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
