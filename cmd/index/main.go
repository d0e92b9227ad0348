package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"braik-api/internal/config"
	"braik-api/internal/database"
	"braik-api/internal/logger"
	"braik-api/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "index: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Environment: cfg.Environment, Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "index: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting migration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer mongoDB.Close()

	if failed := createIndexes(ctx, mongoDB.Database, log); failed > 0 {
		log.Warn("migration finished with failures", zap.Int("failed", failed))
		return
	}
	log.Info("migration completed successfully")
}

// createIndexes creates every index one at a time so a single conflict does
// not hide the rest. It returns the number of failures.
func createIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) int {
	collections := make([]string, 0, len(repository.Indexes))
	for name := range repository.Indexes {
		collections = append(collections, name)
	}
	sort.Strings(collections)

	failed := 0
	for _, collection := range collections {
		for _, model := range repository.Indexes[collection] {
			name, err := db.Collection(collection).Indexes().CreateOne(ctx, model)
			if err != nil {
				log.Warn("failed to create index", zap.String("collection", collection), zap.Error(err))
				failed++
				continue
			}
			log.Info("created index", zap.String("collection", collection), zap.String("index", name))
		}
	}
	return failed
}
