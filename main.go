package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"movie-catalog-backend/config"
	"movie-catalog-backend/data_access"
	"movie-catalog-backend/services"

	"go.uber.org/zap"
)

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		sugar.Fatalw("failed to connect to MongoDB", "error", err)
	}
	defer mongodb.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongodb.EnsureIndexes(ctx); err != nil {
		sugar.Fatalw("failed to ensure indexes", "error", err)
	}

	commentRepo := data_access.NewCommentRepository(mongodb, sugar)
	commentService := services.NewCommentService(commentRepo)

	// Most-active-commenters report.
	critics, err := commentService.MostActiveCommenters(ctx)
	if err != nil {
		sugar.Fatalw("failed to compute most active commenters", "error", err)
	}

	fmt.Printf("Top %d commenters in %s:\n", len(critics), cfg.DBName)
	for i, critic := range critics {
		fmt.Printf("%2d. %-40s %d comments\n", i+1, critic.ID, critic.NumComments)
	}
}
