package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdelamare/mybank"
)

func main() {
	cfg, err := mybank.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := mybank.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		logger.Error("connect store", slog.Any("error", err))
		os.Exit(1)
	}

	svc := mybank.NewService(repo, mybank.NewLogEvents(logger))

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/register", mybank.RegisterHandler(logger, svc))
	router.Handler(http.MethodPost, "/api/login", mybank.LoginHandler(logger, svc))
	router.Handler(http.MethodPost, "/api/logout", mybank.LogoutHandler(logger, svc))

	logger.Info("server started", slog.String("addr", cfg.AppAddr), slog.String("store", cfg.Store))
	if err := http.ListenAndServe(cfg.AppAddr, mybank.CORS(cfg.CORSAllowOrigin, router)); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRepository(ctx context.Context, cfg *mybank.Config) (mybank.Repository, error) {
	switch cfg.Store {
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, err
		}
		repo := mybank.NewMongoAccountRepository(client.Database(cfg.MongoDB).Collection("accounts"))
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, err
		}
		return mybank.NewPostgresAccountRepository(pool), nil
	default:
		return mybank.NewAccountRepository(), nil
	}
}
