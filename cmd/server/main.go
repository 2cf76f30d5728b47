package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poke_explorer/internal/config"
	"poke_explorer/internal/handlers"
	"poke_explorer/internal/logger"
	"poke_explorer/internal/pokeapi"
	"poke_explorer/internal/repository"
	"poke_explorer/internal/repository/db"
	"poke_explorer/internal/server"
	"poke_explorer/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title                       Poké-Explorer API
// @version                     1.0
// @description                 Authenticated Pokémon search backed by PokéAPI, with per-user search history.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open store
	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := closeStore.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	upstream, closeCache := newUpstream(cfg, log)
	defer func() { _ = closeCache.Close() }()

	// wire dependencies
	services := service.NewService(repos, upstream, service.Options{
		SigningKey: []byte(cfg.JWT.Secret),
		TokenTTL:   cfg.JWT.TTL,
	})
	apiHandler := handlers.NewHandler(services, log, cfg.History.Limit)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openStore connects the configured backend and returns its repositories.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Repository, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Store.Mongo.URI))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ping mongo: %w", err)
		}
		repos, err := repository.NewMongoRepository(ctx, client.Database(cfg.Store.Mongo.Database))
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Infow("store_ready", "driver", config.DriverMongo, "database", cfg.Store.Mongo.Database)
		return repos, closerFunc(func() error { return client.Disconnect(context.Background()) }), nil

	default:
		conn, err := db.InitDB(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("store_ready", "driver", config.DriverSQLite, "path", cfg.Store.SQLite.Path)
		return repository.NewRepository(conn), conn, nil
	}
}

// newUpstream builds the PokéAPI client, fronted by Redis when caching is enabled.
// A cache that cannot be reached at startup is skipped, not fatal.
func newUpstream(cfg *config.Config, log *logger.Logger) (pokeapi.Fetcher, io.Closer) {
	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout)
	noop := closerFunc(func() error { return nil })

	rc := cfg.Cache.Redis
	if !rc.Enabled {
		return client, noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	rdb, err := pokeapi.NewRedisClient(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		log.Warnw("redis_unavailable_cache_disabled", "addr", rc.Addr, "err", err)
		return client, noop
	}
	log.Infow("pokeapi_cache_enabled", "addr", rc.Addr, "ttl", rc.TTL)

	cached := pokeapi.NewCachedClient(client, pokeapi.NewRedisCache(rdb), rc.TTL, func(op string, err error) {
		log.Warnw("pokeapi_cache_failed", "op", op, "err", err)
	})
	return cached, rdb
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		port := cfg.Port
		if port == "" {
			port = "5000"
		}
		log.Infow("server_listening", "port", port)
		if err := srv.Run(port, server.WithCORS(handler.InitRoutes(), cfg.CORS.AllowedOrigins)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
