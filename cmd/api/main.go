package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"coffeeshop/pkg/account"
	accountmem "coffeeshop/pkg/account/memory"
	accountpg "coffeeshop/pkg/account/postgres"
	"coffeeshop/pkg/auth"
	"coffeeshop/pkg/catalog"
	catalogmem "coffeeshop/pkg/catalog/memory"
	catalogpg "coffeeshop/pkg/catalog/postgres"
	"coffeeshop/pkg/config"
	"coffeeshop/pkg/db"
	"coffeeshop/pkg/logger"
	"coffeeshop/pkg/order"
	ordermem "coffeeshop/pkg/order/memory"
	orderpg "coffeeshop/pkg/order/postgres"
	"coffeeshop/pkg/otel"
	"coffeeshop/pkg/session"
	sessionmem "coffeeshop/pkg/session/memory"
	sessionredis "coffeeshop/pkg/session/redis"

	_ "coffeeshop/docs"
)

// @title Coffee Shop API
// @version 1.0
// @description Menu, cart, ordering and administration for a coffee shop.
// @host localhost:8443
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "coffeeshop", otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "startup", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "coffeeshop",
		Host:        cfg.OTELHost,
		Probability: cfg.OTELProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	st, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	accounts := account.NewService(st.accounts, st.orders)
	if cfg.Storage == config.StorageMemory {
		if err := db.Seed(ctx, log, accounts, st.coffees, cfg.AdminPassword); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	srv := &server{
		log:      log,
		tracer:   tp.Tracer("coffeeshop"),
		catalog:  st.coffees,
		accounts: accounts,
		orders:   st.orders,
		engine:   order.NewEngine(st.orders, st.coffees),
		sessions: st.sessions,
		tokens:   auth.NewManager(cfg.JWTSecret, cfg.SessionTTL),
		secure:   cfg.TLSCert != "",
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr, "tls", srv.secure, "storage", cfg.Storage, "sessions", cfg.SessionStore)
		if srv.secure {
			errc <- httpSrv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server closed: %w", err)
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(sctx)
}

type stores struct {
	coffees  catalog.Repository
	accounts account.Repository
	orders   order.Repository
	sessions session.Store
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (stores, func(), error) {
	var (
		st      stores
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Storage {
	case config.StorageMemory:
		st.coffees = catalogmem.New()
		st.accounts = accountmem.New()
		st.orders = ordermem.New()
	default:
		conn, err := db.Open(ctx, log, cfg.DSN())
		if err != nil {
			return st, nil, err
		}
		closers = append(closers, func() { conn.Close() })
		if err := prepareDatabase(ctx, log, conn, cfg); err != nil {
			closeAll()
			return st, nil, err
		}
		st.coffees = catalogpg.New(conn)
		st.accounts = accountpg.New(conn)
		st.orders = orderpg.New(conn)
	}

	switch cfg.SessionStore {
	case config.SessionMemory:
		st.sessions = sessionmem.New(cfg.SessionTTL)
	default:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			closeAll()
			return st, nil, fmt.Errorf("redis ping: %w", err)
		}
		closers = append(closers, func() { client.Close() })
		st.sessions = sessionredis.New(client, cfg.SessionTTL)
	}

	return st, closeAll, nil
}

func prepareDatabase(ctx context.Context, log *logger.Logger, conn *sql.DB, cfg *config.Config) error {
	if err := db.Migrate(ctx, log, conn); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	accounts := account.NewService(accountpg.New(conn), orderpg.New(conn))
	if err := db.Seed(ctx, log, accounts, catalogpg.New(conn), cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
