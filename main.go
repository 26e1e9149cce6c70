package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/juryboard/juryboard/auth"
	"github.com/juryboard/juryboard/cliparse"
	"github.com/juryboard/juryboard/middleware"
	"github.com/juryboard/juryboard/router"
	"github.com/juryboard/juryboard/store"
	"github.com/juryboard/juryboard/store/filestore"
	"github.com/juryboard/juryboard/store/memstore"
	"github.com/juryboard/juryboard/store/sqlstore"
)

func main() {
	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the storage backend once; everything downstream sees only
	// the Store interface.
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	slog.Info("Store ready", "type", cfg.StoreType)

	// Load the judge roster
	accounts, err := auth.LoadAccounts(cfg.AccountsFile)
	if err != nil {
		slog.Error("failed to load accounts", "error", err)
		os.Exit(1)
	}
	authenticator := auth.NewAuthenticator(accounts, cfg.JWTSecret)
	slog.Info("Accounts loaded", "count", len(accounts))

	// Create router
	mux := router.NewRouter(st, authenticator, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreMemory:
		return memstore.New(), nil
	case cliparse.StoreFile:
		return filestore.New(cfg.DataFile)
	case cliparse.StoreSQLite:
		db, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return sqlstore.New(db)
	case cliparse.StorePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return sqlstore.New(db)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}
