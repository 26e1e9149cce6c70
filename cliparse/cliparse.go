package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Store kinds
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port         int
	StoreType    string
	DatabaseURL  string
	DataFile     string
	AccountsFile string
	JWTSecret    string
	TieBreakTens bool
}

// ParseFlags validates flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("juryboard", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (memory, file, sqlite, postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres DSN)")
	fs.StringVar(&cfg.DataFile, "data-file", "", "JSON data file path (file store)")
	fs.StringVar(&cfg.AccountsFile, "accounts", "", "Accounts JSON file path")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Session token secret (prefer env)")

	fs.BoolVar(&cfg.TieBreakTens, "tiebreak-tens", false, "Break leaderboard ties by count of 10s")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3419 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreMemory
		}
	}

	switch cfg.StoreType {
	case StoreMemory:
		// Ephemeral demo mode, nothing else to validate.
	case StoreFile:
		if cfg.DataFile == "" {
			cfg.DataFile = os.Getenv("DATA_FILE")
		}
		if cfg.DataFile == "" {
			cfg.DataFile = "data.json"
		}
	case StoreSQLite, StorePostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, errors.New("store type must be memory, file, sqlite, or postgres")
	}

	if cfg.AccountsFile == "" {
		cfg.AccountsFile = os.Getenv("ACCOUNTS_FILE")
	}
	if cfg.AccountsFile == "" {
		return Config{}, errors.New("accounts file required (use -accounts or ACCOUNTS_FILE env)")
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if !cfg.TieBreakTens {
		cfg.TieBreakTens = os.Getenv("TIEBREAK_TENS") == "true"
	}

	return cfg, nil
}
