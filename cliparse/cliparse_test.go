// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ACCOUNTS_FILE", "accounts.json")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreMemory {
		t.Errorf("expected default store %q, got %q", StoreMemory, cfg.StoreType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ACCOUNTS_FILE", "accounts.json")
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-s", "file", "-data-file", "test.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DataFile != "test.json" {
		t.Errorf("expected data file test.json, got %q", cfg.DataFile)
	}
}

func TestParseFlags_RequiredFields(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		args []string
	}{
		{"missing accounts file", []string{"-jwt-secret", "s"}},
		{"missing JWT secret", []string{"-accounts", "accounts.json"}},
		{"sqlite without database URL", []string{"-accounts", "a.json", "-jwt-secret", "s", "-s", "sqlite"}},
		{"postgres without database URL", []string{"-accounts", "a.json", "-jwt-secret", "s", "-s", "postgres"}},
		{"unknown store type", []string{"-accounts", "a.json", "-jwt-secret", "s", "-s", "redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestParseFlags_FileStoreDefaultsPath(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-accounts", "a.json", "-jwt-secret", "s", "-s", "file"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataFile != "data.json" {
		t.Errorf("expected default data file data.json, got %q", cfg.DataFile)
	}
}
