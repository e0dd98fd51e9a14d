package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Errorf("TokenTTL = %v, want 168h", cfg.TokenTTL)
	}
	if cfg.AuthBypassEnabled {
		t.Error("AuthBypassEnabled should default to false")
	}
	if cfg.AuthBypassUserID != "test-user-id" {
		t.Errorf("AuthBypassUserID = %q", cfg.AuthBypassUserID)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}

	prefixes := cfg.GetAuthBypassPrefixes()
	want := []string{"/api/trips", "/api/itinerary", "/api/accommodation", "/api/expenses"}
	if len(prefixes) != len(want) {
		t.Fatalf("bypass prefixes = %v, want %v", prefixes, want)
	}
	for i := range want {
		if prefixes[i] != want[i] {
			t.Errorf("prefixes[%d] = %q, want %q", i, prefixes[i], want[i])
		}
	}
}

func TestLoadMissingSecret(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not
	// just empty, for the required check to trip.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a,b,c", 3},
		{" a , b ", 2},
		{",,", 0},
	}

	for _, tt := range tests {
		if got := splitCommaList(tt.raw); len(got) != tt.want {
			t.Errorf("splitCommaList(%q) = %v, want %d items", tt.raw, got, tt.want)
		}
	}
}

func TestGetAdminEmails(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_EMAILS", "root@tripforge.io, ops@tripforge.io")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	emails := cfg.GetAdminEmails()
	if len(emails) != 2 || emails[0] != "root@tripforge.io" || emails[1] != "ops@tripforge.io" {
		t.Errorf("GetAdminEmails = %v", emails)
	}
}
