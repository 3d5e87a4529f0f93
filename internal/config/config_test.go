package config

import (
	"strings"
	"testing"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestValidateDefaults(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{"TOKEN": "abc"}))
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q", cfg.MigrationsPath)
	}
	if cfg.EmoteSource != SourceDatabase {
		t.Errorf("EmoteSource = %q", cfg.EmoteSource)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing token", env: map[string]string{}, wantErr: "TOKEN"},
		{name: "blank token", env: map[string]string{"TOKEN": "  "}, wantErr: "TOKEN"},
		{name: "guild id", env: map[string]string{"TOKEN": "t", "GUILD_ID": "12a"}, wantErr: "GUILD_ID"},
		{name: "database url", env: map[string]string{"TOKEN": "t", "DATABASE_URL": "localhost"}, wantErr: "DATABASE_URL"},
		{name: "source", env: map[string]string{"TOKEN": "t", "EMOTE_SOURCE": "s3"}, wantErr: "EMOTE_SOURCE"},
		{name: "file source needs file", env: map[string]string{"TOKEN": "t", "EMOTE_SOURCE": "file"}, wantErr: "EMOTE_DATA_FILE"},
		{name: "locale", env: map[string]string{"TOKEN": "t", "DEFAULT_LOCALE": "x_y_z!"}, wantErr: "DEFAULT_LOCALE"},
		{name: "world names", env: map[string]string{"TOKEN": "t", "WORLD_NAMES": "sometimes"}, wantErr: "WORLD_NAMES"},
		{name: "file source", env: map[string]string{"TOKEN": "t", "EMOTE_SOURCE": "FILE", "EMOTE_DATA_FILE": "data/emotes.yaml"}},
		{name: "xivapi", env: map[string]string{"TOKEN": "t", "EMOTE_SOURCE": "xivapi", "XIVAPI_KEY": "k", "GUILD_ID": "123", "DEFAULT_LOCALE": "ja"}},
	}
	for _, tc := range tests {
		err := FromEnv(envOf(tc.env)).validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error = %v, want it to mention %s", tc.name, err, tc.wantErr)
		}
	}
}

func TestValidateWorldNames(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{"TOKEN": "t", "WORLD_NAMES": "true"}))
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !cfg.WorldNames {
		t.Error("WorldNames = false, want true")
	}
}
