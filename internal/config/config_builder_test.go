package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/blogs"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-secret", TokenIssuer: "env-issuer"}, Storage: Storage{DB: DB{DSN: "postgres://env"}}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// untouched defaults survive
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "localhost:3003", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestBuild_ValidationFails(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv / withDotEnv ──────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithDotEnv_LoadsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_SIGN_KEY=from-dotenv\n"), 0o600))
	// register for cleanup; godotenv does not override variables that are set
	t.Setenv("APP_TOKEN_SIGN_KEY", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_SIGN_KEY"))

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-dotenv", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-secret"},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "file:test.db"},
		},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", p, "-token-sign-key", "flag-secret"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey, "json is applied last")
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero duration without expiry", mutate: func(c *StructuredConfig) {
			c.App.TokenDuration = 0
			c.App.TokenNoExpiry = true
		}},
		{name: "cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 2 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 40 }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown env", mutate: func(c *StructuredConfig) { c.App.Environment = "staging" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mongodb" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppIsTest(t *testing.T) {
	assert.True(t, App{Environment: EnvTest}.IsTest())
	assert.False(t, App{Environment: EnvProduction}.IsTest())
}
