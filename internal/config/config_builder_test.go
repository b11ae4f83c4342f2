package config

import (
	"encoding/json"
	"os"
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
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredSettings holds the values that have no defaults.
func requiredSettings() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/mygram"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsAndRequired verifies that defaults fill everything the
// caller did not set.
func TestBuild_DefaultsAndRequired(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredSettings())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		requiredSettings(),
		&StructuredConfig{
			App:    App{TokenIssuer: "override", TokenDuration: time.Minute},
			Server: Server{CORSOrigins: []string{"https://only.example"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, []string{"https://only.example"}, cfg.Server.CORSOrigins)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_ISSUER":  "env-issuer",
		"STORAGE_DB_DRIVER": "sqlite3",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "sqlite3", b.configs[0].Storage.DB.Driver)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion failures surface.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "soon"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies that flags are parsed into a config.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token-issuer", "flag-issuer"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that parse failures surface.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.Storage.DB.Driver = "sqlite3"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, "sqlite3", b.configs[1].Storage.DB.Driver)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.TokenIssuer = "first"
	last := StructuredJSONConfig{}
	last.App.TokenIssuer = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.TokenIssuer)
}

// TestWithJSON_SkippedAfterEarlierError verifies that an earlier failure is
// preserved and no JSON config is appended.
func TestWithJSON_SkippedAfterEarlierError(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredJSONConfig{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_PriorityOrder verifies env < flags < JSON.
func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	jsonCfg := StructuredJSONConfig{}
	jsonCfg.Server.HTTPAddress = "127.0.0.1:7000"
	path := writeTempJSONConfig(t, jsonCfg)

	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"APP_TOKEN_ISSUER":        "env-issuer",
		"STORAGE_DB_DATABASE_URI": "postgres://env",
		"SERVER_ADDRESS":          "127.0.0.1:5000",
	})

	cfg, err := GetStructuredConfig([]string{
		"-token-issuer", "flag-issuer",
		"-a", "127.0.0.1:6000",
		"-c", path,
	})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
}
