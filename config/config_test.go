package config

import (
	"testing"

	domainerrors "mrisafe/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"dataService": map[string]any{
			"baseUrl":   "",
			"accessKey": "",
			"source":    "remote",
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATASERVICE_BASEURL", want: "dataService.baseUrl"},
		{envKey: "DATASERVICE_ACCESSKEY", want: "dataService.accessKey"},
		{envKey: "DATASERVICE_SOURCE", want: "dataService.source"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *Config
		wantMissing []string
	}{
		{
			name: "remote fully configured",
			cfg: &Config{DataService: &DataServiceConfig{
				Source: SourceRemote, BaseURL: "https://example.supabase.co", AccessKey: "anon",
			}},
		},
		{
			name:        "remote missing both",
			cfg:         &Config{DataService: &DataServiceConfig{Source: SourceRemote}},
			wantMissing: []string{"dataService.baseUrl", "dataService.accessKey"},
		},
		{
			name: "remote missing key",
			cfg: &Config{DataService: &DataServiceConfig{
				Source: SourceRemote, BaseURL: "https://example.supabase.co", AccessKey: "  ",
			}},
			wantMissing: []string{"dataService.accessKey"},
		},
		{
			name:        "no data service section",
			cfg:         &Config{},
			wantMissing: []string{"dataService.baseUrl", "dataService.accessKey"},
		},
		{
			name: "fixture needs nothing",
			cfg:  &Config{DataService: &DataServiceConfig{Source: SourceFixture}},
		},
		{
			name:        "postgres without connection",
			cfg:         &Config{DataService: &DataServiceConfig{Source: SourcePostgres}},
			wantMissing: []string{"postgres"},
		},
		{
			name: "postgres with connection",
			cfg: &Config{
				DataService: &DataServiceConfig{Source: SourcePostgres},
				Postgres:    &postgres.DBConn{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantMissing == nil {
				assert.NoError(t, err)

				return
			}

			var cfgErr *domainerrors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantMissing, cfgErr.Missing())
			assert.Equal(t, "CONFIGURATION_ERROR", cfgErr.ErrorCode())
		})
	}
}

func TestConfig_ValidateUnknownSource(t *testing.T) {
	cfg := &Config{DataService: &DataServiceConfig{Source: "carrier-pigeon"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.DataService)
	assert.Equal(t, SourceRemote, cfg.DataService.Source)
	assert.Equal(t, defaultDataServiceTimeout, cfg.DataService.Timeout)
	assert.Equal(t, defaultSearchTimeout, cfg.DataService.SearchTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}
