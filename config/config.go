package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	domainerrors "mrisafe/internal/domain/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDataServiceTimeout = 10 * time.Second
	defaultSearchTimeout      = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// DataService selects and configures the catalog data source
	DataService *DataServiceConfig `json:"dataService" yaml:"dataService"`

	// Postgres is only read when DataService.Source is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth configures verification of identity-provider tokens
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for device detail QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// Data source identifiers for DataServiceConfig.Source.
const (
	SourceRemote   = "remote"
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"
)

// DataServiceConfig defines the catalog data source
type DataServiceConfig struct {
	// Source is "remote" (hosted REST service), "postgres" (direct connection) or "fixture" (in-process data)
	Source string `json:"source" yaml:"source"`

	// BaseURL of the hosted data service, e.g. https://<project>.supabase.co
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// AccessKey is the anonymous API key sent with every request
	AccessKey string `json:"accessKey" yaml:"accessKey"`

	// Timeout per HTTP request to the hosted service
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RetryCount for idempotent reads against the hosted service
	RetryCount int `json:"retryCount" yaml:"retryCount"`

	// SearchLatency simulated by the fixture source
	SearchLatency time.Duration `json:"searchLatency" yaml:"searchLatency"`

	// SearchTimeout bounds a single search issued by a query controller
	SearchTimeout time.Duration `json:"searchTimeout" yaml:"searchTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// JWTSecret verifies HS256 access tokens issued by the identity provider
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL of the public site; device detail pages live at <BaseURL>/device/<id>
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.DataService == nil {
		cfg.DataService = &DataServiceConfig{}
	}
	ds := cfg.DataService
	if ds.Source == "" {
		ds.Source = SourceRemote
	}
	if ds.Timeout <= 0 {
		ds.Timeout = defaultDataServiceTimeout
	}
	if ds.RetryCount < 0 {
		ds.RetryCount = 0
	}
	if ds.SearchTimeout <= 0 {
		ds.SearchTimeout = defaultSearchTimeout
	}
}

// Validate reports a ConfigurationError when the selected data source lacks its
// connection parameters. It never fails for the fixture source.
func (cfg *Config) Validate() error {
	ds := cfg.DataService
	if ds == nil {
		return domainerrors.NewConfigurationError("dataService.baseUrl", "dataService.accessKey")
	}

	switch ds.Source {
	case SourceFixture:
		return nil
	case SourcePostgres:
		if cfg.Postgres == nil {
			return domainerrors.NewConfigurationError("postgres")
		}

		return nil
	case SourceRemote, "":
		var missing []string
		if strings.TrimSpace(ds.BaseURL) == "" {
			missing = append(missing, "dataService.baseUrl")
		}
		if strings.TrimSpace(ds.AccessKey) == "" {
			missing = append(missing, "dataService.accessKey")
		}
		if len(missing) > 0 {
			return domainerrors.NewConfigurationError(missing...)
		}

		return nil
	default:
		return domainerrors.NewConfigurationError("dataService.source (unknown source " + strconv.Quote(ds.Source) + ")")
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
