package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMapsHost          = "www.google.com"
	defaultMapsTimeout       = 10 * time.Second
	defaultWalkingSpeed      = 80.0 // metres per minute
	defaultRadiusSafety      = 1.2
	defaultMatrixBatchSize   = 25
	defaultMaxPages          = 1
	defaultPageTokenDelay    = 2 * time.Second
	defaultPlaceType         = "restaurant"
	defaultAccessTokenTTL    = 12 * time.Hour
	defaultQRCodeSize        = 256
	defaultQRCodeCorrection  = "M"
	maxMatrixDestinations    = 25
	maxNearbySearchPageCount = 3
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

	// Maps configuration for the Google Maps web services
	Maps *MapsConfig `json:"maps" yaml:"maps"`

	// Search tunes the meetup search pipeline
	Search *SearchConfig `json:"search" yaml:"search"`

	// Access configures the optional shared-password gate
	Access *AccessConfig `json:"access" yaml:"access"`

	// QRCode configuration for deep link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MapsConfig defines credentials and endpoints of the maps provider
type MapsConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL overrides the provider endpoint, used against local fakes
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Host used when building venue deep links
	MapsHost string `json:"mapsHost" yaml:"mapsHost"`

	Language string `json:"language" yaml:"language"`
}

// SearchConfig defines the constants of the search pipeline
type SearchConfig struct {
	// Average walking speed used to size the nearby search radius
	WalkingSpeedMetersPerMinute float64 `json:"walkingSpeedMetersPerMinute" yaml:"walkingSpeedMetersPerMinute"`

	// Multiplier over the straight-line radius, street routing is always longer
	RadiusSafetyFactor float64 `json:"radiusSafetyFactor" yaml:"radiusSafetyFactor"`

	// Destinations per distance matrix request (provider limit is 25)
	MatrixBatchSize int `json:"matrixBatchSize" yaml:"matrixBatchSize"`

	// Nearby search pages fetched per search term (provider limit is 3)
	MaxPages int `json:"maxPages" yaml:"maxPages"`

	// Wait before a next_page_token becomes valid
	PageTokenDelay time.Duration `json:"pageTokenDelay" yaml:"pageTokenDelay"`

	// Provider place category searched
	PlaceType string `json:"placeType" yaml:"placeType"`
}

// AccessConfig defines the optional app password gate
type AccessConfig struct {
	// bcrypt hash of the shared password; empty disables the gate
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenSecret  string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// Enabled reports whether requests must carry a session token
func (c *AccessConfig) Enabled() bool {
	return c != nil && strings.TrimSpace(c.PasswordHash) != ""
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file.
	// Example: MAPS_APIKEY -> maps.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never see nil sections
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Maps == nil {
		cfg.Maps = &MapsConfig{}
	}
	if cfg.Maps.RequestTimeout <= 0 {
		cfg.Maps.RequestTimeout = defaultMapsTimeout
	}
	if cfg.Maps.MapsHost == "" {
		cfg.Maps.MapsHost = defaultMapsHost
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	cfg.Search.ApplyDefaults()

	if cfg.Access == nil {
		cfg.Access = &AccessConfig{}
	}
	if cfg.Access.TokenTTL <= 0 {
		cfg.Access.TokenTTL = defaultAccessTokenTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeCorrection
	}
}

// ApplyDefaults replaces zero or out-of-range values with the documented defaults
func (c *SearchConfig) ApplyDefaults() {
	if c.WalkingSpeedMetersPerMinute <= 0 {
		c.WalkingSpeedMetersPerMinute = defaultWalkingSpeed
	}
	if c.RadiusSafetyFactor < 1 {
		c.RadiusSafetyFactor = defaultRadiusSafety
	}
	if c.MatrixBatchSize <= 0 || c.MatrixBatchSize > maxMatrixDestinations {
		c.MatrixBatchSize = defaultMatrixBatchSize
	}
	if c.MaxPages <= 0 {
		c.MaxPages = defaultMaxPages
	}
	if c.MaxPages > maxNearbySearchPageCount {
		c.MaxPages = maxNearbySearchPageCount
	}
	if c.PageTokenDelay <= 0 {
		c.PageTokenDelay = defaultPageTokenDelay
	}
	if c.PlaceType == "" {
		c.PlaceType = defaultPlaceType
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
