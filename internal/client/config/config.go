package config

import "time"

// Config holds runtime settings for the bettybooth client.
//
// Sources are layered: defaults, then JSON file (-c/-config), then
// environment variables, then command-line flags. Later sources win.
type Config struct {
	// Document/identity backend.
	APIEndpoint  string `env:"BOOTH_API_ENDPOINT"`
	ProjectID    string `env:"BOOTH_PROJECT_ID"`
	DatabaseID   string `env:"BOOTH_DATABASE_ID"`
	GalleriesCol string `env:"BOOTH_GALLERIES_COLLECTION_ID"`

	// Blob store (S3-compatible).
	S3Endpoint   string `env:"BOOTH_S3_ENDPOINT"`
	S3Region     string `env:"BOOTH_S3_REGION"`
	S3Bucket     string `env:"BOOTH_S3_BUCKET"`
	S3AccessKey  string `env:"BOOTH_S3_ACCESS_KEY"`
	S3SecretKey  string `env:"BOOTH_S3_SECRET_KEY"`
	MediaBaseURL string `env:"BOOTH_MEDIA_BASE_URL"`

	// Gallery list fetch retry policy.
	FetchRetries    int           `env:"BOOTH_FETCH_RETRIES"`
	FetchRetryDelay time.Duration `env:"BOOTH_FETCH_RETRY_DELAY"`

	// Image compression applied before upload.
	CompressMaxWidth int `env:"BOOTH_COMPRESS_MAX_WIDTH"`
	CompressQuality  int `env:"BOOTH_COMPRESS_QUALITY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "http://127.0.0.1:8090/v1"
	c.DatabaseID = "bettybooth"
	c.GalleriesCol = "galleries"
	c.S3Region = "us-east-1"
	c.S3Bucket = "bettybooth"
	c.FetchRetries = 3
	c.FetchRetryDelay = 500 * time.Millisecond
	c.CompressMaxWidth = 800
	c.CompressQuality = 70
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
