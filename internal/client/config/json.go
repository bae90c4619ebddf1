package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bettybooth/bettybooth/internal/flagx"
	"github.com/bettybooth/bettybooth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given either as strings like "500ms" or as integer nanoseconds.
type JsonConfig struct {
	APIEndpoint  string `json:"api_endpoint"`
	ProjectID    string `json:"project_id"`
	DatabaseID   string `json:"database_id"`
	GalleriesCol string `json:"galleries_collection_id"`

	S3Endpoint   string `json:"s3_endpoint"`
	S3Region     string `json:"s3_region"`
	S3Bucket     string `json:"s3_bucket"`
	S3AccessKey  string `json:"s3_access_key"`
	S3SecretKey  string `json:"s3_secret_key"`
	MediaBaseURL string `json:"media_base_url"`

	FetchRetries    *int           `json:"fetch_retries"`
	FetchRetryDelay timex.Duration `json:"fetch_retry_delay"`

	CompressMaxWidth *int `json:"compress_max_width"`
	CompressQuality  *int `json:"compress_quality"`
}

// parseJson overlays cfg with values from the JSON file referenced by the
// -c/-config flag. Absent file path means no JSON layer. Only fields present
// in the file override the current values.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if jc.APIEndpoint != "" {
		cfg.APIEndpoint = jc.APIEndpoint
	}
	if jc.ProjectID != "" {
		cfg.ProjectID = jc.ProjectID
	}
	if jc.DatabaseID != "" {
		cfg.DatabaseID = jc.DatabaseID
	}
	if jc.GalleriesCol != "" {
		cfg.GalleriesCol = jc.GalleriesCol
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.MediaBaseURL != "" {
		cfg.MediaBaseURL = jc.MediaBaseURL
	}
	if jc.FetchRetries != nil {
		cfg.FetchRetries = *jc.FetchRetries
	}
	if jc.FetchRetryDelay.Duration != time.Duration(0) {
		cfg.FetchRetryDelay = jc.FetchRetryDelay.Duration
	}
	if jc.CompressMaxWidth != nil {
		cfg.CompressMaxWidth = *jc.CompressMaxWidth
	}
	if jc.CompressQuality != nil {
		cfg.CompressQuality = *jc.CompressQuality
	}
	return nil
}
