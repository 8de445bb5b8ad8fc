package config

import (
	"encoding/json"
	"os"
	"strings"

	"photofolio/internal/flagx"
	"photofolio/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON config files.
// It accepts durations as strings ("60s") or integer nanoseconds; resolved
// values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	DatabaseDSN      string          `json:"database_dsn"`
	SecretKey        string          `json:"secret_key"`
	UploadGrantTTL   *timex.Duration `json:"upload_grant_ttl"`
	CORSOrigins      string          `json:"cors_origins"`
	S3AccessKey      string          `json:"s3_access_key"`
	S3SecretKey      string          `json:"s3_secret_key"`
	S3Bucket         string          `json:"s3_bucket"`
	S3Region         string          `json:"s3_region"`
	S3BaseEndpoint   string          `json:"s3_base_endpoint"`
}

// parseJson overlays values from the JSON file named by -c/-config, if any.
// Unset fields keep their current values. A missing or malformed file
// panics: a config file that was explicitly requested must parse.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.UploadGrantTTL != nil {
		config.UploadGrantTTL = c.UploadGrantTTL.Duration
	}
	if c.CORSOrigins != "" {
		config.CORSOrigins = strings.Split(c.CORSOrigins, ",")
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
