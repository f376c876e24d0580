package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/cptracker/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Token validity is expressed as whole hours to keep the file format
// trivial; after unmarshalling, values are copied into the runtime Config.
type JsonConfig struct {
	Env                string `json:"env"`
	EndpointAddr       string `json:"endpoint_addr"`
	DatabaseDSN        string `json:"database_dsn"`
	SecretKey          string `json:"secret_key"`
	TokenValidityHours int    `json:"token_validity_hours"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. Empty or zero JSON fields leave
// the corresponding Config values untouched, so the file may be partial.
func parseJson(config *Config) error {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if c.Env != "" {
		config.Env = c.Env
	}
	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityHours > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityHours) * time.Hour
	}

	return nil
}
