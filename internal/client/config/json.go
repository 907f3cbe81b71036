package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studykeeper/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from an empty one.
type jsonConfig struct {
	EndpointURL *string `json:"endpoint_url"`
	LogLevel    *string `json:"log_level"`
}

// parseJSON overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.EndpointURL != nil {
		cfg.EndpointURL = *jc.EndpointURL
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
