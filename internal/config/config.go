// Package config loads the rate-class configuration file. The file is
// optional; without one every risk class runs on the built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/connectias/warden/internal/capability"
	"github.com/connectias/warden/internal/ratelimit"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Defaults applied to any risk class the file does not mention.
const (
	DefaultWindowSeconds = 60
	DefaultCeiling       = 60
)

const rateSchema = `{
	"type": "object",
	"properties": {
		"classes": {
			"type": "object",
			"propertyNames": {"enum": ["read", "write", "critical"]},
			"additionalProperties": {
				"type": "object",
				"properties": {
					"window_seconds": {"type": "integer", "minimum": 1, "maximum": 3600},
					"ceiling": {"type": "integer", "minimum": 0, "maximum": 1000000}
				},
				"required": ["window_seconds", "ceiling"],
				"additionalProperties": false
			}
		}
	},
	"required": ["classes"],
	"additionalProperties": false
}`

type rateFile struct {
	Classes map[string]struct {
		WindowSeconds int `json:"window_seconds"`
		Ceiling       int `json:"ceiling"`
	} `json:"classes"`
}

// DefaultRateConfig returns the built-in per-class admission windows.
func DefaultRateConfig() ratelimit.Config {
	def := ratelimit.Window{
		Length:  DefaultWindowSeconds * time.Second,
		Ceiling: DefaultCeiling,
	}
	return ratelimit.Config{
		PerClass: map[string]ratelimit.Window{
			capability.ClassRead:     def,
			capability.ClassWrite:    def,
			capability.ClassCritical: def,
		},
		Default: def,
	}
}

// LoadRateConfig reads and validates a rate-class config file, returning
// the built-in defaults overlaid with whatever classes the file sets.
func LoadRateConfig(path string) (ratelimit.Config, error) {
	cfg := DefaultRateConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read rate config: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cfg, fmt.Errorf("parse rate config: %w", err)
	}
	if err := compiledRateSchema().Validate(doc); err != nil {
		return cfg, fmt.Errorf("validate rate config: %w", err)
	}

	var file rateFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse rate config: %w", err)
	}

	for class, w := range file.Classes {
		cfg.PerClass[class] = ratelimit.Window{
			Length:  time.Duration(w.WindowSeconds) * time.Second,
			Ceiling: w.Ceiling,
		}
	}
	return cfg, nil
}

func compiledRateSchema() *jsonschema.Schema {
	var obj any
	if err := json.Unmarshal([]byte(rateSchema), &obj); err != nil {
		panic(fmt.Sprintf("rate schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("rate.json", obj); err != nil {
		panic(fmt.Sprintf("rate schema: %v", err))
	}
	schema, err := c.Compile("rate.json")
	if err != nil {
		panic(fmt.Sprintf("rate schema: %v", err))
	}
	return schema
}
