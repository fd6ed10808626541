// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schema describes a valid Config as serialized through its json tags.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["bench", "output"],
  "properties": {
    "bench": {
      "type": "object",
      "required": ["sizes", "threads", "warmupIterations", "measurementIterations", "iterationTime"],
      "properties": {
        "sizes": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "integer", "minimum": 0}
        },
        "scenarios": {
          "type": "array",
          "items": {"type": "string", "minLength": 1}
        },
        "backends": {
          "type": "array",
          "items": {"type": "string", "enum": ["go", "cgo"]}
        },
        "threads": {"type": "integer", "minimum": 1, "maximum": 1024},
        "warmupIterations": {"type": "integer", "minimum": 0},
        "measurementIterations": {"type": "integer", "minimum": 1},
        "iterationTime": {"type": "string", "minLength": 1}
      },
      "additionalProperties": false
    },
    "output": {
      "type": "object",
      "required": ["format", "log"],
      "properties": {
        "format": {"type": "string", "enum": ["table", "json", "yaml"]},
        "log": {"type": "string", "enum": ["text", "json"]}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Validate checks c against the embedded schema and parses its durations.
// Every violation is reported in a single [ErrInvalidConfig] error.
func Validate(c *Config) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(c))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	_, err = c.IterationDuration()
	return err
}
