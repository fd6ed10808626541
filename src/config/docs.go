// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the benchmark harness configuration.
//
// Configuration is read from a JSON or YAML file (chosen by extension), whose
// path comes from the caller or from the MOCKZMQ_CONFIG_FILE environment
// variable. Defaults are applied first and file values override them. The
// final configuration is validated against an embedded [JSON Schema].
//
// Example YAML:
//
//	bench:
//	  sizes: [64, 1024, 65536, 1048576]
//	  backends: [go, cgo]
//	  warmupIterations: 3
//	  measurementIterations: 5
//	  iterationTime: 1s
//	output:
//	  format: table
//	  log: text
//
// [JSON Schema]: https://json-schema.org
package config
