// File: lixenwraith/input/doc.go

// Package input resolves typed action inputs from string environment variables.
//
// CI/CD actions receive every input as a flat string variable. This package
// looks those variables up, parses them into strings, booleans, numbers,
// custom types, arrays and fixed-width tuples, applies defaults and enforces
// required inputs.
//
// Features:
//   - Canonical INPUT_<NAME> lookup with raw-name fallback
//   - Candidate keys: first non-empty value wins
//   - Comma and newline separated arrays and tuples
//   - Per-slot defaults for sequences, whole-value defaults for scalars
//   - Required checks that cover every slot of a sequence
//   - .env, TOML, JSON and YAML files as additional sources
//   - action.yml metadata loading
//   - Struct decoding of resolved values
//
// Quick Start:
//
//	dryRun, err := input.Resolve(input.Option{
//	    Key:  "dry run",
//	    Type: input.Of(input.Bool),
//	})
//
//	stages, err := input.Resolve(input.Option{
//	    Key:     "stages",
//	    Type:    input.ArrayOf(input.String),
//	    Default: []string{"dev"},
//	})
//
// Batch resolution annotates failures with the entry name:
//
//	values, err := input.ResolveMany(map[string]input.Request{
//	    "token":   input.Option{Required: true},
//	    "retries": input.Option{Type: input.Of(input.Number), Default: 3.0},
//	    "region":  nil, // resolved as Key("region")
//	})
//	// err: config `token`: input `token` is required but was not provided
//
// Source Precedence (highest to lowest) when built with NewBuilder:
//  1. Explicit sources (WithSource)
//  2. Process environment
//  3. Env files (WithEnvFile, WithFileDiscovery)
//  4. Input files (WithFile)
//
// For every key the canonical name (INPUT_ prefix, spaces to underscores,
// upper-case) is tried across all sources before the raw key.
package input
