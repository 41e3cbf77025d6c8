// Package envconfig loads the collaborator-owned environment the engine
// is run against: where label tables live on disk, and whether the
// action-translation layer is enabled. The core (nlth, abstraction)
// never reads this directly — only the outer CLI wires it in.
package envconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Environment is parsed from an HCL document such as:
//
//	label_path "flop" { path = "./labels/flop.bin" }
//	label_path "turn" { path = "./labels/turn.bin" }
//	label_path "river" { path = "./labels/river.bin" }
//	enable_translation = true
//	seed = 42
type Environment struct {
	LabelPaths        []LabelPath `hcl:"label_path,block"`
	EnableTranslation bool        `hcl:"enable_translation,optional"`
	Seed              *uint64     `hcl:"seed,optional"`
}

// LabelPath binds one post-flop round's name to its label-file path.
type LabelPath struct {
	Round string `hcl:"round,label"`
	Path  string `hcl:"path"`
}

// Load parses and validates the HCL environment file at path.
func Load(path string) (Environment, error) {
	var env Environment
	if err := hclsimple.DecodeFile(path, nil, &env); err != nil {
		return Environment{}, fmt.Errorf("envconfig: decoding %s: %w", path, err)
	}
	if err := env.Validate(); err != nil {
		return Environment{}, err
	}
	return env, nil
}

// Validate checks the environment is internally consistent: round names
// must be the post-flop streets (flop/turn/river — preflop has no
// abstraction label) and must not repeat.
func (e Environment) Validate() error {
	seen := make(map[string]bool, len(e.LabelPaths))
	for _, lp := range e.LabelPaths {
		switch lp.Round {
		case "flop", "turn", "river":
		default:
			return fmt.Errorf("envconfig: unknown round %q (want flop, turn, or river)", lp.Round)
		}
		if seen[lp.Round] {
			return fmt.Errorf("envconfig: duplicate label_path block for round %q", lp.Round)
		}
		seen[lp.Round] = true
		if lp.Path == "" {
			return fmt.Errorf("envconfig: label_path %q has an empty path", lp.Round)
		}
	}
	return nil
}

// PathFor returns the configured label path for round, and whether one
// was configured.
func (e Environment) PathFor(round string) (string, bool) {
	for _, lp := range e.LabelPaths {
		if lp.Round == round {
			return lp.Path, true
		}
	}
	return "", false
}
