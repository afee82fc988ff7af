package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileOverrides is the shape of an optional -config YAML file: layered
// on top of the CLI flags for the two settings a surrounding deployment
// might want to fix without editing an invocation, per
// Hola-to-network_logistics_problem's layered-config pattern scaled
// down to this tool's two knobs.
type fileOverrides struct {
	File    string `koanf:"file"`
	Verbose bool   `koanf:"verbose"`
}

// loadConfigFile reads path as YAML and returns the overrides it
// specifies. Missing keys are left at their zero value so the caller
// can tell "flag already set, don't override" from "not present".
func loadConfigFile(path string) (fileOverrides, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fileOverrides{}, err
	}

	var cfg fileOverrides
	if err := k.Unmarshal("", &cfg); err != nil {
		return fileOverrides{}, err
	}

	return cfg, nil
}
