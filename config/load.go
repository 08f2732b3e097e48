package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/wit-bindgen/errors"
)

// YAML deserialization of the configuration mapping. The on-disk form is a
// map from element path to a single-arm entry:
//
//	mappings:
//	  "wasi:io:streams:pollable":
//	    resource:
//	      as-iterator: true
//	  "ns:pkg:iface:point":
//	    record:
//	      as-class: true
//	  "ns:pkg:iface:mode":
//	    enum: {}
//
// Exactly one arm per entry; omitted flags default to false. Unknown arms
// and unknown flag names are load errors: structural validity is owned
// here, before the store is handed to consumers.

type rawFile struct {
	Mappings map[string]map[string]rawFlags `yaml:"mappings"`
}

// rawFlags is the union of every arm's flags; each arm reads its own.
type rawFlags struct {
	AsClass                        bool `yaml:"as-class"`
	AsIterator                     bool `yaml:"as-iterator"`
	UseGuestClass                  bool `yaml:"use-guest-class"`
	AsTypeScriptEnum               bool `yaml:"as-typescript-enum"`
	AsDirectUnionOfResourceClasses bool `yaml:"as-direct-union-of-resource-classes"`
	AsDictionary                   bool `yaml:"as-dictionary"`
}

// Load reads and parses a configuration file.
func Load(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.IO(errors.PhaseConfig, filename, err)
	}
	return Parse(data)
}

// Parse parses configuration YAML. A nil or empty document yields an empty
// store, which resolves every element to the None arm.
func Parse(data []byte) (*Configuration, error) {
	var raw rawFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Cause(err).
			Detail("configuration is not valid YAML").
			Build()
	}

	mappings := make(map[string]ElementConfig, len(raw.Mappings))
	for path, entry := range raw.Mappings {
		cfg, err := convertEntry(path, entry)
		if err != nil {
			return nil, err
		}
		mappings[path] = cfg
	}
	return New(mappings), nil
}

func convertEntry(path string, entry map[string]rawFlags) (ElementConfig, error) {
	if len(entry) != 1 {
		return nil, errors.InvalidData(errors.PhaseConfig, []string{"mappings", path},
			"entry must have exactly one arm")
	}
	for tag, flags := range entry {
		switch tag {
		case "none":
			return None{}, nil
		case "record":
			return Record{AsClass: flags.AsClass}, nil
		case "resource":
			return Resource{
				AsIterator:    flags.AsIterator,
				UseGuestClass: flags.UseGuestClass,
			}, nil
		case "enum":
			return Enum{AsTypeScriptEnum: flags.AsTypeScriptEnum}, nil
		case "variant":
			return Variant{
				AsDirectUnionOfResourceClasses: flags.AsDirectUnionOfResourceClasses,
			}, nil
		case "list-of-tuple":
			return ListOfTuple{AsDictionary: flags.AsDictionary}, nil
		default:
			return nil, errors.UnknownTag(errors.PhaseConfig, []string{"mappings", path}, tag)
		}
	}
	return None{}, nil // unreachable, len(entry) == 1
}
