/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/bifrost/pkg/base64"
)

// presetAlphabets are the dialect names every build knows.
var presetAlphabets = map[string]string{
	"std":    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=",
	"url":    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_",
	"imap":   "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,",
	"bcrypt": "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
	"i2p":    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-~=",
}

// Registry maps alphabet names to their symbol strings.
type Registry struct {
	Alphabets map[string]string `yaml:"alphabets"`
}

// LoadRegistry loads additional named alphabets from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alphabets file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse alphabets file: %w", err)
	}
	return &registry, nil
}

// resolveAlphabet turns an --alphabet value into a usable Alphabet. Names
// from the registry file shadow presets; a value matching no name is treated
// as a literal symbol string.
func resolveAlphabet(value, registryPath string) (*base64.Alphabet, error) {
	names := make(map[string]string, len(presetAlphabets))
	for name, symbols := range presetAlphabets {
		names[name] = symbols
	}

	if registryPath != "" {
		registry, err := LoadRegistry(registryPath)
		if err != nil {
			return nil, err
		}
		for name, symbols := range registry.Alphabets {
			names[name] = symbols
		}
	}

	if symbols, ok := names[value]; ok {
		return base64.NewAlphabet(symbols)
	}
	if len(value) == 64 || len(value) == 65 {
		return base64.NewAlphabet(value)
	}

	known := make([]string, 0, len(names))
	for name := range names {
		known = append(known, name)
	}
	sort.Strings(known)
	return nil, fmt.Errorf("unknown alphabet %q (known names: %s)", value, strings.Join(known, ", "))
}
