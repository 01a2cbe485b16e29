package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeRules reads YAML rules from r. Fields missing from the document keep
// the values of base.
func DecodeRules(r io.Reader, base Rules) (Rules, error) {
	rules := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRules reads a YAML rules file layered over base.
func LoadRules(path string, base Rules) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("open rules %s: %w", path, err)
	}
	defer f.Close()

	rules, err := DecodeRules(f, base)
	if err != nil {
		return Rules{}, fmt.Errorf("load rules %s: %w", path, err)
	}
	return rules, nil
}

// RulesFromEnv resolves rules the way every front-end does: variant preset,
// then the optional rules file, then the seed override.
func RulesFromEnv() (Rules, error) {
	rules, err := RulesForVariant(GetEnv(EnvVariant, VariantRich))
	if err != nil {
		return Rules{}, err
	}

	if path := GetEnv(EnvRulesFile, ""); path != "" {
		rules, err = LoadRules(path, rules)
		if err != nil {
			return Rules{}, err
		}
	}

	rules.Seed = GetEnv(EnvSeed, rules.Seed)
	return rules, rules.Validate()
}
