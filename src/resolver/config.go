// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file representation of a resolver configuration.
// All fields are optional; absent values keep the built-in defaults.
//
//	providers:
//	  standard:
//	    timeout: 15s
//	    delay: 1s
//	  whoisxml:
//	    api_key: "..."
//	  ip2whois:
//	    enabled: false
//	fallback:
//	  allow: true
//	  order: [standard, whoisxml, ip2whois]
//	tld_overrides:
//	  io: [ip2whois, standard]
type Config struct {
	Providers map[string]ConfigProvider `yaml:"providers"`
	Fallback  struct {
		Allow *bool    `yaml:"allow"`
		Order []string `yaml:"order"`
	} `yaml:"fallback"`
	TLDOverrides map[string][]string `yaml:"tld_overrides"`
}

// ConfigProvider is the YAML shape of one provider's settings.
// Timeout and Delay are Go duration strings ("15s", "500ms").
type ConfigProvider struct {
	Enabled *bool  `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
	Delay   string `yaml:"delay"`
}

// knownProviders guards config files against typos in provider names.
var knownProviders = map[string]ProviderID{
	string(ProviderStandard): ProviderStandard,
	string(ProviderWhoisXML): ProviderWhoisXML,
	string(ProviderIP2Whois): ProviderIP2Whois,
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Options converts the file configuration into functional options for
// [New]. Unknown provider names and malformed durations are reported
// rather than silently dropped.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	for name, pc := range c.Providers {
		id, ok := knownProviders[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown provider %q", name)
		}

		if pc.Enabled != nil && !*pc.Enabled {
			opts = append(opts, WithProviderDisabled(id))
		}
		if pc.APIKey != "" {
			opts = append(opts, WithAPIKey(id, pc.APIKey))
		}
		if pc.BaseURL != "" {
			opts = append(opts, WithBaseURL(id, pc.BaseURL))
		}
		if pc.Timeout != "" {
			d, err := time.ParseDuration(pc.Timeout)
			if err != nil {
				return nil, fmt.Errorf("config: provider %s timeout: %w", name, err)
			}
			id := id
			opts = append(opts, func(r *Resolver) {
				cfg := r.providers[id]
				cfg.Timeout = d
				r.providers[id] = cfg
			})
		}
		if pc.Delay != "" {
			d, err := time.ParseDuration(pc.Delay)
			if err != nil {
				return nil, fmt.Errorf("config: provider %s delay: %w", name, err)
			}
			id := id
			opts = append(opts, func(r *Resolver) {
				cfg := r.providers[id]
				cfg.Delay = d
				r.providers[id] = cfg
			})
		}
	}

	if len(c.Fallback.Order) > 0 {
		order, err := parseProviderOrder(c.Fallback.Order)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFallbackOrder(order...))
	}
	if c.Fallback.Allow != nil && !*c.Fallback.Allow {
		opts = append(opts, WithoutFallback())
	}

	for tld, names := range c.TLDOverrides {
		order, err := parseProviderOrder(names)
		if err != nil {
			return nil, fmt.Errorf("config: tld override %s: %w", tld, err)
		}
		opts = append(opts, WithTLDOverride(tld, order...))
	}

	return opts, nil
}

// parseProviderOrder maps provider names from a config file onto the
// closed ProviderID set.
func parseProviderOrder(names []string) ([]ProviderID, error) {
	order := make([]ProviderID, 0, len(names))
	for _, name := range names {
		id, ok := knownProviders[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown provider %q", name)
		}
		order = append(order, id)
	}
	return order, nil
}
