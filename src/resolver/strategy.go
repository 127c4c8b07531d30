// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

// defaultFallbackOrder is the global provider order used when no
// per-TLD override exists.
var defaultFallbackOrder = []ProviderID{
	ProviderStandard,
	ProviderWhoisXML,
	ProviderIP2Whois,
}

// strategyFor returns the configured provider order for a top-level
// label: the explicit override when one exists, the global order
// otherwise. Unknown labels always yield the global order; there is no
// error condition.
func (r *Resolver) strategyFor(tld string) []ProviderID {
	if order, ok := r.overrides[tld]; ok {
		return order
	}
	return r.order
}

// providerEnabled reports whether a provider may be attempted: it must
// be switched on, and REST providers additionally need a credential.
// The standard lookup needs none and is eligible whenever enabled.
func (r *Resolver) providerEnabled(id ProviderID) bool {
	cfg, ok := r.providers[id]
	if !ok || !cfg.Enabled {
		return false
	}
	if id == ProviderStandard {
		return true
	}
	return cfg.APIKey != ""
}

// enabledProviders filters a provider order down to the attemptable
// subset, preserving order.
func (r *Resolver) enabledProviders(order []ProviderID) []ProviderID {
	enabled := make([]ProviderID, 0, len(order))
	for _, id := range order {
		if r.providerEnabled(id) {
			enabled = append(enabled, id)
		}
	}
	return enabled
}

// Strategy returns the enabled provider order that would be attempted
// for a domain under the given top-level label. Useful for inspecting
// the effective configuration.
func (r *Resolver) Strategy(tld string) []ProviderID {
	order := r.enabledProviders(r.strategyFor(tld))
	out := make([]ProviderID, len(order))
	copy(out, order)
	return out
}
