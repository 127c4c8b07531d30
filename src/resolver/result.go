// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import "time"

// LifecycleState is the coarse classification assigned to a resolved
// domain.
type LifecycleState string

// Lifecycle states, from healthiest to most degraded.
const (
	// StateNormal means the domain is registered and more than the
	// expiring window (default 30 days) away from expiry.
	StateNormal LifecycleState = "normal"

	// StateExpiring means the domain expires within the expiring window.
	StateExpiring LifecycleState = "expiring"

	// StateExpired means the expiry date is in the past.
	StateExpired LifecycleState = "expired"

	// StateUnregistered means the upstream reported no registration
	// for the domain.
	StateUnregistered LifecycleState = "unregistered"

	// StateFailed means no provider produced usable data, or a payload
	// was received but nothing could be extracted from it.
	StateFailed LifecycleState = "failed"
)

// ProviderID identifies one upstream data source. The set is closed;
// the orchestrator switches exhaustively over it.
type ProviderID string

// The supported providers.
const (
	// ProviderStandard is the credential-free WHOIS text protocol.
	ProviderStandard ProviderID = "standard"

	// ProviderWhoisXML is a REST lookup returning a WHOIS text block
	// embedded in JSON. Requires an API key.
	ProviderWhoisXML ProviderID = "whoisxml"

	// ProviderIP2Whois is a REST lookup returning structured JSON
	// fields. Requires an API key.
	ProviderIP2Whois ProviderID = "ip2whois"
)

// Record is the canonical, provider-agnostic result of resolving one
// domain. It is immutable once produced.
type Record struct {
	// Domain is the validated, lowercased domain that was resolved.
	Domain string

	// Registrar is the organization of record, or "" when unknown.
	Registrar string

	// CreatedAt is the registration date, when extractable.
	CreatedAt *time.Time

	// ExpiresAt is the expiry date, when extractable. Always nil for
	// unregistered domains.
	ExpiresAt *time.Time

	// StatusLabel holds up to three comma-joined human-readable status
	// tokens, or "" when no status lines were present.
	StatusLabel string

	// NameServers lists the authoritative name servers, in upstream
	// order, deduplicated. May be empty.
	NameServers []string

	// DNSProvider is the inferred hosting/DNS provider name. It is a
	// heuristic guess, not authoritative.
	DNSProvider string

	// State is the lifecycle classification of the domain.
	State LifecycleState

	// Provider identifies the adapter that produced this record.
	Provider ProviderID

	// Err is non-nil if resolution failed. When set, State is
	// StateFailed and all registration fields are zero.
	Err error
}

// Success reports whether the resolution produced usable data.
func (r Record) Success() bool {
	return r.Err == nil
}

// ProviderConfig holds the static configuration for one provider.
// It is read-only at query time.
type ProviderConfig struct {
	// Enabled turns the provider on or off. REST providers are
	// additionally skipped when APIKey is empty.
	Enabled bool

	// APIKey is the access credential for REST providers. Ignored by
	// ProviderStandard.
	APIKey string

	// BaseURL is the endpoint for REST providers. Ignored by
	// ProviderStandard.
	BaseURL string

	// Timeout bounds a single request to this provider. For
	// ProviderStandard this is the per-attempt timeout.
	Timeout time.Duration

	// Delay is the rate-limit pause inserted after this provider
	// fails, before the next provider in the chain is tried.
	Delay time.Duration
}

// extraction is the intermediate shape every adapter produces before
// the orchestrator finalizes it into a Record.
type extraction struct {
	registrar    string
	createdAt    *time.Time
	expiresAt    *time.Time
	statusLines  []string
	nameServers  []string
	unregistered bool
}
