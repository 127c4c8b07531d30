// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import "errors"

// Sentinel errors for the resolver package.
var (
	// ErrInvalidDomain is returned when a domain name fails validation.
	ErrInvalidDomain = errors.New("resolver: invalid domain name")

	// ErrNoProviders is carried in a Record when no enabled provider
	// was available for the requested domain.
	ErrNoProviders = errors.New("resolver: all providers failed: none enabled")

	// ErrAllProvidersFailed is carried in a Record when every enabled
	// provider in the fallback chain failed. It wraps the last
	// provider's error.
	ErrAllProvidersFailed = errors.New("resolver: all providers failed")

	// ErrEmptyResponse is returned when a lookup succeeds at the wire
	// level but the payload is empty or whitespace-only.
	ErrEmptyResponse = errors.New("resolver: empty response")

	// ErrLookupTimeout is returned when a WHOIS query exceeds its
	// per-attempt timeout.
	ErrLookupTimeout = errors.New("resolver: lookup timed out")

	// ErrMissingCredential is returned by a REST adapter invoked
	// without an API key. The orchestrator normally filters such
	// providers out beforehand.
	ErrMissingCredential = errors.New("resolver: missing API credential")

	// ErrUpstream is returned when a provider reports a semantic error
	// payload (bad API key, rate limit, unsupported domain). Such
	// errors are never retried.
	ErrUpstream = errors.New("resolver: upstream error")

	// ErrInternalPanic is returned when an internal panic is recovered
	// during batch resolution.
	ErrInternalPanic = errors.New("resolver: internal panic recovered")
)
