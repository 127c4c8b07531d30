// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package resolver resolves authoritative registration data for domain
// names — registrar, expiry date, status, and name servers — and
// classifies each domain's lifecycle state (normal, expiring, expired,
// unregistered, or failed).
//
// It queries heterogeneous backends and normalizes their divergent
// output into one canonical [Record]:
//
//   - [ProviderStandard] — the raw WHOIS text protocol (RFC 3912) over
//     TCP port 43, with a built-in TLD→server map and a retrying
//     executor (timeout, attempt counting, exponential backoff).
//   - [ProviderWhoisXML] — a commercial REST lookup returning a WHOIS
//     text block embedded in JSON.
//   - [ProviderIP2Whois] — a commercial REST lookup returning
//     structured JSON fields.
//
// Providers are attempted strictly in order until one succeeds
// ("first success wins"); the order is chosen per top-level label via
// a configurable strategy table with a global default. REST providers
// are only eligible when configured with an API key.
//
// # Features
//
//   - Provider fallback chain — per-TLD ordering with first-success
//     short-circuit and configurable inter-provider delays
//   - Free-text field extraction — best-effort registrar, expiry,
//     status, and name-server extraction tuned for common registrar
//     output variations
//   - Lifecycle classification — stable normal/expiring/expired/
//     unregistered/failed decision from partial or contradictory data
//   - Retry with exponential backoff — resilient against transient
//     WHOIS failures and empty payloads
//   - Built-in caching — in-memory cache with configurable TTL to
//     avoid hammering rate-limited upstreams
//   - Custom cache backends — plug in Redis, memcached, or any backend
//     via the [Cache] interface
//   - Concurrent batch resolution — resolve many domains in parallel
//     with a single call; providers within one request stay sequential
//   - NS fallback probe — optional direct DNS NS query when the
//     winning provider returned no name servers
//   - Functional options — clean, [idiomatic Go] configuration pattern
//   - Context-aware — full support for timeouts and cancellation via
//     [context.Context]
//   - Typed errors — sentinel errors for [errors.Is] matching
//
// # Quick Start
//
//	r := resolver.New(
//	    resolver.WithAPIKey(resolver.ProviderWhoisXML, "your-api-key"),
//	)
//
//	rec, err := r.Resolve(context.Background(), "example.com")
//	if err != nil {
//	    log.Fatal(err) // only invalid input errors here
//	}
//	fmt.Println(rec.State, rec.Registrar, rec.ExpiresAt)
//
// Expected upstream failures never surface as returned errors: callers
// always receive a [Record], whose Err field carries the aggregated
// failure when every provider was exhausted. Only input validation
// fails synchronously.
//
// [idiomatic Go]: https://go.dev/doc/effective_go
package resolver
