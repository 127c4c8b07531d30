// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Default configuration values.
const (
	defaultMaxAttempts     = 3
	defaultLookupTimeout   = 15 * time.Second
	defaultRESTTimeout     = 10 * time.Second
	defaultProviderDelay   = time.Second
	defaultCacheTTL        = 10 * time.Minute
	defaultConcurrency     = 10
	defaultDNSResolverAddr = "8.8.8.8:53"
)

// Default REST endpoints.
const (
	defaultWhoisXMLBaseURL = "https://www.whoisxmlapi.com/whoisserver/WhoisService"
	defaultIP2WhoisBaseURL = "https://api.ip2whois.com/v2"
)

// Resolver resolves registration data for domain names across a
// fallback chain of providers and classifies each domain's lifecycle
// state. Construct with [New]; a Resolver is safe for concurrent use.
type Resolver struct {
	providers     map[ProviderID]ProviderConfig
	order         []ProviderID
	overrides     map[string][]ProviderID
	allowFallback bool

	maxAttempts  int
	whois        WhoisClient
	whoisServers map[string]string

	httpClient *http.Client

	nsFallback      bool
	dnsClient       *dns.Client
	dnsResolverAddr string

	cache    Cache
	cacheTTL time.Duration

	concurrency int
	windowDays  int

	// Injection points for deterministic tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a new [Resolver] with the default provider chain:
// standard WHOIS lookup first, then the REST providers (which stay
// dormant until given an API key). Use functional options to
// customize behavior.
//
//	// Default configuration:
//	r := resolver.New()
//
//	// Custom configuration:
//	r := resolver.New(
//	    resolver.WithAPIKey(resolver.ProviderIP2Whois, key),
//	    resolver.WithTLDOverride("io", resolver.ProviderIP2Whois, resolver.ProviderStandard),
//	)
func New(opts ...Option) *Resolver {
	r := &Resolver{
		providers: map[ProviderID]ProviderConfig{
			ProviderStandard: {
				Enabled: true,
				Timeout: defaultLookupTimeout,
				Delay:   defaultProviderDelay,
			},
			ProviderWhoisXML: {
				Enabled: true,
				BaseURL: defaultWhoisXMLBaseURL,
				Timeout: defaultRESTTimeout,
				Delay:   defaultProviderDelay,
			},
			ProviderIP2Whois: {
				Enabled: true,
				BaseURL: defaultIP2WhoisBaseURL,
				Timeout: defaultRESTTimeout,
				Delay:   defaultProviderDelay,
			},
		},
		order:           defaultFallbackOrder,
		overrides:       make(map[string][]ProviderID),
		allowFallback:   true,
		maxAttempts:     defaultMaxAttempts,
		whoisServers:    defaultWhoisServers,
		dnsResolverAddr: defaultDNSResolverAddr,
		cacheTTL:        defaultCacheTTL,
		concurrency:     defaultConcurrency,
		windowDays:      defaultExpiringWindowDays,
		now:             time.Now,
		sleep:           sleepContext,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.whois == nil {
		r.whois = &netWhoisClient{}
	}
	if r.httpClient == nil {
		r.httpClient = &http.Client{Timeout: defaultRESTTimeout}
	}
	if r.dnsClient == nil {
		r.dnsClient = &dns.Client{Net: "udp", Timeout: 5 * time.Second}
	}
	if r.cache == nil && r.cacheTTL > 0 {
		r.cache = newMemoryCache(r.cacheTTL)
	}

	return r
}

// Resolve resolves a single domain to a normalized [Record].
//
// Providers are attempted strictly in the configured order; the first
// success wins and later providers are never invoked. Expected
// upstream failures land in the Record's Err field; the returned error
// is non-nil only for invalid input, which is rejected before any
// network call.
func (r *Resolver) Resolve(ctx context.Context, domain string) (Record, error) {
	domain = normalizeDomain(domain)
	if !IsValidDomain(domain) {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(domain); ok {
			return cached, nil
		}
	}

	rec := r.resolveChain(ctx, domain)

	// Failures are not cached; upstreams recover and credentials get
	// fixed, so a stale failure would mask both.
	if r.cache != nil && rec.Err == nil {
		r.cache.Set(domain, rec)
	}

	return rec, nil
}

// ResolveAll resolves multiple domains concurrently, bounded by the
// configured concurrency limit. The result slice preserves input
// order. Within each domain the provider chain stays strictly
// sequential; only the fan-out across domains is parallel.
//
// Invalid domains are returned as failed records carrying
// [ErrInvalidDomain] rather than aborting the batch.
func (r *Resolver) ResolveAll(ctx context.Context, domains ...string) ([]Record, error) {
	results := make([]Record, len(domains))
	var wg sync.WaitGroup

	// Semaphore to limit concurrency.
	sem := make(chan struct{}, r.concurrency)

Loop:
	for i, domain := range domains {
		// Check context before starting new work.
		select {
		case <-ctx.Done():
			// Fill remaining results with the context error.
			// Do not return immediately; active goroutines must finish.
			for j := i; j < len(domains); j++ {
				results[j] = Record{
					Domain: domains[j],
					State:  StateFailed,
					Err:    ctx.Err(),
				}
			}
			break Loop
		default:
		}

		wg.Add(1)

		// Acquire the semaphore before spawning to bound the number
		// of active goroutines.
		sem <- struct{}{}

		go func(idx int, d string) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if rec := recover(); rec != nil {
					results[idx] = Record{
						Domain: d,
						State:  StateFailed,
						Err:    fmt.Errorf("%w: %v", ErrInternalPanic, rec),
					}
				}
			}()

			record, err := r.Resolve(ctx, d)
			if err != nil {
				record = Record{Domain: normalizeDomain(d), State: StateFailed, Err: err}
			}
			results[idx] = record
		}(i, domain)
	}

	wg.Wait()
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, nil
}

// FlushCache clears all cached resolution results.
func (r *Resolver) FlushCache() {
	if r.cache != nil {
		r.cache.Flush()
	}
}

// resolveChain walks the enabled provider order for a domain and
// returns the first successful record, or an aggregated failure after
// exhausting the chain.
func (r *Resolver) resolveChain(ctx context.Context, domain string) Record {
	enabled := r.enabledProviders(r.strategyFor(topLevelLabel(domain)))
	if len(enabled) == 0 {
		return Record{Domain: domain, State: StateFailed, Err: ErrNoProviders}
	}

	var lastErr error
	for i, id := range enabled {
		ext, err := r.query(ctx, id, domain)
		if err == nil {
			return r.finalize(ctx, domain, id, ext)
		}
		lastErr = fmt.Errorf("%s: %w", id, err)

		if !r.allowFallback {
			break
		}

		// Rate-limit pause before the next provider; skipped when the
		// chain is exhausted.
		if i < len(enabled)-1 {
			if delay := r.providers[id].Delay; delay > 0 {
				if serr := r.sleep(ctx, delay); serr != nil {
					lastErr = serr
					break
				}
			}
		}
	}

	return Record{
		Domain: domain,
		State:  StateFailed,
		Err:    fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr),
	}
}

// query dispatches to one provider adapter. The provider set is
// closed; an unknown identifier is a configuration bug.
func (r *Resolver) query(ctx context.Context, id ProviderID, domain string) (extraction, error) {
	switch id {
	case ProviderStandard:
		return r.standardLookup(ctx, domain)
	case ProviderWhoisXML:
		return r.whoisXMLLookup(ctx, domain)
	case ProviderIP2Whois:
		return r.ip2whoisLookup(ctx, domain)
	default:
		return extraction{}, fmt.Errorf("%w: unknown provider %q", ErrNoProviders, id)
	}
}

// finalize turns an adapter extraction into the canonical Record:
// status reduction, optional NS probe, DNS provider inference, and
// lifecycle classification.
func (r *Resolver) finalize(ctx context.Context, domain string, id ProviderID, ext extraction) Record {
	if ext.unregistered {
		return Record{
			Domain:   domain,
			State:    StateUnregistered,
			Provider: id,
		}
	}

	nameServers := ext.nameServers
	if r.nsFallback && len(nameServers) == 0 {
		// Best effort only; a failed probe never degrades the record.
		if probed, err := queryNameServers(ctx, r.dnsClient, domain, r.dnsResolverAddr); err == nil {
			nameServers = probed
		}
	}

	hasRegistrationData := ext.registrar != "" || len(ext.statusLines) > 0

	return Record{
		Domain:      domain,
		Registrar:   ext.registrar,
		CreatedAt:   ext.createdAt,
		ExpiresAt:   ext.expiresAt,
		StatusLabel: reduceStatusLines(ext.statusLines),
		NameServers: nameServers,
		DNSProvider: inferDNSProvider(nameServers),
		State:       classify(ext.expiresAt, false, hasRegistrationData, r.now(), r.windowDays),
		Provider:    id,
	}
}

// sleepContext pauses for d or until the context is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
