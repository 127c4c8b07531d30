// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"net/http"
	"time"

	"github.com/miekg/dns"
)

// Option is a functional option for configuring a [Resolver].
type Option func(*Resolver)

// WithProvider replaces the full configuration of one provider.
// Zero-valued fields disable the corresponding behavior, so callers
// normally start from sensible values rather than an empty struct.
func WithProvider(id ProviderID, cfg ProviderConfig) Option {
	return func(r *Resolver) {
		r.providers[id] = cfg
	}
}

// WithAPIKey sets the access credential for a REST provider. A REST
// provider without a credential is never attempted.
func WithAPIKey(id ProviderID, key string) Option {
	return func(r *Resolver) {
		cfg := r.providers[id]
		cfg.APIKey = key
		r.providers[id] = cfg
	}
}

// WithBaseURL overrides the endpoint of a REST provider. Mostly
// useful for proxies and tests.
func WithBaseURL(id ProviderID, baseURL string) Option {
	return func(r *Resolver) {
		cfg := r.providers[id]
		cfg.BaseURL = baseURL
		r.providers[id] = cfg
	}
}

// WithProviderDisabled switches a provider off entirely.
func WithProviderDisabled(id ProviderID) Option {
	return func(r *Resolver) {
		cfg := r.providers[id]
		cfg.Enabled = false
		r.providers[id] = cfg
	}
}

// WithFallbackOrder replaces the global provider order tried for
// domains without a per-TLD override.
// The default is standard, whoisxml, ip2whois.
func WithFallbackOrder(order ...ProviderID) Option {
	return func(r *Resolver) {
		if len(order) > 0 {
			r.order = order
		}
	}
}

// WithTLDOverride sets an explicit provider order for one top-level
// label (e.g. "io"). Domains under other labels keep the global order.
func WithTLDOverride(tld string, order ...ProviderID) Option {
	return func(r *Resolver) {
		if tld != "" && len(order) > 0 {
			r.overrides[tld] = order
		}
	}
}

// WithoutFallback surfaces the first provider's failure immediately
// instead of continuing down the chain.
func WithoutFallback() Option {
	return func(r *Resolver) {
		r.allowFallback = false
	}
}

// WithMaxAttempts sets how many times the standard WHOIS lookup is
// tried before giving up. The default is 3 attempts.
func WithMaxAttempts(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithLookupTimeout sets the per-attempt timeout for the standard
// WHOIS lookup. The default is 15 seconds.
func WithLookupTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			cfg := r.providers[ProviderStandard]
			cfg.Timeout = d
			r.providers[ProviderStandard] = cfg
		}
	}
}

// WithWhoisClient sets a custom [WhoisClient] for the standard lookup.
// This allows routing queries through a proxy or substituting a mock.
//
// Passing nil is a no-op and the default TCP client will be used.
func WithWhoisClient(client WhoisClient) Option {
	return func(r *Resolver) {
		if client != nil {
			r.whois = client
		}
	}
}

// WithWhoisServer adds or replaces the WHOIS server used for one TLD.
// Two-label entries such as "co.uk" take precedence over the bare TLD.
func WithWhoisServer(tld, server string) Option {
	return func(r *Resolver) {
		if tld == "" || server == "" {
			return
		}
		// The default map is shared; copy on first write.
		servers := make(map[string]string, len(r.whoisServers)+1)
		for k, v := range r.whoisServers {
			servers[k] = v
		}
		servers[tld] = server
		r.whoisServers = servers
	}
}

// WithHTTPClient sets a custom [http.Client] for the REST providers,
// allowing full transport control (proxies, TLS configuration,
// connection pooling).
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// WithNSFallback enables a direct DNS NS query when the winning
// provider returned no name servers. The probe is best effort: its
// failure never degrades the record. resolverAddr is the recursive
// resolver to ask ("host" or "host:port"); pass "" to keep the
// default public resolver.
func WithNSFallback(resolverAddr string) Option {
	return func(r *Resolver) {
		r.nsFallback = true
		if resolverAddr != "" {
			r.dnsResolverAddr = resolverAddr
		}
	}
}

// WithDNSClient sets a custom [dns.Client] for the NS fallback probe
// (TCP transport, DNS-over-TLS, custom dialers).
//
// Passing nil is a no-op and the default UDP client will be used.
func WithDNSClient(client *dns.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.dnsClient = client
		}
	}
}

// WithCache sets a custom [Cache] implementation.
// By default, the resolver uses an in-memory cache with a 10-minute TTL.
//
// Pass nil to disable caching entirely.
func WithCache(cache Cache) Option {
	return func(r *Resolver) {
		r.cache = cache
		if cache == nil {
			r.cacheTTL = 0
		}
	}
}

// WithCacheTTL sets the TTL for the built-in in-memory cache.
// This has no effect if a custom cache is set via [WithCache].
// The default is 10 minutes.
func WithCacheTTL(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.cacheTTL = d
		}
	}
}

// WithConcurrency sets the maximum number of concurrent resolutions
// in [Resolver.ResolveAll]. The default is 10; upstream rate limits
// punish higher values quickly.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithExpiringWindow sets how many days before expiry a domain is
// classified as expiring. The default is 30 days.
func WithExpiringWindow(days int) Option {
	return func(r *Resolver) {
		if days > 0 {
			r.windowDays = days
		}
	}
}
