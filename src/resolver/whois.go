// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// WhoisClient performs a raw registration lookup (RFC 3912) against a
// WHOIS server. Implement this interface to substitute a proxy,
// a caching layer, or a mock for testing.
type WhoisClient interface {
	// Lookup sends domain to server ("host" or "host:port") and
	// returns the raw multi-line response. It must respect ctx
	// cancellation and deadlines.
	Lookup(ctx context.Context, domain, server string) (string, error)
}

// netWhoisClient is the default WhoisClient over plain TCP port 43.
type netWhoisClient struct {
	dialer net.Dialer
}

// Lookup dials the WHOIS server, writes the bare domain query, and
// reads the response until the server closes the connection.
func (c *netWhoisClient) Lookup(ctx context.Context, domain, server string) (string, error) {
	if !strings.Contains(server, ":") {
		server += ":43"
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", server)
	if err != nil {
		return "", fmt.Errorf("whois dial %s: %w", server, err)
	}
	defer conn.Close()

	// Propagate the context deadline onto the connection so reads
	// cannot outlive the per-attempt timeout.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", domain); err != nil {
		return "", fmt.Errorf("whois write: %w", err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}

	data, err := io.ReadAll(conn)
	if err != nil && !errors.Is(err, io.EOF) {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return "", fmt.Errorf("%w: %v", ErrLookupTimeout, err)
		}
		// Servers that drop the connection mid-read are treated as
		// having sent an empty payload; the executor retries those.
		if len(data) == 0 {
			return "", nil
		}
		return "", fmt.Errorf("whois read: %w", err)
	}

	return string(data), nil
}

// defaultWhoisServers maps common TLDs to their WHOIS servers.
// Two-label entries (e.g. "co.uk") take precedence over the bare TLD.
// Unknown TLDs fall through to the IANA server, which answers for
// every delegated TLD.
var defaultWhoisServers = map[string]string{
	"ac":    "whois.nic.ac",
	"ai":    "whois.nic.ai",
	"app":   "whois.nic.google",
	"au":    "whois.auda.org.au",
	"biz":   "whois.biz",
	"ca":    "whois.cira.ca",
	"cc":    "ccwhois.verisign-grs.com",
	"cn":    "whois.cnnic.cn",
	"co":    "whois.nic.co",
	"co.uk": "whois.nic.uk",
	"com":   "whois.verisign-grs.com",
	"de":    "whois.denic.de",
	"dev":   "whois.nic.google",
	"fr":    "whois.nic.fr",
	"hk":    "whois.hkirc.hk",
	"id":    "whois.id",
	"info":  "whois.afilias.net",
	"io":    "whois.nic.io",
	"jp":    "whois.jprs.jp",
	"kr":    "whois.kr",
	"me":    "whois.nic.me",
	"net":   "whois.verisign-grs.com",
	"org":   "whois.pir.org",
	"ru":    "whois.tcinet.ru",
	"sh":    "whois.nic.sh",
	"tv":    "tvwhois.verisign-grs.com",
	"uk":    "whois.nic.uk",
	"us":    "whois.nic.us",
	"xyz":   "whois.nic.xyz",
}

// fallbackWhoisServer answers for any delegated TLD, with reduced detail.
const fallbackWhoisServer = "whois.iana.org"

// whoisServerFor picks the WHOIS server for a domain, preferring a
// two-label TLD entry (co.uk) over the bare TLD (uk).
func whoisServerFor(domain string, servers map[string]string) string {
	labels := strings.Split(strings.TrimSuffix(domain, "."), ".")
	if len(labels) >= 3 {
		two := strings.ToLower(labels[len(labels)-2] + "." + labels[len(labels)-1])
		if srv, ok := servers[two]; ok {
			return srv
		}
	}
	if srv, ok := servers[strings.ToLower(labels[len(labels)-1])]; ok {
		return srv
	}
	return fallbackWhoisServer
}

// Backoff bounds for the retrying executor.
const (
	backoffBase = time.Second
	backoffCap  = 5 * time.Second
)

// standardLookup runs the WHOIS adapter under the retrying executor:
// each attempt gets its own timeout, failures (including empty or
// whitespace-only payloads) back off exponentially, and a non-empty
// payload short-circuits immediately.
func (r *Resolver) standardLookup(ctx context.Context, domain string) (extraction, error) {
	cfg := r.providers[ProviderStandard]
	server := whoisServerFor(domain, r.whoisServers)

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if attempt > 1 {
			// 1s, 2s, 4s, ... capped.
			backoff := min(backoffBase<<uint(attempt-2), backoffCap)
			if err := r.sleep(ctx, backoff); err != nil {
				return extraction{}, err
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		payload, err := r.whois.Lookup(attemptCtx, domain, server)
		cancel()

		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(payload) == "" {
			lastErr = ErrEmptyResponse
			continue
		}

		return extractFields(payload), nil
	}

	return extraction{}, fmt.Errorf("whois lookup failed after %d attempts: %w", r.maxAttempts, lastErr)
}
