// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// defaultEDNS0Size is the recommended UDP buffer size to prevent IP
// fragmentation. See https://dnsflagday.net/2020/
const defaultEDNS0Size = 1232

// queryNameServers asks the configured recursive resolver for the NS
// records of a domain. It respects context cancellation and returns
// the name servers lowercased without trailing dots, in response order.
func queryNameServers(ctx context.Context, client *dns.Client, domain, server string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeNS)
	msg.RecursionDesired = true
	msg.SetEdns0(defaultEDNS0Size, false)

	if !strings.Contains(server, ":") {
		server += ":53"
	}

	// Run the exchange in a goroutine so we can respect context
	// cancellation even when the client blocks.
	type dnsResult struct {
		msg *dns.Msg
		err error
	}
	ch := make(chan dnsResult, 1)

	go func() {
		resp, _, err := client.ExchangeContext(ctx, msg, server)
		ch <- dnsResult{msg: resp, err: err}
	}()

	var resp *dns.Msg
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrLookupTimeout, ctx.Err())
	case result := <-ch:
		if result.err != nil {
			return nil, result.err
		}
		resp = result.msg
	}

	if resp == nil || resp.Rcode != dns.RcodeSuccess {
		if resp != nil {
			return nil, fmt.Errorf("ns query: unexpected response code: %d", resp.Rcode)
		}
		return nil, fmt.Errorf("ns query: nil response")
	}

	var servers []string
	seen := make(map[string]struct{})
	for _, rr := range resp.Answer {
		ns, ok := rr.(*dns.NS)
		if !ok {
			continue
		}
		host := strings.TrimSuffix(strings.ToLower(ns.Ns), ".")
		if host == "" {
			continue
		}
		if _, dup := seen[host]; !dup {
			seen[host] = struct{}{}
			servers = append(servers, host)
		}
	}

	return servers, nil
}
