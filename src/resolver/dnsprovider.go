// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import "strings"

// dnsProviderPatterns maps name-server substrings to friendly DNS
// provider names. Checked in order against the concatenated,
// lowercased name-server list; first match wins.
var dnsProviderPatterns = []struct {
	pattern string
	label   string
}{
	{"cloudflare", "Cloudflare"},
	{"awsdns", "Amazon Route 53"},
	{"amazonaws", "Amazon Route 53"},
	{"dnspod", "DNSPod"},
	{"alidns", "Alibaba Cloud DNS"},
	{"hichina", "Alibaba Cloud DNS"},
	{"googledomains", "Google Domains"},
	{"google", "Google Cloud DNS"},
	{"azure-dns", "Azure DNS"},
	{"domaincontrol", "GoDaddy"},
	{"godaddy", "GoDaddy"},
	{"registrar-servers", "Namecheap"},
	{"namecheap", "Namecheap"},
	{"gandi", "Gandi"},
	{"ovh", "OVH"},
	{"vercel-dns", "Vercel"},
	{"nsone", "NS1"},
	{"dnsmadeeasy", "DNS Made Easy"},
	{"ultradns", "UltraDNS"},
	{"markmonitor", "MarkMonitor"},
	{"cloudns", "ClouDNS"},
	{"he.net", "Hurricane Electric"},
	{"digitalocean", "DigitalOcean"},
	{"linode", "Linode"},
}

// inferDNSProvider guesses the hosting/DNS provider from a list of
// name servers. When no known pattern matches, it derives a label from
// the registrable portion of the first name server (last two labels,
// capitalized). Empty input yields "". The guess is informational
// only, never authoritative.
func inferDNSProvider(nameServers []string) string {
	if len(nameServers) == 0 {
		return ""
	}

	joined := strings.ToLower(strings.Join(nameServers, " "))
	for _, p := range dnsProviderPatterns {
		if strings.Contains(joined, p.pattern) {
			return p.label
		}
	}

	// Fallback: "ns1.example-dns.net" → "Example-dns.net".
	first := strings.TrimSuffix(strings.ToLower(nameServers[0]), ".")
	labels := strings.Split(first, ".")
	if len(labels) < 2 {
		return capitalize(first)
	}
	base := labels[len(labels)-2]
	return capitalize(base) + "." + labels[len(labels)-1]
}

// capitalize upper-cases the first ASCII letter of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
