// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"strings"

	"golang.org/x/net/idna"
)

// IsValidDomain reports whether domain is a syntactically valid domain name.
//
// A valid domain must have at least two labels separated by dots,
// each label must be 1-63 characters long, contain only ASCII
// letters, digits, hyphens, or underscores, and must not start or end
// with a hyphen. The TLD (last label) must be at least 2 characters
// and contain only letters, unless it is a Punycode A-label ("xn--").
// A single trailing dot (FQDN form) is accepted.
func IsValidDomain(domain string) bool {
	if domain == "" {
		return false
	}

	// Accept FQDN form with one trailing dot.
	domain = strings.TrimSuffix(domain, ".")
	if domain == "" || len(domain) > 253 {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}

	for i, label := range labels {
		if len(label) < 1 || len(label) > 63 {
			return false
		}

		// Labels must not start or end with a hyphen.
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}

		isTLD := i == len(labels)-1
		if isTLD && len(label) < 2 {
			return false
		}

		// Punycode TLDs carry digits and hyphens past the prefix.
		isPunycodeTLD := isTLD && strings.HasPrefix(strings.ToLower(label), "xn--")
		if isPunycodeTLD && len(label) == 4 {
			return false // bare "xn--" prefix
		}

		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z':
				// ok
			case c >= 'A' && c <= 'Z':
				// ok
			case c >= '0' && c <= '9':
				if isTLD && !isPunycodeTLD {
					return false // TLD must be letters only.
				}
			case c == '-':
				if isTLD && !isPunycodeTLD {
					return false
				}
			case c == '_':
				// Underscores occur in real-world host names
				// (service records, AMP caches). Never in a TLD.
				if isTLD {
					return false
				}
			default:
				return false
			}
		}
	}

	return true
}

// normalizeDomain lowercases, trims, and converts a domain name to its
// ASCII (Punycode) form. Unicode input that cannot be converted is
// returned lowercased as-is and will fail validation downstream.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))

	// Fast path: already ASCII.
	ascii := true
	for i := 0; i < len(domain); i++ {
		if domain[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return domain
	}

	converted, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return domain
	}
	return converted
}

// topLevelLabel returns the rightmost label of a domain name,
// lowercased, ignoring a trailing dot. Used to select the provider
// strategy and the WHOIS server.
func topLevelLabel(domain string) string {
	domain = strings.TrimSuffix(domain, ".")
	if idx := strings.LastIndex(domain, "."); idx >= 0 {
		return strings.ToLower(domain[idx+1:])
	}
	return strings.ToLower(domain)
}
