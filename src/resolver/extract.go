// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import "strings"

// Label variants matched line-by-line, case-insensitively, against
// free-form registration output. Ordering inside each list is the
// priority order for first-match-wins fields.
var (
	registrarLabels = []string{
		"registrar:",
		"registrar name:",
		"sponsoring registrar:",
	}

	nameServerLabels = []string{
		"name server:",
		"nameserver:",
		"nserver:",
		"dns:",
	}

	expiryLabels = []string{
		"registry expiry date:",
		"registrar registration expiration date:",
		"expiry date:",
		"expiration date:",
		"expiration time:",
		"expire date:",
		"expires on:",
		"expires:",
		"paid-till:",
		"valid until:",
		"renewal date:",
	}

	creationLabels = []string{
		"creation date:",
		"registration time:",
		"registered on:",
		"created on:",
		"created:",
	}
)

// unregisteredPhrases mark a payload as describing an unregistered
// domain. Matched case-insensitively against the full payload. Every
// adapter honors the same set so callers cannot distinguish provider
// origin from the unregistered signal.
var unregisteredPhrases = []string{
	"no match for domain",
	"no match for",
	"domain not found",
	"no data found",
	"no entries found",
	"no object found",
	"no objects found",
	"returned 0 objects",
	"object does not exist",
	"not been registered",
	"available for registration",
	"status: free",
	"status: available",
}

// containsUnregisteredPhrase reports whether text carries any of the
// known "domain does not exist" markers.
func containsUnregisteredPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range unregisteredPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// extractFields parses a block of free-form registration text into a
// partial record: registrar, creation and expiry dates, raw status
// lines, and name servers.
//
// Matching is line-by-line and case-insensitive. The registrar and the
// dates are first-match-wins (for dates, the first value that actually
// parses wins); status lines are collected in order without
// deduplication; name servers are deduplicated preserving insertion
// order.
//
// When the payload contains an unregistered marker, extraction
// short-circuits and every other field stays empty.
func extractFields(payload string) extraction {
	if containsUnregisteredPhrase(payload) {
		return extraction{unregistered: true}
	}

	var ext extraction
	seenNS := make(map[string]struct{})

	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if ext.registrar == "" && !strings.Contains(lower, "registration") {
			for _, label := range registrarLabels {
				if strings.HasPrefix(lower, label) {
					if v := strings.TrimSpace(line[len(label):]); v != "" {
						ext.registrar = v
					}
					break
				}
			}
		}

		for _, label := range nameServerLabels {
			if strings.HasPrefix(lower, label) {
				ns := strings.ToLower(strings.TrimSpace(line[len(label):]))
				// Some registries append IPs or "[ok]" markers.
				if fields := strings.Fields(ns); len(fields) > 0 {
					ns = fields[0]
				}
				ns = strings.TrimSuffix(ns, ".")
				if ns != "" && strings.Contains(ns, ".") {
					if _, dup := seenNS[ns]; !dup {
						seenNS[ns] = struct{}{}
						ext.nameServers = append(ext.nameServers, ns)
					}
				}
				break
			}
		}

		if strings.HasPrefix(lower, "domain status:") ||
			(strings.HasPrefix(lower, "status:") && !strings.Contains(lower, "dnssec")) {
			ext.statusLines = append(ext.statusLines, line)
		}

		if ext.expiresAt == nil {
			for _, label := range expiryLabels {
				if strings.HasPrefix(lower, label) {
					ext.expiresAt = normalizeDate(line[len(label):])
					break
				}
			}
		}

		if ext.createdAt == nil {
			for _, label := range creationLabels {
				if strings.HasPrefix(lower, label) {
					ext.createdAt = normalizeDate(line[len(label):])
					break
				}
			}
		}
	}

	return ext
}
