// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"regexp"
	"strings"
)

// maxStatusLabels caps how many status tokens survive reduction.
const maxStatusLabels = 3

// statusTokens maps EPP-style status codes to short human-readable
// labels. Checked in order by case-insensitive substring containment
// against the whitespace-stripped status line, so more specific tokens
// must precede their substrings (e.g. "pendingdelete" before
// "pending", "locked" before "ok").
var statusTokens = []struct {
	token string
	label string
}{
	{"clienttransferprohibited", "Transfer Prohibited"},
	{"servertransferprohibited", "Transfer Prohibited"},
	{"clientdeleteprohibited", "Delete Prohibited"},
	{"serverdeleteprohibited", "Delete Prohibited"},
	{"clientupdateprohibited", "Update Prohibited"},
	{"serverupdateprohibited", "Update Prohibited"},
	{"clientrenewprohibited", "Renew Prohibited"},
	{"serverrenewprohibited", "Renew Prohibited"},
	{"clienthold", "Client Hold"},
	{"serverhold", "Registry Hold"},
	{"redemptionperiod", "Redemption Period"},
	{"pendingdelete", "Pending Delete"},
	{"pendingtransfer", "Pending Transfer"},
	{"pendingrestore", "Pending Restore"},
	{"pending", "Pending"},
	{"autorenewperiod", "Auto-Renew Grace"},
	{"addperiod", "Add Grace"},
	{"expired", "Expired"},
	{"inactive", "Inactive"},
	{"locked", "Locked"},
	{"active", "Active"},
	{"ok", "Active"},
}

var (
	statusURLRe    = regexp.MustCompile(`https?://\S+`)
	statusPrefixRe = regexp.MustCompile(`(?i)^\s*(domain\s+)?status:\s*`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// reduceStatusLines collapses raw status lines into at most three
// comma-joined human-readable labels. URLs, parentheticals, and the
// "Domain Status:" prefix are stripped before token matching;
// unrecognized tokens are truncated to 20 characters. Labels are
// deduplicated preserving first-seen order. Empty input yields "".
func reduceStatusLines(lines []string) string {
	var labels []string
	seen := make(map[string]struct{})

	for _, line := range lines {
		cleaned := statusPrefixRe.ReplaceAllString(line, "")
		cleaned = statusURLRe.ReplaceAllString(cleaned, "")
		cleaned = parentheticalRe.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			continue
		}

		label := statusLabelFor(cleaned)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
		if len(labels) == maxStatusLabels {
			break
		}
	}

	return strings.Join(labels, ", ")
}

// statusLabelFor maps one cleaned status token to its display label,
// falling back to a truncated copy of the raw token.
func statusLabelFor(cleaned string) string {
	compact := strings.ToLower(whitespaceRe.ReplaceAllString(cleaned, ""))
	for _, st := range statusTokens {
		if strings.Contains(compact, st.token) {
			return st.label
		}
	}

	if runes := []rune(cleaned); len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return cleaned
}
