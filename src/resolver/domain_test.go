// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"strings"
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		// Valid domains
		{"standard domain", "example.com", true},
		{"subdomain", "www.example.com", true},
		{"single char label", "x.com", true},
		{"numeric label", "123.com", true},
		{"hyphenated label", "ex-ample.com", true},
		{"case insensitive", "EXAMPLE.COM", true},
		{"FQDN with trailing dot", "example.com.", true},
		{"underscore in label", "exa_mple.com", true},
		{"punycode TLD", "example.xn--p1ai", true},
		{"punycode SLD", "xn--mgbh0fb.com", true},
		{"two-letter ccTLD", "example.id", true},

		// Invalid domains
		{"empty string", "", false},
		{"no TLD", "localhost", false},
		{"start with hyphen", "-example.com", false},
		{"end with hyphen", "example-.com", false},
		{"consecutive dots", "example..com", false},
		{"start with dot", ".example.com", false},
		{"spaces", "example .com", false},
		{"invalid char", "exa!mple.com", false},
		{"single-letter TLD", "example.c", false},
		{"TLD with digits", "example.c0m", false},
		{"TLD with hyphen", "example.c-m", false},
		{"TLD with underscore", "example.c_m", false},
		{"bare punycode prefix TLD", "example.xn--", false},
		{"too long label", "example." + strings.Repeat("a", 64) + ".com", false},
		{"double trailing dot", "example.com..", false},
		{"raw unicode", "пример.рф", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDomain(tt.domain); got != tt.want {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"lowercase passthrough", "example.com", "example.com"},
		{"uppercase", "EXAMPLE.COM", "example.com"},
		{"surrounding whitespace", "  example.com\t", "example.com"},
		{"unicode to punycode", "пример.рф", "xn--e1afmkfd.xn--p1ai"},
		{"mixed unicode", "Пример.РФ", "xn--e1afmkfd.xn--p1ai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDomain(tt.domain); got != tt.want {
				t.Errorf("normalizeDomain(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestTopLevelLabel(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"example.com", "com"},
		{"sub.example.co.uk", "uk"},
		{"example.IO", "io"},
		{"example.com.", "com"},
		{"single", "single"},
	}

	for _, tt := range tests {
		if got := topLevelLabel(tt.domain); got != tt.want {
			t.Errorf("topLevelLabel(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}
