// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ip2whoisResponse is the wire shape of the IP2WHOIS lookup service.
// Unlike WhoisXML, the fields arrive pre-structured; unregistered
// domains are signaled by a status sentinel or an error object.
type ip2whoisResponse struct {
	Domain     string `json:"domain"`
	Status     string `json:"status"`
	CreateDate string `json:"create_date"`
	ExpireDate string `json:"expire_date"`
	Registrar  struct {
		Name string `json:"name"`
	} `json:"registrar"`
	Nameservers []string `json:"nameservers"`
	Error       *struct {
		Code    int    `json:"error_code"`
		Message string `json:"error_message"`
	} `json:"error"`
}

// ip2whoisLookup queries the IP2WHOIS REST endpoint and maps its
// structured fields onto the canonical extraction shape. Status
// strings and dates pass through the same reducers as free-text
// output, so callers cannot distinguish provider origin except via
// the record's Provider field.
func (r *Resolver) ip2whoisLookup(ctx context.Context, domain string) (extraction, error) {
	cfg := r.providers[ProviderIP2Whois]
	if cfg.APIKey == "" {
		return extraction{}, ErrMissingCredential
	}

	q := url.Values{}
	q.Set("key", cfg.APIKey)
	q.Set("domain", domain)
	q.Set("format", "json")

	body, err := r.getJSON(ctx, cfg.BaseURL+"?"+q.Encode(), cfg.Timeout)
	if err != nil {
		return extraction{}, err
	}

	var resp ip2whoisResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return extraction{}, fmt.Errorf("%w: malformed ip2whois response: %v", ErrUpstream, err)
	}

	if resp.Error != nil {
		if containsUnregisteredPhrase(resp.Error.Message) {
			return extraction{unregistered: true}, nil
		}
		return extraction{}, fmt.Errorf("%w: ip2whois: %s (code %d)", ErrUpstream, resp.Error.Message, resp.Error.Code)
	}

	if strings.EqualFold(resp.Status, "UNREGISTERED") || containsUnregisteredPhrase(resp.Status) {
		return extraction{unregistered: true}, nil
	}

	if resp.Domain == "" && resp.Registrar.Name == "" && resp.ExpireDate == "" && len(resp.Nameservers) == 0 {
		return extraction{}, fmt.Errorf("%w: ip2whois: unexpected response shape", ErrUpstream)
	}

	ext := extraction{
		registrar: resp.Registrar.Name,
		createdAt: normalizeDate(resp.CreateDate),
		expiresAt: normalizeDate(resp.ExpireDate),
	}
	if strings.TrimSpace(resp.Status) != "" {
		ext.statusLines = append(ext.statusLines, resp.Status)
	}
	for _, ns := range resp.Nameservers {
		ns = strings.ToLower(strings.TrimSpace(ns))
		if ns != "" {
			ext.nameServers = append(ext.nameServers, ns)
		}
	}

	return ext, nil
}
