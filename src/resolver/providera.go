// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// whoisXMLResponse is the wire shape of the WhoisXML lookup service.
// Successful responses embed a raw WHOIS text block; failures carry an
// ErrorMessage object instead.
type whoisXMLResponse struct {
	WhoisRecord *struct {
		DomainName   string `json:"domainName"`
		RawText      string `json:"rawText"`
		RegistryData struct {
			RawText string `json:"rawText"`
		} `json:"registryData"`
		DataError string `json:"dataError"`
	} `json:"WhoisRecord"`
	ErrorMessage *struct {
		Code string `json:"errorCode"`
		Msg  string `json:"msg"`
	} `json:"ErrorMessage"`
}

// whoisXMLLookup queries the WhoisXML REST endpoint and runs the
// embedded WHOIS text block through the shared field extractor, so its
// records are indistinguishable from standard-lookup ones except for
// the source provider.
func (r *Resolver) whoisXMLLookup(ctx context.Context, domain string) (extraction, error) {
	cfg := r.providers[ProviderWhoisXML]
	if cfg.APIKey == "" {
		return extraction{}, ErrMissingCredential
	}

	q := url.Values{}
	q.Set("apiKey", cfg.APIKey)
	q.Set("domainName", domain)
	q.Set("outputFormat", "JSON")

	body, err := r.getJSON(ctx, cfg.BaseURL+"?"+q.Encode(), cfg.Timeout)
	if err != nil {
		return extraction{}, err
	}

	var resp whoisXMLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return extraction{}, fmt.Errorf("%w: malformed whoisxml response: %v", ErrUpstream, err)
	}

	if resp.ErrorMessage != nil {
		msg := resp.ErrorMessage.Msg
		if containsUnregisteredPhrase(msg) {
			return extraction{unregistered: true}, nil
		}
		return extraction{}, fmt.Errorf("%w: whoisxml: %s", ErrUpstream, msg)
	}
	if resp.WhoisRecord == nil {
		return extraction{}, fmt.Errorf("%w: whoisxml: unexpected response shape", ErrUpstream)
	}

	// MISSING_WHOIS_DATA and friends signal an unregistered domain.
	if containsUnregisteredPhrase(resp.WhoisRecord.DataError) {
		return extraction{unregistered: true}, nil
	}

	rawText := resp.WhoisRecord.RawText
	if strings.TrimSpace(rawText) == "" {
		rawText = resp.WhoisRecord.RegistryData.RawText
	}
	if strings.TrimSpace(rawText) == "" {
		return extraction{}, fmt.Errorf("%w: whoisxml: no whois text in response", ErrEmptyResponse)
	}

	return extractFields(rawText), nil
}

// getJSON performs one authenticated GET with a per-request timeout
// and maps HTTP-level failures onto the error taxonomy.
func (r *Resolver) getJSON(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrUpstream, resp.StatusCode, truncate(string(body), 200))
	}

	return body, nil
}

// truncate shortens s to at most n runes for error messages.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
