// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHandler wraps a canned JSON body and counts hits.
func countingHandler(body string) (http.HandlerFunc, *atomic.Int32) {
	var hits atomic.Int32
	return func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, body)
	}, &hits
}

const whoisXMLSuccess = `{"WhoisRecord":{"domainName":"example.com","rawText":"Registrar: Rest Registrar\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"}}`

const ip2whoisSuccess = `{"domain":"example.com","registrar":{"name":"Structured Registrar"},"expire_date":"2030-01-01T00:00:00Z","nameservers":["ns1.structured.example"],"status":"clientTransferProhibited"}`

func TestResolveFallbackOrderOverride(t *testing.T) {
	// Override puts the REST providers first, but neither has a
	// credential, so only the standard lookup may run.
	client := &scriptedWhoisClient{
		payloads: []string{"Registrar: Only Standard\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"},
		errs:     []error{nil},
	}
	r := New(
		WithWhoisClient(client),
		WithCache(nil),
		WithTLDOverride("dev", ProviderIP2Whois, ProviderWhoisXML, ProviderStandard),
	)
	sleepRecorder(r)

	rec, err := r.Resolve(context.Background(), "example.dev")
	require.NoError(t, err)
	require.NoError(t, rec.Err)
	assert.Equal(t, ProviderStandard, rec.Provider)
	assert.Equal(t, "Only Standard", rec.Registrar)
	assert.Equal(t, 1, client.calls)
}

func TestResolveFirstSuccessShortCircuits(t *testing.T) {
	xmlHandler, xmlHits := countingHandler(whoisXMLSuccess)
	xmlSrv := httptest.NewServer(xmlHandler)
	defer xmlSrv.Close()

	ipHandler, ipHits := countingHandler(ip2whoisSuccess)
	ipSrv := httptest.NewServer(ipHandler)
	defer ipSrv.Close()

	client := &scriptedWhoisClient{payloads: []string{""}, errs: []error{errors.New("unreachable")}}

	r := New(
		WithWhoisClient(client),
		WithCache(nil),
		WithAPIKey(ProviderWhoisXML, "k"), WithBaseURL(ProviderWhoisXML, xmlSrv.URL),
		WithAPIKey(ProviderIP2Whois, "k"), WithBaseURL(ProviderIP2Whois, ipSrv.URL),
		WithFallbackOrder(ProviderWhoisXML, ProviderIP2Whois, ProviderStandard),
	)
	sleepRecorder(r)

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.NoError(t, rec.Err)
	assert.Equal(t, ProviderWhoisXML, rec.Provider)
	assert.Equal(t, int32(1), xmlHits.Load())
	assert.Equal(t, int32(0), ipHits.Load(), "later providers never invoked after a success")
	assert.Equal(t, 0, client.calls)
}

func TestResolveFallsThroughToNextProvider(t *testing.T) {
	client := &scriptedWhoisClient{payloads: []string{""}, errs: []error{errors.New("port 43 filtered")}}

	ipHandler, ipHits := countingHandler(ip2whoisSuccess)
	ipSrv := httptest.NewServer(ipHandler)
	defer ipSrv.Close()

	r := New(
		WithWhoisClient(client),
		WithCache(nil),
		WithAPIKey(ProviderIP2Whois, "k"), WithBaseURL(ProviderIP2Whois, ipSrv.URL),
		WithProviderDisabled(ProviderWhoisXML),
	)
	slept := sleepRecorder(r)

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.NoError(t, rec.Err)
	assert.Equal(t, ProviderIP2Whois, rec.Provider)
	assert.Equal(t, "Structured Registrar", rec.Registrar)
	assert.Equal(t, int32(1), ipHits.Load())

	// Retry backoffs (1s, 2s) plus the standard provider's
	// rate-limit delay before falling through.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, defaultProviderDelay}, *slept)
}

func TestResolveWithoutFallbackSurfacesFirstFailure(t *testing.T) {
	client := &scriptedWhoisClient{payloads: []string{""}, errs: []error{errors.New("refused")}}

	ipHandler, ipHits := countingHandler(ip2whoisSuccess)
	ipSrv := httptest.NewServer(ipHandler)
	defer ipSrv.Close()

	r := New(
		WithWhoisClient(client),
		WithCache(nil),
		WithAPIKey(ProviderIP2Whois, "k"), WithBaseURL(ProviderIP2Whois, ipSrv.URL),
		WithoutFallback(),
	)
	sleepRecorder(r)

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Error(t, rec.Err)
	assert.Equal(t, StateFailed, rec.State)
	assert.ErrorIs(t, rec.Err, ErrAllProvidersFailed)
	assert.Contains(t, rec.Err.Error(), "refused")
	assert.Equal(t, int32(0), ipHits.Load(), "fallback disabled: second provider never tried")
}

func TestResolveAllProvidersExhausted(t *testing.T) {
	client := &scriptedWhoisClient{payloads: []string{""}, errs: []error{errors.New("down")}}

	r := New(WithWhoisClient(client), WithCache(nil))
	sleepRecorder(r)

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Error(t, rec.Err)
	assert.Equal(t, StateFailed, rec.State)
	assert.ErrorIs(t, rec.Err, ErrAllProvidersFailed)
	assert.Empty(t, rec.Registrar)
	assert.Nil(t, rec.ExpiresAt)
	assert.False(t, rec.Success())
}

func TestResolveNoProvidersEnabled(t *testing.T) {
	r := New(
		WithCache(nil),
		WithProviderDisabled(ProviderStandard),
		WithProviderDisabled(ProviderWhoisXML),
		WithProviderDisabled(ProviderIP2Whois),
	)

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, rec.Err, ErrNoProviders)
	assert.Equal(t, StateFailed, rec.State)
}

func TestResolveUnregisteredDomain(t *testing.T) {
	client := &scriptedWhoisClient{
		payloads: []string{`No match for domain "FREE-EXAMPLE.COM".` + "\nName Server: ignored.example\n"},
		errs:     []error{nil},
	}
	r := New(WithWhoisClient(client), WithCache(nil))

	rec, err := r.Resolve(context.Background(), "free-example.com")
	require.NoError(t, err)
	require.NoError(t, rec.Err)
	assert.Equal(t, StateUnregistered, rec.State)
	assert.Empty(t, rec.Registrar)
	assert.Nil(t, rec.ExpiresAt)
	assert.Empty(t, rec.NameServers)
	assert.Empty(t, rec.StatusLabel)
}

func TestResolveParseAmbiguityClassifiesFailed(t *testing.T) {
	// A payload with nothing extractable (not even an unregistered
	// marker) produces a failed lifecycle state, not an error.
	client := &scriptedWhoisClient{
		payloads: []string{"% Quota exceeded, try again later\n% This is not real whois output\n"},
		errs:     []error{nil},
	}
	r := New(WithWhoisClient(client), WithCache(nil))

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.NoError(t, rec.Err, "a payload was received; not a provider failure")
	assert.Equal(t, StateFailed, rec.State)
}

func TestResolveCacheHit(t *testing.T) {
	client := &scriptedWhoisClient{
		payloads: []string{"Registrar: Cached Registrar\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"},
		errs:     []error{nil},
	}
	r := New(WithWhoisClient(client), WithCacheTTL(time.Minute))

	first, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "EXAMPLE.COM")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "second resolve served from cache")
	assert.Equal(t, first, second)

	r.FlushCache()
	_, err = r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls, "flushed cache forces a fresh lookup")
}

func TestResolveDoesNotCacheFailures(t *testing.T) {
	client := &scriptedWhoisClient{
		payloads: []string{"", "Registrar: Back Online\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"},
		errs:     []error{errors.New("down"), nil},
	}
	r := New(
		WithWhoisClient(client),
		WithCacheTTL(time.Minute),
		WithMaxAttempts(1),
	)
	sleepRecorder(r)

	first, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Error(t, first.Err)

	second, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.NoError(t, second.Err)
	assert.Equal(t, "Back Online", second.Registrar)
}

func TestFinalizeEndToEndScenario(t *testing.T) {
	client := &scriptedWhoisClient{
		payloads: []string{"Registrar: Example Registrar, Inc.\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"},
		errs:     []error{nil},
	}
	r := New(WithWhoisClient(client), WithCache(nil))

	rec, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.NoError(t, rec.Err)
	assert.Equal(t, "Example Registrar, Inc.", rec.Registrar)
	assert.Equal(t, StateNormal, rec.State)
	assert.Empty(t, rec.StatusLabel, "no status lines present")
	assert.Equal(t, ProviderStandard, rec.Provider)
}

func TestResolveAllPreservesOrder(t *testing.T) {
	client := &scriptedWhoisClient{
		payloads: []string{"Registrar: Batch Registrar\nRegistry Expiry Date: 2030-01-01T00:00:00Z\n"},
		errs:     []error{nil},
	}
	r := New(WithWhoisClient(client), WithCache(nil), WithConcurrency(2))

	results, err := r.ResolveAll(context.Background(), "a.com", "not_a_domain!", "b.com")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "a.com", results[0].Domain)
	assert.NoError(t, results[0].Err)

	assert.ErrorIs(t, results[1].Err, ErrInvalidDomain, "invalid domains fail in place, batch continues")
	assert.Equal(t, StateFailed, results[1].State)

	assert.Equal(t, "b.com", results[2].Domain)
	assert.NoError(t, results[2].Err)
}

// panickyWhoisClient simulates a buggy custom client.
type panickyWhoisClient struct{}

func (panickyWhoisClient) Lookup(context.Context, string, string) (string, error) {
	panic("custom client bug")
}

func TestResolveAllRecoversPanics(t *testing.T) {
	r := New(WithWhoisClient(panickyWhoisClient{}), WithCache(nil))

	results, err := r.ResolveAll(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrInternalPanic)
	assert.Equal(t, StateFailed, results[0].State)
}

func TestResolveAllCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(WithCache(nil))
	results, err := r.ResolveAll(ctx, "a.com", "b.com")
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, rec := range results {
		assert.Error(t, rec.Err)
	}
}
