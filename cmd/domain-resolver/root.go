// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/domain-resolver/src/resolver"
)

// checkFlags holds the flag values for the check command.
type checkFlags struct {
	configPath  string
	inputPath   string
	reportPath  string
	timeout     time.Duration
	concurrency int
	windowDays  int
	noFallback  bool
	whoisXMLKey string
	ip2whoisKey string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "domain-resolver",
		Short:         "Resolve domain registration data and expiry state",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCheckCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [domains...]",
		Short: "Check registration state for one or more domains",
		Long: `Check resolves each domain through the configured provider chain
(WHOIS, then the REST providers when credentials are set) and prints
the registrar, expiry date, and lifecycle state. Domains may be given
as arguments or read from a file, one per line.`,
		Example: `  domain-resolver check example.com example.org
  domain-resolver check --file domains.txt --report expiry.xlsx
  domain-resolver check --config resolver.yaml example.io`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.Flags().StringVarP(&flags.inputPath, "file", "f", "", "read domains from a file, one per line")
	cmd.Flags().StringVarP(&flags.reportPath, "report", "r", "", "write an XLSX report to this path")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 5*time.Minute, "overall deadline for the whole batch")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "max concurrent lookups (0 = default)")
	cmd.Flags().IntVar(&flags.windowDays, "window", 0, "days before expiry to flag as expiring (0 = default)")
	cmd.Flags().BoolVar(&flags.noFallback, "no-fallback", false, "stop at the first provider instead of falling back")
	cmd.Flags().StringVar(&flags.whoisXMLKey, "whoisxml-key", os.Getenv("WHOISXML_API_KEY"), "WhoisXML API key (env WHOISXML_API_KEY)")
	cmd.Flags().StringVar(&flags.ip2whoisKey, "ip2whois-key", os.Getenv("IP2WHOIS_API_KEY"), "IP2WHOIS API key (env IP2WHOIS_API_KEY)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags checkFlags) error {
	domains := args
	if flags.inputPath != "" {
		fromFile, err := readDomainFile(flags.inputPath)
		if err != nil {
			return err
		}
		domains = append(domains, fromFile...)
	}
	if len(domains) == 0 {
		return fmt.Errorf("no domains given; pass them as arguments or via --file")
	}

	opts, err := buildOptions(flags)
	if err != nil {
		return err
	}
	r := resolver.New(opts...)

	ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
	defer cancel()

	results, err := r.ResolveAll(ctx, domains...)
	if err != nil {
		return fmt.Errorf("resolve batch: %w", err)
	}

	printResults(cmd, results)

	if flags.reportPath != "" {
		if err := writeReport(flags.reportPath, results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		cmd.Printf("\nReport written to %s\n", flags.reportPath)
	}

	for _, rec := range results {
		if rec.Err != nil {
			return fmt.Errorf("%d of %d domains failed", countFailed(results), len(results))
		}
	}
	return nil
}

// buildOptions layers flag-level settings on top of the optional
// config file; flags win where both set the same thing.
func buildOptions(flags checkFlags) ([]resolver.Option, error) {
	var opts []resolver.Option

	if flags.configPath != "" {
		cfg, err := resolver.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		fromFile, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fromFile...)
	}

	if flags.whoisXMLKey != "" {
		opts = append(opts, resolver.WithAPIKey(resolver.ProviderWhoisXML, flags.whoisXMLKey))
	}
	if flags.ip2whoisKey != "" {
		opts = append(opts, resolver.WithAPIKey(resolver.ProviderIP2Whois, flags.ip2whoisKey))
	}
	if flags.concurrency > 0 {
		opts = append(opts, resolver.WithConcurrency(flags.concurrency))
	}
	if flags.windowDays > 0 {
		opts = append(opts, resolver.WithExpiringWindow(flags.windowDays))
	}
	if flags.noFallback {
		opts = append(opts, resolver.WithoutFallback())
	}

	return opts, nil
}

// readDomainFile reads one domain per line, skipping blanks and
// #-comments.
func readDomainFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read domain file: %w", err)
	}
	defer f.Close()

	var domains []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read domain file: %w", err)
	}
	return domains, nil
}

func printResults(cmd *cobra.Command, results []resolver.Record) {
	for _, rec := range results {
		if rec.Err != nil {
			cmd.Printf("%-35s FAILED  %v\n", rec.Domain, rec.Err)
			continue
		}

		expiry := "-"
		if rec.ExpiresAt != nil {
			expiry = rec.ExpiresAt.Format("2006-01-02")
		}
		cmd.Printf("%-35s %-12s expires=%-10s registrar=%q\n",
			rec.Domain, rec.State, expiry, rec.Registrar)
	}
}

func countFailed(results []resolver.Record) int {
	n := 0
	for _, rec := range results {
		if rec.Err != nil {
			n++
		}
	}
	return n
}
