// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/domain-resolver/src/resolver"
)

const reportSheet = "Domains"

var reportHeader = []string{
	"Domain", "State", "Registrar", "Created", "Expires",
	"Status", "Name Servers", "DNS Provider", "Provider", "Error",
}

// writeReport renders resolution results as an XLSX workbook with one
// row per domain.
func writeReport(path string, results []resolver.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(reportSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, rec := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheet, cell, &[]any{
			rec.Domain,
			string(rec.State),
			rec.Registrar,
			formatReportDate(rec.CreatedAt),
			formatReportDate(rec.ExpiresAt),
			rec.StatusLabel,
			strings.Join(rec.NameServers, ", "),
			rec.DNSProvider,
			string(rec.Provider),
			formatReportError(rec.Err),
		}); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "C", "G", 24); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func formatReportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatReportError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
