// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ReportPolicy controls the optional report step that precedes quote
// generation.
type ReportPolicy string

const (
	// ReportOnDebug fetches the report only when debug logging is enabled.
	ReportOnDebug ReportPolicy = "debug"
	// ReportAlways fetches the report on every run. Failures are logged only.
	ReportAlways ReportPolicy = "always"
	// ReportNever skips the report step.
	ReportNever ReportPolicy = "never"
	// ReportStrict fetches the report on every run and aborts on failure.
	ReportStrict ReportPolicy = "strict"
)

// ParseReportPolicy validates a policy name. The empty string selects ReportOnDebug.
func ParseReportPolicy(s string) (ReportPolicy, error) {
	switch p := ReportPolicy(s); p {
	case "":
		return ReportOnDebug, nil
	case ReportOnDebug, ReportAlways, ReportNever, ReportStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown report policy %q", s)
	}
}

// Requester drives the two platform calls.
type Requester struct {
	platform Platform
	logger   *slog.Logger
	policy   ReportPolicy
}

func NewRequester(platform Platform, logger *slog.Logger, policy ReportPolicy) *Requester {
	if policy == "" {
		policy = ReportOnDebug
	}

	return &Requester{
		platform: platform,
		logger:   logger,
		policy:   policy,
	}
}

// Request runs the report step as the policy dictates and then requests the quote.
func (r *Requester) Request(ctx context.Context, reportData ReportData) ([]byte, error) {
	if r.shouldReport(ctx) {
		report, err := r.Report(ctx, reportData)
		switch {
		case err != nil && r.policy == ReportStrict:
			return nil, err
		case err != nil:
			r.logger.WarnContext(ctx, fmt.Sprintf("continuing without report: %s", err))
		default:
			r.logger.DebugContext(ctx, "TDX report", slog.String("report", hex.EncodeToString(report[:])))
		}
	}

	return r.Quote(ctx, reportData)
}

// Report asks the platform for a TDREPORT over reportData.
func (r *Requester) Report(ctx context.Context, reportData ReportData) (Report, error) {
	report, status := r.platform.GetReport(reportData)
	if status != StatusSuccess {
		r.logger.ErrorContext(ctx, fmt.Sprintf("Failed to get TDX report: %s (0x%04x)", status, uint32(status)))
		return Report{}, ErrReportGeneration
	}

	return report, nil
}

// Quote asks the platform for a quote over reportData using the default
// attestation key.
func (r *Requester) Quote(ctx context.Context, reportData ReportData) ([]byte, error) {
	var selected AttestationKeyID

	status, quote := r.platform.GetQuote(reportData, &selected)
	if status != StatusSuccess {
		r.logger.ErrorContext(ctx, fmt.Sprintf("Failed to get TDX quote: %s (0x%04x)", status, uint32(status)))
		return nil, ErrQuoteGeneration
	}

	if len(quote) == 0 {
		return nil, ErrQuoteEmpty
	}

	r.logger.DebugContext(ctx, "TDX quote generated",
		slog.String("att_key_id", uuid.UUID(selected).String()),
		slog.Int("size", len(quote)))

	return quote, nil
}

func (r *Requester) shouldReport(ctx context.Context) bool {
	switch r.policy {
	case ReportAlways, ReportStrict:
		return true
	case ReportNever:
		return false
	default:
		return r.logger.Enabled(ctx, slog.LevelDebug)
	}
}
