// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote

import (
	stderrors "errors"
	"fmt"

	"github.com/absmach/supermq/pkg/errors"
)

var (
	// ErrInvalidUsage indicates the command did not receive exactly one argument.
	ErrInvalidUsage = errors.New("invalid usage")
	// ErrReportDataTooLarge indicates the input does not fit the report data field.
	ErrReportDataTooLarge = errors.New("report data too large")
	// ErrReportDataConversion indicates a buffer of the wrong length was converted to ReportData.
	ErrReportDataConversion = errors.New("failed to convert report data")
	// ErrReportGeneration indicates the platform failed to produce a report.
	ErrReportGeneration = errors.New("failed to get TDX report")
	// ErrQuoteGeneration indicates the platform failed to produce a quote.
	ErrQuoteGeneration = errors.New("failed to get TDX quote")
	// ErrQuoteEmpty indicates the platform reported success without a quote.
	ErrQuoteEmpty = errors.New("TDX quote generation returned no data")
	// ErrWriteQuote indicates the quote could not be persisted.
	ErrWriteQuote = errors.New("failed to write quote file")
)

// UsageError carries the number of arguments actually received. Reason,
// when set, describes a malformed option instead.
type UsageError struct {
	Actual int
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrInvalidUsage, e.Reason)
	}
	return fmt.Sprintf("invalid usage: expected exactly 1 argument (report data), received %d", e.Actual)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrInvalidUsage
}

// SizeError carries the report data capacity and the rejected input length.
type SizeError struct {
	Max    int
	Actual int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("report data must be at most %d bytes, got %d bytes", e.Max, e.Actual)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrReportDataTooLarge
}

// ConversionError is returned when a buffer is not exactly ReportDataSize long.
type ConversionError struct {
	Expected int
	Actual   int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: expected %d bytes, got %d bytes", ErrReportDataConversion, e.Expected, e.Actual)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrReportDataConversion
}

// WriteError wraps the I/O failure that prevented a quote from being written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrWriteQuote, e.Path, e.Err)
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteQuote
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Kind names the failure class of err for logs, metrics and exit messages.
func Kind(err error) string {
	switch {
	case err == nil:
		return "success"
	case stderrors.Is(err, ErrInvalidUsage):
		return "invalid_usage"
	case stderrors.Is(err, ErrReportDataTooLarge):
		return "report_data_too_large"
	case stderrors.Is(err, ErrReportDataConversion):
		return "report_data_conversion"
	case stderrors.Is(err, ErrReportGeneration):
		return "report_generation_failed"
	case stderrors.Is(err, ErrQuoteGeneration):
		return "quote_generation_failed"
	case stderrors.Is(err, ErrQuoteEmpty):
		return "quote_empty"
	case stderrors.Is(err, ErrWriteQuote):
		return "write_failed"
	default:
		return "error"
	}
}
