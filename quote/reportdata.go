// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote

// ParseArgs returns the single report data argument. args must not include
// the program name.
func ParseArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Actual: len(args)}
	}

	return args[0], nil
}

// NormalizeReportData right pads input with zeros up to ReportDataSize.
// Input longer than ReportDataSize is rejected rather than truncated.
func NormalizeReportData(input []byte) (ReportData, error) {
	if len(input) > ReportDataSize {
		return ReportData{}, &SizeError{Max: ReportDataSize, Actual: len(input)}
	}

	buf := make([]byte, ReportDataSize)
	copy(buf, input)

	return NewReportData(buf)
}

// NewReportData converts a buffer of exactly ReportDataSize bytes.
func NewReportData(b []byte) (ReportData, error) {
	if len(b) != ReportDataSize {
		return ReportData{}, &ConversionError{Expected: ReportDataSize, Actual: len(b)}
	}

	return ReportData(b), nil
}
