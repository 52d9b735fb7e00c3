// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

// Package quote turns a user supplied context value into a TDX quote and
// persists it. The attestation primitive itself is reached through the
// Platform interface so that the orchestration can run against a real
// driver or a scripted fake.
package quote

import (
	"context"
	"fmt"
)

const (
	// ReportDataSize is the capacity of the report data field bound into a report.
	ReportDataSize = 64
	// ReportSize is the size of a TDREPORT.
	ReportSize = 1024
	// AttestationKeyIDSize is the size of an attestation key identifier.
	AttestationKeyIDSize = 16
	// DefaultQuoteFileName is the file written by the fixed naming policy.
	DefaultQuoteFileName = "quote.dat"
)

// ReportData is the caller supplied context bound into a report.
type ReportData [ReportDataSize]byte

// Report is the opaque TDREPORT returned by the platform.
type Report [ReportSize]byte

// AttestationKeyID selects the key used to sign a quote. The zero value
// requests the platform default.
type AttestationKeyID [AttestationKeyIDSize]byte

// Status is the platform's native result code. It is only ever logged;
// callers see one of the quote package errors instead.
type Status uint32

const (
	StatusSuccess             Status = 0x0000
	StatusUnexpected          Status = 0x0001
	StatusInvalidParameter    Status = 0x0002
	StatusOutOfMemory         Status = 0x0003
	StatusVsockFailure        Status = 0x0004
	StatusReportFailure       Status = 0x0005
	StatusExtendFailure       Status = 0x0006
	StatusNotSupported        Status = 0x0007
	StatusQuoteFailure        Status = 0x0008
	StatusBusy                Status = 0x0009
	StatusDeviceFailure       Status = 0x000a
	StatusInvalidRTMRIndex    Status = 0x000b
	StatusUnsupportedAttKeyID Status = 0x000c
)

var statusNames = map[Status]string{
	StatusSuccess:             "TDX_ATTEST_SUCCESS",
	StatusUnexpected:          "TDX_ATTEST_ERROR_UNEXPECTED",
	StatusInvalidParameter:    "TDX_ATTEST_ERROR_INVALID_PARAMETER",
	StatusOutOfMemory:         "TDX_ATTEST_ERROR_OUT_OF_MEMORY",
	StatusVsockFailure:        "TDX_ATTEST_ERROR_VSOCK_FAILURE",
	StatusReportFailure:       "TDX_ATTEST_ERROR_REPORT_FAILURE",
	StatusExtendFailure:       "TDX_ATTEST_ERROR_EXTEND_FAILURE",
	StatusNotSupported:        "TDX_ATTEST_ERROR_NOT_SUPPORTED",
	StatusQuoteFailure:        "TDX_ATTEST_ERROR_QUOTE_FAILURE",
	StatusBusy:                "TDX_ATTEST_ERROR_BUSY",
	StatusDeviceFailure:       "TDX_ATTEST_ERROR_DEVICE_FAILURE",
	StatusInvalidRTMRIndex:    "TDX_ATTEST_ERROR_INVALID_RTMR_INDEX",
	StatusUnsupportedAttKeyID: "TDX_ATTEST_ERROR_UNSUPPORTED_ATT_KEY_ID",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TDX_ATTEST_ERROR(0x%04x)", uint32(s))
}

// Platform is the confidential computing measurement root.
//
//go:generate mockery --name Platform --output=./mocks --filename platform.go --quiet --note "Copyright (c) Ultraviolet \n // SPDX-License-Identifier: Apache-2.0"
type Platform interface {
	// GetReport returns a TDREPORT binding reportData to the local TD.
	GetReport(reportData ReportData) (Report, Status)
	// GetQuote returns a signed quote over reportData. The key used is
	// written to selectedKeyID when it is not nil. A nil quote with
	// StatusSuccess means the platform produced nothing.
	GetQuote(reportData ReportData, selectedKeyID *AttestationKeyID) (Status, []byte)
}

// Result describes a persisted quote.
type Result struct {
	Path   string
	Size   int
	Digest string
}

// Service generates and persists a quote for a single invocation.
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Ultraviolet \n // SPDX-License-Identifier: Apache-2.0"
type Service interface {
	// Generate validates args, requests a quote over the normalized report
	// data and writes it to the configured location.
	Generate(ctx context.Context, args []string) (Result, error)
}
