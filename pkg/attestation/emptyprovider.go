// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package attestation

import "github.com/ultravioletrs/quotegen/quote"

var _ quote.Platform = (*EmptyPlatform)(nil)

// EmptyPlatform stands in for the TDX driver on hosts without a TEE. Every
// request fails with StatusNotSupported.
type EmptyPlatform struct{}

func (e *EmptyPlatform) GetReport(reportData quote.ReportData) (quote.Report, quote.Status) {
	return quote.Report{}, quote.StatusNotSupported
}

func (e *EmptyPlatform) GetQuote(reportData quote.ReportData, selectedKeyID *quote.AttestationKeyID) (quote.Status, []byte) {
	return quote.StatusNotSupported, nil
}
