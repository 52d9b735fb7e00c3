// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package tdx

import (
	"fmt"

	"github.com/ultravioletrs/quotegen/quote"
	"golang.org/x/sys/unix"
)

func getReport(devicePath string, _ [quote.ReportDataSize]byte) ([quote.ReportSize]byte, error) {
	return [quote.ReportSize]byte{}, fmt.Errorf("%w %s: %w", errOpenTDXDevice, devicePath, unix.EOPNOTSUPP)
}

type deviceQuoter struct {
	devicePath string
}

func (q *deviceQuoter) quote(_ [quote.ReportDataSize]byte) ([]byte, error) {
	return nil, fmt.Errorf("%w %s: %w", errOpenTDXDevice, q.devicePath, unix.EOPNOTSUPP)
}
