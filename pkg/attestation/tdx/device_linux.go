// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package tdx

import (
	"fmt"
	"os"

	"github.com/google/go-tdx-guest/client"
	labi "github.com/google/go-tdx-guest/client/linuxabi"
	"github.com/ultravioletrs/quotegen/quote"
)

// openDevice opens the tdx-guest device at devicePath. The device error
// drops the errno, so the path is checked first to keep it.
func openDevice(devicePath string) (*client.LinuxDevice, error) {
	if _, err := os.Stat(devicePath); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errOpenTDXDevice, devicePath, err)
	}

	d := &client.LinuxDevice{}
	if err := d.Open(devicePath); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errOpenTDXDevice, devicePath, err)
	}

	return d, nil
}

func getReport(devicePath string, reportData [quote.ReportDataSize]byte) ([quote.ReportSize]byte, error) {
	d, err := openDevice(devicePath)
	if err != nil {
		return [quote.ReportSize]byte{}, err
	}
	defer d.Close()

	req := labi.TdxReportReq{ReportData: reportData}
	res, err := d.Ioctl(labi.IocTdxGetReport, &req)
	if err != nil {
		return [quote.ReportSize]byte{}, fmt.Errorf("%w: %w", errGetReport, err)
	}
	if res != uintptr(labi.TdxAttestSuccess) {
		return [quote.ReportSize]byte{}, fmt.Errorf("%w: result %d", errGetReport, res)
	}

	return req.TdReport, nil
}

// deviceQuoter requests quotes through the tdx-guest device only.
type deviceQuoter struct {
	devicePath string
}

func (q *deviceQuoter) quote(reportData [quote.ReportDataSize]byte) ([]byte, error) {
	d, err := openDevice(q.devicePath)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return client.GetRawQuote(d, reportData)
}
