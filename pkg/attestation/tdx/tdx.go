// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

// Package tdx implements quote.Platform on top of an Intel TDX guest.
//
// Reports are read from the tdx-guest character device. Quotes are
// produced by the go-tdx-guest quote provider, which prefers configfs-tsm
// and falls back to the device, by the device alone, or by driving the
// configfs-tsm report interface directly.
package tdx

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/absmach/supermq/pkg/errors"
	"github.com/google/go-configfs-tsm/configfs/configfsi"
	"github.com/google/go-configfs-tsm/configfs/linuxtsm"
	"github.com/google/go-configfs-tsm/report"
	"github.com/google/go-tdx-guest/client"
	"github.com/ultravioletrs/quotegen/quote"
	"golang.org/x/sys/unix"
)

// DefaultDevicePath is the tdx-guest character device exposed by Linux.
const DefaultDevicePath = "/dev/tdx_guest"

// Backend selects how quotes are obtained.
type Backend string

const (
	// BackendAuto uses configfs-tsm when the kernel supports it and the
	// tdx-guest device otherwise.
	BackendAuto Backend = "auto"
	// BackendTDXGuest requests quotes through the tdx-guest device only.
	BackendTDXGuest Backend = "tdx-guest"
	// BackendConfigFS writes the report data to configfs-tsm directly.
	BackendConfigFS Backend = "configfs"
)

var (
	errOpenTDXDevice  = errors.New("failed to open TDX device")
	errGetReport      = errors.New("TDX get report ioctl failed")
	errQuoteProvider  = errors.New("failed to initialise TDX quote provider")
	errConfigFSClient = errors.New("failed to open configfs-tsm")
	errGetRawQuote    = errors.New("failed to get raw TDX quote")
	errUnknownBackend = errors.New("unknown TDX quote backend")
)

// ParseBackend validates a backend name. The empty string selects BackendAuto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendTDXGuest, BackendConfigFS:
		return b, nil
	default:
		return "", errors.Wrap(errUnknownBackend, fmt.Errorf("%q", s))
	}
}

var _ quote.Platform = (*platform)(nil)

// Config selects the device and quote backend.
type Config struct {
	Backend    Backend
	DevicePath string
	// PrivLevel is forwarded to configfs-tsm when set.
	PrivLevel *uint
}

type quoter interface {
	quote(reportData [quote.ReportDataSize]byte) ([]byte, error)
}

type reporter func(devicePath string, reportData [quote.ReportDataSize]byte) ([quote.ReportSize]byte, error)

type platform struct {
	logger     *slog.Logger
	devicePath string
	report     reporter
	quoter     quoter
}

// NewPlatform returns a TDX backed quote.Platform.
func NewPlatform(cfg Config, logger *slog.Logger) (quote.Platform, error) {
	if cfg.DevicePath == "" {
		cfg.DevicePath = DefaultDevicePath
	}

	backend, err := ParseBackend(string(cfg.Backend))
	if err != nil {
		return nil, err
	}

	var q quoter
	switch backend {
	case BackendAuto:
		qp, err := client.GetQuoteProvider()
		if err != nil {
			return nil, errors.Wrap(errQuoteProvider, err)
		}
		q = &providerQuoter{provider: qp}
	case BackendTDXGuest:
		q = &deviceQuoter{devicePath: cfg.DevicePath}
	case BackendConfigFS:
		c, err := linuxtsm.MakeClient()
		if err != nil {
			return nil, errors.Wrap(errConfigFSClient, err)
		}
		q = &configfsQuoter{client: c, privLevel: cfg.PrivLevel}
	}

	return newPlatform(logger, cfg.DevicePath, getReport, q), nil
}

func newPlatform(logger *slog.Logger, devicePath string, r reporter, q quoter) *platform {
	return &platform{
		logger:     logger,
		devicePath: devicePath,
		report:     r,
		quoter:     q,
	}
}

func (p *platform) GetReport(reportData quote.ReportData) (quote.Report, quote.Status) {
	tdReport, err := p.report(p.devicePath, reportData)
	if err != nil {
		status := statusFor(err, quote.StatusReportFailure)
		p.logger.Error(fmt.Sprintf("TDX report request on %s failed: %s", p.devicePath, err))
		return quote.Report{}, status
	}

	return quote.Report(tdReport), quote.StatusSuccess
}

// GetQuote always signs with the platform default key, so selectedKeyID is
// left zeroed.
func (p *platform) GetQuote(reportData quote.ReportData, selectedKeyID *quote.AttestationKeyID) (quote.Status, []byte) {
	if selectedKeyID != nil {
		*selectedKeyID = quote.AttestationKeyID{}
	}

	raw, err := p.quoter.quote(reportData)
	if err != nil {
		status := statusFor(err, quote.StatusQuoteFailure)
		p.logger.Error(errors.Wrap(errGetRawQuote, err).Error())
		return status, nil
	}

	return quote.StatusSuccess, raw
}

type providerQuoter struct {
	provider client.QuoteProvider
}

// quote falls back to the tdx-guest device when the provider is not
// supported on this host.
func (q *providerQuoter) quote(reportData [quote.ReportDataSize]byte) ([]byte, error) {
	return client.GetRawQuote(q.provider, reportData)
}

type configfsQuoter struct {
	client    configfsi.Client
	privLevel *uint
}

func (q *configfsQuoter) quote(reportData [quote.ReportDataSize]byte) ([]byte, error) {
	req := &report.Request{InBlob: reportData[:]}
	if q.privLevel != nil {
		req.Privilege = &report.Privilege{Level: *q.privLevel}
	}

	resp, err := report.Get(q.client, req)
	if err != nil {
		return nil, err
	}

	return resp.OutBlob, nil
}

// statusFor maps a driver error onto the closest attestation status. The
// mapping is lossy and one-way.
func statusFor(err error, fallback quote.Status) quote.Status {
	switch {
	case report.GetGenerationErr(err) != nil,
		stderrors.Is(err, unix.EBUSY),
		stderrors.Is(err, unix.EAGAIN):
		return quote.StatusBusy
	case stderrors.Is(err, os.ErrNotExist),
		stderrors.Is(err, os.ErrPermission),
		stderrors.Is(err, unix.ENODEV),
		stderrors.Is(err, unix.ENXIO):
		return quote.StatusDeviceFailure
	case stderrors.Is(err, unix.ENOTTY),
		stderrors.Is(err, unix.EOPNOTSUPP):
		return quote.StatusNotSupported
	case stderrors.Is(err, unix.EINVAL):
		return quote.StatusInvalidParameter
	case stderrors.Is(err, unix.ENOMEM):
		return quote.StatusOutOfMemory
	default:
		return fallback
	}
}
