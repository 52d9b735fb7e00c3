// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ultravioletrs/quotegen/pkg/attestation"
	"github.com/ultravioletrs/quotegen/quote"
)

func TestConfigDefaults(t *testing.T) {
	var cfg config
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))

	assert.Equal(t, config{
		LogLevel:     "info",
		OutputDir:    ".",
		OutputFile:   "quote.dat",
		OutputNaming: "fixed",
		OutputPrefix: "quote_",
		OutputSuffix: ".dat",
		ReportPolicy: "debug",
		TDXBackend:   "auto",
		TDXDevice:    "/dev/tdx_guest",
	}, cfg)
}

func TestConfigFromEnvironment(t *testing.T) {
	var cfg config
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{
		"QUOTEGEN_OUTPUT_NAMING": "input",
		"QUOTEGEN_REPORT_POLICY": "strict",
		"QUOTEGEN_TDX_BACKEND":   "configfs",
		"QUOTEGEN_TDX_PRIVLEVEL": "2",
	}})
	require.NoError(t, err)

	assert.Equal(t, "input", cfg.OutputNaming)
	assert.Equal(t, "strict", cfg.ReportPolicy)
	assert.Equal(t, "configfs", cfg.TDXBackend)
	require.NotNil(t, cfg.TDXPrivLevel)
	assert.Equal(t, uint(2), *cfg.TDXPrivLevel)
}

func TestNewPlatformUnknownBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := newPlatform(config{TDXBackend: "sgx", TDXDevice: "/dev/tdx_guest"}, logger)
	assert.Error(t, err)
}

func TestNewPlatformWithoutTEE(t *testing.T) {
	if attestation.CCPlatform() != attestation.NoCC {
		t.Skip("host exposes a TEE interface")
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, backend := range []string{"auto", ""} {
		t.Run(fmt.Sprintf("backend %q", backend), func(t *testing.T) {
			platform, err := newPlatform(config{TDXBackend: backend, TDXDevice: "/dev/tdx_guest"}, logger)
			require.NoError(t, err)
			assert.IsType(t, &attestation.EmptyPlatform{}, platform)

			status, q := platform.GetQuote(quote.ReportData{}, &quote.AttestationKeyID{})
			assert.Equal(t, quote.StatusNotSupported, status)
			assert.Empty(t, q)
		})
	}
}
