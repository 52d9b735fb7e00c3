// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	mglog "github.com/absmach/supermq/logger"
	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ultravioletrs/quotegen/cli"
	"github.com/ultravioletrs/quotegen/internal"
	"github.com/ultravioletrs/quotegen/pkg/attestation"
	"github.com/ultravioletrs/quotegen/pkg/attestation/tdx"
	"github.com/ultravioletrs/quotegen/quote"
	"github.com/ultravioletrs/quotegen/quote/api"
)

const svcName = "quote_generator"

type config struct {
	LogLevel     string `env:"QUOTEGEN_LOG_LEVEL"     envDefault:"info"`
	OutputDir    string `env:"QUOTEGEN_OUTPUT_DIR"    envDefault:"."`
	OutputFile   string `env:"QUOTEGEN_OUTPUT_FILE"   envDefault:"quote.dat"`
	OutputNaming string `env:"QUOTEGEN_OUTPUT_NAMING" envDefault:"fixed"`
	OutputPrefix string `env:"QUOTEGEN_OUTPUT_PREFIX" envDefault:"quote_"`
	OutputSuffix string `env:"QUOTEGEN_OUTPUT_SUFFIX" envDefault:".dat"`
	ReportPolicy string `env:"QUOTEGEN_REPORT_POLICY" envDefault:"debug"`
	TDXBackend   string `env:"QUOTEGEN_TDX_BACKEND"   envDefault:"auto"`
	TDXDevice    string `env:"QUOTEGEN_TDX_DEVICE"    envDefault:"/dev/tdx_guest"`
	TDXPrivLevel *uint  `env:"QUOTEGEN_TDX_PRIVLEVEL"`
	MetricsFile  string `env:"QUOTEGEN_METRICS_FILE"  envDefault:""`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("failed to load %s configuration : %s\n", svcName, err)
		os.Exit(1)
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Println(err)
		exitCode = 1
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	counter, latency := internal.MakeMetrics(reg, svcName, "api")

	opts := cli.Options{
		OutputDir:    cfg.OutputDir,
		OutputFile:   cfg.OutputFile,
		Naming:       cfg.OutputNaming,
		Prefix:       cfg.OutputPrefix,
		Suffix:       cfg.OutputSuffix,
		ReportPolicy: cfg.ReportPolicy,
	}

	factory := func(ctx context.Context, opts cli.Options) (quote.Service, error) {
		policy, pcfg, err := cli.ServiceOptions(opts)
		if err != nil {
			return nil, err
		}

		platform, err := newPlatform(cfg, logger)
		if err != nil {
			return nil, err
		}

		svc := quote.New(logger, platform, policy, pcfg)
		svc = api.LoggingMiddleware(svc, logger)
		svc = api.MetricsMiddleware(svc, counter, latency)

		return svc, nil
	}

	rootCmd := cli.NewQuoteCmd(&opts, factory)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(fmt.Sprintf("%s failed: %s", svcName, err), slog.String("kind", quote.Kind(err)))
		exitCode = 1
	}

	if cfg.MetricsFile != "" {
		if err := internal.WriteMetrics(cfg.MetricsFile, reg); err != nil {
			logger.Warn(fmt.Sprintf("failed to write metrics to %s: %s", cfg.MetricsFile, err))
		}
	}
}

func newPlatform(cfg config, logger *slog.Logger) (quote.Platform, error) {
	backend, err := tdx.ParseBackend(cfg.TDXBackend)
	if err != nil {
		return nil, err
	}

	ccPlatform := attestation.CCPlatform()
	if ccPlatform == attestation.NoCC && backend == tdx.BackendAuto {
		logger.Warn("TEE device not found, quote requests will fail")
		return &attestation.EmptyPlatform{}, nil
	}

	logger.Debug(fmt.Sprintf("using %s platform with %s quote backend", ccPlatform, backend))

	return tdx.NewPlatform(tdx.Config{
		Backend:    backend,
		DevicePath: cfg.TDXDevice,
		PrivLevel:  cfg.TDXPrivLevel,
	}, logger)
}
