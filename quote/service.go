// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/ultravioletrs/quotegen/internal"
)

var _ Service = (*service)(nil)

type service struct {
	logger    *slog.Logger
	requester *Requester
	persister *Persister
}

// New returns a Service that requests quotes from platform and writes them
// according to cfg.
func New(logger *slog.Logger, platform Platform, policy ReportPolicy, cfg PersisterConfig) Service {
	return &service{
		logger:    logger,
		requester: NewRequester(platform, logger, policy),
		persister: NewPersister(cfg),
	}
}

func (s *service) Generate(ctx context.Context, args []string) (Result, error) {
	input, err := ParseArgs(args)
	if err != nil {
		return Result{}, err
	}

	reportData, err := NormalizeReportData([]byte(input))
	if err != nil {
		return Result{}, err
	}
	s.logger.DebugContext(ctx, "report data", slog.String("report_data", hex.EncodeToString(reportData[:])))

	quote, err := s.requester.Request(ctx, reportData)
	if err != nil {
		return Result{}, err
	}
	s.logger.DebugContext(ctx, "quote", slog.String("quote", hex.EncodeToString(quote)))

	path, err := s.persister.Write(input, quote)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path, Size: len(quote)}
	if digest, err := internal.ChecksumHex(path); err == nil {
		res.Digest = digest
	} else {
		s.logger.WarnContext(ctx, fmt.Sprintf("failed to compute checksum of %s: %s", path, err))
	}

	s.logger.InfoContext(ctx, fmt.Sprintf("Quote successfully written to %s", path),
		slog.Int("size", res.Size),
		slog.String("sha3_256", res.Digest))

	return res, nil
}
