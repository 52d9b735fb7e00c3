// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid"
	"github.com/ultravioletrs/quotegen/quote"
)

var _ quote.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    quote.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc quote.Service, logger *slog.Logger) quote.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) Generate(ctx context.Context, args []string) (res quote.Result, err error) {
	logger := lm.logger
	if id, e := uuid.NewV4(); e == nil {
		logger = logger.With(slog.String("request_id", id.String()))
	}

	defer func(begin time.Time) {
		message := fmt.Sprintf("Method Generate took %s to complete", time.Since(begin))
		if err != nil {
			logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		logger.Info(fmt.Sprintf("%s without errors, quote of %d bytes written to %s.", message, res.Size, res.Path))
	}(time.Now())

	return lm.svc.Generate(ctx, args)
}
