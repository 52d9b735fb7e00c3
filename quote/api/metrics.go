// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/ultravioletrs/quotegen/quote"
)

var _ quote.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     quote.Service
}

// MetricsMiddleware instruments core service by tracking request count,
// outcome and latency.
func MetricsMiddleware(svc quote.Service, counter metrics.Counter, latency metrics.Histogram) quote.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

// Generate implements quote.Service.
func (ms *metricsMiddleware) Generate(ctx context.Context, args []string) (res quote.Result, err error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "generate", "outcome", quote.Kind(err)).Add(1)
		ms.latency.With("method", "generate").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Generate(ctx, args)
}
