// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package internal

import (
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// MakeMetrics returns a request counter and a latency histogram registered on reg.
func MakeMetrics(reg prometheus.Registerer, namespace, subsystem string) (*kitprometheus.Counter, *kitprometheus.Histogram) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_count",
		Help:      "Number of requests received.",
	}, []string{"method", "outcome"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_latency_seconds",
		Help:      "Total duration of requests in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"method"})

	reg.MustRegister(counter, latency)

	return kitprometheus.NewCounter(counter), kitprometheus.NewHistogram(latency)
}

// WriteMetrics dumps everything gathered by g into path using the text
// exposition format, for pickup by the node exporter textfile collector.
func WriteMetrics(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
