// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter, latency := MakeMetrics(reg, "test", "api")

	counter.With("method", "generate", "outcome", "success").Add(1)
	latency.With("method", "generate").Observe(0.2)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"test_api_request_count", "test_api_request_latency_seconds"}, names)
}

func TestMakeMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	MakeMetrics(reg, "test", "api")

	assert.Panics(t, func() { MakeMetrics(reg, "test", "api") })
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter, _ := MakeMetrics(reg, "test", "api")
	counter.With("method", "generate", "outcome", "quote_empty").Add(2)

	path := filepath.Join(t.TempDir(), "quotegen.prom")
	require.NoError(t, WriteMetrics(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `test_api_request_count{method="generate",outcome="quote_empty"} 2`)
}

func TestWriteMetricsInvalidPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	MakeMetrics(reg, "test", "api")

	err := WriteMetrics(filepath.Join(t.TempDir(), "missing", "quotegen.prom"), reg)
	assert.Error(t, err)
}
