// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ultravioletrs/quotegen/quote"
	"github.com/ultravioletrs/quotegen/quote/mocks"
)

var (
	infoLogger  = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	debugLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	testQuote   = []byte{0xAA, 0xBB, 0xCC}
	keyIDArg    = mock.AnythingOfType("*quote.AttestationKeyID")
)

func TestRequesterReportPolicy(t *testing.T) {
	rd := quote.ReportData{'n', 'o', 'n', 'c', 'e'}

	cases := []struct {
		name         string
		policy       quote.ReportPolicy
		logger       *slog.Logger
		reportStatus quote.Status
		wantReport   bool
		err          error
	}{
		{
			name:       "never skips the report",
			policy:     quote.ReportNever,
			logger:     debugLogger,
			wantReport: false,
		},
		{
			name:       "debug policy skips the report when debug is off",
			policy:     quote.ReportOnDebug,
			logger:     infoLogger,
			wantReport: false,
		},
		{
			name:         "debug policy fetches the report when debug is on",
			policy:       quote.ReportOnDebug,
			logger:       debugLogger,
			reportStatus: quote.StatusSuccess,
			wantReport:   true,
		},
		{
			name:         "always fetches the report",
			policy:       quote.ReportAlways,
			logger:       infoLogger,
			reportStatus: quote.StatusSuccess,
			wantReport:   true,
		},
		{
			name:         "report failure does not gate the quote",
			policy:       quote.ReportAlways,
			logger:       infoLogger,
			reportStatus: quote.StatusReportFailure,
			wantReport:   true,
		},
		{
			name:         "report failure under debug policy does not gate the quote",
			policy:       quote.ReportOnDebug,
			logger:       debugLogger,
			reportStatus: quote.StatusDeviceFailure,
			wantReport:   true,
		},
		{
			name:         "strict policy aborts on report failure",
			policy:       quote.ReportStrict,
			logger:       infoLogger,
			reportStatus: quote.StatusReportFailure,
			wantReport:   true,
			err:          quote.ErrReportGeneration,
		},
		{
			name:         "strict policy continues after a successful report",
			policy:       quote.ReportStrict,
			logger:       infoLogger,
			reportStatus: quote.StatusSuccess,
			wantReport:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			platform := new(mocks.Platform)
			if tc.wantReport {
				platform.On("GetReport", rd).Return(quote.Report{0x01}, tc.reportStatus).Once()
			}
			if tc.err == nil {
				platform.On("GetQuote", rd, keyIDArg).Return(quote.StatusSuccess, testQuote).Once()
			}

			r := quote.NewRequester(platform, tc.logger, tc.policy)
			got, err := r.Request(context.Background(), rd)

			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				platform.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testQuote, got)
			}

			if !tc.wantReport {
				platform.AssertNotCalled(t, "GetReport", mock.Anything)
			}
			platform.AssertExpectations(t)
		})
	}
}

func TestRequesterQuote(t *testing.T) {
	rd := quote.ReportData{}

	cases := []struct {
		name    string
		status  quote.Status
		payload []byte
		want    []byte
		err     error
	}{
		{
			name:    "quote returned",
			status:  quote.StatusSuccess,
			payload: testQuote,
			want:    testQuote,
		},
		{
			name:   "platform failure",
			status: quote.StatusQuoteFailure,
			err:    quote.ErrQuoteGeneration,
		},
		{
			name:    "platform failure with payload",
			status:  quote.StatusBusy,
			payload: testQuote,
			err:     quote.ErrQuoteGeneration,
		},
		{
			name:   "success without payload",
			status: quote.StatusSuccess,
			err:    quote.ErrQuoteEmpty,
		},
		{
			name:    "success with zero length payload",
			status:  quote.StatusSuccess,
			payload: []byte{},
			err:     quote.ErrQuoteEmpty,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			platform := new(mocks.Platform)
			platform.On("GetQuote", rd, keyIDArg).Return(tc.status, tc.payload)

			r := quote.NewRequester(platform, infoLogger, quote.ReportNever)
			got, err := r.Quote(context.Background(), rd)

			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequesterQuoteEmptyIsNotGenerationFailure(t *testing.T) {
	platform := new(mocks.Platform)
	platform.On("GetQuote", mock.Anything, keyIDArg).Return(quote.StatusSuccess, nil)

	_, err := quote.NewRequester(platform, infoLogger, quote.ReportNever).Quote(context.Background(), quote.ReportData{})
	assert.ErrorIs(t, err, quote.ErrQuoteEmpty)
	assert.NotErrorIs(t, err, quote.ErrQuoteGeneration)
}

func TestRequesterRequestsDefaultKey(t *testing.T) {
	platform := new(mocks.Platform)
	platform.On("GetQuote", mock.Anything, mock.MatchedBy(func(id *quote.AttestationKeyID) bool {
		return id != nil && *id == quote.AttestationKeyID{}
	})).Return(quote.StatusSuccess, testQuote)

	got, err := quote.NewRequester(platform, debugLogger, quote.ReportNever).Quote(context.Background(), quote.ReportData{})
	require.NoError(t, err)
	assert.Equal(t, testQuote, got)
}

func TestRequesterReport(t *testing.T) {
	platform := new(mocks.Platform)
	platform.On("GetReport", quote.ReportData{}).Return(quote.Report{0x01, 0x02}, quote.StatusSuccess).Once()
	platform.On("GetReport", quote.ReportData{0x01}).Return(quote.Report{}, quote.StatusBusy).Once()

	r := quote.NewRequester(platform, infoLogger, quote.ReportAlways)

	report, err := r.Report(context.Background(), quote.ReportData{})
	require.NoError(t, err)
	assert.Equal(t, quote.Report{0x01, 0x02}, report)

	_, err = r.Report(context.Background(), quote.ReportData{0x01})
	assert.ErrorIs(t, err, quote.ErrReportGeneration)
}

func TestParseReportPolicy(t *testing.T) {
	cases := map[string]quote.ReportPolicy{
		"":       quote.ReportOnDebug,
		"debug":  quote.ReportOnDebug,
		"always": quote.ReportAlways,
		"never":  quote.ReportNever,
		"strict": quote.ReportStrict,
	}
	for in, want := range cases {
		got, err := quote.ParseReportPolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := quote.ParseReportPolicy("sometimes")
	assert.Error(t, err)
}
