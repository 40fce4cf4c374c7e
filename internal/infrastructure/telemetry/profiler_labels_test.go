package telemetry

import (
	"context"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestLabels_Pairs(t *testing.T) {
	labels := RequestLabels{Resource: "companies", Route: "/api/v1/companies/:id", Method: "GET"}

	assert.Equal(t, []string{
		"method", "GET",
		"resource", "companies",
		"route", "/api/v1/companies/:id",
	}, labels.pairs())

	assert.Empty(t, RequestLabels{}.pairs())
	assert.Equal(t, []string{"method", "DELETE"}, RequestLabels{Method: "DELETE"}.pairs())
}

func TestRequestLabels_TruncatesLongValues(t *testing.T) {
	pairs := RequestLabels{Route: "/api/v1/" + strings.Repeat("x", 300)}.pairs()

	assert.Len(t, pairs[1], MaxLabelValueLength)
}

func TestWithRequestLabels(t *testing.T) {
	got := map[string]string{}
	WithRequestLabels(context.Background(), RequestLabels{Resource: "transfers", Method: "POST"}, func(ctx context.Context) {
		pprof.ForLabels(ctx, func(k, v string) bool {
			got[k] = v
			return true
		})
	})

	assert.Equal(t, map[string]string{"resource": "transfers", "method": "POST"}, got)
}

func TestWithRequestLabels_NoLabels(t *testing.T) {
	called := false
	WithRequestLabels(context.Background(), RequestLabels{}, func(context.Context) { called = true })
	assert.True(t, called)
}

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/v1/companies/:id":       "companies",
		"/api/v1/companies/transfers": "companies",
		"/api/v2/transfers":           "transfers",
		"/api/v1/system/ping":         "system",
		"/api/v1/:id":                 "",
		"/api/latest/companies":       "",
		"/api/v/companies":            "",
		"/health":                     "",
		"":                            "",
	}
	for route, want := range tests {
		assert.Equal(t, want, ResourceFromRoute(route), route)
	}
}
