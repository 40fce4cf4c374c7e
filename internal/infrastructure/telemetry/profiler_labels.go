package telemetry

import (
	"context"
	"strings"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys.
const (
	ProfilingLabelResource = "resource"
	ProfilingLabelRoute    = "route"
	ProfilingLabelMethod   = "method"
)

// MaxLabelValueLength caps label values to bound memory in the profiler.
const MaxLabelValueLength = 128

// RequestLabels names the endpoint a profile sample was taken in. Only route
// patterns belong here; ids, CUITs and request ids would explode cardinality.
type RequestLabels struct {
	Resource string // e.g. "companies"
	Route    string // e.g. "/api/v1/companies/:id"
	Method   string
}

func (l RequestLabels) pairs() []string {
	pairs := make([]string, 0, 6)
	for _, kv := range [][2]string{
		{ProfilingLabelMethod, l.Method},
		{ProfilingLabelResource, l.Resource},
		{ProfilingLabelRoute, l.Route},
	} {
		if kv[1] == "" {
			continue
		}
		value := kv[1]
		if len(value) > MaxLabelValueLength {
			value = value[:MaxLabelValueLength]
		}
		pairs = append(pairs, kv[0], value)
	}
	return pairs
}

// WithRequestLabels runs fn with labels attached as pprof labels, so samples
// can be filtered per endpoint in Pyroscope.
func WithRequestLabels(ctx context.Context, labels RequestLabels, fn func(context.Context)) {
	pairs := labels.pairs()
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// ResourceFromRoute returns the first static segment after the /api/vN
// prefix: "/api/v1/companies/:id" gives "companies".
func ResourceFromRoute(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/")
	if !ok {
		return ""
	}
	segments := strings.Split(rest, "/")
	if len(segments) < 2 || !isVersion(segments[0]) {
		return ""
	}
	resource := segments[1]
	if strings.HasPrefix(resource, ":") || strings.HasPrefix(resource, "*") {
		return ""
	}
	return resource
}

func isVersion(segment string) bool {
	digits, ok := strings.CutPrefix(segment, "v")
	if !ok || digits == "" {
		return false
	}
	return strings.Trim(digits, "0123456789") == ""
}
