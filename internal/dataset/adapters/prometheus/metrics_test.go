package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoaderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLoaderMetrics(reg)

	m.CacheHit()
	m.CacheHit()
	m.FetchSucceeded(42, 1.5)
	m.FetchFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.records))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.fetchDuration))
}
