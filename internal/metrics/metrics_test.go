package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-item-catalog/internal/metrics"
)

func TestObserveLoad(t *testing.T) {
	ok := testutil.ToFloat64(metrics.SourceLoads.WithLabelValues("test-source", metrics.ResultOK))
	failed := testutil.ToFloat64(metrics.SourceLoads.WithLabelValues("test-source", metrics.ResultError))

	metrics.ObserveLoad("test-source", 0.2, nil)
	metrics.ObserveLoad("test-source", 0.1, errors.New("boom"))
	metrics.ObserveLoad("test-source", 0.3, nil)

	assert.Equal(t, ok+2, testutil.ToFloat64(metrics.SourceLoads.WithLabelValues("test-source", metrics.ResultOK)))
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.SourceLoads.WithLabelValues("test-source", metrics.ResultError)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.LoadDuration, "itemcatalog_source_load_seconds"))
}
