package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveBackup(t *testing.T) {
	before := counterValue(t, backupOperationsTotal.WithLabelValues(OpMerge, "error"))

	ObserveBackup(OpMerge, time.Now(), errors.New("boom"))
	ObserveBackup(OpMerge, time.Now(), nil)

	assert.Equal(t, before+1, counterValue(t, backupOperationsTotal.WithLabelValues(OpMerge, "error")))
	assert.GreaterOrEqual(t, counterValue(t, backupOperationsTotal.WithLabelValues(OpMerge, "success")), 1.0)
}

func TestAddRecords_IgnoresZero(t *testing.T) {
	before := counterValue(t, backupRecordsTotal.WithLabelValues(OpReplace, "project", "created"))

	AddRecords(OpReplace, "project", "created", 0)
	AddRecords(OpReplace, "project", "created", 3)

	assert.Equal(t, before+3, counterValue(t, backupRecordsTotal.WithLabelValues(OpReplace, "project", "created")))
}

func TestObserveHTTP(t *testing.T) {
	before := counterValue(t, httpRequestsTotal.WithLabelValues("GET", "/api/backup", "200"))
	ObserveHTTP("GET", "/api/backup", "200", 5*time.Millisecond)
	assert.Equal(t, before+1, counterValue(t, httpRequestsTotal.WithLabelValues("GET", "/api/backup", "200")))
}
