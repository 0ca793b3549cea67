package metrics

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAssembleRecordsByKind(t *testing.T) {
	reg := NewRegistry()
	ObserveAssemble(reg, "CreateCollection", time.Now().Add(-10*time.Millisecond))

	count := testutil.CollectAndCount(reg.AssembleDuration)
	assert.Equal(t, 1, count)
}

func TestIndexerLagIsRegistered(t *testing.T) {
	reg := NewRegistry()
	reg.IndexerLag.Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(reg.IndexerLag))
}

func TestServerHealthzAndMetrics(t *testing.T) {
	reg := NewRegistry()
	srv := NewServer(reg, "18099")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://127.0.0.1:18099/healthz")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get("http://127.0.0.1:18099/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cancel()
	require.NoError(t, <-done)
}

func TestEventsAndFailuresCounters(t *testing.T) {
	reg := NewRegistry()
	reg.EventsTotal.WithLabelValues("CreateCollection", "Submitted").Inc()
	reg.FailuresTotal.WithLabelValues("CreateCollection", "Assemble").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(reg.EventsTotal.WithLabelValues("CreateCollection", "Submitted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(reg.FailuresTotal.WithLabelValues("CreateCollection", "Assemble")))
}
