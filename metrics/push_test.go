package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPushDisabled(t *testing.T) {
	require.NoError(t, Push(context.Background(), DefaultPushConfig()))
}

func TestPushFrom(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.Contains(t, r.URL.Path, "/metrics/job/rewardtx/instance/test")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "pushed_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	cfg := DefaultPushConfig()
	cfg.URL = srv.URL
	cfg.Instance = "test"
	require.NoError(t, PushFrom(context.Background(), cfg, registry))
	require.EqualValues(t, 1, requests.Load())
}
