package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushConfig configures delivery of metrics to a pushgateway.
type PushConfig struct {
	URL      string `mapstructure:"push-url"`
	Job      string `mapstructure:"push-job"`
	Instance string `mapstructure:"push-instance"`
}

// DefaultPushConfig returns config with pushing disabled.
func DefaultPushConfig() PushConfig {
	return PushConfig{Job: "rewardtx"}
}

// Push delivers everything registered in the default registry to the pushgateway.
// It is a no-op if url is empty.
func Push(ctx context.Context, cfg PushConfig) error {
	return PushFrom(ctx, cfg, prometheus.DefaultGatherer)
}

// PushFrom is Push with an explicit gatherer.
func PushFrom(ctx context.Context, cfg PushConfig, gatherer prometheus.Gatherer) error {
	if cfg.URL == "" {
		return nil
	}
	pusher := push.New(cfg.URL, cfg.Job).Gatherer(gatherer)
	if cfg.Instance != "" {
		pusher = pusher.Grouping("instance", cfg.Instance)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.URL, err)
	}
	return nil
}
