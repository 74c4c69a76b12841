package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/observability"
)

func TestMetrics(t *testing.T) {
	t.Run("records runs and handles", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := observability.NewMetrics(reg)

		m.ObserveRun("compress", "success", 20*time.Millisecond)
		m.ObserveRun("compress", "superseded", 0)
		m.ObserveArtifact("compress", 4096)
		m.SetLiveHandles(2)

		count, err := testutil.GatherAndCount(reg, "imagetoolbox_engine_runs_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		families, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range families {
			if mf.GetName() == "imagetoolbox_live_handles" {
				assert.Equal(t, 2.0, mf.GetMetric()[0].GetGauge().GetValue())
			}
		}
	})

	t.Run("nil metrics record nothing", func(t *testing.T) {
		var m *observability.Metrics

		assert.NotPanics(t, func() {
			m.ObserveRun("resize", "error", time.Second)
			m.ObserveArtifact("resize", 1)
			m.SetLiveHandles(0)
		})
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("builds json and console loggers", func(t *testing.T) {
		for _, format := range []string{"json", "console"} {
			logger, err := observability.NewLogger(config.LogConfig{Level: "debug", Format: format})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		}
	})

	t.Run("tees into a rotated file", func(t *testing.T) {
		path := t.TempDir() + "/toolbox.log"
		logger, err := observability.NewLogger(config.LogConfig{
			Level:          "info",
			Format:         "json",
			File:           path,
			FileMaxSizeMB:  1,
			FileMaxBackups: 1,
		})
		require.NoError(t, err)

		logger.Info("hello")
		_ = logger.Sync()

		assert.FileExists(t, path)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := observability.NewLogger(config.LogConfig{Level: "loud", Format: "json"})
		assert.Error(t, err)
	})
}
