package bootstrap

import (
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewMetrics returns nil when metrics are disabled; every recorder on a nil
// *metrics.Ledger is a no-op.
func NewMetrics(cfg config.Config) *metrics.Ledger {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewLedger(cfg.Metrics.Namespace)
}
