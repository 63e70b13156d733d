package snapshots

import (
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"snapshots",
		logger.WithNamedLogger("snapshots"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(func() *metrics { return newMetrics(prometheus.DefaultRegisterer) }, fx.Private),
		fx.Provide(NewService),
	)
}
