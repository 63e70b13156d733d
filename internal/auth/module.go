package auth

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"auth",
		logger.WithNamedLogger("auth"),
		fx.Provide(newUserRepository, fx.Private),
		fx.Provide(NewService),
		fx.Invoke(func(lc fx.Lifecycle, service *Service) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return service.Bootstrap(ctx)
				},
			})
		}),
	)
}
