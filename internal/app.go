package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/gitscope/gitscope/internal/auth"
	"github.com/gitscope/gitscope/internal/config"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/opener"
	"github.com/gitscope/gitscope/internal/repos"
	"github.com/gitscope/gitscope/internal/server"
	"github.com/gitscope/gitscope/internal/snapshots"
	"github.com/gitscope/gitscope/pkg/badgerfx"
	"github.com/gitscope/gitscope/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		openapifx.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.0.1", ReleaseID: 1} }),
		git.Module(),
		repos.Module(),
		snapshots.Module(),
		opener.Module(),
		auth.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🔍 GitScope application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 GitScope application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
