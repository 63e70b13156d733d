package server

import (
	"github.com/gitscope/gitscope/internal/auth"
	"github.com/gitscope/gitscope/internal/server/docs"
	authhandler "github.com/gitscope/gitscope/internal/server/handlers/auth"
	openerhandler "github.com/gitscope/gitscope/internal/server/handlers/opener"
	reposhandler "github.com/gitscope/gitscope/internal/server/handlers/repos"
	"github.com/gitscope/gitscope/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(reposhandler.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(openerhandler.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(authhandler.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, authSvc *auth.Service, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// Version 1 API group
					v1 := app.Group("/api/v1")
					openapiHandler.Register(v1.Group("/docs"))

					v1.Use(validation.Middleware)
					if authSvc.Enabled() {
						v1.Use(mutationGuard(authSvc))
					}

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
