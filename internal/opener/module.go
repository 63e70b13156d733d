package opener

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Module provides the opener service under its two capability roles.
func Module() fx.Option {
	return fx.Module(
		"opener",
		logger.WithNamedLogger("opener"),
		fx.Provide(
			fx.Annotate(
				NewService,
				fx.As(new(ResourceHandler)),
				fx.As(new(URIOpener)),
			),
		),
	)
}
