package config

import (
	"github.com/gitscope/gitscope/internal/auth"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/opener"
	"github.com/gitscope/gitscope/pkg/badgerfx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:      cfg.Storage.DataDir,
				InMemory: cfg.Storage.InMemory,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Timeout:       cfg.Git.Timeout,
				MaxLogEntries: cfg.Git.MaxLogEntries,
			}
		}),
		fx.Provide(func(cfg Config) opener.Config {
			return opener.Config{
				EditorScheme: cfg.Opener.EditorScheme,
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey:      []byte(cfg.Auth.SecretKey),
				Issuer:         cfg.Auth.Issuer,
				AccessTokenExp: cfg.Auth.AccessTokenExp,
				AdminUser:      cfg.Auth.AdminUser,
				AdminPassword:  cfg.Auth.AdminPassword,
			}
		}),
	)
}
