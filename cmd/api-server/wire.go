//go:build wireinject
// +build wireinject

package main

import (
	"boxbox/config"
	"boxbox/dao"
	"boxbox/dao/cache"
	"boxbox/handler"
	"boxbox/middleware"
	"boxbox/pkg/client"
	"boxbox/pkg/database"
	"boxbox/pkg/server"
	"boxbox/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,

		middleware.NewIdentityProvider,
		wire.Bind(new(middleware.IdentityProvider), new(*middleware.JwtIdentityProvider)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Race), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
