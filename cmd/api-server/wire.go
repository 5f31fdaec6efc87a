//go:build wireinject
// +build wireinject

package main

import (
	"Retail/config"
	"Retail/dao"
	"Retail/handler"
	"Retail/pkg/database"
	"Retail/pkg/server"
	"Retail/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,
		wire.Struct(new(handler.CityHandler), "*"),
		wire.Struct(new(handler.StoreHandler), "*"),
		wire.Struct(new(handler.ProductHandler), "*"),
		wire.Struct(new(handler.SaleHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
