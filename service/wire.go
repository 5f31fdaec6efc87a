package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CityService), "*"),
	wire.Bind(new(ICityService), new(*CityService)),

	wire.Struct(new(StoreService), "*"),
	wire.Bind(new(IStoreService), new(*StoreService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(SaleService), "*"),
	wire.Bind(new(ISaleService), new(*SaleService)),
)
