package server

import (
	"Retail/handler"
)

type Handlers struct {
	City    *handler.CityHandler
	Store   *handler.StoreHandler
	Product *handler.ProductHandler
	Sale    *handler.SaleHandler
}
