package service

import (
	"Retail/dao"
	"Retail/models"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	city    *CityService
	store   *StoreService
	product *ProductService
	sale    *SaleService
}

func newTestEnv(t *testing.T) *testEnv {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.City{}, &models.Store{}, &models.Sale{}, &models.Product{})
	require.NoError(t, err)

	cityDAO := dao.NewCity(db)
	storeDAO := dao.NewStore(db)
	productDAO := dao.NewProduct(db)
	saleDAO := dao.NewSale(db)

	return &testEnv{
		db:      db,
		city:    &CityService{DB: db, CityDAO: cityDAO},
		store:   &StoreService{DB: db, StoreDAO: storeDAO, CityDAO: cityDAO},
		product: &ProductService{DB: db, ProductDAO: productDAO, StoreDAO: storeDAO},
		sale:    &SaleService{DB: db, SaleDAO: saleDAO, ProductDAO: productDAO},
	}
}

// newCityStore 常用夹具：一座城市加一家门店
func (e *testEnv) newCityStore(t *testing.T) (*models.City, *models.Store) {
	ctx := context.Background()

	city := &models.City{Name: "Springfield"}
	require.NoError(t, e.db.WithContext(ctx).Create(city).Error)

	store := &models.Store{Name: "Main St", CityID: city.ID}
	require.NoError(t, e.db.WithContext(ctx).Create(store).Error)

	return city, store
}

func (e *testEnv) newProduct(t *testing.T, store *models.Store, name, price string) *models.Product {
	ctx := context.Background()
	product := &models.Product{
		Name:    name,
		Price:   mustDecimal(t, price),
		StoreID: store.ID,
	}
	require.NoError(t, e.db.WithContext(ctx).Create(product).Error)
	return product
}
