package handler

import (
	"Retail/dao"
	"Retail/models"
	"Retail/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

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

	cityHandler := &CityHandler{CityService: &service.CityService{DB: db, CityDAO: cityDAO}}
	storeHandler := &StoreHandler{StoreService: &service.StoreService{DB: db, StoreDAO: storeDAO, CityDAO: cityDAO}}
	productHandler := &ProductHandler{ProductService: &service.ProductService{DB: db, ProductDAO: productDAO, StoreDAO: storeDAO}}
	saleHandler := &SaleHandler{SaleService: &service.SaleService{DB: db, SaleDAO: saleDAO, ProductDAO: productDAO}}

	r := gin.New()
	api := r.Group("/api")
	cityHandler.RegisterRouter(api)
	storeHandler.RegisterRouter(api)
	productHandler.RegisterRouter(api)
	saleHandler.RegisterRouter(api)

	return r, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
