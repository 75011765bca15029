package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ramadhanip/optik-care-app/controllers"
	"github.com/ramadhanip/optik-care-app/models"
)

func setupCatalogDB(name string) *gorm.DB {
	db := openTestDB(name)

	owner := models.User{Name: "Owner", Email: "owner@catalog.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	store := models.OptikStore{UserID: owner.ID, StoreName: "Optik Catalog", Location: "Jakarta"}
	db.Create(&store)

	rayban := "Ray-Ban"
	oakley := "Oakley"

	products := []models.Product{
		{OptikStoreID: store.ID, Name: "Aviator Classic", Description: "Frame legendaris",
			Type: models.ProductTypeGlasses, Price: 1500000, Brand: &rayban, Status: models.ProductActive},
		{OptikStoreID: store.ID, Name: "Holbrook", Description: "Sporty frame",
			Type: models.ProductTypeGlasses, Price: 2000000, Brand: &oakley, Status: models.ProductActive},
		{OptikStoreID: store.ID, Name: "Daily Soft Lens", Description: "Lensa harian",
			Type: models.ProductTypeLenses, Price: 350000, Brand: &rayban, Status: models.ProductActive},
		{OptikStoreID: store.ID, Name: "Discontinued Frame", Description: "Sudah tidak dijual",
			Type: models.ProductTypeGlasses, Price: 500000, Brand: &oakley, Status: models.ProductInactive},
		{OptikStoreID: store.ID, Name: "No Brand Lens", Description: "Lensa generik",
			Type: models.ProductTypeLenses, Price: 100000, Status: models.ProductActive},
	}
	for i := range products {
		products[i].CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		db.Create(&products[i])
	}
	return db
}

func catalogRequest(t *testing.T, db *gorm.DB, query string) map[string]interface{} {
	t.Helper()
	router := gin.New()
	ctrl := controllers.NewProductController(db)
	router.GET("/catalog", ctrl.Catalog)

	req := httptest.NewRequest(http.MethodGet, "/catalog"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	return data
}

func catalogNames(data map[string]interface{}) []string {
	var names []string
	for _, p := range data["products"].([]interface{}) {
		names = append(names, p.(map[string]interface{})["name"].(string))
	}
	return names
}

func TestCatalogOnlyActiveProducts(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "")
	names := catalogNames(data)
	assert.Len(t, names, 4)
	assert.NotContains(t, names, "Discontinued Frame")
}

func TestCatalogTypeFilter(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "?type=lenses")
	names := catalogNames(data)
	assert.ElementsMatch(t, []string{"Daily Soft Lens", "No Brand Lens"}, names)
}

func TestCatalogBrandFilter(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "?brand=Ray-Ban")
	names := catalogNames(data)
	assert.ElementsMatch(t, []string{"Aviator Classic", "Daily Soft Lens"}, names)
}

// Batas harga bersifat inklusif di kedua sisi.
func TestCatalogPriceRangeInclusive(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "?min_price=350000&max_price=1500000")
	names := catalogNames(data)
	assert.ElementsMatch(t, []string{"Aviator Classic", "Daily Soft Lens"}, names)
}

// Search case-insensitive dan cocok terhadap name ATAU description ATAU brand.
func TestCatalogSearchCaseInsensitive(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "?search=aviator")
	assert.Contains(t, catalogNames(data), "Aviator Classic")

	data = catalogRequest(t, db, "?search=LENSA")
	names := catalogNames(data)
	assert.ElementsMatch(t, []string{"Daily Soft Lens", "No Brand Lens"}, names)

	// Cocok lewat brand
	data = catalogRequest(t, db, "?search=oakley")
	assert.ElementsMatch(t, []string{"Holbrook"}, catalogNames(data))
}

func TestCatalogCombinedFilters(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "?type=glasses&brand=Oakley")
	assert.ElementsMatch(t, []string{"Holbrook"}, catalogNames(data))

	// Kombinasi yang tidak mungkin menghasilkan list kosong, bukan error
	data = catalogRequest(t, db, "?type=lenses&brand=Oakley")
	assert.Empty(t, data["products"])
}

func TestCatalogBrandFacet(t *testing.T) {
	db := setupCatalogDB(t.Name())

	data := catalogRequest(t, db, "")
	brands := data["brands"].([]interface{})
	// Brand unik non-null dari produk aktif saja, terurut
	assert.Equal(t, []interface{}{"Oakley", "Ray-Ban"}, brands)
}

func TestCatalogPagination(t *testing.T) {
	db := openTestDB(t.Name())

	owner := models.User{Name: "Owner", Email: "owner@page.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	store := models.OptikStore{UserID: owner.ID, StoreName: "Optik Page", Location: "Jakarta"}
	db.Create(&store)

	for i := 0; i < 15; i++ {
		db.Create(&models.Product{
			OptikStoreID: store.ID,
			Name:         fmt.Sprintf("Product %02d", i),
			Type:         models.ProductTypeGlasses,
			Price:        100,
			Status:       models.ProductActive,
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	data := catalogRequest(t, db, "?page=1")
	assert.Len(t, data["products"].([]interface{}), 12)
	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 15, pagination["total"])
	assert.EqualValues(t, 2, pagination["last_page"])

	data = catalogRequest(t, db, "?page=2")
	assert.Len(t, data["products"].([]interface{}), 3)

	// Halaman melewati akhir menghasilkan list kosong, bukan error
	data = catalogRequest(t, db, "?page=3")
	assert.Empty(t, data["products"])
}

func TestProductDetail(t *testing.T) {
	db := setupCatalogDB(t.Name())

	var product models.Product
	db.Where("name = ?", "Aviator Classic").First(&product)

	router := gin.New()
	ctrl := controllers.NewProductController(db)
	router.GET("/products/:product_id", ctrl.GetProductByID)

	req := httptest.NewRequest(http.MethodGet, "/products/"+strconv.Itoa(int(product.ID)), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	detail := data["product"].(map[string]interface{})
	assert.Equal(t, "Aviator Classic", detail["name"])
	storeData := detail["optik_store"].(map[string]interface{})
	assert.Equal(t, "Optik Catalog", storeData["store_name"])
}

func TestProductDetailNotFound(t *testing.T) {
	db := setupCatalogDB(t.Name())

	router := gin.New()
	ctrl := controllers.NewProductController(db)
	router.GET("/products/:product_id", ctrl.GetProductByID)

	req := httptest.NewRequest(http.MethodGet, "/products/99999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
