package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ramadhanip/optik-care-app/controllers"
	"github.com/ramadhanip/optik-care-app/models"
)

func storeRouter(db *gorm.DB, userID uint) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewStoreController(db)
	router.Use(asUser(userID, models.RoleOptikStore))
	router.POST("/store", ctrl.CreateStore)
	router.GET("/store", ctrl.GetMyStore)
	router.PATCH("/store", ctrl.UpdateStore)
	router.POST("/store/products", ctrl.CreateProduct)
	router.GET("/store/products", ctrl.ListStoreProducts)
	router.PATCH("/store/products/:product_id", ctrl.UpdateProduct)
	router.DELETE("/store/products/:product_id", ctrl.DeactivateProduct)
	router.GET("/store/orders", ctrl.ListStoreOrders)
	return router
}

func putJSON(router *gin.Engine, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateStoreOncePerAccount(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	router := storeRouter(db, owner.ID)

	w := postJSON(router, "/store", map[string]interface{}{
		"store_name": "Optik Baru",
		"location":   "Jakarta",
		"operating_hours": map[string]string{
			"monday-friday": "09:00-20:00",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var store models.OptikStore
	assert.NoError(t, db.First(&store, "user_id = ?", owner.ID).Error)
	assert.Equal(t, "Optik Baru", store.StoreName)
	assert.Equal(t, "09:00-20:00", store.OperatingHours["monday-friday"])

	// Toko kedua untuk akun yang sama ditolak
	w = postJSON(router, "/store", map[string]interface{}{
		"store_name": "Optik Kedua",
		"location":   "Bandung",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStoreEndpointsWithoutStore(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	router := storeRouter(db, owner.ID)

	req := httptest.NewRequest(http.MethodGet, "/store/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStorePartial(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	db.Create(&models.OptikStore{UserID: owner.ID, StoreName: "Optik Lama",
		Description: "Deskripsi lama", Location: "Jakarta"})
	router := storeRouter(db, owner.ID)

	w := putJSON(router, http.MethodPatch, "/store", map[string]interface{}{
		"store_name": "Optik Baru",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var store models.OptikStore
	db.First(&store, "user_id = ?", owner.ID)
	assert.Equal(t, "Optik Baru", store.StoreName)
	// Field yang tidak dikirim tidak berubah
	assert.Equal(t, "Deskripsi lama", store.Description)
	assert.Equal(t, "Jakarta", store.Location)
}

func TestCreateProductValidation(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	db.Create(&models.OptikStore{UserID: owner.ID, StoreName: "Optik Satu", Location: "Jakarta"})
	router := storeRouter(db, owner.ID)

	w := postJSON(router, "/store/products", map[string]interface{}{
		"name":  "Frame Aneh",
		"type":  "sunscreen",
		"price": 100000,
		"stock": -1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := validationErrors(t, w)
	assert.Equal(t, "Product type must be glasses or lenses.", errs["type"])
	assert.Equal(t, "Stock cannot be negative.", errs["stock"])

	w = postJSON(router, "/store/products", map[string]interface{}{
		"name":  "Frame Baik",
		"type":  models.ProductTypeGlasses,
		"price": 100000,
		"stock": 5,
		"specifications": map[string]string{
			"material": "titanium",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	assert.NoError(t, db.First(&product, "name = ?", "Frame Baik").Error)
	assert.Equal(t, models.ProductActive, product.Status)
	assert.Equal(t, "titanium", product.Specifications["material"])
}

func TestUpdateProductOwnStoreOnly(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	other := models.User{Name: "Other", Email: "other@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	db.Create(&other)
	myStore := models.OptikStore{UserID: owner.ID, StoreName: "Optik Satu", Location: "Jakarta"}
	otherStore := models.OptikStore{UserID: other.ID, StoreName: "Optik Dua", Location: "Bandung"}
	db.Create(&myStore)
	db.Create(&otherStore)

	mine := models.Product{OptikStoreID: myStore.ID, Name: "Frame Saya",
		Type: models.ProductTypeGlasses, Price: 100000, Status: models.ProductActive}
	foreign := models.Product{OptikStoreID: otherStore.ID, Name: "Frame Orang",
		Type: models.ProductTypeGlasses, Price: 100000, Status: models.ProductActive}
	db.Create(&mine)
	db.Create(&foreign)

	router := storeRouter(db, owner.ID)

	w := putJSON(router, http.MethodPatch, fmt.Sprintf("/store/products/%d", mine.ID),
		map[string]interface{}{"price": 125000.0})
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Product
	db.First(&saved, mine.ID)
	assert.Equal(t, 125000.0, saved.Price)
	assert.Equal(t, "Frame Saya", saved.Name)

	// Produk milik toko lain tidak terlihat dari sini
	w = putJSON(router, http.MethodPatch, fmt.Sprintf("/store/products/%d", foreign.ID),
		map[string]interface{}{"price": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeactivateProductKeepsRow(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	db.Create(&owner)
	store := models.OptikStore{UserID: owner.ID, StoreName: "Optik Satu", Location: "Jakarta"}
	db.Create(&store)
	product := models.Product{OptikStoreID: store.ID, Name: "Frame Lama",
		Type: models.ProductTypeGlasses, Price: 100000, Status: models.ProductActive}
	db.Create(&product)

	router := storeRouter(db, owner.ID)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/store/products/%d", product.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Baris tetap ada, hanya statusnya berubah
	var saved models.Product
	assert.NoError(t, db.First(&saved, product.ID).Error)
	assert.Equal(t, models.ProductInactive, saved.Status)
}

func TestListStoreOrders(t *testing.T) {
	db := openTestDB(t.Name())
	owner := models.User{Name: "Owner", Email: "owner@mail.com", Password: "x", Role: models.RoleOptikStore}
	customer := models.User{Name: "Budi", Email: "budi@mail.com", Password: "x", Role: models.RoleCustomer}
	db.Create(&owner)
	db.Create(&customer)
	store := models.OptikStore{UserID: owner.ID, StoreName: "Optik Satu", Location: "Jakarta"}
	db.Create(&store)
	product := models.Product{OptikStoreID: store.ID, Name: "Frame A",
		Type: models.ProductTypeGlasses, Price: 100000, Status: models.ProductActive}
	db.Create(&product)

	order := models.Order{CustomerID: customer.ID, OptikStoreID: store.ID,
		Status: models.OrderPending, TotalAmount: 200000}
	db.Create(&order)
	db.Create(&models.OrderItem{OrderID: order.ID, ProductID: product.ID,
		Quantity: 2, Price: 100000, Subtotal: 200000})

	router := storeRouter(db, owner.ID)
	req := httptest.NewRequest(http.MethodGet, "/store/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	assert.Len(t, list, 1)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "Budi", first["customer"].(map[string]interface{})["name"])
	items := first["order_items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Frame A", items[0].(map[string]interface{})["product"].(map[string]interface{})["name"])
}
