package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

type StoreController struct {
	DB *gorm.DB
}

func NewStoreController(db *gorm.DB) *StoreController {
	return &StoreController{DB: db}
}

// ownedStore mengambil toko milik user saat ini.
func (sc *StoreController) ownedStore(c *gin.Context) (*models.OptikStore, bool) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return nil, false
	}

	var store models.OptikStore
	if err := sc.DB.Where("user_id = ?", userID).First(&store).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("you have not registered a store yet"))
		return nil, false
	}
	return &store, true
}

// CreateStore membuat profil toko untuk user optik_store. Satu user satu toko.
func (sc *StoreController) CreateStore(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var existing models.OptikStore
	if err := sc.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("store already registered for this account"))
		return
	}

	var req struct {
		StoreName      string         `json:"store_name" binding:"required"`
		Description    string         `json:"description"`
		Location       string         `json:"location" binding:"required"`
		LicenseNumber  *string        `json:"license_number"`
		OperatingHours models.JSONMap `json:"operating_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store := models.OptikStore{
		UserID:         userID,
		StoreName:      req.StoreName,
		Description:    req.Description,
		Location:       req.Location,
		LicenseNumber:  req.LicenseNumber,
		OperatingHours: req.OperatingHours,
	}

	if err := sc.DB.Create(&store).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Store %q registered by user %d", store.StoreName, userID)

	utils.RespondJSON(c, http.StatusCreated, "Store registered", store)
}

// UpdateStore memperbarui profil toko milik user saat ini.
func (sc *StoreController) UpdateStore(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}

	var req struct {
		StoreName      *string        `json:"store_name"`
		Description    *string        `json:"description"`
		Location       *string        `json:"location"`
		LicenseNumber  *string        `json:"license_number"`
		OperatingHours models.JSONMap `json:"operating_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.StoreName != nil {
		store.StoreName = *req.StoreName
	}
	if req.Description != nil {
		store.Description = *req.Description
	}
	if req.Location != nil {
		store.Location = *req.Location
	}
	if req.LicenseNumber != nil {
		store.LicenseNumber = req.LicenseNumber
	}
	if req.OperatingHours != nil {
		store.OperatingHours = req.OperatingHours
	}

	if err := sc.DB.Save(store).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Store updated", store)
}

// GetMyStore menampilkan profil toko user saat ini.
func (sc *StoreController) GetMyStore(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Store profile", store)
}

// CreateProduct menambahkan produk ke toko milik user saat ini.
func (sc *StoreController) CreateProduct(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}

	var req struct {
		Name           string            `json:"name" binding:"required"`
		Description    string            `json:"description"`
		Type           string            `json:"type" binding:"required"`
		Price          float64           `json:"price" binding:"required"`
		Brand          *string           `json:"brand"`
		Specifications models.JSONMap    `json:"specifications"`
		Images         models.StringList `json:"images"`
		Stock          int               `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fieldErrors := map[string]string{}
	if !models.ValidProductType(req.Type) {
		fieldErrors["type"] = "Product type must be glasses or lenses."
	}
	if req.Price < 0 {
		fieldErrors["price"] = "Price cannot be negative."
	}
	if req.Stock < 0 {
		fieldErrors["stock"] = "Stock cannot be negative."
	}
	if len(fieldErrors) > 0 {
		utils.RespondValidationErrors(c, fieldErrors)
		return
	}

	product := models.Product{
		OptikStoreID:   store.ID,
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Price:          req.Price,
		Brand:          req.Brand,
		Specifications: req.Specifications,
		Images:         req.Images,
		Stock:          req.Stock,
		Status:         models.ProductActive,
	}

	if err := sc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// storeProduct mengambil produk milik toko user saat ini.
func (sc *StoreController) storeProduct(c *gin.Context, store *models.OptikStore) (*models.Product, bool) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product ID"))
		return nil, false
	}

	var product models.Product
	if err := sc.DB.Where("id = ? AND optik_store_id = ?", id, store.ID).First(&product).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found in your store"))
		return nil, false
	}
	return &product, true
}

// UpdateProduct memperbarui sebagian field produk milik toko sendiri.
func (sc *StoreController) UpdateProduct(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}
	product, ok := sc.storeProduct(c, store)
	if !ok {
		return
	}

	var req struct {
		Name           *string           `json:"name"`
		Description    *string           `json:"description"`
		Type           *string           `json:"type"`
		Price          *float64          `json:"price"`
		Brand          *string           `json:"brand"`
		Specifications models.JSONMap    `json:"specifications"`
		Images         models.StringList `json:"images"`
		Stock          *int              `json:"stock"`
		Status         *string           `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Type != nil && !models.ValidProductType(*req.Type) {
		utils.RespondValidationErrors(c, map[string]string{"type": "Product type must be glasses or lenses."})
		return
	}
	if req.Status != nil && *req.Status != models.ProductActive && *req.Status != models.ProductInactive {
		utils.RespondValidationErrors(c, map[string]string{"status": "Status must be active or inactive."})
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		utils.RespondValidationErrors(c, map[string]string{"stock": "Stock cannot be negative."})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Brand != nil {
		product.Brand = req.Brand
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := sc.DB.Save(product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeactivateProduct menonaktifkan produk; katalog tidak pernah hard-delete.
func (sc *StoreController) DeactivateProduct(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}
	product, ok := sc.storeProduct(c, store)
	if !ok {
		return
	}

	product.Status = models.ProductInactive
	if err := sc.DB.Save(product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deactivated", product)
}

// UploadProductImage menerima upload gambar multipart untuk produk milik
// toko sendiri dan menambahkan path-nya ke daftar gambar produk.
func (sc *StoreController) UploadProductImage(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}
	product, ok := sc.storeProduct(c, store)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	uploadDir := "public/uploads/product_images"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error creating upload directory"))
		return
	}

	// Nama file acak supaya upload dengan nama sama tidak saling timpa
	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	savePath := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	product.Images = append(product.Images, "/uploads/product_images/"+filename)
	if err := sc.DB.Save(product).Error; err != nil {
		os.Remove(savePath)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Image uploaded", product)
}

// ListStoreProducts menampilkan seluruh produk toko milik user saat ini.
func (sc *StoreController) ListStoreProducts(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := sc.DB.Where("optik_store_id = ?", store.ID).
		Order("created_at DESC, id ASC").
		Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Store products", products)
}

// ListStoreOrders menampilkan pesanan yang masuk ke toko milik user saat ini.
func (sc *StoreController) ListStoreOrders(c *gin.Context) {
	store, ok := sc.ownedStore(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := sc.DB.Preload("Customer").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("optik_store_id = ?", store.ID).
		Order("created_at DESC, id ASC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Store orders", orders)
}
