package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

const catalogPerPage = 12

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// Catalog menampilkan produk aktif dengan filter opsional
// {type, brand, min_price, max_price, search} dan pagination 12 per halaman.
// Semua filter di-AND-kan; search dicocokkan case-insensitive terhadap
// name ATAU description ATAU brand.
func (pc *ProductController) Catalog(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	productType := c.Query("type")
	brand := c.Query("brand")
	minPrice := c.Query("min_price")
	maxPrice := c.Query("max_price")
	search := c.Query("search")

	applyFilters := func(q *gorm.DB) *gorm.DB {
		q = q.Where("status = ?", models.ProductActive)
		if productType != "" {
			q = q.Where("type = ?", productType)
		}
		if brand != "" {
			q = q.Where("brand = ?", brand)
		}
		if minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				q = q.Where("price >= ?", v)
			}
		}
		if maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				q = q.Where("price <= ?", v)
			}
		}
		if search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
				pattern, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := applyFilters(pc.DB.Model(&models.Product{})).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var products []models.Product
	if err := applyFilters(pc.DB.Preload("OptikStore")).
		Order("created_at DESC, id ASC").
		Limit(catalogPerPage).
		Offset((page - 1) * catalogPerPage).
		Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Facet brand: brand unik non-null dari seluruh produk aktif
	var brands []string
	pc.DB.Model(&models.Product{}).
		Where("status = ? AND brand IS NOT NULL AND brand <> ''", models.ProductActive).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands)

	lastPage := (total + catalogPerPage - 1) / catalogPerPage

	utils.RespondJSON(c, http.StatusOK, "Product catalog", gin.H{
		"products": products,
		"pagination": gin.H{
			"current_page": page,
			"per_page":     catalogPerPage,
			"total":        total,
			"last_page":    lastPage,
		},
		"brands": brands,
		"filters": gin.H{
			"type":      productType,
			"brand":     brand,
			"min_price": minPrice,
			"max_price": maxPrice,
			"search":    search,
		},
	})
}

// GetProductByID menampilkan detail produk beserta toko pemilik (dan
// usernya) serta riwayat order item produk tersebut.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	idStr := c.Param("product_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product ID"))
		return
	}

	var product models.Product
	if err := pc.DB.Preload("OptikStore").Preload("OptikStore.User").
		First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	var orderItems []models.OrderItem
	pc.DB.Where("product_id = ?", product.ID).
		Order("created_at DESC, id ASC").
		Find(&orderItems)

	utils.RespondJSON(c, http.StatusOK, "Product detail", gin.H{
		"product":     product,
		"order_items": orderItems,
	})
}
