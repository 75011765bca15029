package database

import (
	"time"

	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData mengisi data demo: super admin, tiga toko optik dengan
// produk, satu refraksi optisi, dan satu customer. Tidak melakukan apa-apa
// jika sudah ada user di database.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hashed)

	admin := models.User{
		Name:     "Super Admin",
		Email:    "admin@optikcare.com",
		Password: password,
		Role:     models.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	stores := []struct {
		ownerName   string
		email       string
		storeName   string
		location    string
		description string
	}{
		{"Vision Pro Optical", "store1@optikcare.com", "Vision Pro Optical Jakarta", "Jakarta Pusat",
			"Premium optical store with latest fashion frames and advanced lens technology."},
		{"Crystal Clear Optik", "store2@optikcare.com", "Crystal Clear Optik Bandung", "Bandung",
			"Affordable quality eyewear for the whole family."},
		{"Modern Eyes Center", "store3@optikcare.com", "Modern Eyes Center Surabaya", "Surabaya",
			"Specialized in designer frames and high-index lenses."},
	}

	brands := []string{"Ray-Ban", "Oakley", "Essilor"}

	for i, s := range stores {
		owner := models.User{
			Name:     s.ownerName,
			Email:    s.email,
			Password: password,
			Role:     models.RoleOptikStore,
		}
		if err := db.Create(&owner).Error; err != nil {
			return err
		}

		store := models.OptikStore{
			UserID:      owner.ID,
			StoreName:   s.storeName,
			Description: s.description,
			Location:    s.location,
			OperatingHours: models.JSONMap{
				"monday-friday": "09:00-20:00",
				"saturday":      "09:00-21:00",
				"sunday":        "10:00-17:00",
			},
		}
		if err := db.Create(&store).Error; err != nil {
			return err
		}

		brand := brands[i]
		products := []models.Product{
			{
				OptikStoreID: store.ID,
				Name:         brand + " Classic Frame",
				Description:  "Timeless frame for everyday wear.",
				Type:         models.ProductTypeGlasses,
				Price:        1250000,
				Brand:        &brand,
				Specifications: models.JSONMap{
					"material": "acetate",
					"width":    "140mm",
				},
				Stock:  10,
				Status: models.ProductActive,
			},
			{
				OptikStoreID: store.ID,
				Name:         brand + " Daily Lenses",
				Description:  "Comfortable daily disposable contact lenses.",
				Type:         models.ProductTypeLenses,
				Price:        350000,
				Brand:        &brand,
				Specifications: models.JSONMap{
					"water_content": "58%",
					"pack_size":     "30",
				},
				Stock:  50,
				Status: models.ProductActive,
			},
		}
		for j := range products {
			if err := db.Create(&products[j]).Error; err != nil {
				return err
			}
		}
	}

	roPhone := "+628123456789"
	ro := models.User{
		Name:     "Dewi Refraksi",
		Email:    "ro@optikcare.com",
		Password: password,
		Role:     models.RoleRefraksiOptisi,
		Phone:    &roPhone,
	}
	if err := db.Create(&ro).Error; err != nil {
		return err
	}

	customerAddr := "Jl. Melati No. 5, Jakarta Selatan"
	customer := models.User{
		Name:     "Budi Santoso",
		Email:    "customer@optikcare.com",
		Password: password,
		Role:     models.RoleCustomer,
		Address:  &customerAddr,
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	appointment := models.Appointment{
		CustomerID:      customer.ID,
		ROID:            &ro.ID,
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		CustomerAddress: customerAddr,
		Status:          models.AppointmentPending,
	}
	if err := db.Create(&appointment).Error; err != nil {
		return err
	}

	utils.InfoLogger.Println("Demo data seeded.")
	return nil
}
