package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// View model per role. Satu struct per cabang supaya bentuk data dashboard
// eksplisit, bukan map dinamis yang bisa jatuh ke "else kosong".

type SuperAdminStats struct {
	TotalStores    int64 `json:"total_stores"`
	TotalProducts  int64 `json:"total_products"`
	TotalCustomers int64 `json:"total_customers"`
	TotalROs       int64 `json:"total_ros"`
}

type SuperAdminDashboard struct {
	Stats          SuperAdminStats     `json:"stats"`
	RecentStores   []models.OptikStore `json:"recent_stores"`
	RecentProducts []models.Product    `json:"recent_products"`
}

type StoreStats struct {
	TotalProducts  int64 `json:"total_products"`
	ActiveProducts int64 `json:"active_products"`
	TotalOrders    int64 `json:"total_orders"`
	PendingOrders  int64 `json:"pending_orders"`
}

type StoreDashboard struct {
	HasStore       bool               `json:"has_store"`
	Store          *models.OptikStore `json:"store,omitempty"`
	Stats          StoreStats         `json:"stats"`
	RecentProducts []models.Product   `json:"recent_products"`
	RecentOrders   []models.Order     `json:"recent_orders"`
}

type ROStats struct {
	TotalAppointments     int64 `json:"total_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	TotalPrescriptions    int64 `json:"total_prescriptions"`
}

type RODashboard struct {
	Stats                ROStats               `json:"stats"`
	UpcomingAppointments []models.Appointment  `json:"upcoming_appointments"`
	RecentPrescriptions  []models.Prescription `json:"recent_prescriptions"`
}

type CustomerStats struct {
	TotalOrders        int64 `json:"total_orders"`
	PendingOrders      int64 `json:"pending_orders"`
	TotalAppointments  int64 `json:"total_appointments"`
	TotalPrescriptions int64 `json:"total_prescriptions"`
}

type CustomerDashboard struct {
	Stats                CustomerStats        `json:"stats"`
	RecentOrders         []models.Order       `json:"recent_orders"`
	UpcomingAppointments []models.Appointment `json:"upcoming_appointments"`
	LatestPrescription   *models.Prescription `json:"latest_prescription,omitempty"`
	FaceAnalysis         *models.FaceAnalysis `json:"face_analysis,omitempty"`
}

type GuestStats struct {
	TotalStores   int64 `json:"total_stores"`
	TotalProducts int64 `json:"total_products"`
}

type GuestDashboard struct {
	FeaturedStores   []models.OptikStore `json:"featured_stores"`
	FeaturedProducts []models.Product    `json:"featured_products"`
	Stats            GuestStats          `json:"stats"`
}

// GetDashboard menyusun data dashboard sesuai role user saat ini.
// Request tanpa identitas mendapat cabang guest. Tidak ada cabang yang
// mengubah state; data kosong (belum punya toko, belum ada riwayat)
// menghasilkan koleksi kosong, bukan error.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondJSON(c, http.StatusOK, "Dashboard data retrieved successfully", gin.H{
			"user_role": nil,
			"data":      dc.guestDashboard(),
		})
		return
	}

	var user models.User
	if err := dc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found"))
		return
	}

	var data interface{}
	switch user.Role {
	case models.RoleSuperAdmin:
		data = dc.superAdminDashboard()
	case models.RoleOptikStore:
		data = dc.storeDashboard(&user)
	case models.RoleRefraksiOptisi:
		data = dc.roDashboard(&user)
	case models.RoleCustomer:
		data = dc.customerDashboard(&user)
	default:
		utils.RespondError(c, http.StatusForbidden, errors.New("unknown role"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard data retrieved successfully", gin.H{
		"user_role": user.Role,
		"data":      data,
	})
}

func (dc *DashboardController) superAdminDashboard() SuperAdminDashboard {
	var out SuperAdminDashboard

	dc.DB.Model(&models.OptikStore{}).Count(&out.Stats.TotalStores)
	dc.DB.Model(&models.Product{}).Count(&out.Stats.TotalProducts)
	dc.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&out.Stats.TotalCustomers)
	dc.DB.Model(&models.User{}).Where("role = ?", models.RoleRefraksiOptisi).Count(&out.Stats.TotalROs)

	// Tie pada created_at dipecah dengan id ascending supaya urutan stabil
	dc.DB.Preload("User").
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&out.RecentStores)

	dc.DB.Preload("OptikStore").
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&out.RecentProducts)

	return out
}

func (dc *DashboardController) storeDashboard(user *models.User) StoreDashboard {
	var out StoreDashboard

	var store models.OptikStore
	if err := dc.DB.Where("user_id = ?", user.ID).First(&store).Error; err != nil {
		// User belum membuat profil toko: state valid, dashboard kosong
		return out
	}

	out.HasStore = true
	out.Store = &store

	dc.DB.Model(&models.Product{}).Where("optik_store_id = ?", store.ID).Count(&out.Stats.TotalProducts)
	dc.DB.Model(&models.Product{}).Where("optik_store_id = ? AND status = ?", store.ID, models.ProductActive).
		Count(&out.Stats.ActiveProducts)
	dc.DB.Model(&models.Order{}).Where("optik_store_id = ?", store.ID).Count(&out.Stats.TotalOrders)
	dc.DB.Model(&models.Order{}).Where("optik_store_id = ? AND status = ?", store.ID, models.OrderPending).
		Count(&out.Stats.PendingOrders)

	dc.DB.Where("optik_store_id = ?", store.ID).
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&out.RecentProducts)

	dc.DB.Preload("Customer").
		Where("optik_store_id = ?", store.ID).
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&out.RecentOrders)

	return out
}

func (dc *DashboardController) roDashboard(user *models.User) RODashboard {
	var out RODashboard

	dc.DB.Model(&models.Appointment{}).Where("ro_id = ?", user.ID).Count(&out.Stats.TotalAppointments)
	dc.DB.Model(&models.Appointment{}).Where("ro_id = ? AND status = ?", user.ID, models.AppointmentPending).
		Count(&out.Stats.PendingAppointments)
	dc.DB.Model(&models.Appointment{}).Where("ro_id = ? AND status = ?", user.ID, models.AppointmentCompleted).
		Count(&out.Stats.CompletedAppointments)
	dc.DB.Model(&models.Prescription{}).Where("ro_id = ?", user.ID).Count(&out.Stats.TotalPrescriptions)

	dc.DB.Preload("Customer").
		Where("ro_id = ? AND appointment_date >= ?", user.ID, time.Now()).
		Order("appointment_date ASC, id ASC").
		Limit(5).
		Find(&out.UpcomingAppointments)

	dc.DB.Preload("Customer").
		Where("ro_id = ?", user.ID).
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&out.RecentPrescriptions)

	return out
}

func (dc *DashboardController) customerDashboard(user *models.User) CustomerDashboard {
	var out CustomerDashboard

	dc.DB.Model(&models.Order{}).Where("customer_id = ?", user.ID).Count(&out.Stats.TotalOrders)
	dc.DB.Model(&models.Order{}).Where("customer_id = ? AND status = ?", user.ID, models.OrderPending).
		Count(&out.Stats.PendingOrders)
	dc.DB.Model(&models.Appointment{}).Where("customer_id = ?", user.ID).Count(&out.Stats.TotalAppointments)
	dc.DB.Model(&models.Prescription{}).Where("customer_id = ?", user.ID).Count(&out.Stats.TotalPrescriptions)

	dc.DB.Preload("OptikStore").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("customer_id = ?", user.ID).
		Order("created_at DESC, id ASC").
		Limit(3).
		Find(&out.RecentOrders)

	dc.DB.Preload("RO").
		Where("customer_id = ? AND appointment_date >= ?", user.ID, time.Now()).
		Order("appointment_date ASC, id ASC").
		Limit(3).
		Find(&out.UpcomingAppointments)

	var prescription models.Prescription
	if err := dc.DB.Preload("RO").
		Where("customer_id = ?", user.ID).
		Order("created_at DESC, id ASC").
		First(&prescription).Error; err == nil {
		out.LatestPrescription = &prescription
	}

	var analysis models.FaceAnalysis
	if err := dc.DB.Where("customer_id = ?", user.ID).
		Order("created_at DESC, id ASC").
		First(&analysis).Error; err == nil {
		out.FaceAnalysis = &analysis
	}

	return out
}

func (dc *DashboardController) guestDashboard() GuestDashboard {
	var out GuestDashboard

	dc.DB.Preload("User").
		Order("created_at DESC, id ASC").
		Limit(6).
		Find(&out.FeaturedStores)

	// Preload dengan Limit di GORM berlaku global, bukan per toko,
	// jadi 3 produk aktif per toko diambil per store
	for i := range out.FeaturedStores {
		dc.DB.Where("optik_store_id = ? AND status = ?", out.FeaturedStores[i].ID, models.ProductActive).
			Order("created_at DESC, id ASC").
			Limit(3).
			Find(&out.FeaturedStores[i].Products)
	}

	dc.DB.Preload("OptikStore").
		Where("status = ?", models.ProductActive).
		Order(dc.randomOrderExpr()).
		Limit(8).
		Find(&out.FeaturedProducts)

	dc.DB.Model(&models.OptikStore{}).Count(&out.Stats.TotalStores)
	dc.DB.Model(&models.Product{}).Where("status = ?", models.ProductActive).Count(&out.Stats.TotalProducts)

	return out
}

func (dc *DashboardController) randomOrderExpr() string {
	if dc.DB.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
