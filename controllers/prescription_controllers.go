package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

type PrescriptionController struct {
	DB *gorm.DB
}

func NewPrescriptionController(db *gorm.DB) *PrescriptionController {
	return &PrescriptionController{DB: db}
}

// CreatePrescription dibuat oleh refraksi optisi untuk seorang customer
// setelah pemeriksaan. Axis, jika terisi, harus di rentang [0,180).
func (pc *PrescriptionController) CreatePrescription(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	if currentRole(c) != models.RoleRefraksiOptisi {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		CustomerID      uint     `json:"customer_id"`
		SphRight        *float64 `json:"sph_right"`
		SphLeft         *float64 `json:"sph_left"`
		CylRight        *float64 `json:"cyl_right"`
		CylLeft         *float64 `json:"cyl_left"`
		AxisRight       *int     `json:"axis_right"`
		AxisLeft        *int     `json:"axis_left"`
		AddPower        *float64 `json:"add_power"`
		PD              *float64 `json:"pd"`
		Notes           *string  `json:"notes"`
		ExaminationDate string   `json:"examination_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fieldErrors := map[string]string{}

	if req.CustomerID == 0 {
		fieldErrors["customer_id"] = "Customer is required."
	} else {
		var customer models.User
		if err := pc.DB.First(&customer, req.CustomerID).Error; err != nil {
			fieldErrors["customer_id"] = "Customer not found."
		} else if !customer.IsCustomer() {
			fieldErrors["customer_id"] = "Prescriptions can only be written for customers."
		}
	}

	if !models.ValidAxis(req.AxisRight) {
		fieldErrors["axis_right"] = "Axis must be between 0 and 179."
	}
	if !models.ValidAxis(req.AxisLeft) {
		fieldErrors["axis_left"] = "Axis must be between 0 and 179."
	}

	examinationDate := time.Now()
	if req.ExaminationDate != "" {
		parsed, err := parseAppointmentDate(req.ExaminationDate)
		if err != nil {
			fieldErrors["examination_date"] = "Examination date format is not recognized."
		} else {
			examinationDate = parsed
		}
	}

	if len(fieldErrors) > 0 {
		utils.RespondValidationErrors(c, fieldErrors)
		return
	}

	prescription := models.Prescription{
		CustomerID:      req.CustomerID,
		ROID:            userID,
		SphRight:        req.SphRight,
		SphLeft:         req.SphLeft,
		CylRight:        req.CylRight,
		CylLeft:         req.CylLeft,
		AxisRight:       req.AxisRight,
		AxisLeft:        req.AxisLeft,
		AddPower:        req.AddPower,
		PD:              req.PD,
		Notes:           req.Notes,
		ExaminationDate: examinationDate,
	}

	if err := pc.DB.Create(&prescription).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Prescription %d written by RO %d for customer %d",
		prescription.ID, userID, prescription.CustomerID)

	utils.RespondJSON(c, http.StatusCreated, "Prescription created", prescription)
}

// ListMyPrescriptions menampilkan resep milik customer saat ini, terbaru dulu.
func (pc *PrescriptionController) ListMyPrescriptions(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var prescriptions []models.Prescription
	if err := pc.DB.Preload("RO").
		Where("customer_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&prescriptions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My prescriptions", prescriptions)
}

// ListAuthoredPrescriptions menampilkan resep yang ditulis RO saat ini.
func (pc *PrescriptionController) ListAuthoredPrescriptions(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	if currentRole(c) != models.RoleRefraksiOptisi {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var prescriptions []models.Prescription
	if err := pc.DB.Preload("Customer").
		Where("ro_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&prescriptions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Authored prescriptions", prescriptions)
}

// GetPrescriptionByID menampilkan satu resep; hanya customer pemilik,
// RO penulis, atau super admin yang boleh melihat.
func (pc *PrescriptionController) GetPrescriptionByID(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	id, err := strconv.Atoi(c.Param("prescription_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid prescription ID"))
		return
	}

	var prescription models.Prescription
	if err := pc.DB.Preload("Customer").Preload("RO").
		First(&prescription, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("prescription not found"))
		return
	}

	role := currentRole(c)
	if role != models.RoleSuperAdmin && prescription.CustomerID != userID && prescription.ROID != userID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Prescription detail", prescription)
}
