package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

const maxAddressLength = 1000
const maxNotesLength = 1000

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized datetime format")
}

// ListAvailableROs menampilkan daftar refraksi optisi untuk form booking.
func (ac *AppointmentController) ListAvailableROs(c *gin.Context) {
	var ros []models.User
	if err := ac.DB.Where("role = ?", models.RoleRefraksiOptisi).
		Order("name ASC").Find(&ros).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available refraksi optisi", ros)
}

// CreateAppointment membuat booking pemeriksaan mata di rumah.
// Hanya customer yang boleh booking, dan hanya untuk dirinya sendiri.
// Appointment baru selalu berstatus pending dengan service_fee kosong.
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	if currentRole(c) != models.RoleCustomer {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		AppointmentDate string `json:"appointment_date"`
		CustomerAddress string `json:"customer_address"`
		Notes           string `json:"notes"`
		ROID            *uint  `json:"ro_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fieldErrors := map[string]string{}

	var appointmentDate time.Time
	if req.AppointmentDate == "" {
		fieldErrors["appointment_date"] = "Please select an appointment date and time."
	} else if parsed, err := parseAppointmentDate(req.AppointmentDate); err != nil {
		fieldErrors["appointment_date"] = "Appointment date format is not recognized."
	} else if !parsed.After(time.Now()) {
		fieldErrors["appointment_date"] = "Appointment date must be in the future."
	} else {
		appointmentDate = parsed
	}

	address := strings.TrimSpace(req.CustomerAddress)
	if address == "" {
		fieldErrors["customer_address"] = "Your address is required for home visit."
	} else if len(address) > maxAddressLength {
		fieldErrors["customer_address"] = "Address cannot exceed 1000 characters."
	}

	if len(req.Notes) > maxNotesLength {
		fieldErrors["notes"] = "Notes cannot exceed 1000 characters."
	}

	if req.ROID != nil {
		var ro models.User
		if err := ac.DB.First(&ro, *req.ROID).Error; err != nil {
			fieldErrors["ro_id"] = "Selected Refraksi Optisi is not available."
		} else if !ro.IsRefraksiOptisi() {
			// Referensi harus benar-benar seorang refraksi optisi,
			// bukan sekadar user yang ada
			fieldErrors["ro_id"] = "Selected Refraksi Optisi is not available."
		}
	}

	if len(fieldErrors) > 0 {
		utils.RespondValidationErrors(c, fieldErrors)
		return
	}

	appointment := models.Appointment{
		CustomerID:      userID,
		ROID:            req.ROID,
		AppointmentDate: appointmentDate,
		CustomerAddress: address,
		Status:          models.AppointmentPending,
	}
	if req.Notes != "" {
		appointment.Notes = &req.Notes
	}

	if err := ac.DB.Create(&appointment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Appointment %d booked by customer %d for %s",
		appointment.ID, userID, appointment.AppointmentDate.Format(time.RFC3339))

	utils.RespondJSON(c, http.StatusCreated, "Appointment booked successfully", appointment)
}

// ListMyAppointments menampilkan appointment milik customer saat ini.
func (ac *AppointmentController) ListMyAppointments(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var appointments []models.Appointment
	if err := ac.DB.Preload("RO").
		Where("customer_id = ?", userID).
		Order("appointment_date ASC, id ASC").
		Find(&appointments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My appointments", appointments)
}

// ListAssignedAppointments menampilkan appointment yang ditugaskan ke
// refraksi optisi saat ini.
func (ac *AppointmentController) ListAssignedAppointments(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	if currentRole(c) != models.RoleRefraksiOptisi {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var appointments []models.Appointment
	if err := ac.DB.Preload("Customer").
		Where("ro_id = ?", userID).
		Order("appointment_date ASC, id ASC").
		Find(&appointments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Assigned appointments", appointments)
}

// UpdateAppointmentStatus memindahkan status appointment mengikuti state
// machine pending -> confirmed -> completed, dengan cancelled dari pending
// maupun confirmed. Hanya RO yang ditugaskan atau super admin yang boleh.
// Service fee boleh diisi saat konfirmasi.
func (ac *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	role := currentRole(c)

	id, err := strconv.Atoi(c.Param("appointment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid appointment ID"))
		return
	}

	var req struct {
		Status     string   `json:"status" binding:"required"`
		ServiceFee *float64 `json:"service_fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidAppointmentStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown appointment status"))
		return
	}

	var appointment models.Appointment
	if err := ac.DB.First(&appointment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("appointment not found"))
		return
	}

	assignedRO := appointment.ROID != nil && *appointment.ROID == userID && role == models.RoleRefraksiOptisi
	cancellingOwner := appointment.CustomerID == userID && role == models.RoleCustomer &&
		req.Status == models.AppointmentCancelled
	if role != models.RoleSuperAdmin && !assignedRO && !cancellingOwner {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if !appointment.CanTransition(req.Status) {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			errors.New("invalid status transition from "+appointment.Status+" to "+req.Status))
		return
	}

	appointment.Status = req.Status
	if req.ServiceFee != nil && req.Status == models.AppointmentConfirmed {
		appointment.ServiceFee = req.ServiceFee
	}

	if err := ac.DB.Save(&appointment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Appointment %d moved to %s by user %d", appointment.ID, appointment.Status, userID)

	utils.RespondJSON(c, http.StatusOK, "Appointment status updated", appointment)
}
