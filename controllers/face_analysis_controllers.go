package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/services"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

type FaceAnalysisController struct {
	DB          *gorm.DB
	Recommender services.FrameRecommender
}

func NewFaceAnalysisController(db *gorm.DB, recommender services.FrameRecommender) *FaceAnalysisController {
	return &FaceAnalysisController{DB: db, Recommender: recommender}
}

// CreateFaceAnalysis menyimpan hasil deteksi bentuk wajah milik customer,
// lalu mengembalikan rekomendasi gaya frame plus 6 produk aktif yang bisa
// langsung dilirik. Deteksinya sendiri masih simulasi di sisi klien.
func (fc *FaceAnalysisController) CreateFaceAnalysis(c *gin.Context) {
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
		FaceShape       string         `json:"face_shape"`
		ConfidenceScore *float64       `json:"confidence_score"`
		ImagePath       *string        `json:"image_path"`
		AnalysisData    models.JSONMap `json:"analysis_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fieldErrors := map[string]string{}

	if req.FaceShape == "" {
		fieldErrors["face_shape"] = "Face shape analysis result is required."
	} else if !models.ValidFaceShape(req.FaceShape) {
		fieldErrors["face_shape"] = "Invalid face shape detected."
	}

	if req.ConfidenceScore == nil {
		fieldErrors["confidence_score"] = "Analysis confidence score is required."
	} else if *req.ConfidenceScore < 0 || *req.ConfidenceScore > 1 {
		fieldErrors["confidence_score"] = "Confidence score must be between 0 and 1."
	}

	if len(fieldErrors) > 0 {
		utils.RespondValidationErrors(c, fieldErrors)
		return
	}

	analysisData := models.JSONMap{
		"analyzed_at": time.Now().Format(time.RFC3339),
		"method":      "ai_camera_detection",
	}
	for k, v := range req.AnalysisData {
		analysisData[k] = v
	}

	recommendations := fc.Recommender.RecommendFrames(req.FaceShape)

	analysis := models.FaceAnalysis{
		CustomerID:        userID,
		FaceShape:         req.FaceShape,
		ConfidenceScore:   *req.ConfidenceScore,
		AnalysisData:      analysisData,
		RecommendedFrames: models.StringList(recommendations),
		ImagePath:         req.ImagePath,
	}

	if err := fc.DB.Create(&analysis).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var recommendedProducts []models.Product
	fc.DB.Preload("OptikStore").
		Where("status = ?", models.ProductActive).
		Limit(6).
		Find(&recommendedProducts)

	utils.InfoLogger.Printf("Face analysis %d stored for customer %d (shape=%s)",
		analysis.ID, userID, analysis.FaceShape)

	utils.RespondJSON(c, http.StatusCreated, "Face analysis stored", gin.H{
		"analysis":             analysis,
		"recommendations":      recommendations,
		"recommended_products": recommendedProducts,
	})
}

// ListMyAnalyses menampilkan 5 analisis terakhir milik customer saat ini,
// dipakai form analisis untuk menampilkan riwayat.
func (fc *FaceAnalysisController) ListMyAnalyses(c *gin.Context) {
	userID, authed := currentUserID(c)
	if !authed {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var analyses []models.FaceAnalysis
	if err := fc.DB.Where("customer_id = ?", userID).
		Order("created_at DESC, id ASC").
		Limit(5).
		Find(&analyses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Previous analyses", analyses)
}
