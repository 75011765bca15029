package models

import "time"

const (
	FaceShapeRound  = "round"
	FaceShapeSquare = "square"
	FaceShapeOval   = "oval"
	FaceShapeHeart  = "heart"
	FaceShapeOblong = "oblong"
)

// FaceAnalysis menyimpan hasil deteksi bentuk wajah milik satu customer.
type FaceAnalysis struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CustomerID        uint       `gorm:"not null;index" json:"customer_id"`
	Customer          User       `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`
	FaceShape         string     `gorm:"type:varchar(20);not null;index" json:"face_shape"`
	ConfidenceScore   float64    `gorm:"type:decimal(3,2)" json:"confidence_score"`
	AnalysisData      JSONMap    `gorm:"type:json" json:"analysis_data"`
	RecommendedFrames StringList `gorm:"type:json" json:"recommended_frames"`
	ImagePath         *string    `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`
}

// ValidFaceShape memeriksa label bentuk wajah yang dikenal.
func ValidFaceShape(shape string) bool {
	switch shape {
	case FaceShapeRound, FaceShapeSquare, FaceShapeOval, FaceShapeHeart, FaceShapeOblong:
		return true
	}
	return false
}
