package models

import "time"

const (
	ProductTypeGlasses = "glasses"
	ProductTypeLenses  = "lenses"

	ProductActive   = "active"
	ProductInactive = "inactive"
)

type Product struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OptikStoreID   uint       `gorm:"not null;index" json:"optik_store_id"`
	OptikStore     OptikStore `gorm:"foreignKey:OptikStoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"optik_store"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Type           string     `gorm:"type:varchar(20);not null;index" json:"type"`
	Price          float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Brand          *string    `gorm:"type:varchar(100)" json:"brand,omitempty"`
	Specifications JSONMap    `gorm:"type:json" json:"specifications"`
	Images         StringList `gorm:"type:json" json:"images"`
	Stock          int        `gorm:"not null;default:0" json:"stock"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

// ValidProductType memeriksa tipe produk yang dikenal.
func ValidProductType(t string) bool {
	return t == ProductTypeGlasses || t == ProductTypeLenses
}
