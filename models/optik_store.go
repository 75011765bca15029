package models

import "time"

// OptikStore adalah profil toko optik milik satu user dengan role optik_store.
type OptikStore struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	StoreName      string    `gorm:"type:varchar(255);not null" json:"store_name"`
	Description    string    `gorm:"type:text" json:"description"`
	Location       string    `gorm:"type:varchar(255);not null;index" json:"location"`
	LicenseNumber  *string   `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	OperatingHours JSONMap   `gorm:"type:json" json:"operating_hours"`
	LogoPath       *string   `gorm:"type:varchar(255)" json:"logo_path,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
	Products       []Product `gorm:"foreignKey:OptikStoreID" json:"products,omitempty"`
}
