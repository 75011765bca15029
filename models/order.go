package models

import "time"

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Order adalah pesanan produk dari satu customer ke satu toko optik.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	CustomerID     uint        `gorm:"not null;index" json:"customer_id"`
	Customer       User        `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`
	OptikStoreID   uint        `gorm:"not null;index" json:"optik_store_id"`
	OptikStore     OptikStore  `gorm:"foreignKey:OptikStoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"optik_store"`
	PrescriptionID *uint       `gorm:"index" json:"prescription_id,omitempty"`
	Status         string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalAmount    float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	OrderItems     []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}
