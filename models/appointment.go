package models

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment adalah permintaan pemeriksaan mata di rumah customer.
// ROID nullable: penugasan refraksi optisi bisa menyusul setelah booking.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	Customer        User      `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`
	ROID            *uint     `gorm:"column:ro_id;index" json:"ro_id,omitempty"`
	RO              *User     `gorm:"foreignKey:ROID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"ro,omitempty"`
	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`
	CustomerAddress string    `gorm:"type:text;not null" json:"customer_address"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ServiceFee      *float64  `gorm:"type:decimal(8,2)" json:"service_fee,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// CanTransition memeriksa perpindahan status appointment:
// pending -> confirmed -> completed, dengan cancelled sebagai jalan keluar
// dari pending maupun confirmed. Completed dan cancelled bersifat terminal.
func (a *Appointment) CanTransition(to string) bool {
	switch a.Status {
	case AppointmentPending:
		return to == AppointmentConfirmed || to == AppointmentCancelled
	case AppointmentConfirmed:
		return to == AppointmentCompleted || to == AppointmentCancelled
	}
	return false
}

// ValidAppointmentStatus memeriksa status appointment yang dikenal.
func ValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
