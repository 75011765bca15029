package models

import "time"

// Prescription adalah hasil pemeriksaan refraksi: dimiliki satu customer dan
// ditulis oleh satu refraksi optisi.
type Prescription struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	Customer        User      `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`
	ROID            uint      `gorm:"column:ro_id;not null;index" json:"ro_id"`
	RO              User      `gorm:"foreignKey:ROID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ro"`
	SphRight        *float64  `gorm:"type:decimal(5,2)" json:"sph_right,omitempty"`
	SphLeft         *float64  `gorm:"type:decimal(5,2)" json:"sph_left,omitempty"`
	CylRight        *float64  `gorm:"type:decimal(5,2)" json:"cyl_right,omitempty"`
	CylLeft         *float64  `gorm:"type:decimal(5,2)" json:"cyl_left,omitempty"`
	AxisRight       *int      `json:"axis_right,omitempty"`
	AxisLeft        *int      `json:"axis_left,omitempty"`
	AddPower        *float64  `gorm:"type:decimal(3,2)" json:"add_power,omitempty"`
	PD              *float64  `gorm:"column:pd;type:decimal(4,1)" json:"pd,omitempty"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	ExaminationDate time.Time `gorm:"not null;index" json:"examination_date"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// ValidAxis memeriksa nilai axis; nilai yang terisi harus di rentang [0,180).
func ValidAxis(axis *int) bool {
	return axis == nil || (*axis >= 0 && *axis < 180)
}
