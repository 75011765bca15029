package models

import "time"

const (
	RoleSuperAdmin     = "super_admin"
	RoleOptikStore     = "optik_store"
	RoleRefraksiOptisi = "refraksi_optisi"
	RoleCustomer       = "customer"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(30);not null" json:"role"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ValidRole memeriksa apakah role termasuk salah satu dari empat role aplikasi.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleOptikStore, RoleRefraksiOptisi, RoleCustomer:
		return true
	}
	return false
}

func (u *User) IsSuperAdmin() bool     { return u.Role == RoleSuperAdmin }
func (u *User) IsOptikStore() bool     { return u.Role == RoleOptikStore }
func (u *User) IsRefraksiOptisi() bool { return u.Role == RoleRefraksiOptisi }
func (u *User) IsCustomer() bool       { return u.Role == RoleCustomer }
