package models

type User struct {
	Base

	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string `gorm:"not null" json:"first_name"`
	LastName       string `gorm:"not null" json:"last_name"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsAdmin        bool   `gorm:"default:false" json:"is_admin"`
}
