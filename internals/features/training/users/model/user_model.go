package model

import "time"

// UserModel adalah trainer yang memimpin sesi pelatihan di lapangan.
type UserModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }
