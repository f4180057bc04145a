package model

import "time"

type ProviderModel struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`
	Slug string `gorm:"column:slug;uniqueIndex" json:"slug"`

	Branches []ProviderBranchModel `gorm:"foreignKey:ProviderID" json:"branches,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProviderModel) TableName() string { return "providers" }

// ProviderBranchModel adalah lokasi fisik provider; pemilik employee.
type ProviderBranchModel struct {
	ID         uint    `gorm:"primaryKey;column:id" json:"id"`
	ProviderID uint    `gorm:"column:provider_id;not null;index" json:"provider_id"`
	Name       string  `gorm:"column:name;not null" json:"name"`
	Latitude   float64 `gorm:"column:latitude" json:"latitude"`
	Longitude  float64 `gorm:"column:longitude" json:"longitude"`

	Employees []ProviderBranchEmployeeModel `gorm:"foreignKey:ProviderBranchID" json:"employees,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProviderBranchModel) TableName() string { return "provider_branches" }

// ProviderBranchEmployeeModel adalah staf cabang yang boleh jadi asisten sesi.
type ProviderBranchEmployeeModel struct {
	ID               uint    `gorm:"primaryKey;column:id" json:"id"`
	ProviderBranchID uint    `gorm:"column:provider_branch_id;not null;index" json:"provider_branch_id"`
	Name             string  `gorm:"column:name;not null" json:"name"`
	Phone            *string `gorm:"column:phone" json:"phone,omitempty"`
	Title            *string `gorm:"column:title" json:"title,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProviderBranchEmployeeModel) TableName() string { return "provider_branch_employees" }
