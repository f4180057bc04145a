package dto

import (
	"pelatihanku_backend/internals/features/training/providers/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateProviderRequest struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}

type CreateEmployeeRequest struct {
	Name  string  `json:"name" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	Title *string `json:"title" validate:"omitempty,max=120"`
}

/* =========================================================
 * RESPONSES (kontrak JSON API lama)
 * ========================================================= */

type ProviderBranchResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Employees int     `json:"employees"` // jumlah, bukan daftar
}

type ProviderResponse struct {
	ID            uint                     `json:"id"`
	Name          string                   `json:"name"`
	Slug          string                   `json:"slug"`
	Branches      []ProviderBranchResponse `json:"branches"`
	BranchesCount int                      `json:"branches_count"`
}

type EmployeeResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Title *string `json:"title"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NewProviderBranchResponse(b model.ProviderBranchModel) ProviderBranchResponse {
	return ProviderBranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Employees: len(b.Employees),
	}
}

func NewProviderResponse(p model.ProviderModel) ProviderResponse {
	branches := make([]ProviderBranchResponse, 0, len(p.Branches))
	for _, b := range p.Branches {
		branches = append(branches, NewProviderBranchResponse(b))
	}
	return ProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Branches:      branches,
		BranchesCount: len(p.Branches),
	}
}

func NewEmployeeResponse(e model.ProviderBranchEmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Phone: e.Phone,
		Title: e.Title,
	}
}
