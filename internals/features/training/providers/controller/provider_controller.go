package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pelatihanku_backend/internals/features/training/providers/dto"
	"pelatihanku_backend/internals/features/training/providers/model"
	helper "pelatihanku_backend/internals/helpers"
)

type ProviderController struct {
	DB *gorm.DB
}

func NewProviderController(db *gorm.DB) *ProviderController {
	return &ProviderController{DB: db}
}

/* ===================== LIST PROVIDERS ===================== */
// GET /api/training/providers
func (ctrl *ProviderController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ProviderModel{}).
		Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var providers []model.ProviderModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Branches.Employees").
		Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&providers).Error; err != nil {
		return helper.InternalError(c, err)
	}

	content := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		content = append(content, dto.NewProviderResponse(p))
	}
	return helper.List(c, content, total)
}

/* ===================== CREATE PROVIDER ===================== */
// POST /api/training/providers
func (ctrl *ProviderController) Create(c *fiber.Ctx) error {
	var req dto.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}
	if req.Name == "" {
		return helper.ValidationError(c, "Name cannot be empty")
	}
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "providers",
		SlugColumn:  "slug",
		DefaultBase: "provider",
	}, req.Name)
	if err != nil {
		return helper.InternalError(c, err)
	}

	provider := model.ProviderModel{Name: req.Name, Slug: slug}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&provider).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated, dto.NewProviderResponse(provider))
}

/* ===================== LIST BRANCHES ===================== */
// GET /api/training/providers/:slug/branches
func (ctrl *ProviderController) ListBranches(c *fiber.Ctx) error {
	provider, err := ctrl.findProviderBySlug(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	content := make([]dto.ProviderBranchResponse, 0, len(provider.Branches))
	for _, b := range provider.Branches {
		content = append(content, dto.NewProviderBranchResponse(b))
	}
	return helper.List(c, content, int64(len(content)))
}

/* ===================== LIST EMPLOYEES ===================== */
// GET /api/training/providers/:slug/branches/:branch_id/employees
func (ctrl *ProviderController) ListEmployees(c *fiber.Ctx) error {
	branch, err := ctrl.findBranch(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	content := make([]dto.EmployeeResponse, 0, len(branch.Employees))
	for _, e := range branch.Employees {
		content = append(content, dto.NewEmployeeResponse(e))
	}
	return helper.List(c, content, int64(len(content)))
}

/* ===================== CREATE EMPLOYEE ===================== */
// POST /api/training/providers/:slug/branches/:branch_id/employees
func (ctrl *ProviderController) CreateEmployee(c *fiber.Ctx) error {
	branch, err := ctrl.findBranch(c)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}
	if req.Name == "" {
		return helper.ValidationError(c, "Name cannot be empty")
	}
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	employee := model.ProviderBranchEmployeeModel{
		ProviderBranchID: branch.ID,
		Name:             req.Name,
		Phone:            req.Phone,
		Title:            req.Title,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&employee).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated, dto.NewEmployeeResponse(employee))
}

/* ===================== INTERNAL ===================== */

func (ctrl *ProviderController) findProviderBySlug(c *fiber.Ctx) (*model.ProviderModel, error) {
	var provider model.ProviderModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Branches.Employees").
		Where("slug = ?", c.Params("slug")).
		First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (ctrl *ProviderController) findBranch(c *fiber.Ctx) (*model.ProviderBranchModel, error) {
	branchID, err := strconv.ParseUint(c.Params("branch_id"), 10, 64)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var branch model.ProviderBranchModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Preload("Employees").
		Joins("JOIN providers ON providers.id = provider_branches.provider_id").
		Where("providers.slug = ? AND provider_branches.id = ?", c.Params("slug"), branchID).
		First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (ctrl *ProviderController) respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.NotFound(c)
	}
	return helper.InternalError(c, err)
}
